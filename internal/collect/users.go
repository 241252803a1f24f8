package collect

import (
	"context"
	"strings"
)

// LocalUsersCollector reports regular local accounts, section 4.
type LocalUsersCollector struct{}

func (c *LocalUsersCollector) Index() int    { return 4 }
func (c *LocalUsersCollector) Title() string { return "Local user accounts" }

func (c *LocalUsersCollector) Collect(ctx context.Context, deps Deps) (string, error) {
	result, err := deps.Runner.Run(ctx, deps.Config.ShortTimeout(), "getent", "passwd")
	if err != nil {
		return "", err
	}
	return strings.Join(passwdRegularUsers(result.Stdout), "\n"), nil
}

// AdminGroupCollector reports members of the sudo-equivalent group, section 5.
type AdminGroupCollector struct{}

func (c *AdminGroupCollector) Index() int    { return 5 }
func (c *AdminGroupCollector) Title() string { return "Administrator accounts" }

func (c *AdminGroupCollector) Collect(ctx context.Context, deps Deps) (string, error) {
	// Debian-family hosts use "sudo", RHEL-family "wheel"
	for _, group := range []string{"sudo", "wheel"} {
		result, err := deps.Runner.Run(ctx, deps.Config.ShortTimeout(), "getent", "group", group)
		if err != nil {
			return "", err
		}
		if !result.Success || strings.TrimSpace(result.Stdout) == "" {
			continue
		}
		if members, ok := groupMembers(result.Stdout); ok {
			return strings.Join(members, ", "), nil
		}
	}
	return "", nil
}
