package collect

import (
	"context"
	"strings"
)

// HostnameCollector reports the host name, section 1.
type HostnameCollector struct{}

func (c *HostnameCollector) Index() int    { return 1 }
func (c *HostnameCollector) Title() string { return "Hostname" }

func (c *HostnameCollector) Collect(ctx context.Context, deps Deps) (string, error) {
	if data, err := deps.Runner.ReadFile("/etc/hostname"); err == nil {
		if name := strings.TrimSpace(data); name != "" {
			return name, nil
		}
	}

	result, err := deps.Runner.Run(ctx, deps.Config.ShortTimeout(), "hostname")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Stdout), nil
}

// OSReleaseCollector reports the OS name and version, section 2.
type OSReleaseCollector struct{}

func (c *OSReleaseCollector) Index() int    { return 2 }
func (c *OSReleaseCollector) Title() string { return "Operating system" }

func (c *OSReleaseCollector) Collect(ctx context.Context, deps Deps) (string, error) {
	data, err := deps.Runner.ReadFile("/etc/os-release")
	if err != nil {
		return "", nil
	}
	name, _ := prettyName(data)
	return name, nil
}
