package collect

import (
	"context"
	"fmt"
	"strings"
)

const (
	loginDefsPath      = "/etc/login.defs"
	commonPasswordPath = "/etc/pam.d/common-password"
	commonAuthPath     = "/etc/pam.d/common-auth"
	sshdConfigPath     = "/etc/ssh/sshd_config"
)

// PasswordPolicyCollector reports seven password-policy sub-facts, section 9.
// Each sub-fact is extracted independently; an absent keyword leaves its
// labeled line visibly blank rather than failing the section.
type PasswordPolicyCollector struct{}

func (c *PasswordPolicyCollector) Index() int    { return 9 }
func (c *PasswordPolicyCollector) Title() string { return "Password policy" }

func (c *PasswordPolicyCollector) Collect(ctx context.Context, deps Deps) (string, error) {
	loginDefs, _ := deps.Runner.ReadFile(loginDefsPath)
	commonPassword, _ := deps.Runner.ReadFile(commonPasswordPath)
	commonAuth, _ := deps.Runner.ReadFile(commonAuthPath)
	sshdConfig, _ := deps.Runner.ReadFile(sshdConfigPath)

	minLen, _ := loginDefsValue(loginDefs, "PASS_MIN_LEN")

	complexity := "no"
	if pamModulePresent(commonPassword, "pam_pwquality.so", "pam_cracklib.so") {
		complexity = "yes"
	}

	history, _ := pamOptionValue(commonPassword, "remember")
	lockoutDeny, _ := pamOptionValue(commonAuth, "deny")
	lockoutTime, _ := pamOptionValue(commonAuth, "unlock_time")
	idleTimeout, _ := sshdOption(sshdConfig, "ClientAliveInterval")

	// sshd defaults PasswordAuthentication to yes when unset
	passwordAuth, ok := sshdOption(sshdConfig, "PasswordAuthentication")
	if !ok && sshdConfig != "" {
		passwordAuth = "yes"
	}

	lines := []string{
		fmt.Sprintf("Minimum password length: %s", minLen),
		fmt.Sprintf("Password complexity enforced: %s", complexity),
		fmt.Sprintf("Password history depth: %s", history),
		fmt.Sprintf("Account lockout threshold: %s", lockoutDeny),
		fmt.Sprintf("Account lockout duration (s): %s", lockoutTime),
		fmt.Sprintf("Idle session timeout (s): %s", idleTimeout),
		fmt.Sprintf("SSH password authentication: %s", passwordAuth),
	}
	return strings.Join(lines, "\n"), nil
}
