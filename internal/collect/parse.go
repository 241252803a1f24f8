package collect

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// prettyName extracts the human-readable description from /etc/os-release.
func prettyName(content string) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "PRETTY_NAME=") {
			return strings.Trim(strings.TrimPrefix(line, "PRETTY_NAME="), "\""), true
		}
	}
	return "", false
}

// loginDefsValue extracts the value of a directive from /etc/login.defs.
// Comment lines are skipped; the first matching directive wins.
func loginDefsValue(content, key string) (string, bool) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == key {
			return fields[1], true
		}
	}
	return "", false
}

// pamModulePresent reports whether any uncommented line of a PAM stack file
// references the given module.
func pamModulePresent(content string, modules ...string) bool {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, module := range modules {
			if strings.Contains(line, module) {
				return true
			}
		}
	}
	return false
}

// pamOptionValue extracts an option=value token from the uncommented lines of
// a PAM stack file.
func pamOptionValue(content, option string) (string, bool) {
	prefix := option + "="
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range strings.Fields(line) {
			if strings.HasPrefix(field, prefix) {
				return strings.TrimPrefix(field, prefix), true
			}
		}
	}
	return "", false
}

// sshdOption extracts the value of an sshd_config keyword from uncommented
// lines, matching the way sshd itself reads the first occurrence.
func sshdOption(content, key string) (string, bool) {
	pattern := regexp.MustCompile(`(?mi)^\s*` + regexp.QuoteMeta(key) + `\s+(\S+)`)
	if match := pattern.FindStringSubmatch(content); len(match) > 1 {
		return match[1], true
	}
	return "", false
}

// groupMembers extracts the member list from a getent group line.
func groupMembers(line string) ([]string, bool) {
	parts := strings.Split(strings.TrimSpace(line), ":")
	if len(parts) < 4 {
		return nil, false
	}
	members := []string{}
	for _, m := range strings.Split(parts[3], ",") {
		if m = strings.TrimSpace(m); m != "" {
			members = append(members, m)
		}
	}
	return members, true
}

// nobodyUID is the reserved sentinel account excluded from the regular range.
const nobodyUID = 65534

// passwdRegularUsers extracts login names of regular accounts from getent
// passwd output: uid at or above 1000 and below the nobody sentinel.
func passwdRegularUsers(content string) []string {
	users := []string{}
	for _, line := range strings.Split(content, "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, ":")
		if len(parts) < 7 {
			continue
		}
		uid, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}
		if uid >= 1000 && uid < nobodyUID {
			users = append(users, parts[0])
		}
	}
	return users
}

// dpkgInstalledLines extracts completed-install lines from one or more dpkg
// log contents, reverse-sorted so the most recent entries come first. Only
// the exact "installed" state qualifies; partial and failed states such as
// not-installed and half-installed fall out of the comparison.
func dpkgInstalledLines(contents ...string) []string {
	lines := []string{}
	for _, content := range contents {
		for _, line := range strings.Split(content, "\n") {
			// dpkg log line: <date> <time> status <state> <pkg> <version>
			fields := strings.Fields(line)
			if len(fields) < 4 || fields[2] != "status" {
				continue
			}
			if fields[3] != "installed" {
				continue
			}
			lines = append(lines, line)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(lines)))
	return lines
}
