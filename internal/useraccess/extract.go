// Package useraccess extracts user/role lists from vendor console exports
// for periodic user-access-review evidence.
//
// Vendor admin consoles list each active user as a name line, an email line
// and a role line; the export's "Deactivated users" section and everything
// after it is out of review scope.
package useraccess

import (
	"encoding/csv"
	"io"
	"regexp"
	"strings"

	"github.com/dstergiou/pci-host-report/internal/errors"
)

// User is one row of the access-review evidence.
type User struct {
	Name  string
	Email string
	Role  string
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Extract parses the plain-text export of a vendor user list. A line carrying
// an email address identifies a user; the preceding line is the name and the
// following line the role, "Unknown" when the export omits either. Parsing
// stops at the "Deactivated users" section.
func Extract(text string) []User {
	lines := strings.Split(text, "\n")
	users := []User{}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if strings.Contains(line, "Deactivated users") {
			break
		}
		if !emailPattern.MatchString(line) {
			continue
		}

		name := "Unknown"
		if i > 0 {
			if prev := strings.TrimSpace(lines[i-1]); prev != "" {
				name = prev
			}
		}

		role := "Unknown"
		if i+1 < len(lines) {
			if next := strings.TrimSpace(lines[i+1]); next != "" {
				role = next
			}
		}

		users = append(users, User{Name: name, Email: line, Role: role})
	}

	return users
}

// WriteCSV emits the review rows with a Name/Email/Role header.
func WriteCSV(w io.Writer, users []User) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Email", "Role"}); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, u := range users {
		if err := cw.Write([]string{u.Name, u.Email, u.Role}); err != nil {
			return errors.Wrap(err, "write csv row for %s", u.Email)
		}
	}
	cw.Flush()
	return cw.Error()
}
