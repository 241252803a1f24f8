package useraccess

import (
	"strings"
	"testing"
)

const sampleExport = `Active users
Alice Papadopoulou
alice@example.com
Administrator
Bob Smith
bob@example.com
Reviewer
Deactivated users
Carol Gone
carol@example.com
Administrator
`

func TestExtract(t *testing.T) {
	users := Extract(sampleExport)

	if len(users) != 2 {
		t.Fatalf("Extract() returned %d users, want 2: %v", len(users), users)
	}

	if users[0].Name != "Alice Papadopoulou" || users[0].Email != "alice@example.com" || users[0].Role != "Administrator" {
		t.Errorf("users[0] = %+v", users[0])
	}
	if users[1].Name != "Bob Smith" || users[1].Email != "bob@example.com" || users[1].Role != "Reviewer" {
		t.Errorf("users[1] = %+v", users[1])
	}
}

func TestExtractStopsAtDeactivatedSection(t *testing.T) {
	for _, u := range Extract(sampleExport) {
		if u.Email == "carol@example.com" {
			t.Error("Extract() included a deactivated user")
		}
	}
}

func TestExtractMissingNameAndRole(t *testing.T) {
	// Email on the first line, nothing after it
	users := Extract("solo@example.com")

	if len(users) != 1 {
		t.Fatalf("Extract() returned %d users, want 1", len(users))
	}
	if users[0].Name != "Unknown" {
		t.Errorf("Name = %q, want 'Unknown' when no preceding line exists", users[0].Name)
	}
	if users[0].Role != "Unknown" {
		t.Errorf("Role = %q, want 'Unknown' when no following line exists", users[0].Role)
	}
}

func TestExtractIgnoresNonEmailLines(t *testing.T) {
	if users := Extract("Active users\nno emails here\n"); len(users) != 0 {
		t.Errorf("Extract() = %v, want empty", users)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf strings.Builder
	users := []User{{Name: "Alice", Email: "alice@example.com", Role: "Administrator"}}

	if err := WriteCSV(&buf, users); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv has %d lines, want header plus one row:\n%s", len(lines), buf.String())
	}
	if lines[0] != "Name,Email,Role" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Alice,alice@example.com,Administrator" {
		t.Errorf("row = %q", lines[1])
	}
}
