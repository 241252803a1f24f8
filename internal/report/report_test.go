package report

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/dstergiou/pci-host-report/internal/errors"
)

func TestLocation(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 5, 0, time.UTC)
	dir, name := Location("/home/audit", "PCI_DSS_REPORT", "HQ", "payments-01", now)

	if dir != filepath.Join("/home/audit", "PCI_DSS_REPORT") {
		t.Errorf("dir = %q, want home/PCI_DSS_REPORT", dir)
	}
	if name != "2024-03-15_143005-HQ-payments-01-report.txt" {
		t.Errorf("name = %q", name)
	}
}

func TestLocationDistinctPerTimestamp(t *testing.T) {
	first := time.Date(2024, 3, 15, 14, 30, 5, 0, time.UTC)
	second := first.Add(time.Second)

	_, nameA := Location("/home/audit", "PCI_DSS_REPORT", "HQ", "host", first)
	_, nameB := Location("/home/audit", "PCI_DSS_REPORT", "HQ", "host", second)

	if nameA == nameB {
		t.Errorf("two runs a second apart produced the same file name %q", nameA)
	}
}

func TestCreateIdempotentDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "PCI_DSS_REPORT")

	repA, err := Create(dir, "first-report.txt")
	if err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	defer repA.Close()

	// Second run with the directory already present must not fail
	repB, err := Create(dir, "second-report.txt")
	if err != nil {
		t.Fatalf("second Create() error = %v", err)
	}
	defer repB.Close()

	if repA.Path == repB.Path {
		t.Error("two runs share the same report path")
	}
}

func TestCreateFailsOnUnusableDestination(t *testing.T) {
	// A regular file where the directory should go makes MkdirAll fail,
	// whatever privileges the test runs with.
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	dir := filepath.Join(blocker, "PCI_DSS_REPORT")
	rep, err := Create(dir, "report.txt")
	if err == nil {
		rep.Close()
		t.Fatal("Create() succeeded with an unusable destination")
	}
	if !errors.Is(err, errors.ErrPermissionDenied) {
		t.Errorf("Create() error = %v, want ErrPermissionDenied in chain", err)
	}

	// No partial report file may exist
	if _, statErr := os.Stat(filepath.Join(dir, "report.txt")); statErr == nil {
		t.Error("a partial report file was created despite the setup failure")
	}
}

func TestAppendOrderAndFormat(t *testing.T) {
	rep, err := Create(filepath.Join(t.TempDir(), "PCI_DSS_REPORT"), "report.txt")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	now := time.Date(2024, 3, 15, 14, 30, 5, 0, time.UTC)
	if err := rep.Preamble("b2a7cf9e-0000-4000-8000-000000000000", now, "payments-01", "HQ"); err != nil {
		t.Fatalf("Preamble() error = %v", err)
	}

	titles := []string{
		"Hostname", "Operating system", "Primary IP address", "Local user accounts",
		"Administrator accounts", "Recently installed patches", "Running processes",
		"Listening network services", "Password policy", "Log collection agent",
		"Time synchronization", "Vendor patch policy", "Antivirus", "File integrity monitoring",
	}
	for i, title := range titles {
		if err := rep.Append(i+1, title, "body "+strconv.Itoa(i+1)); err != nil {
			t.Fatalf("Append(%d) error = %v", i+1, err)
		}
	}
	if err := rep.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(rep.Path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	headings := regexp.MustCompile(`(?m)^(\d+)\) `).FindAllStringSubmatch(string(data), -1)
	if len(headings) != 14 {
		t.Fatalf("report has %d section headings, want 14", len(headings))
	}
	for i, h := range headings {
		if h[1] != strconv.Itoa(i+1) {
			t.Errorf("heading %d is numbered %s, want %d", i, h[1], i+1)
		}
	}
}

func TestAppendPreservesEmptyBody(t *testing.T) {
	rep, err := Create(t.TempDir(), "report.txt")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := rep.Append(1, "Hostname", ""); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	rep.Close()

	data, _ := os.ReadFile(rep.Path)
	if string(data) != "1) Hostname\n\n\n" {
		t.Errorf("report content = %q, want heading, blank body line, separator", string(data))
	}
}

func TestInvokingUserHomeRequiresSudo(t *testing.T) {
	t.Setenv("SUDO_USER", "")

	if _, err := InvokingUserHome(); err == nil {
		t.Error("InvokingUserHome() succeeded without SUDO_USER")
	}
}
