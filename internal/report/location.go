package report

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/dstergiou/pci-host-report/internal/errors"
)

// timestampLayout is embedded in report file names; second resolution keeps
// consecutive runs distinct.
const timestampLayout = "2006-01-02_150405"

// InvokingUserHome resolves the home directory of the real (pre-sudo) user.
// The run must execute under sudo, so SUDO_USER is a hard requirement.
func InvokingUserHome() (string, error) {
	name := os.Getenv("SUDO_USER")
	if name == "" {
		return "", errors.New("SUDO_USER is not set: pci-report must be run under sudo")
	}
	u, err := user.Lookup(name)
	if err != nil {
		return "", errors.Wrap(err, "lookup invoking user %q", name)
	}
	return u.HomeDir, nil
}

// Location computes the report destination from the run context. It has no
// side effects; Create performs the filesystem work.
func Location(home, reportDir, site, hostname string, now time.Time) (dir, name string) {
	dir = filepath.Join(home, reportDir)
	name = fmt.Sprintf("%s-%s-%s-report.txt", now.Format(timestampLayout), site, hostname)
	return dir, name
}
