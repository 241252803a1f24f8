package collect

import (
	"context"
	"fmt"
	"strings"
)

// FileIntegrityCollector reports the AIDE file-integrity-monitoring setup,
// section 14: package registration plus the presence of its cron job, config
// and database.
type FileIntegrityCollector struct{}

func (c *FileIntegrityCollector) Index() int    { return 14 }
func (c *FileIntegrityCollector) Title() string { return "File integrity monitoring" }

var fimPaths = []string{
	"/etc/cron.daily/aide",
	"/etc/aide/aide.conf",
	"/var/lib/aide/aide.db",
}

func (c *FileIntegrityCollector) Collect(ctx context.Context, deps Deps) (string, error) {
	installed := "no"
	if result, err := deps.Runner.Run(ctx, deps.Config.ShortTimeout(), "dpkg", "-s", "aide"); err == nil && result.Success {
		installed = "yes"
	}

	lines := []string{fmt.Sprintf("AIDE package installed: %s", installed)}
	for _, path := range fimPaths {
		presence := "missing"
		if deps.Runner.FileExists(path) {
			presence = "present"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", path, presence))
	}
	return strings.Join(lines, "\n"), nil
}
