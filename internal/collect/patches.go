package collect

import (
	"context"
	"strings"
)

// PatchHistoryCollector reports recently completed package installs from the
// current and immediately prior dpkg logs, section 6.
type PatchHistoryCollector struct{}

func (c *PatchHistoryCollector) Index() int    { return 6 }
func (c *PatchHistoryCollector) Title() string { return "Recently installed patches" }

func (c *PatchHistoryCollector) Collect(ctx context.Context, deps Deps) (string, error) {
	contents := []string{}
	for _, path := range []string{"/var/log/dpkg.log", "/var/log/dpkg.log.1"} {
		if data, err := deps.Runner.ReadFile(path); err == nil {
			contents = append(contents, data)
		}
	}
	return strings.Join(dpkgInstalledLines(contents...), "\n"), nil
}
