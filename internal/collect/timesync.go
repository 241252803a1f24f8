package collect

import (
	"context"
	"fmt"
	"strings"

	"github.com/dstergiou/pci-host-report/internal/system"
)

// TimeSyncCollector reports NTP client state, section 11: service state, the
// configured source list, and the tracking (leap/stratum) status.
type TimeSyncCollector struct{}

func (c *TimeSyncCollector) Index() int    { return 11 }
func (c *TimeSyncCollector) Title() string { return "Time synchronization" }

func (c *TimeSyncCollector) Collect(ctx context.Context, deps Deps) (string, error) {
	state := "inactive"
	// chrony ships as "chrony" on Debian-family hosts and "chronyd" elsewhere
	for _, unit := range []string{"chrony", "chronyd"} {
		if system.IsServiceActive(ctx, deps.Runner, deps.Config.ShortTimeout(), unit) {
			state = "active"
			break
		}
	}

	sources := ""
	tracking := ""
	if deps.Runner.CommandExists("chronyc") {
		if result, err := deps.Runner.Run(ctx, deps.Config.MediumTimeout(), "chronyc", "sources"); err == nil {
			sources = strings.TrimRight(result.Stdout, "\n")
		}
		if result, err := deps.Runner.Run(ctx, deps.Config.MediumTimeout(), "chronyc", "tracking"); err == nil {
			tracking = strings.TrimRight(result.Stdout, "\n")
		}
	}

	lines := []string{
		fmt.Sprintf("Service state: %s", state),
		"Sources:",
		sources,
		"Tracking:",
		tracking,
	}
	return strings.Join(lines, "\n"), nil
}
