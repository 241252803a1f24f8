// Package collect implements the fourteen fact collectors that make up a
// report run. Each collector maps one category of host state to a formatted
// text block; none of them may abort the run.
package collect

import (
	"context"

	"github.com/dstergiou/pci-host-report/internal/config"
	"github.com/dstergiou/pci-host-report/internal/system"
)

// Deps carries what every collector needs: a fact source and the config.
// Query timeouts come from the config so operators can tune them per host.
type Deps struct {
	Runner system.Runner
	Config *config.Config
}

// Collector is the interface all collectors must implement
type Collector interface {
	Index() int
	Title() string
	Collect(ctx context.Context, deps Deps) (string, error)
}

// Catalog returns all collectors in report order, sections 1 through 14.
// The order is fixed; sections appear in the report exactly in this order.
func Catalog() []Collector {
	return []Collector{
		&HostnameCollector{},
		&OSReleaseCollector{},
		&PrimaryIPCollector{},
		&LocalUsersCollector{},
		&AdminGroupCollector{},
		&PatchHistoryCollector{},
		&ProcessListCollector{},
		&ListeningSocketsCollector{},
		&PasswordPolicyCollector{},
		&LogAgentCollector{},
		&TimeSyncCollector{},
		&VendorPatchPolicyCollector{},
		&AntivirusCollector{},
		&FileIntegrityCollector{},
	}
}
