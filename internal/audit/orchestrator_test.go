package audit

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dstergiou/pci-host-report/internal/collect"
	"github.com/dstergiou/pci-host-report/internal/config"
	"github.com/dstergiou/pci-host-report/internal/errors"
	"github.com/dstergiou/pci-host-report/internal/report"
	"github.com/dstergiou/pci-host-report/internal/system"
)

// deadRunner mimics a host where every query fails: commands exit non-zero,
// files are unreadable, nothing exists.
type deadRunner struct{}

func (deadRunner) Run(ctx context.Context, timeout time.Duration, cmdParts ...string) (*system.CommandResult, error) {
	return &system.CommandResult{Success: false, ExitCode: 1}, nil
}

func (deadRunner) ReadFile(path string) (string, error) {
	return "", os.ErrNotExist
}

func (deadRunner) FileExists(path string) bool { return false }

func (deadRunner) CommandExists(cmd string) bool { return false }

func newTestOrchestrator(catalog []collect.Collector, runner system.Runner) *Orchestrator {
	return &Orchestrator{
		catalog: catalog,
		deps:    collect.Deps{Runner: runner, Config: config.Default()},
		logger:  zap.NewNop(),
	}
}

func createTestReport(t *testing.T) *report.Report {
	t.Helper()
	rep, err := report.Create(filepath.Join(t.TempDir(), "PCI_DSS_REPORT"), "report.txt")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	t.Cleanup(func() { rep.Close() })
	return rep
}

func TestRunProducesAllSectionsOnDeadHost(t *testing.T) {
	rep := createTestReport(t)
	o := newTestOrchestrator(collect.Catalog(), deadRunner{})

	if err := o.Run(context.Background(), rep); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	data, err := os.ReadFile(rep.Path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	headings := regexp.MustCompile(`(?m)^(\d+)\) `).FindAllStringSubmatch(string(data), -1)
	if len(headings) != 14 {
		t.Fatalf("report has %d headings, want 14 even when every query fails", len(headings))
	}
	for i, h := range headings {
		if h[1] != strconv.Itoa(i+1) {
			t.Errorf("heading %d numbered %s, want %d", i, h[1], i+1)
		}
	}

	// Attestation sections still carry their configured text
	if !strings.Contains(string(data), config.Default().Attestations.VendorPatching) {
		t.Error("section 12 is missing the vendor patching attestation")
	}
}

// failingCollector returns an error from Collect; the orchestrator must record
// it as section content and keep going.
type failingCollector struct {
	index int
	title string
}

func (c *failingCollector) Index() int    { return c.index }
func (c *failingCollector) Title() string { return c.title }
func (c *failingCollector) Collect(ctx context.Context, deps collect.Deps) (string, error) {
	return "", errors.New("query blew up")
}

type staticCollector struct {
	index int
	title string
	body  string
}

func (c *staticCollector) Index() int    { return c.index }
func (c *staticCollector) Title() string { return c.title }
func (c *staticCollector) Collect(ctx context.Context, deps collect.Deps) (string, error) {
	return c.body, nil
}

func TestRunRecordsCollectorErrorAndContinues(t *testing.T) {
	rep := createTestReport(t)
	catalog := []collect.Collector{
		&staticCollector{index: 1, title: "First", body: "ok"},
		&failingCollector{index: 2, title: "Second"},
		&staticCollector{index: 3, title: "Third", body: "still running"},
	}

	o := newTestOrchestrator(catalog, deadRunner{})
	if err := o.Run(context.Background(), rep); err != nil {
		t.Fatalf("Run() error = %v, want nil: collector failures must not abort", err)
	}

	data, _ := os.ReadFile(rep.Path)
	content := string(data)

	if !strings.Contains(content, "2) Second\nquery blew up") {
		t.Errorf("failed collector's error text not recorded as section body:\n%s", content)
	}
	if !strings.Contains(content, "3) Third\nstill running") {
		t.Errorf("run did not continue past the failing collector:\n%s", content)
	}
}

func TestRunStopsWhenReportIsClosed(t *testing.T) {
	rep := createTestReport(t)
	rep.Close()

	o := newTestOrchestrator([]collect.Collector{
		&staticCollector{index: 1, title: "First", body: "ok"},
	}, deadRunner{})

	if err := o.Run(context.Background(), rep); err == nil {
		t.Error("Run() succeeded writing to a closed report")
	}
}

func TestNewOrchestratorCatalog(t *testing.T) {
	o := NewOrchestrator(config.Default())

	if len(o.catalog) != 14 {
		t.Errorf("orchestrator catalog has %d collectors, want 14", len(o.catalog))
	}
	if o.deps.Runner == nil || o.deps.Config == nil {
		t.Error("orchestrator deps not wired")
	}
}
