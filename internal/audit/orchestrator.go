// Package audit runs the fixed collection sequence and feeds the report sink.
package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dstergiou/pci-host-report/internal/collect"
	"github.com/dstergiou/pci-host-report/internal/config"
	"github.com/dstergiou/pci-host-report/internal/errors"
	"github.com/dstergiou/pci-host-report/internal/log"
	"github.com/dstergiou/pci-host-report/internal/report"
	"github.com/dstergiou/pci-host-report/internal/system"
	"github.com/dstergiou/pci-host-report/internal/util"
)

// Orchestrator coordinates one report run: every collector exactly once, in
// catalog order, each section appended before the next collector starts.
type Orchestrator struct {
	catalog []collect.Collector
	deps    collect.Deps
	logger  *zap.Logger
}

// NewOrchestrator creates an orchestrator querying the live host.
func NewOrchestrator(cfg *config.Config) *Orchestrator {
	return &Orchestrator{
		catalog: collect.Catalog(),
		deps: collect.Deps{
			Runner: &system.ExecRunner{},
			Config: cfg,
		},
		logger: util.GetLogger(),
	}
}

// Run executes the catalog against the report. A collector failure becomes
// section content and the run continues; only a failed append stops the run,
// since nothing further can be written.
func (o *Orchestrator) Run(ctx context.Context, rep *report.Report) error {
	start := time.Now()

	for _, c := range o.catalog {
		log.Infof("[%d/%d] Collecting %s", c.Index(), len(o.catalog), c.Title())

		// Per-section ceiling on top of the individual query timeouts
		sectionCtx, cancel := context.WithTimeout(ctx, o.deps.Config.LongTimeout())
		body, err := c.Collect(sectionCtx, o.deps)
		cancel()
		if err != nil {
			o.logger.Warn("collector failed",
				zap.Int("section", c.Index()),
				zap.String("title", c.Title()),
				zap.Error(err))
			body = err.Error()
		}

		if err := rep.Append(c.Index(), c.Title(), body); err != nil {
			return errors.Wrap(err, "section %d", c.Index())
		}
	}

	o.logger.Info("report complete",
		zap.Int("sections", len(o.catalog)),
		zap.String("path", rep.Path),
		zap.Duration("duration", time.Since(start)))
	return nil
}
