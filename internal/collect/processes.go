package collect

import (
	"context"
	"strings"
)

// ProcessListCollector reports the full process table, section 7.
type ProcessListCollector struct{}

func (c *ProcessListCollector) Index() int    { return 7 }
func (c *ProcessListCollector) Title() string { return "Running processes" }

func (c *ProcessListCollector) Collect(ctx context.Context, deps Deps) (string, error) {
	result, err := deps.Runner.Run(ctx, deps.Config.LongTimeout(), "ps", "aux")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(result.Stdout, "\n"), nil
}
