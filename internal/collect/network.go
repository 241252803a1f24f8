package collect

import (
	"context"
	"strings"
)

// PrimaryIPCollector reports the host's primary address, section 3.
type PrimaryIPCollector struct{}

func (c *PrimaryIPCollector) Index() int    { return 3 }
func (c *PrimaryIPCollector) Title() string { return "Primary IP address" }

func (c *PrimaryIPCollector) Collect(ctx context.Context, deps Deps) (string, error) {
	result, err := deps.Runner.Run(ctx, deps.Config.ShortTimeout(), "hostname", "-I")
	if err != nil {
		return "", err
	}
	// First address in the enumerated list
	fields := strings.Fields(result.Stdout)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], nil
}

// ListeningSocketsCollector reports TCP and UDP listening sockets, section 8.
type ListeningSocketsCollector struct{}

func (c *ListeningSocketsCollector) Index() int    { return 8 }
func (c *ListeningSocketsCollector) Title() string { return "Listening network services" }

func (c *ListeningSocketsCollector) Collect(ctx context.Context, deps Deps) (string, error) {
	result, err := deps.Runner.Run(ctx, deps.Config.MediumTimeout(), "ss", "-tuln")
	if err != nil {
		return "", err
	}
	return strings.TrimRight(result.Stdout, "\n"), nil
}
