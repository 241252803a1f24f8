package collect

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dstergiou/pci-host-report/internal/system"
)

const filebeatConfigPath = "/etc/filebeat/filebeat.yml"

// LogAgentCollector reports the state of the log-shipping agent, section 10:
// service state, whether log forwarding is configured, and the agent version.
// An absent or unparseable agent config leaves the forwarding value blank;
// only a readable config yields a yes/no answer.
type LogAgentCollector struct{}

func (c *LogAgentCollector) Index() int    { return 10 }
func (c *LogAgentCollector) Title() string { return "Log collection agent" }

type filebeatOutput struct {
	Enabled *bool    `yaml:"enabled"`
	Hosts   []string `yaml:"hosts"`
}

type filebeatConfig struct {
	Output struct {
		Logstash      *filebeatOutput `yaml:"logstash"`
		Elasticsearch *filebeatOutput `yaml:"elasticsearch"`
	} `yaml:"output"`
}

func (c *LogAgentCollector) Collect(ctx context.Context, deps Deps) (string, error) {
	state := "inactive"
	if system.IsServiceActive(ctx, deps.Runner, deps.Config.ShortTimeout(), "filebeat") {
		state = "active"
	}

	forwarding := ""
	if data, err := deps.Runner.ReadFile(filebeatConfigPath); err == nil {
		var cfg filebeatConfig
		if yaml.Unmarshal([]byte(data), &cfg) == nil {
			forwarding = "no"
			if outputEnabled(cfg.Output.Logstash) || outputEnabled(cfg.Output.Elasticsearch) {
				forwarding = "yes"
			}
		}
	}

	version := ""
	if deps.Runner.CommandExists("filebeat") {
		if result, err := deps.Runner.Run(ctx, deps.Config.MediumTimeout(), "filebeat", "version"); err == nil {
			version = firstLine(result.Stdout)
		}
	}

	lines := []string{
		fmt.Sprintf("Service state: %s", state),
		fmt.Sprintf("Log forwarding enabled: %s", forwarding),
		fmt.Sprintf("Version: %s", version),
	}
	return strings.Join(lines, "\n"), nil
}

func outputEnabled(out *filebeatOutput) bool {
	if out == nil || len(out.Hosts) == 0 {
		return false
	}
	// enabled defaults to true when the block is present
	return out.Enabled == nil || *out.Enabled
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
