package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dstergiou/pci-host-report/internal/audit"
	"github.com/dstergiou/pci-host-report/internal/config"
	"github.com/dstergiou/pci-host-report/internal/log"
	"github.com/dstergiou/pci-host-report/internal/report"
	"github.com/dstergiou/pci-host-report/internal/useraccess"
)

var version = "1.0.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			fmt.Printf("pci-report version %s\n", version)
			os.Exit(0)

		case "help", "--help", "-h":
			printHelp()
			os.Exit(0)

		case "user-access":
			os.Exit(runUserAccess())

		case "run":
			// fall through to the default run

		default:
			fmt.Printf("Unknown command: %s\n", os.Args[1])
			printHelp()
			os.Exit(1)
		}
	}

	os.Exit(run())
}

func run() int {
	// The report lands in the real user's home, so the run must come in
	// through sudo, not a root login.
	if os.Geteuid() != 0 {
		log.Error("pci-report must be run with sudo")
		return 1
	}

	home, err := report.InvokingUserHome()
	if err != nil {
		log.ErrorWithErr(err, "cannot resolve invoking user")
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		log.ErrorWithErr(err, "cannot load configuration")
		return 1
	}

	hostname, err := os.Hostname()
	if err != nil {
		log.Warnf("cannot resolve host name: %v", err)
		hostname = "unknown"
	}

	now := time.Now()
	runID := uuid.New().String()

	dir, name := report.Location(home, cfg.ReportDir, cfg.Site, hostname, now)
	rep, err := report.Create(dir, name)
	if err != nil {
		log.ErrorWithErr(err, "cannot create report destination")
		return 1
	}
	defer rep.Close()

	log.Infof("Starting report run %s for %s", runID, hostname)

	if err := rep.Preamble(runID, now, hostname, cfg.Site); err != nil {
		log.ErrorWithErr(err, "cannot write report preamble")
		return 1
	}

	orchestrator := audit.NewOrchestrator(cfg)
	if err := orchestrator.Run(context.Background(), rep); err != nil {
		log.ErrorWithErr(err, "report run aborted")
		return 1
	}

	log.Infof("Report written to %s", rep.Path)
	return 0
}

// runUserAccess converts a vendor user-list text export into the
// Name/Email/Role CSV used for the quarterly access review.
func runUserAccess() int {
	if len(os.Args) < 3 {
		fmt.Println("Usage: pci-report user-access <text export> [output.csv]")
		return 1
	}

	inputPath := os.Args[2]
	outputPath := "user_access.csv"
	if len(os.Args) > 3 {
		outputPath = os.Args[3]
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.ErrorWithErr(err, "cannot read export")
		return 1
	}

	users := useraccess.Extract(string(data))
	if len(users) == 0 {
		log.Warnf("no active users found in %s", inputPath)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		log.ErrorWithErr(err, "cannot create output file")
		return 1
	}
	defer out.Close()

	if err := useraccess.WriteCSV(out, users); err != nil {
		log.ErrorWithErr(err, "cannot write csv")
		return 1
	}

	log.Infof("Wrote %d users to %s", len(users), outputPath)
	return 0
}

func printHelp() {
	fmt.Println(`pci-report - PCI DSS evidence collector for a single host

Usage:
  sudo pci-report [command]

Commands:
  run                          Collect all fourteen fact categories (default)
  user-access <export> [csv]   Extract a Name/Email/Role CSV from a vendor
                               user-list text export for access review
  version                      Print version
  help                         Show this help

The report is written to ~/PCI_DSS_REPORT/<timestamp>-<site>-<hostname>-report.txt
for the invoking (pre-sudo) user. Site label and attestation texts can be set
in ~/.pci-report.yaml or /etc/pci-report/config.yaml.`)
}
