package main

import (
	"fmt"
	"os"

	"github.com/annefou/FIP-Analyzer/internal/read"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "fip-analyzer",
		Usage: "read and report FAIR Implementation Profiles",
		Description: `Reads a FAIR Implementation Profile (FIP) and prints a report of the
FAIR-enabling resources it declares, grouped by FAIR principle.

Supported input files:
   .trig / .nq   FIP nanopublication (TriG or N-Quads)
   .json         FIP Wizard project export

Examples:
   fip-analyzer read profile.trig
   fip-analyzer read profile.trig --fetch
   fip-analyzer read profile.trig --fetch --debug
   fip-analyzer read export.json --enrich`,
		Commands: []*cli.Command{
			{
				Name:      "read",
				Usage:     "Read a FIP file and print its report",
				ArgsUsage: "<file>",
				Action:    read.ReadAction,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "fetch",
						Usage: "Fetch the declaration index and declarations from the nanopub network",
					},
					&cli.BoolFlag{
						Name:  "local",
						Usage: "Show only locally available header fields, never touch the network",
					},
					&cli.BoolFlag{
						Name:  "debug",
						Usage: "Dump index content and parse details while fetching",
					},
					&cli.BoolFlag{
						Name:  "enrich",
						Usage: "Look up landing pages to improve resource labels and detect the profile language",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Suppress non-error log output",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML config file overriding mirrors, timeout and declaration cap",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
