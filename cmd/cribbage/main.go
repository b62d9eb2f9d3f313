package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"cribbage-server/internal/config"
	"cribbage-server/internal/util"
	"cribbage-server/pkg/cribbage"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var format = flag.String("format", "", "output format: auto, table, json or yaml (defaults to output.format from the configuration)")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-format auto|table|json|yaml] SHARED CARD CARD CARD CARD\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Instance()
	if err := util.SetupLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.WithError(err).Fatal("could not set up logger")
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	hand, err := cribbage.NewHand(flag.Arg(0), flag.Args()[1:]...)
	if err != nil {
		logrus.WithError(err).Fatal("could not create hand")
	}

	outputFormat := *format
	if outputFormat == "" {
		outputFormat = cfg.Output.Format
	}

	if err := render(os.Stdout, hand, resolveFormat(outputFormat, term.IsTerminal(int(os.Stdout.Fd())))); err != nil {
		logrus.WithError(err).Fatal("could not render scores")
	}
}

// resolveFormat picks the table for terminals and JSON for everything else when format is auto
func resolveFormat(format string, isTerminal bool) string {
	format = strings.ToLower(format)
	if format == "" || format == "auto" {
		if isTerminal {
			return "table"
		}

		return "json"
	}

	return format
}
