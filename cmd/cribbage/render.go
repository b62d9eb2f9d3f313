package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cribbage-server/pkg/cribbage"
	"cribbage-server/pkg/deck"

	"github.com/pterm/pterm"
	"gopkg.in/yaml.v2"
)

type output struct {
	Shared          deck.Card  `json:"shared" yaml:"shared"`
	Hand            deck.Cards `json:"hand" yaml:"hand"`
	cribbage.Scores `yaml:",inline"`
}

func render(w io.Writer, hand *cribbage.Hand, format string) error {
	out := output{
		Shared: hand.Shared(),
		Hand:   hand.Cards(),
		Scores: hand.Scores(),
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		return yaml.NewEncoder(w).Encode(out)
	case "table":
		return renderTable(w, out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func renderTable(w io.Writer, out output) error {
	nobs := "-"
	nobsPoints := 0
	if out.Nobs != nil {
		nobs = out.Nobs.Symbol()
		nobsPoints = 1
	}

	runPoints := 0
	for _, run := range out.Runs {
		runPoints += len(run)
	}

	pairs := make([]deck.Cards, len(out.Pairs))
	for i := range out.Pairs {
		pairs[i] = out.Pairs[i][:]
	}

	data := pterm.TableData{
		{"", "Cards", "Points"},
		{"Pairs", symbols(pairs...), strconv.Itoa(2 * len(out.Pairs))},
		{"Runs", symbols(out.Runs...), strconv.Itoa(runPoints)},
		{"Flush", symbols(out.Flush), strconv.Itoa(len(out.Flush))},
		{"Fifteens", symbols(out.Fifteens...), strconv.Itoa(2 * len(out.Fifteens))},
		{"Nobs", nobs, strconv.Itoa(nobsPoints)},
		{pterm.Bold.Sprint("Score"), "", pterm.Bold.Sprint(out.Score)},
	}

	title := fmt.Sprintf("%s | %s", pterm.LightCyan(out.Shared.Symbol()), symbols(out.Hand))
	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, pterm.DefaultBox.WithTitle(title).WithTitleTopLeft().Sprint(table))
	return err
}

// symbols renders each set of cards with suit pips
func symbols(sets ...deck.Cards) string {
	if len(sets) == 0 || (len(sets) == 1 && len(sets[0]) == 0) {
		return "-"
	}

	lines := make([]string, len(sets))
	for i, set := range sets {
		s := make([]string, len(set))
		for j, card := range set {
			s[j] = card.Symbol()
		}

		lines[i] = strings.Join(s, " ")
	}

	return strings.Join(lines, " / ")
}
