// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package sink holds consumers of the match stream.
package sink

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AccelByte/extend-tiered-matchmaker/pkg/constants"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/envelope"
	"github.com/AccelByte/extend-tiered-matchmaker/pkg/models"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	premiumStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D4AF37"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
)

// ConsolePrinter writes a human readable line per match, grouped under a header per cycle.
type ConsolePrinter struct {
	out       io.Writer
	lastCycle int
}

func NewConsolePrinter(out io.Writer) *ConsolePrinter {
	return &ConsolePrinter{out: out}
}

// PrintRequests lists the requests read from the source before matching starts.
func (p *ConsolePrinter) PrintRequests(requests []models.Request) {
	fmt.Fprintln(p.out, headerStyle.Render("--- Requests ---"))
	for _, request := range requests {
		fmt.Fprintf(p.out, "  %s\n", request)
	}
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, headerStyle.Render("--- Matches ---"))
}

func (p *ConsolePrinter) OnMatch(scope *envelope.Scope, match models.Match) {
	if match.Cycle != p.lastCycle {
		if p.lastCycle != 0 {
			fmt.Fprintln(p.out)
		}
		fmt.Fprintln(p.out, headerStyle.Render(fmt.Sprintf("Cycle %d:", match.Cycle)))
		p.lastCycle = match.Cycle
	}
	fmt.Fprintf(p.out, "  %s\n", FormatMatch(match))
}

// Finish writes the run summary.
func (p *ConsolePrinter) Finish(summary models.Summary) {
	fmt.Fprintln(p.out)
	if summary.Cancelled {
		fmt.Fprintln(p.out, mutedStyle.Render("(matchmaking cancelled)"))
	}
	if summary.Matches == 0 {
		fmt.Fprintln(p.out, mutedStyle.Render("(no matches could be created)"))
	}
	fmt.Fprintf(p.out, "%d matches in %d cycles, %d rejected requests\n", summary.Matches, summary.Cycles, summary.Rejected)
	if len(summary.Stranded) > 0 {
		fmt.Fprintf(p.out, "Unmatched: %s\n", strings.Join(summary.StrandedIDs(), ", "))
	}
	fmt.Fprintln(p.out, headerStyle.Render("--- Done ---"))
}

// FormatMatch renders a match as `MATCH - PREMIUM - LONG (30'): p1(80) vs p2(60)`.
func FormatMatch(match models.Match) string {
	tier := "NON-PREMIUM"
	if match.Premium {
		tier = premiumStyle.Render("PREMIUM")
	}
	duration := constants.ShortMatchDurationLabel
	if match.MatchType == models.MatchTypeLong {
		duration = constants.LongMatchDurationLabel
	}
	return fmt.Sprintf("MATCH - %s - %s (%s): %s(%d) vs %s(%d)",
		tier, match.MatchType, duration,
		match.PlayerA.PlayerID, match.PlayerA.SkillLevel,
		match.PlayerB.PlayerID, match.PlayerB.SkillLevel)
}
