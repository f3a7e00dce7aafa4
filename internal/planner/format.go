package planner

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

// FormatItem renders an item's display text from its structured fields.
func FormatItem(it domain.Item) string {
	var b strings.Builder
	switch {
	case it.IsRepeat() && it.TimeBased:
		fmt.Fprintf(&b, "%d x %s min %s", it.Reps, formatMinutes(it.EffortMin), it.Instruction)
		if it.RestNote != "" {
			fmt.Fprintf(&b, ", %s between", it.RestNote)
		}
	case it.IsRepeat():
		fmt.Fprintf(&b, "%dx%dm %s", it.Reps, it.RepDistanceM, it.Instruction)
		if it.RestSec > 0 {
			fmt.Fprintf(&b, " @ %ds rest", it.RestSec)
		}
	case it.DistanceM > 0:
		fmt.Fprintf(&b, "%dm %s", it.DistanceM, it.Instruction)
	default:
		b.WriteString(it.Instruction)
	}
	if it.Cue != "" {
		fmt.Fprintf(&b, " (%s)", it.Cue)
	}
	return b.String()
}

// renderText refreshes every item's Text in place.
func renderText(blocks []domain.Block) {
	for bi := range blocks {
		for ii := range blocks[bi].Items {
			blocks[bi].Items[ii].Text = FormatItem(blocks[bi].Items[ii])
		}
	}
}

func formatMinutes(v float64) string {
	return strconv.FormatFloat(round1(v), 'f', -1, 64)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func roundTo(v float64, step int) int {
	return int(math.Round(v/float64(step))) * step
}
