package game

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatBiomass renders a biomass amount for the HUD: grouped digits below a
// million, SI prefixes above.
func FormatBiomass(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return "?"
	case math.Abs(v) < 1e6:
		return humanize.CommafWithDigits(v, 1)
	default:
		return humanize.SIWithDigits(v, 2, "")
	}
}

// FormatRate renders a per-second rate.
func FormatRate(v float64) string {
	return FormatBiomass(v) + "/s"
}

// FormatDuration renders simulated seconds as m:ss or h:mm:ss.
func FormatDuration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		seconds = 0
	}
	total := int64(seconds)
	h, m, s := total/3600, total/60%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
