package exporter

import (
	"fmt"
)

// formatProportion formats a proportion for CSV output with 4 decimal places
// so small category shares survive rounding.
func formatProportion(f float64) string {
	return fmt.Sprintf("%.4f", f)
}

// formatMean formats a mean value for CSV output with 3 decimal places
func formatMean(f float64) string {
	return fmt.Sprintf("%.3f", f)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
