// Package report renders predictions for humans.
package report

import (
	"fmt"
	"sort"
	"strings"

	"persona-classifier/internal/predictor"
)

// Format sorts results by probability, highest first, and renders one
// "<name>: <pct>%" line per result. Lines are joined by a newline with no
// trailing newline. results is not modified.
func Format(results []predictor.Result, names []string) string {
	sorted := append([]predictor.Result(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Prob > sorted[j].Prob
	})

	lines := make([]string, len(sorted))
	for i, r := range sorted {
		lines[i] = fmt.Sprintf("%s: %.2f%%", name(names, r.Index), r.Prob*100)
	}
	return strings.Join(lines, "\n")
}

func name(names []string, index int) string {
	if index >= 0 && index < len(names) {
		return names[index]
	}
	return fmt.Sprintf("class_%d", index)
}
