package question

import (
	"path/filepath"
	"sort"
)

// SourceCount is the number of questions contributed by one file.
type SourceCount struct {
	File  string
	Count int
}

// Stats aggregates corpus counts by type and by source file.
type Stats struct {
	Total    int
	Choice   int
	Open     int
	BySource []SourceCount
}

// Collect computes statistics over a loaded corpus. Source files are
// reported by base name, sorted.
func Collect(questions []Question) Stats {
	stats := Stats{Total: len(questions)}
	bySource := map[string]int{}
	for _, item := range questions {
		if item.IsOpen() {
			stats.Open++
		} else {
			stats.Choice++
		}
		bySource[filepath.Base(item.SourceFile)]++
	}
	for file, count := range bySource {
		stats.BySource = append(stats.BySource, SourceCount{File: file, Count: count})
	}
	sort.Slice(stats.BySource, func(i, j int) bool {
		return stats.BySource[i].File < stats.BySource[j].File
	})
	return stats
}
