package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/badele/ansirun/internal/importer/ansi"
	"github.com/badele/ansirun/internal/types"
)

type optimizedStats struct {
	Fragments int
	Updates   int
	Bytes     int
}

func displayStats(w io.Writer, stats types.TokenStats, optimized optimizedStats) {
	type typeCount struct {
		Type  types.TokenType
		Count int
	}

	var typeCounts []typeCount

	fmt.Fprint(w, "=== Token Statistics ===\n\n")
	fmt.Fprintf(w, "  File size: %d bytes\n", stats.FileSize)
	fmt.Fprintf(w, "  Total tokens: %d\n", stats.TotalTokens)
	fmt.Fprintf(w, "  Text bytes: %d\n", stats.TextBytes)
	fmt.Fprintf(w, "  Control bytes: %d\n", stats.ControlBytes)

	fmt.Fprintln(w, "\n--- Tokens by Type")

	for t, count := range stats.TokensByType {
		typeCounts = append(typeCounts, typeCount{t, count})
	}
	sort.Slice(typeCounts, func(i, j int) bool {
		if typeCounts[i].Count != typeCounts[j].Count {
			return typeCounts[i].Count > typeCounts[j].Count
		}
		return typeCounts[i].Type < typeCounts[j].Type
	})

	for _, tc := range typeCounts {
		percentage := float64(tc.Count) / float64(stats.TotalTokens) * 100
		fmt.Fprintf(w, "  %-30s:  %5d (%.1f%%)\n", tc.Type.String(), tc.Count, percentage)
	}

	if len(stats.SGRCodes) > 0 {
		fmt.Fprintln(w, "\n--- Most Used SGR Codes")
		displayTopN(w, stats.SGRCodes, 10, sgrName)
	}

	if len(stats.OSCCommands) > 0 {
		fmt.Fprintln(w, "\n--- OSC Commands")
		displayTopN(w, stats.OSCCommands, 10, nil)
	}

	fmt.Fprintln(w, "\n--- Optimized")
	fmt.Fprintf(w, "  Fragments: %d\n", optimized.Fragments)
	fmt.Fprintf(w, "  Style updates: %d\n", optimized.Updates)
	fmt.Fprintf(w, "  Size: %d bytes\n", optimized.Bytes)
	if stats.FileSize > 0 {
		saved := stats.FileSize - int64(optimized.Bytes)
		fmt.Fprintf(w, "  Saved: %d bytes (%.1f%%)\n", saved, float64(saved)/float64(stats.FileSize)*100)
	}
}

func sgrName(key string) string {
	if code, err := strconv.Atoi(key); err == nil {
		if name, ok := ansi.SGRCodes[code]; ok {
			return name
		}
	}
	return ""
}

func displayTopN(w io.Writer, data map[string]int, n int, describe func(string) string) {
	type entry struct {
		Key   string
		Count int
	}

	var entries []entry
	for k, v := range data {
		entries = append(entries, entry{k, v})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})

	for i, e := range entries {
		if i >= n {
			break
		}

		displayName := e.Key
		if describe != nil {
			if name := describe(e.Key); name != "" {
				displayName = fmt.Sprintf("%s (%s)", e.Key, name)
			}
		}

		fmt.Fprintf(w, "  %-30s: %5d\n", displayName, e.Count)
	}
}
