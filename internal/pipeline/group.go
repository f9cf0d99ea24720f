package pipeline

import (
	"sort"
	"time"
)

// DateResolver maps a file path to its capture date. The pipeline treats
// resolution as total: the production resolver falls back to the file's
// modification time and only ever returns the zero time for files it
// cannot stat at all.
type DateResolver func(path string) time.Time

// GroupByDate buckets files by resolved capture date. Each file is
// resolved exactly once; bucket contents keep the caller's (sorted)
// order.
func GroupByDate(files []string, resolve DateResolver) map[time.Time][]string {
	groups := make(map[time.Time][]string)
	for _, f := range files {
		d := resolve(f)
		groups[d] = append(groups[d], f)
	}
	return groups
}

// SortedDates returns the bucket keys in ascending chronological order.
func SortedDates(groups map[time.Time][]string) []time.Time {
	dates := make([]time.Time, 0, len(groups))
	for d := range groups {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
