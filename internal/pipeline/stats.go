package pipeline

// RunStats tracks aggregate counters across one task.
type RunStats struct {
	Total   int // Eligible files discovered.
	Renamed int // Physical renames executed.
	Planned int // Dry-run transformations printed.
	Skipped int // Files already present in the rename log.
	Failed  int // Individual rename failures.
}
