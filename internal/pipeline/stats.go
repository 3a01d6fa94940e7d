package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total      int
	Current    int
	Copied     int
	Moved      int
	Converted  int
	Failed     int
	TotalBytes int64
}

// Placed returns the number of files that reached the destination tree.
func (s *RunStats) Placed() int {
	return s.Copied + s.Moved + s.Converted
}
