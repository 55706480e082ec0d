package pipeline

// RunStats aggregates per-outcome counts and byte totals across one sweep.
type RunStats struct {
	RunID    string
	PlanMode bool

	Total            int // candidates selected
	Processed        int // candidates that reached a terminal state
	Compressed       int
	SkippedTooLarge  int
	Failed           int
	AlreadyProcessed int

	TotalOriginalBytes   int64
	TotalCompressedBytes int64 // across compressed candidates only
	CompressedOriginal   int64 // original bytes of compressed candidates
}

// OverallRatio returns total compressed bytes as a percentage of the
// original bytes of the candidates that were compressed, or 0 when nothing
// was compressed.
func (s RunStats) OverallRatio() float64 {
	if s.CompressedOriginal == 0 {
		return 0
	}
	return float64(s.TotalCompressedBytes) / float64(s.CompressedOriginal) * 100
}

// SpaceSaved returns the aggregate byte difference between the compressed
// candidates' originals and their archives.
func (s RunStats) SpaceSaved() int64 {
	return s.CompressedOriginal - s.TotalCompressedBytes
}
