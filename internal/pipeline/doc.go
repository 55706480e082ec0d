// Package pipeline orchestrates a compression sweep: candidate selection,
// resume-ledger checks, a bounded worker pool running measure → decide →
// write → record per candidate, and aggregation of the results.
//
// Each candidate is owned by exactly one worker for its full lifecycle, so
// no two workers ever write into the same archive-output folder. Workers
// share nothing mutable; outcomes flow back over a channel and are merged
// into RunStats at a single point. A failure on one candidate never aborts
// the others, and cancellation only stops dispatch — in-flight archives
// either finalize atomically or clean up their staging file.
package pipeline
