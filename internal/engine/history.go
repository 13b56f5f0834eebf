package engine

// HistoryCap is how many entries every capped progress sequence keeps.
const HistoryCap = 10

// appendCapped pushes v and slices to the last HistoryCap entries, oldest
// dropped first. A sliding window, not a ring buffer: order is preserved.
func appendCapped[T any](seq []T, v T) []T {
	seq = append(seq, v)
	if len(seq) > HistoryCap {
		seq = seq[len(seq)-HistoryCap:]
	}
	return seq
}
