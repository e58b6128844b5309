package bench

// History remembers the digests of recent generations so a host can tell a
// settled or oscillating grid from an active one.
type History struct {
	limit   int
	digests []string
}

// NewHistory keeps up to limit digests.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 1
	}
	return &History{limit: limit}
}

// Observe records digest and returns the period of the cycle it closes:
// 1 for a still grid, 2 for a blinker, and so on. It returns 0 when the digest
// matches none of the remembered generations.
func (h *History) Observe(digest string) (period int) {
	for i := len(h.digests) - 1; i >= 0; i-- {
		if h.digests[i] == digest {
			period = len(h.digests) - i
			break
		}
	}
	h.digests = append(h.digests, digest)
	if len(h.digests) > h.limit {
		h.digests = h.digests[1:]
	}
	return period
}
