package bigramcount

// Entry is one distinct bigram and its occurrence count.
type Entry struct {
	Bigram string
	Count  int
}

// Histogram counts bigrams while remembering the order in which each
// distinct bigram was first seen. Map iteration order is indeterminate,
// so the key sequence is tracked in a side slice.
type Histogram struct {
	counts map[string]int
	order  []string
	total  int
}

func NewHistogram() *Histogram {
	return &Histogram{
		counts: make(map[string]int),
	}
}

// Add records one occurrence of the pair (first, second).
func (h *Histogram) Add(first, second string) {
	key := first + " " + second
	if _, ok := h.counts[key]; !ok {
		h.order = append(h.order, key)
	}
	h.counts[key]++
	h.total++
}

// Entries returns the distinct bigrams in first-seen order.
func (h *Histogram) Entries() []Entry {
	entries := make([]Entry, len(h.order))
	for i, key := range h.order {
		entries[i] = Entry{Bigram: key, Count: h.counts[key]}
	}
	return entries
}

// Count returns the occurrence count of a bigram, or zero if the pair
// never appeared.
func (h *Histogram) Count(first, second string) int {
	return h.counts[first+" "+second]
}

// Total is the number of pair occurrences recorded, i.e. the sum over
// all entry counts.
func (h *Histogram) Total() int {
	return h.total
}

// Len is the number of distinct bigrams.
func (h *Histogram) Len() int {
	return len(h.counts)
}

// Accumulate slides a two token window over the sequence. Zero or one
// tokens produce an empty histogram.
func Accumulate(tokens []string) *Histogram {
	histogram := NewHistogram()
	for i := 0; i+1 < len(tokens); i++ {
		histogram.Add(tokens[i], tokens[i+1])
	}
	return histogram
}
