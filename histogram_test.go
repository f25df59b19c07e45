package bigramcount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistogram_Add(t *testing.T) {
	histogram := NewHistogram()
	histogram.Add("the", "quick")
	histogram.Add("quick", "brown")
	histogram.Add("the", "quick")

	assert.Equal(t, 2, histogram.Count("the", "quick"))
	assert.Equal(t, 1, histogram.Count("quick", "brown"))
	assert.Equal(t, 0, histogram.Count("brown", "the"))
	assert.Equal(t, 3, histogram.Total())
	assert.Equal(t, 2, histogram.Len())
}

func TestHistogram_EntriesKeepFirstSeenOrder(t *testing.T) {
	histogram := NewHistogram()
	histogram.Add("zebra", "apple")
	histogram.Add("apple", "mango")
	histogram.Add("zebra", "apple")
	histogram.Add("apple", "banana")

	assert.Equal(t, []Entry{
		{Bigram: "zebra apple", Count: 2},
		{Bigram: "apple mango", Count: 1},
		{Bigram: "apple banana", Count: 1},
	}, histogram.Entries())
}

func TestAccumulate(t *testing.T) {
	tokens := []string{"the", "quick", "brown", "fox", "and", "the", "quick", "blue", "hare"}
	histogram := Accumulate(tokens)

	assert.Equal(t, []Entry{
		{Bigram: "the quick", Count: 2},
		{Bigram: "quick brown", Count: 1},
		{Bigram: "brown fox", Count: 1},
		{Bigram: "fox and", Count: 1},
		{Bigram: "and the", Count: 1},
		{Bigram: "quick blue", Count: 1},
		{Bigram: "blue hare", Count: 1},
	}, histogram.Entries())
	assert.Equal(t, len(tokens)-1, histogram.Total())
	assert.Equal(t, 7, histogram.Len())
}

func TestAccumulate_Empty(t *testing.T) {
	histogram := Accumulate(nil)
	assert.Equal(t, 0, histogram.Total())
	assert.Equal(t, 0, histogram.Len())
	assert.Empty(t, histogram.Entries())
}

func TestAccumulate_SingleToken(t *testing.T) {
	histogram := Accumulate([]string{"lonely"})
	assert.Equal(t, 0, histogram.Total())
	assert.Equal(t, 0, histogram.Len())
}

func TestAccumulate_RepeatedToken(t *testing.T) {
	histogram := Accumulate([]string{"the", "the", "the"})
	assert.Equal(t, []Entry{
		{Bigram: "the the", Count: 2},
	}, histogram.Entries())
	assert.Equal(t, 2, histogram.Total())
}

func TestHistogram_TotalMatchesEntrySum(t *testing.T) {
	tokens := []string{"a", "b", "a", "b", "c", "a", "b"}
	histogram := Accumulate(tokens)

	sum := 0
	seen := make(map[string]bool)
	for _, entry := range histogram.Entries() {
		assert.False(t, seen[entry.Bigram], "duplicate entry %s", entry.Bigram)
		seen[entry.Bigram] = true
		sum += entry.Count
	}
	assert.Equal(t, histogram.Total(), sum)
	assert.Equal(t, histogram.Len(), len(seen))
}
