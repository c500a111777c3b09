package mocks

import (
	"github.com/mcoot/game2048/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// IntnBounds records the n passed to every Intn call, in order
	IntnBounds []int

	// StringResults is a queue of results to return from String
	StringResults []string
	stringIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining.
// Queued results are clamped into [0, n) so a stale queue cannot index out of range.
func (r *MockRandom) Intn(n int) int {
	r.IntnBounds = append(r.IntnBounds, n)
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	if n <= 0 {
		return 0
	}
	if result >= n {
		return n - 1
	}
	if result < 0 {
		return 0
	}
	return result
}

// String returns the next queued result, or empty string if none remaining
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex >= len(r.StringResults) {
		return ""
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}

// QueueSpawn queues the two draws a single tile spawn makes:
// the value roll (four=true yields a 4 at the default 10% chance) and the empty-cell index.
func (r *MockRandom) QueueSpawn(four bool, cellIndex int) {
	roll := 0
	if four {
		roll = 99
	}
	r.QueueIntn(roll, cellIndex)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.IntnBounds = nil
	r.StringResults = nil
	r.stringIndex = 0
}
