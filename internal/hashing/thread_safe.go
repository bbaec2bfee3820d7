package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules/internal/chess"
)

// ThreadSafeDuplicateDetector is a DuplicateDetector shared by replay
// workers. Signatures are computed outside the lock; only the table is
// guarded.
type ThreadSafeDuplicateDetector struct {
	mu       sync.RWMutex
	detector *DuplicateDetector
}

// NewThreadSafeDuplicateDetector creates a detector safe for concurrent use.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(exactMatch bool, maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{detector: NewDuplicateDetector(exactMatch, maxCapacity)}
}

// CheckAndAdd reports whether the position was already recorded, recording
// it if not. The check and the insert happen under one lock, so of two
// workers finishing on the same position exactly one sees a duplicate.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(state *chess.GameState) bool {
	if state == nil {
		return false
	}
	sig := Signature(state)

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.add(sig)
}

// Seen reports whether the position was recorded, without recording it.
func (d *ThreadSafeDuplicateDetector) Seen(state *chess.GameState) bool {
	if state == nil {
		return false
	}
	sig := Signature(state)

	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.contains(sig)
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of stored positions.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// IsFull reports whether the capacity limit was reached.
func (d *ThreadSafeDuplicateDetector) IsFull() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.IsFull()
}

// Reset forgets every recorded position.
func (d *ThreadSafeDuplicateDetector) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detector.Reset()
}
