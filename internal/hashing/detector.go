// Package hashing provides position hashing and duplicate detection for
// replayed games.
package hashing

import (
	"github.com/lgbarn/chessrules/internal/chess"
)

// DuplicateDetector tracks seen final positions.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same number of plies
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity caps stored signatures (0 = unlimited)
	maxCapacity int
	entries     int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Plies is the number of half-moves played
	Plies int
	// WeakHash is a placement checksum for confirmation
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of a game's current position.
func Signature(state *chess.GameState) GameSignature {
	return GameSignature{
		Hash:     GenerateZobristHash(state),
		Plies:    len(state.History),
		WeakHash: WeakHash(&state.Board),
	}
}

// CheckAndAdd reports whether the position of state was seen before and,
// if not, remembers it. Once the detector is full, new positions are
// checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(state *chess.GameState) bool {
	if state == nil {
		return false
	}
	return d.add(Signature(state))
}

func (d *DuplicateDetector) add(sig GameSignature) bool {
	if d.contains(sig) {
		d.duplicateCount++
		return true
	}
	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.entries++
	}
	return false
}

func (d *DuplicateDetector) contains(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			return true
		}
	}
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of stored positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.entries
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.entries >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.entries = 0
}
