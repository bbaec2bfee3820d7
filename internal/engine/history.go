package engine

import "github.com/lgbarn/chessrules/internal/chess"

// History is the undo stack of position snapshots. A limit of 0 keeps every
// snapshot; otherwise the oldest snapshot is dropped once the limit is reached.
type History struct {
	snapshots []chess.StateSnapshot
	limit     int
}

// NewHistory creates an undo stack holding at most limit snapshots (0 = unbounded).
func NewHistory(limit int) *History {
	if limit < 0 {
		limit = 0
	}
	return &History{limit: limit}
}

// Snapshot pushes a copy of the current position. Call it once, before
// executing every accepted move.
func (h *History) Snapshot(state *chess.GameState) {
	if h.limit > 0 && len(h.snapshots) == h.limit {
		copy(h.snapshots, h.snapshots[1:])
		h.snapshots = h.snapshots[:len(h.snapshots)-1]
	}
	h.snapshots = append(h.snapshots, state.SaveState())
}

// Undo restores the most recent snapshot and removes the last move log
// entry. Returns false, changing nothing, if there is nothing to undo.
func (h *History) Undo(state *chess.GameState) bool {
	if len(h.snapshots) == 0 {
		return false
	}
	last := len(h.snapshots) - 1
	state.RestoreState(h.snapshots[last])
	h.snapshots = h.snapshots[:last]
	switch n := len(state.History); {
	case n == 1:
		state.History = nil
	case n > 1:
		state.History = state.History[:n-1]
	}
	return true
}

// Discard drops the most recent snapshot without restoring it, for a move
// that was snapshotted but then not executed.
func (h *History) Discard() {
	if n := len(h.snapshots); n > 0 {
		h.snapshots = h.snapshots[:n-1]
	}
}

// Depth returns the number of moves that can currently be undone.
func (h *History) Depth() int {
	return len(h.snapshots)
}

// Reset discards every snapshot.
func (h *History) Reset() {
	h.snapshots = nil
}
