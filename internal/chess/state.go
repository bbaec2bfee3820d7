package chess

// SideRights records which castling options a colour still holds.
// A right is lost for good when the king moves, or when the rook on that
// side leaves or is captured on its original square.
type SideRights struct {
	KingSide  bool
	QueenSide bool
}

// CastlingRights holds the rights of both colours, indexed by Colour.
type CastlingRights [2]SideRights

// AllCastlingRights returns rights with every option enabled.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		Black: {KingSide: true, QueenSide: true},
		White: {KingSide: true, QueenSide: true},
	}
}

// Has returns the right for colour on the given side.
func (c CastlingRights) Has(colour Colour, kingSide bool) bool {
	if kingSide {
		return c[colour].KingSide
	}
	return c[colour].QueenSide
}

// GameState is everything the engine needs to know about a game in progress.
type GameState struct {
	// The board squares.
	Board Board

	// Who has the next move.
	ToMove Colour

	// Is an en passant capture possible? If so EPSquare is the square
	// passed over by the pawn that just made a double advance.
	EnPassant bool
	EPSquare  Square

	// Remaining castling rights.
	Castling CastlingRights

	// The current full move number, starting at 1 and incremented after Black moves.
	MoveNumber uint

	// Status of the side to move, and whether the game has ended.
	Status   Status
	GameOver bool

	// Moves played so far, oldest first.
	History []MoveRecord
}

// NewGameState creates a state with the standard starting position.
func NewGameState() *GameState {
	s := &GameState{
		ToMove:     White,
		Castling:   AllCastlingRights(),
		MoveNumber: 1,
		Status:     Ongoing,
	}
	s.Board.SetupInitialPosition()
	return s
}

// ClearEnPassant forgets any en passant target.
func (s *GameState) ClearEnPassant() {
	s.EnPassant = false
	s.EPSquare = Square{}
}

// SetEnPassant records the square a capturing pawn may land on next move.
func (s *GameState) SetEnPassant(sq Square) {
	s.EnPassant = true
	s.EPSquare = sq
}

// IsEnPassantTarget returns true if sq is the current en passant target.
func (s *GameState) IsEnPassantTarget(sq Square) bool {
	return s.EnPassant && s.EPSquare == sq
}

// StateSnapshot captures all mutable position state for save/restore
// operations. The move log is not part of a snapshot.
type StateSnapshot struct {
	Board      Board
	ToMove     Colour
	EnPassant  bool
	EPSquare   Square
	Castling   CastlingRights
	MoveNumber uint
	Status     Status
	GameOver   bool
}

// SaveState captures the current position for later restoration.
// Board and CastlingRights are arrays, so the copy is deep.
func (s *GameState) SaveState() StateSnapshot {
	return StateSnapshot{
		Board:      s.Board,
		ToMove:     s.ToMove,
		EnPassant:  s.EnPassant,
		EPSquare:   s.EPSquare,
		Castling:   s.Castling,
		MoveNumber: s.MoveNumber,
		Status:     s.Status,
		GameOver:   s.GameOver,
	}
}

// RestoreState restores the position to a previously saved state.
func (s *GameState) RestoreState(snap StateSnapshot) {
	s.Board = snap.Board
	s.ToMove = snap.ToMove
	s.EnPassant = snap.EnPassant
	s.EPSquare = snap.EPSquare
	s.Castling = snap.Castling
	s.MoveNumber = snap.MoveNumber
	s.Status = snap.Status
	s.GameOver = snap.GameOver
}

// Clone returns a deep copy of the state, including the move log.
func (s *GameState) Clone() *GameState {
	c := &GameState{}
	*c = *s
	c.History = append([]MoveRecord(nil), s.History...)
	return c
}
