package chess

// Board is the 8×8 grid of optional pieces, indexed [rank][file] with the
// same zero-based convention as Square. It is a value: assigning a Board
// copies every cell.
type Board [BoardSize][BoardSize]Piece

// Get returns the piece on sq, or NoPiece if sq is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b[sq.Rank][sq.File]
}

// Set places a piece on sq. Setting an off-board square is a no-op.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b[sq.Rank][sq.File] = piece
	}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Set(sq, NoPiece)
}

// Move relocates whatever stands on from to to, returning what was on to.
func (b *Board) Move(from, to Square) Piece {
	captured := b.Get(to)
	b.Set(to, b.Get(from))
	b.Clear(from)
	return captured
}

// IsEmpty returns true if sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// Find returns the first square holding piece, scanning from a8 to h1.
func (b *Board) Find(piece Piece) (Square, bool) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b[rank][file] == piece {
				return Square{Rank: rank, File: file}, true
			}
		}
	}
	return Square{}, false
}

// Count returns how many squares hold piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if b[rank][file] == piece {
				n++
			}
		}
	}
	return n
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b[HomeRank(White)][file] = W(backRank[file])
		b[PawnStartRank(White)][file] = W(Pawn)
		b[PawnStartRank(Black)][file] = B(Pawn)
		b[HomeRank(Black)][file] = B(backRank[file])
	}
}

// AllSquares returns every square from a8 to h1 in rank-major order.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			squares = append(squares, Square{Rank: rank, File: file})
		}
	}
	return squares
}
