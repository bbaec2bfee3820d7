package hashing

import "github.com/lgbarn/chessrules/internal/chess"

// Zobrist keys, indexed by colour, kind and square (rank*8+file).
var (
	pieceKeys    [2][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	sideKey      uint64
	castlingKeys [2][2]uint64 // colour, kingSide
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	// Fixed seed so hashes are stable between runs.
	seed := uint64(0x9E3779B97F4A7C15)
	next := func() uint64 {
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for s := range pieceKeys[c][k] {
				pieceKeys[c][k][s] = next()
			}
		}
	}
	sideKey = next()
	for c := range castlingKeys {
		castlingKeys[c][0] = next()
		castlingKeys[c][1] = next()
	}
	for f := range epFileKeys {
		epFileKeys[f] = next()
	}
}

// GenerateZobristHash returns the Zobrist hash of a position: piece
// placement, side to move, castling rights and en passant file. Move
// counters and the move log are not part of the hash.
func GenerateZobristHash(state *chess.GameState) uint64 {
	var hash uint64
	for _, sq := range chess.AllSquares() {
		piece := state.Board.Get(sq)
		if piece.IsEmpty() {
			continue
		}
		hash ^= pieceKeys[piece.Colour][piece.Kind][sq.Rank*chess.BoardSize+sq.File]
	}
	if state.ToMove == chess.White {
		hash ^= sideKey
	}
	for _, colour := range []chess.Colour{chess.Black, chess.White} {
		if state.Castling.Has(colour, true) {
			hash ^= castlingKeys[colour][1]
		}
		if state.Castling.Has(colour, false) {
			hash ^= castlingKeys[colour][0]
		}
	}
	if state.EnPassant {
		hash ^= epFileKeys[state.EPSquare.File]
	}
	return hash
}

// WeakHash is a cheap placement-only checksum used to confirm Zobrist
// matches.
func WeakHash(board *chess.Board) uint32 {
	var sum uint32
	for _, sq := range chess.AllSquares() {
		piece := board.Get(sq)
		if piece.IsEmpty() {
			continue
		}
		code := uint32(piece.Kind) + uint32(piece.Colour)*uint32(chess.NumKinds)
		sum += code * uint32(sq.Rank*chess.BoardSize+sq.File+1)
	}
	return sum
}
