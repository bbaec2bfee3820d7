package engine

import "github.com/lgbarn/chessrules/internal/chess"

// IsPathClear walks unit steps from just past from up to, but not including,
// to and reports whether every intermediate square is empty. The squares must
// share a rank, a file or a diagonal.
func IsPathClear(board *chess.Board, from, to chess.Square) bool {
	rankDir := sign(to.Rank - from.Rank)
	fileDir := sign(to.File - from.File)

	sq := from.Offset(rankDir, fileDir)
	for sq != to {
		if !sq.Valid() {
			return false
		}
		if !board.IsEmpty(sq) {
			return false
		}
		sq = sq.Offset(rankDir, fileDir)
	}

	return true
}
