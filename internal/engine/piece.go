package engine

import "github.com/lgbarn/chessrules/internal/chess"

// canPieceReach reports whether a knight, bishop, rook, queen or king of
// kind could move from one square to another by geometry and path clearance
// alone. Castling, pawns and self-check are handled elsewhere.
func canPieceReach(board *chess.Board, kind chess.Kind, from, to chess.Square) bool {
	if from == to {
		return false
	}
	rankDiff := abs(to.Rank - from.Rank)
	fileDiff := abs(to.File - from.File)

	switch kind {
	case chess.Knight:
		return (rankDiff == 2 && fileDiff == 1) || (rankDiff == 1 && fileDiff == 2)

	case chess.Bishop:
		return rankDiff == fileDiff && IsPathClear(board, from, to)

	case chess.Rook:
		return (rankDiff == 0 || fileDiff == 0) && IsPathClear(board, from, to)

	case chess.Queen:
		if rankDiff == fileDiff || rankDiff == 0 || fileDiff == 0 {
			return IsPathClear(board, from, to)
		}
		return false

	case chess.King:
		return rankDiff <= 1 && fileDiff <= 1
	}

	return false
}
