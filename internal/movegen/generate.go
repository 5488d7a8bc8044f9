package movegen

import (
	"github.com/umbrachess/umbra/internal/position"
)

// Stage names the five move-generation stages, in the order the search
// requests them: promotions, captures, quiets, castling, losing_captures.
type Stage int

const (
	StagePromotions Stage = iota
	StageCaptures
	StageQuiets
	StageCastling
	StageLosingCaptures
)

// GeneratePromotions fills list with every promotion move (quiet and
// capture) for the side to move.
func GeneratePromotions(pos *position.Position, list *MoveList) {
	generatePawnPromotions(pos, pos.SideToMove(), list)
}

// GenerateCaptures fills list with every non-promotion capture,
// including en passant, for the side to move.
func GenerateCaptures(pos *position.Position, list *MoveList) {
	us := pos.SideToMove()
	generatePawnCaptures(pos, us, list)
	generatePieceCaptures(pos, us, list)
}

// GenerateQuiets fills list with every non-capture, non-promotion move
// for the side to move.
func GenerateQuiets(pos *position.Position, list *MoveList) {
	us := pos.SideToMove()
	generatePawnQuiets(pos, us, list)
	generatePieceQuiets(pos, us, list)
}

// GenerateCastling fills list with the side to move's legal castle moves.
func GenerateCastling(pos *position.Position, list *MoveList) {
	generateCastling(pos, pos.SideToMove(), list)
}

// GenerateAll fills list with every pseudo-legal move across all stages,
// for callers (perft, tests) that don't need staged ordering.
func GenerateAll(pos *position.Position, list *MoveList) {
	GeneratePromotions(pos, list)
	GenerateCaptures(pos, list)
	GenerateCastling(pos, list)
	GenerateQuiets(pos, list)
}
