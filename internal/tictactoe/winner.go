package tictactoe

import "github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"

// CalculateWinner - returns the owner of the first completed triple in WinCombos order.
func CalculateWinner(board entity.Board) entity.Verdict {
	for _, combo := range entity.WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.Verdict{
				Winner: a,
				Line:   []int{combo[0], combo[1], combo[2]},
			}
		}
	}

	return entity.Verdict{Winner: entity.EmptyCell}
}

// IsBoardFull - reports whether every cell is taken.
func IsBoardFull(board entity.Board) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}
