package presenter

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/history"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

const (
	statusDraw = "Draw"

	descriptionStart = "Go to game start"
)

// NewGameView - renders the current state of a store into a client view.
func NewGameView(id string, store *history.Store) entity.GameView {
	board := store.CurrentBoard()
	verdict := store.Verdict()

	view := entity.GameView{
		ID:        id,
		Winner:    string(verdict.Winner),
		Line:      verdict.Line,
		Status:    Status(store),
		Step:      store.Cursor(),
		Ascending: store.Ascending(),
	}

	for i, mark := range board {
		view.Board[i] = string(mark)
	}

	if !verdict.HasWinner() && !tictactoe.IsBoardFull(board) {
		view.Next = string(store.NextMark())
	}

	for _, descriptor := range store.Descriptors() {
		view.Moves = append(view.Moves, entity.MoveView{
			Step:        descriptor.Step,
			Row:         descriptor.Row,
			Col:         descriptor.Col,
			Description: Describe(descriptor),
			Selected:    descriptor.Step == store.Cursor(),
		})
	}

	return view
}

// Status - the one-line game status shown above the move list.
func Status(store *history.Store) string {
	board := store.CurrentBoard()

	if verdict := store.Verdict(); verdict.HasWinner() {
		return "Winner: " + string(verdict.Winner)
	}

	if tictactoe.IsBoardFull(board) {
		return statusDraw
	}

	return "Next player: " + string(store.NextMark())
}

func Describe(descriptor entity.MoveDescriptor) string {
	if descriptor.Step == 0 || descriptor.Row == nil || descriptor.Col == nil {
		return descriptionStart
	}

	return fmt.Sprintf("Go to move #%d (col: %d, row: %d)", descriptor.Step, *descriptor.Col, *descriptor.Row)
}
