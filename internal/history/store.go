package history

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
)

var ErrCorruptRecord = errors.New("corrupt game record")

// Store keeps the ordered board snapshots of one game and the cursor into them.
// Only snapshots and cursor are state; the side to move and the verdict are computed on read.
type Store struct {
	snapshots []entity.Snapshot
	cursor    int
	ascending bool
}

// Record is the minimal serializable form of a Store.
// Moves[k-1] is the cell played to produce snapshot k.
type Record struct {
	Moves     []int `json:"moves"`
	Cursor    int   `json:"cursor"`
	Ascending bool  `json:"ascending"`
}

func New() *Store {
	return &Store{
		snapshots: []entity.Snapshot{{}},
		cursor:    0,
		ascending: true,
	}
}

// ApplyMove - plays the side to move into cell. It returns false and leaves the store untouched
// when the cell is out of range or occupied, or the current snapshot is already won.
func (that *Store) ApplyMove(cell int) bool {
	if !entity.IsValidCell(cell) {
		return false
	}

	current := that.snapshots[that.cursor]
	if tictactoe.CalculateWinner(current.Squares).HasWinner() || current.Squares[cell] != entity.EmptyCell {
		return false
	}

	row, col := entity.CellPosition(cell)
	next := entity.Snapshot{
		Squares: current.Squares,
		Row:     &row,
		Col:     &col,
	}
	next.Squares[cell] = that.NextMark()

	// drop the future we jumped away from
	that.snapshots = append(that.snapshots[:that.cursor+1:that.cursor+1], next)
	that.cursor = len(that.snapshots) - 1

	return true
}

// JumpTo - moves the cursor to step, clamped into the recorded history.
func (that *Store) JumpTo(step int) int {
	switch last := len(that.snapshots) - 1; {
	case step < 0:
		step = 0
	case step > last:
		step = last
	}

	that.cursor = step

	return step
}

func (that *Store) ToggleMoveOrder() {
	that.ascending = !that.ascending
}

func (that *Store) CurrentBoard() entity.Board {
	return that.snapshots[that.cursor].Squares
}

// CurrentSnapshot - returns a copy; the stored snapshot stays untouched.
func (that *Store) CurrentSnapshot() entity.Snapshot {
	snapshot := that.snapshots[that.cursor]
	snapshot.Row, snapshot.Col = copyPosition(snapshot.Row, snapshot.Col)

	return snapshot
}

func (that *Store) Verdict() entity.Verdict {
	return tictactoe.CalculateWinner(that.CurrentBoard())
}

func (that *Store) XIsNext() bool {
	return that.cursor%2 == 0
}

func (that *Store) NextMark() entity.Mark {
	if that.XIsNext() {
		return entity.PlayerX
	}
	return entity.PlayerO
}

func (that *Store) Cursor() int {
	return that.cursor
}

func (that *Store) Len() int {
	return len(that.snapshots)
}

func (that *Store) Ascending() bool {
	return that.ascending
}

// Descriptors - lists every step in the current display order.
func (that *Store) Descriptors() []entity.MoveDescriptor {
	descriptors := make([]entity.MoveDescriptor, 0, len(that.snapshots))

	for step, snapshot := range that.snapshots {
		row, col := copyPosition(snapshot.Row, snapshot.Col)
		descriptors = append(descriptors, entity.MoveDescriptor{
			Step: step,
			Row:  row,
			Col:  col,
		})
	}

	if !that.ascending {
		for i, j := 0, len(descriptors)-1; i < j; i, j = i+1, j-1 {
			descriptors[i], descriptors[j] = descriptors[j], descriptors[i]
		}
	}

	return descriptors
}

func copyPosition(row, col *int) (*int, *int) {
	if row == nil || col == nil {
		return nil, nil
	}

	r, c := *row, *col

	return &r, &c
}

// Record - exports the store as the list of played cells.
func (that *Store) Record() Record {
	moves := make([]int, 0, len(that.snapshots)-1)

	for step := 1; step < len(that.snapshots); step++ {
		moves = append(moves, *that.snapshots[step].Row*entity.BoardSize+*that.snapshots[step].Col)
	}

	return Record{
		Moves:     moves,
		Cursor:    that.cursor,
		Ascending: that.ascending,
	}
}

// Restore - rebuilds a store by replaying the recorded moves.
func Restore(record Record) (*Store, error) {
	store := New()

	for i, cell := range record.Moves {
		if !store.ApplyMove(cell) {
			return nil, fmt.Errorf("%w: move %d to cell %d rejected", ErrCorruptRecord, i+1, cell)
		}
	}

	if record.Cursor < 0 || record.Cursor >= store.Len() {
		return nil, fmt.Errorf("%w: cursor %d out of range", ErrCorruptRecord, record.Cursor)
	}

	store.cursor = record.Cursor
	store.ascending = record.Ascending

	return store, nil
}
