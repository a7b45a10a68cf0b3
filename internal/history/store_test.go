package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

// playTopRowWin - X takes 0,1,2 while O answers 4,5.
func playTopRowWin(t *testing.T) *Store {
	t.Helper()

	store := New()
	for _, cell := range []int{0, 4, 1, 5, 2} {
		require.True(t, store.ApplyMove(cell))
	}

	return store
}

func TestNew(t *testing.T) {
	// When: a new store is created
	store := New()

	// Then: it holds only the empty initial snapshot and X moves first
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 0, store.Cursor())
	assert.Equal(t, entity.Board{}, store.CurrentBoard())
	assert.True(t, store.XIsNext())
	assert.Equal(t, entity.PlayerX, store.NextMark())
	assert.False(t, store.Verdict().HasWinner())
	assert.True(t, store.Ascending())
	assert.Nil(t, store.CurrentSnapshot().Row)
	assert.Nil(t, store.CurrentSnapshot().Col)
}

func TestStore_ApplyMove(t *testing.T) {
	t.Run("Accepted move appends a snapshot and flips the turn", func(t *testing.T) {
		// Given: a new store
		store := New()

		// When: X plays cell 5
		accepted := store.ApplyMove(5)

		// Then: the move is recorded with its row and column
		require.True(t, accepted)
		assert.Equal(t, 2, store.Len())
		assert.Equal(t, 1, store.Cursor())
		assert.Equal(t, entity.PlayerX, store.CurrentBoard()[5])
		assert.Equal(t, entity.PlayerO, store.NextMark())
		require.NotNil(t, store.CurrentSnapshot().Row)
		assert.Equal(t, 1, *store.CurrentSnapshot().Row)
		assert.Equal(t, 2, *store.CurrentSnapshot().Col)
	})

	t.Run("Occupied cell is ignored", func(t *testing.T) {
		// Given: a store where cell 0 is taken
		store := New()
		require.True(t, store.ApplyMove(0))

		// When: O tries cell 0
		accepted := store.ApplyMove(0)

		// Then: nothing changes
		assert.False(t, accepted)
		assert.Equal(t, 2, store.Len())
		assert.Equal(t, 1, store.Cursor())
		assert.Equal(t, entity.PlayerO, store.NextMark())
	})

	t.Run("Out of range cell is ignored", func(t *testing.T) {
		store := New()

		assert.False(t, store.ApplyMove(-1))
		assert.False(t, store.ApplyMove(9))
		assert.Equal(t, 1, store.Len())
	})

	t.Run("Snapshots differ from their predecessor in exactly one cell", func(t *testing.T) {
		// Given: a few moves
		store := New()
		for _, cell := range []int{4, 0, 8, 2} {
			require.True(t, store.ApplyMove(cell))
		}

		// Then: every snapshot adds exactly one mark
		for step := 1; step < store.Len(); step++ {
			diff := 0
			for cell := 0; cell < entity.CellCount; cell++ {
				if store.snapshots[step].Squares[cell] != store.snapshots[step-1].Squares[cell] {
					diff++
				}
			}
			assert.Equal(t, 1, diff, "step %d", step)
		}
	})

	t.Run("Earlier snapshots are not mutated", func(t *testing.T) {
		// Given: one move played
		store := New()
		require.True(t, store.ApplyMove(0))

		// When: another move is played
		require.True(t, store.ApplyMove(1))

		// Then: the first snapshots are unchanged
		assert.Equal(t, entity.Board{}, store.snapshots[0].Squares)
		assert.Equal(t, entity.Board{entity.PlayerX}, store.snapshots[1].Squares)
	})

	t.Run("Move on a full board is ignored", func(t *testing.T) {
		// Given: a drawn game
		store := New()
		for _, cell := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
			require.True(t, store.ApplyMove(cell))
		}
		require.False(t, store.Verdict().HasWinner())

		// Then: no cell can be played any more
		for cell := 0; cell < entity.CellCount; cell++ {
			assert.False(t, store.ApplyMove(cell))
		}
		assert.Equal(t, 10, store.Len())
	})
}

func TestStore_JumpTo(t *testing.T) {
	t.Run("Clamps below zero", func(t *testing.T) {
		store := playTopRowWin(t)

		assert.Equal(t, 0, store.JumpTo(-3))
		assert.Equal(t, 0, store.Cursor())
	})

	t.Run("Clamps above the last step", func(t *testing.T) {
		store := playTopRowWin(t)

		assert.Equal(t, 5, store.JumpTo(42))
		assert.Equal(t, 5, store.Cursor())
	})

	t.Run("Can jump forward again after jumping back", func(t *testing.T) {
		// Given: a store rewound to the start
		store := playTopRowWin(t)
		store.JumpTo(0)

		// When: jumping to step 3
		store.JumpTo(3)

		// Then: the history is intact and the cursor moved forward
		assert.Equal(t, 3, store.Cursor())
		assert.Equal(t, 6, store.Len())
		assert.Equal(t, entity.PlayerO, store.NextMark())
	})

	t.Run("Is idempotent", func(t *testing.T) {
		// Given: two identical games
		once := playTopRowWin(t)
		twice := playTopRowWin(t)

		// When: one jumps once and the other twice to the same step
		once.JumpTo(2)
		twice.JumpTo(2)
		twice.JumpTo(2)

		// Then: both are observably identical
		assert.Equal(t, once.Record(), twice.Record())
		assert.Equal(t, once.CurrentBoard(), twice.CurrentBoard())
		assert.Equal(t, once.NextMark(), twice.NextMark())
	})
}

func TestStore_ToggleMoveOrder(t *testing.T) {
	// Given: a store with two moves
	store := New()
	require.True(t, store.ApplyMove(0))
	require.True(t, store.ApplyMove(4))

	// When: toggling the move order
	store.ToggleMoveOrder()

	// Then: the descriptors are listed newest first and nothing else changed
	descriptors := store.Descriptors()
	require.Len(t, descriptors, 3)
	assert.Equal(t, []int{2, 1, 0}, []int{descriptors[0].Step, descriptors[1].Step, descriptors[2].Step})
	assert.False(t, store.Ascending())
	assert.Equal(t, 2, store.Cursor())
	assert.Equal(t, 3, store.Len())

	// When: toggling back
	store.ToggleMoveOrder()

	// Then: ascending order is restored
	assert.Equal(t, 0, store.Descriptors()[0].Step)
	assert.True(t, store.Ascending())
}

func TestStore_Descriptors(t *testing.T) {
	// Given: X on cell 7
	store := New()
	require.True(t, store.ApplyMove(7))

	// When: listing descriptors
	descriptors := store.Descriptors()

	// Then: the start has no position and the move has row 2, col 1
	require.Len(t, descriptors, 2)
	assert.Nil(t, descriptors[0].Row)
	assert.Nil(t, descriptors[0].Col)
	assert.Equal(t, 1, descriptors[1].Step)
	assert.Equal(t, 2, *descriptors[1].Row)
	assert.Equal(t, 1, *descriptors[1].Col)
}

func TestStore_Scenarios(t *testing.T) {
	t.Run("Start state", func(t *testing.T) {
		store := New()

		assert.Equal(t, entity.Board{}, store.CurrentBoard())
		assert.Equal(t, entity.PlayerX, store.NextMark())
		assert.False(t, store.Verdict().HasWinner())
	})

	t.Run("Top row win", func(t *testing.T) {
		store := playTopRowWin(t)

		verdict := store.Verdict()
		assert.Equal(t, entity.PlayerX, verdict.Winner)
		assert.Equal(t, []int{0, 1, 2}, verdict.Line)
	})

	t.Run("Move after win is a no-op", func(t *testing.T) {
		store := playTopRowWin(t)

		assert.False(t, store.ApplyMove(8))
		assert.Equal(t, 6, store.Len())
		assert.Equal(t, 5, store.Cursor())
	})

	t.Run("Jump back shows the first two moves only", func(t *testing.T) {
		store := playTopRowWin(t)

		assert.Equal(t, 2, store.JumpTo(2))
		assert.Equal(t, entity.Board{
			entity.PlayerX, entity.EmptyCell, entity.EmptyCell,
			entity.EmptyCell, entity.PlayerO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}, store.CurrentBoard())
		assert.False(t, store.Verdict().HasWinner())
		assert.Equal(t, entity.PlayerX, store.NextMark())
	})

	t.Run("Move after jump back branches the history", func(t *testing.T) {
		// Given: the won game rewound to step 2
		store := playTopRowWin(t)
		store.JumpTo(2)

		// When: X plays cell 8
		require.True(t, store.ApplyMove(8))

		// Then: steps 3..5 are discarded and the new move is step 3
		assert.Equal(t, 4, store.Len())
		assert.Equal(t, 3, store.Cursor())
		assert.Equal(t, entity.PlayerX, store.CurrentBoard()[8])
		assert.Equal(t, entity.EmptyCell, store.CurrentBoard()[1])
		assert.Equal(t, []int{0, 4, 8}, store.Record().Moves)
	})
}

func TestRestore(t *testing.T) {
	t.Run("Round trips a branched game", func(t *testing.T) {
		// Given: a game rewound and displayed newest first
		store := playTopRowWin(t)
		store.JumpTo(3)
		store.ToggleMoveOrder()

		// When: restoring from its record
		restored, err := Restore(store.Record())

		// Then: the restored store is observably identical
		require.NoError(t, err)
		assert.Equal(t, store.Len(), restored.Len())
		assert.Equal(t, store.Cursor(), restored.Cursor())
		assert.Equal(t, store.CurrentBoard(), restored.CurrentBoard())
		assert.Equal(t, store.Descriptors(), restored.Descriptors())
		assert.False(t, restored.Ascending())
	})

	t.Run("Rejects a record with an illegal move", func(t *testing.T) {
		_, err := Restore(Record{Moves: []int{0, 0}, Cursor: 2})

		require.ErrorIs(t, err, ErrCorruptRecord)
	})

	t.Run("Rejects a record with a move after the win", func(t *testing.T) {
		_, err := Restore(Record{Moves: []int{0, 4, 1, 5, 2, 8}, Cursor: 6})

		require.ErrorIs(t, err, ErrCorruptRecord)
	})

	t.Run("Rejects a cursor out of range", func(t *testing.T) {
		_, err := Restore(Record{Moves: []int{0}, Cursor: 2})

		require.ErrorIs(t, err, ErrCorruptRecord)
	})
}

func TestStore_PositionsAreCopies(t *testing.T) {
	// Given: X on cell 7
	store := New()
	require.True(t, store.ApplyMove(7))
	before := store.Record()

	// When: a caller writes through the returned positions
	*store.Descriptors()[1].Row = 0
	*store.CurrentSnapshot().Col = 0

	// Then: the history and its record are unchanged
	assert.Equal(t, before, store.Record())
	assert.Equal(t, []int{7}, store.Record().Moves)
	assert.Equal(t, 2, *store.Descriptors()[1].Row)
	assert.Equal(t, 1, *store.CurrentSnapshot().Col)

	restored, err := Restore(store.Record())
	require.NoError(t, err)
	assert.Equal(t, entity.PlayerX, restored.CurrentBoard()[7])
}
