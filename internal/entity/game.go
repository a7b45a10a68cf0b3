package entity

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = ""
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize
)

// WinCombos - the eight winning triples, rows first, then columns, then diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [CellCount]Mark

// Snapshot is one board configuration in the history. Row and Col point to the move that
// produced it and are nil for the initial snapshot.
type Snapshot struct {
	Squares Board `json:"squares"`
	Row     *int  `json:"row"`
	Col     *int  `json:"col"`
}

type Verdict struct {
	Winner Mark  `json:"winner"`
	Line   []int `json:"line"`
}

func (that Verdict) HasWinner() bool {
	return that.Winner != EmptyCell
}

type MoveDescriptor struct {
	Step int  `json:"step"`
	Row  *int `json:"row"`
	Col  *int `json:"col"`
}

// CellPosition - converts a cell index into its row and column.
func CellPosition(cell int) (int, int) {
	return cell / BoardSize, cell % BoardSize
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < CellCount
}
