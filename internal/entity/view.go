package entity

// MoveView is one entry of the jump-to list.
type MoveView struct {
	Step        int    `json:"step"`
	Row         *int   `json:"row,omitempty"`
	Col         *int   `json:"col,omitempty"`
	Description string `json:"description"`
	Selected    bool   `json:"selected"`
}

// GameView is everything a client needs to render one game session.
type GameView struct {
	ID        string            `json:"id"`
	Board     [CellCount]string `json:"board"`
	Winner    string            `json:"winner"`
	Line      []int             `json:"line,omitempty"`
	Next      string            `json:"next,omitempty"`
	Status    string            `json:"status"`
	Step      int               `json:"step"`
	Ascending bool              `json:"ascending"`
	Moves     []MoveView        `json:"moves"`
	Accepted  *bool             `json:"accepted,omitempty"`
}
