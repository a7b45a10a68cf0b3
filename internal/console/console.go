package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/history"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/presenter"
)

const helpText = `commands:
  <cell> | move <cell>   play cell 0-8 (row-major)
  jump <step>            go to a step in the history
  sort                   toggle move list order
  help                   show this help
  quit                   leave the game`

var errQuit = errors.New("quit")

// Console plays one game in a terminal. It owns its store, nothing is shared.
type Console struct {
	logger *slog.Logger
	out    *termenv.Output
	store  *history.Store
}

func New(logger *slog.Logger, out *termenv.Output) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		out:    out,
		store:  history.New(),
	}
}

// Run - reads commands from in until quit or EOF, rendering after each one.
func (that *Console) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	that.render()

	for {
		fmt.Fprint(that.out, "> ")

		if !scanner.Scan() {
			break
		}

		err := that.execute(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}

		if err != nil {
			fmt.Fprintln(that.out, that.out.String(err.Error()).Foreground(that.out.Color("1")))
			continue
		}

		that.render()
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}

func (that *Console) execute(line string) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	switch command := fields[0]; command {
	case "quit", "q", "exit":
		return errQuit
	case "help", "h", "?":
		fmt.Fprintln(that.out, helpText)
		return nil
	case "sort", "s":
		that.store.ToggleMoveOrder()
		return nil
	case "jump", "j":
		step, err := argument(fields)
		if err != nil {
			return err
		}

		that.store.JumpTo(step)
		return nil
	case "move", "m":
		cell, err := argument(fields)
		if err != nil {
			return err
		}

		that.move(cell)
		return nil
	default:
		cell, err := strconv.Atoi(command)
		if err != nil {
			return fmt.Errorf("unknown command %q, type help", command)
		}

		that.move(cell)
		return nil
	}
}

func (that *Console) move(cell int) {
	if !that.store.ApplyMove(cell) {
		that.logger.Debug("move ignored", "cell", cell, "step", that.store.Cursor())
	}
}

func argument(fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, fmt.Errorf("%s needs a number", fields[0])
	}

	value, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", fields[1])
	}

	return value, nil
}

func (that *Console) render() {
	board := that.store.CurrentBoard()
	line := that.store.Verdict().Line

	var sb strings.Builder
	for row := 0; row < entity.BoardSize; row++ {
		cells := make([]string, 0, entity.BoardSize)
		for col := 0; col < entity.BoardSize; col++ {
			cells = append(cells, that.cell(board, row*entity.BoardSize+col, line))
		}

		sb.WriteString(" " + strings.Join(cells, " | ") + "\n")
		if row < entity.BoardSize-1 {
			sb.WriteString("---+---+---\n")
		}
	}

	fmt.Fprint(that.out, sb.String())
	fmt.Fprintln(that.out, that.out.String(presenter.Status(that.store)).Bold())

	for _, descriptor := range that.store.Descriptors() {
		marker := "  "
		if descriptor.Step == that.store.Cursor() {
			marker = "> "
		}

		fmt.Fprintf(that.out, "%s%d. %s\n", marker, descriptor.Step, presenter.Describe(descriptor))
	}
}

func (that *Console) cell(board entity.Board, index int, line []int) string {
	mark := string(board[index])
	if mark == "" {
		return that.out.String(strconv.Itoa(index)).Faint().String()
	}

	for _, winning := range line {
		if winning == index {
			return that.out.String(mark).Reverse().Bold().String()
		}
	}

	return mark
}
