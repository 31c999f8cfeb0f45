package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
	mb "github.com/saeidalz13/battleship-engine/models/battleship"
)

const (
	maxMessages = 8
	cellWidth   = 2
	// Row label plus one column per square
	gridWidth = cellWidth + mb.GridSize*cellWidth
	gridGap   = 6
)

var (
	titleStyle  = tcell.StyleDefault.Bold(true)
	labelStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	promptStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

func stateStyle(ps mb.PositionState) tcell.Style {
	switch {
	case ps.IsShip():
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case ps == mb.PositionStateMiss:
		return tcell.StyleDefault.Foreground(tcell.ColorBlue)
	case ps == mb.PositionStateHit:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case ps == mb.PositionStateSunk:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return labelStyle
	}
}

func stateRune(ps mb.PositionState) rune {
	if ps == mb.PositionStateEmpty {
		return '.'
	}
	return ps.Glyph()
}

// Console draws the boards on a tcell screen and reads the human
// player's answers from the keyboard.
type Console struct {
	screen tcell.Screen

	first  *mb.Combatant
	second *mb.Combatant

	messages []string
	prompt   string
	input    []rune
}

var _ mb.UI = (*Console)(nil)

// NewConsole expects an initialized screen; the caller owns Fini.
func NewConsole(screen tcell.Screen) *Console {
	return &Console{screen: screen}
}

func (c *Console) Clear() {
	c.first, c.second = nil, nil
	c.messages = c.messages[:0]
	c.draw()
}

func (c *Console) DisplayPlayer(player *mb.Combatant) {
	c.first, c.second = player, nil
	c.draw()
}

func (c *Console) DisplayPlayers(first, second *mb.Combatant) {
	c.first, c.second = first, second
	c.draw()
}

func (c *Console) DisplayMessage(msg string) {
	c.messages = append(c.messages, strings.Split(msg, "\n")...)
	if len(c.messages) > maxMessages {
		c.messages = c.messages[len(c.messages)-maxMessages:]
	}
	c.draw()
}

func (c *Console) ChooseShip() (int, error) {
	for {
		line, err := c.readLine("Ship size: ")
		if err != nil {
			return 0, err
		}
		size, err := strconv.Atoi(line)
		if err == nil {
			return size, nil
		}
		c.DisplayMessage("Enter the ship size as a number.")
	}
}

func (c *Console) ChooseSquare() (mb.Coordinates, error) {
	for {
		line, err := c.readLine("Square (x y): ")
		if err != nil {
			return mb.Coordinates{}, err
		}
		if square, ok := parseSquare(line); ok {
			return square, nil
		}
		c.DisplayMessage("Enter the square as two numbers: x y")
	}
}

func parseSquare(line string) (mb.Coordinates, bool) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) != 2 {
		return mb.Coordinates{}, false
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return mb.Coordinates{}, false
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return mb.Coordinates{}, false
	}
	return mb.NewCoordinates(x, y), true
}

func (c *Console) AskQuestion(question string) (bool, error) {
	for {
		line, err := c.readLine(question + " [y/n]: ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// WaitForKey shows msg and blocks until any key is pressed.
func (c *Console) WaitForKey(msg string) {
	c.DisplayMessage(msg)
	for {
		switch c.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			c.screen.Sync()
			c.draw()
		}
	}
}

// readLine collects typed runes until Enter. Esc and Ctrl-C quit the game.
func (c *Console) readLine(prompt string) (string, error) {
	c.prompt = prompt
	c.input = c.input[:0]
	defer func() {
		c.prompt = ""
		c.input = c.input[:0]
	}()
	c.draw()

	for {
		switch ev := c.screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			return "", cerr.ErrQuit
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", cerr.ErrQuit
			case tcell.KeyEnter:
				return strings.TrimSpace(string(c.input)), nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(c.input) > 0 {
					c.input = c.input[:len(c.input)-1]
				}
			case tcell.KeyRune:
				c.input = append(c.input, ev.Rune())
			}
		}
		c.draw()
	}
}

func (c *Console) draw() {
	c.screen.Clear()

	row := 0
	drawText(c.screen, 0, row, "BATTLESHIP", titleStyle)
	row += 2

	if c.first != nil {
		row = c.drawCombatant(row, "Player", c.first)
	}
	if c.second != nil {
		row = c.drawCombatant(row+1, "Opponent", c.second)
	}
	row++

	for _, msg := range c.messages {
		drawText(c.screen, 0, row, msg, tcell.StyleDefault)
		row++
	}

	if c.prompt != "" {
		line := c.prompt + string(c.input)
		drawText(c.screen, 0, row, line, promptStyle)
		c.screen.ShowCursor(len([]rune(line)), row)
	} else {
		c.screen.HideCursor()
	}

	c.screen.Show()
}

func (c *Console) drawCombatant(row int, name string, cb *mb.Combatant) int {
	shotsX := gridWidth + gridGap
	drawText(c.screen, 0, row, name+" ships", titleStyle)
	drawText(c.screen, shotsX, row, name+" shots", titleStyle)

	drawGrid(c.screen, 0, row+1, cb.Inventory().Read)
	drawGrid(c.screen, shotsX, row+1, cb.Tracker().Read)

	// Title, header and one line per grid row
	return row + 2 + mb.GridSize
}

// drawGrid puts X on the rows and Y on the columns.
func drawGrid(screen tcell.Screen, x0, y0 int, read func(mb.Coordinates) (mb.PositionState, error)) {
	for y := 0; y < mb.GridSize; y++ {
		screen.SetContent(x0+cellWidth+y*cellWidth, y0, rune('0'+y), nil, labelStyle)
	}

	for x := 0; x < mb.GridSize; x++ {
		row := y0 + 1 + x
		screen.SetContent(x0, row, rune('0'+x), nil, labelStyle)

		for y := 0; y < mb.GridSize; y++ {
			ps, err := read(mb.NewCoordinates(x, y))
			if err != nil {
				continue
			}
			screen.SetContent(x0+cellWidth+y*cellWidth, row, stateRune(ps), nil, stateStyle(ps))
		}
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// Outcome formats the end of a match for the terminal after the screen
// is gone.
func Outcome(outcome mb.Outcome, rounds int) string {
	return fmt.Sprintf("%s\nresult: %s after %d round(s)", outcome.Reason, outcome.Result, rounds)
}
