package session

import (
	"fmt"

	"github.com/softvoice/menuvox/internal/logging/events"
	"github.com/softvoice/menuvox/internal/menu"
	"github.com/softvoice/menuvox/internal/nav"
	"github.com/softvoice/menuvox/internal/speech"
)

// gridState holds the grid sub-mode: the loaded content plus a 2D cursor
// over it. The cursor survives reloads; SetCounts revalidates it against
// the new shape.
type gridState struct {
	node   *menu.Node
	model  *menu.GridModel
	cursor *nav.Grid
}

func (g *gridState) cell() (menu.GridColumn, menu.Item, bool) {
	if g.model == nil || g.cursor.Col >= len(g.model.Columns) {
		return menu.GridColumn{}, menu.Item{}, false
	}
	col := g.model.Columns[g.cursor.Col]
	if g.cursor.Row >= len(col.Cells) {
		return col, menu.Item{}, false
	}
	return col, col.Cells[g.cursor.Row], true
}

func (s *Session) enterGrid(node *menu.Node, item menu.Item) {
	model, err := node.Grid(s.opts.Context)
	if err != nil {
		s.speaker.Speak(fmt.Sprintf("Failed to open %s", item.Label), speech.High)
		return
	}
	if model == nil || len(model.Columns) == 0 {
		s.speaker.Speak("Nothing here", speech.Normal)
		return
	}
	s.grid = &gridState{
		node:   node,
		model:  model,
		cursor: nav.NewGrid(model.Counts()),
	}
	s.mode = ModeGrid
	events.Nav.DrillIn(s.id, node.ID, item.ID)
	s.speaker.Speak(fmt.Sprintf("%s. %s", item.Label, s.formatGridCell()), speech.Normal)
}

func (s *Session) handleGridKey(ev KeyEvent) bool {
	grid := s.grid
	if grid == nil {
		s.mode = ModeBrowse
		return false
	}
	switch ev.Key {
	case KeyDown:
		grid.cursor.NextRow()
		s.gridMoved()
		return true
	case KeyUp:
		grid.cursor.PrevRow()
		s.gridMoved()
		return true
	case KeyRight:
		grid.cursor.NextColumn()
		s.gridMoved()
		return true
	case KeyLeft:
		grid.cursor.PrevColumn()
		s.gridMoved()
		return true
	case KeyEnter:
		s.runGridAction()
		return true
	case KeyEscape:
		s.grid = nil
		s.mode = ModeBrowse
		if level := s.Current(); level != nil {
			events.Nav.DrillOut(s.id, level.Node.ID, level.Cursor)
			s.announce(level)
		}
		return true
	case KeyInfo:
		return s.showGridInfo()
	default:
		return false
	}
}

func (s *Session) runGridAction() {
	grid := s.grid
	col, cell, ok := grid.cell()
	if !ok {
		s.speaker.Speak(nav.NoItemsText, speech.Normal)
		return
	}
	if grid.node.GridAction == nil {
		s.speaker.Speak(fmt.Sprintf("Selected %s", cell.SearchText()), speech.Normal)
		return
	}
	msg, err := grid.node.GridAction(s.opts.Context, col.ID, cell)
	if err != nil {
		s.speaker.Speak(fmt.Sprintf("Failed: %v", err), speech.High)
		return
	}
	s.reloadGrid()
	s.speaker.Speak(msg, speech.Normal)
}

// reloadGrid refetches the grid content in place. The cursor is kept and
// revalidated against the new shape.
func (s *Session) reloadGrid() {
	grid := s.grid
	model, err := grid.node.Grid(s.opts.Context)
	if err != nil || model == nil {
		return
	}
	grid.model = model
	grid.cursor.SetCounts(model.Counts())
}

func (s *Session) showGridInfo() bool {
	grid := s.grid
	_, cell, ok := grid.cell()
	if !ok || grid.node.Info == nil {
		s.speaker.Speak("No details available", speech.Normal)
		return true
	}
	text, ok := grid.node.Info(s.opts.Context, cell)
	if !ok {
		s.speaker.Speak("No details available", speech.Normal)
		return true
	}
	s.infoReturn = s.mode
	s.infoText = text
	s.mode = ModeInfo
	s.speaker.Speak(text, speech.Normal)
	return true
}

func (s *Session) gridMoved() {
	grid := s.grid
	events.Nav.GridCursor(s.id, grid.node.ID, grid.cursor.Col, grid.cursor.Row)
	s.announceGrid()
}

func (s *Session) announceGrid() {
	s.speaker.Speak(s.formatGridCell(), speech.Normal)
}

func (s *Session) formatGridCell() string {
	grid := s.grid
	cursor := grid.cursor
	col, cell, ok := grid.cell()
	if !ok {
		if cursor.Col < len(grid.model.Columns) {
			col = grid.model.Columns[cursor.Col]
		}
		return nav.FormatGridCell("", col.Title, cursor.Row, cursor.Rows(), cursor.Col, cursor.Columns())
	}
	return nav.FormatGridCell(cell.Label, col.Title, cursor.Row, cursor.Rows(), cursor.Col, cursor.Columns())
}
