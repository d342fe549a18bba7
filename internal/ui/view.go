package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/softvoice/menuvox/internal/format/table"
	"github.com/softvoice/menuvox/internal/session"
)

const headerSeparator = " / "

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := make([]styledLine, 0, 16)
	s := m.Session()
	if s == nil {
		lines = append(lines, styledLine{text: "(no menu open)", style: styles.Status})
	} else {
		if header := m.header(s); header != "" {
			lines = append(lines, styledLine{text: header, style: styles.Header})
		}
		switch s.Mode() {
		case session.ModeInfo:
			lines = append(lines, m.infoLines(s)...)
		case session.ModeEdit:
			lines = append(lines, m.editLines(s)...)
		case session.ModeGrid:
			lines = append(lines, m.gridLines(s)...)
		default:
			lines = append(lines, m.listLines(s)...)
		}
	}
	if m.verbose {
		lines = append(lines, m.transcriptLines()...)
	}
	// Reserve 3 rows for the bottom bar (blank + status + prompt).
	lines = limitHeight(lines, m.height-3, m.width)
	lines = applyWidth(lines, m.width)

	bottom := []styledLine{
		{},
		m.statusLine(),
		{text: m.promptLine(s)},
	}
	bottom = applyWidth(bottom, m.width)
	lines = append(lines, bottom...)
	return renderLines(lines)
}

// header is the drill breadcrumb: each level's title in order.
func (m *Model) header(s *session.Session) string {
	levels := s.Levels()
	segments := make([]string, 0, len(levels))
	for _, level := range levels {
		title := strings.TrimSpace(level.Title)
		if title == "" {
			continue
		}
		segments = append(segments, title)
	}
	return strings.Join(segments, headerSeparator)
}

func (m *Model) listLines(s *session.Session) []styledLine {
	level := s.Current()
	if level == nil || len(level.Items) == 0 {
		return []styledLine{{text: "(no entries)", style: styles.Status}}
	}
	matched := map[int]bool{}
	if level.Search.Active() {
		for _, idx := range level.Search.Matches() {
			matched[idx] = true
		}
	}
	depth := len(s.Levels()) - 1
	start := m.viewportStart(depth, level.Cursor, len(level.Items))
	end := len(level.Items)
	if max := m.maxVisibleItems(); max > 0 && start+max < end {
		end = start + max
	}
	lines := make([]styledLine, 0, end-start)
	for idx := start; idx < end; idx++ {
		item := level.Items[idx]
		label := item.Label
		if level.Search.Active() && matched[idx] {
			label += " ·"
		}
		lines = append(lines, m.buildItemLine(label, idx == level.Cursor))
	}
	return lines
}

func (m *Model) buildItemLine(label string, selected bool) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}
	text := indicator + " " + label
	if m.width > 0 {
		if pad := m.width - ansi.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) editLines(s *session.Session) []styledLine {
	edit := s.Edit()
	if edit == nil {
		return nil
	}
	return []styledLine{
		{},
		{text: "Editing " + edit.Label(), style: styles.EditLabel},
		{text: "  " + edit.Value() + m.renderCaret(" "), style: styles.Item},
		{text: "  enter saves, esc cancels", style: styles.Status},
	}
}

func (m *Model) infoLines(s *session.Session) []styledLine {
	lines := []styledLine{
		{},
		{text: "Details", style: styles.InfoTitle},
	}
	for _, row := range strings.Split(s.InfoText(), "\n") {
		lines = append(lines, styledLine{text: "  " + row, style: styles.Info})
	}
	lines = append(lines, styledLine{text: "  esc dismisses", style: styles.Status})
	return lines
}

func (m *Model) gridLines(s *session.Session) []styledLine {
	model, cur := s.Grid()
	if model == nil || len(model.Columns) == 0 {
		return []styledLine{{text: "(no entries)", style: styles.Status}}
	}
	header := make([]string, len(model.Columns))
	maxRows := 0
	for c, col := range model.Columns {
		header[c] = "  " + col.Title
		if len(col.Cells) > maxRows {
			maxRows = len(col.Cells)
		}
	}
	rows := [][]string{header}
	for r := 0; r < maxRows; r++ {
		row := make([]string, len(model.Columns))
		for c, col := range model.Columns {
			if r >= len(col.Cells) {
				continue
			}
			mark := "  "
			if cur != nil && cur.Col == c && cur.Row == r {
				mark = "▌ "
			}
			row[c] = mark + col.Cells[r].Label
		}
		rows = append(rows, row)
	}
	out := make([]styledLine, 0, len(rows))
	for i, line := range table.Format(rows, nil) {
		style := styles.GridCell
		if i == 0 {
			style = styles.GridHeader
		}
		out = append(out, styledLine{text: line, style: style})
	}
	return out
}

// transcriptLines shows the most recent utterances, oldest first.
func (m *Model) transcriptLines() []styledLine {
	const shown = 4
	if len(m.transcript) == 0 {
		return nil
	}
	start := len(m.transcript) - shown
	if start < 0 {
		start = 0
	}
	lines := make([]styledLine, 0, shown+1)
	lines = append(lines, styledLine{})
	for _, u := range m.transcript[start:] {
		lines = append(lines, styledLine{text: "· " + u.text, style: styles.Transcript})
	}
	return lines
}

func (m *Model) statusLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	if len(m.transcript) == 0 {
		return styledLine{}
	}
	return styledLine{text: m.transcript[len(m.transcript)-1].text, style: styles.Status}
}

func (m *Model) promptLine(s *session.Session) string {
	prompt := "» "
	if styles.SearchPrompt != nil {
		prompt = styles.SearchPrompt.Render(prompt)
	}
	var text string
	if s != nil && s.Mode() == session.ModeBrowse {
		if level := s.Current(); level != nil && level.Search.Active() {
			text = level.Search.Buffer()
		}
	}
	if text == "" {
		placeholder := "(type to search)"
		runes := []rune(placeholder)
		caret := m.renderCaret(string(runes[0]))
		rest := string(runes[1:])
		if styles.SearchPlaceholder != nil {
			rest = styles.SearchPlaceholder.Render(rest)
		}
		return prompt + caret + rest
	}
	if styles.Search != nil {
		text = styles.Search.Render(text)
	}
	return prompt + text + m.renderCaret(" ")
}

func (m *Model) renderCaret(char string) string {
	if char == "" {
		char = " "
	}
	m.searchCursor.SetChar(char)
	base := m.searchCursor.TextStyle.Inline(true)
	if m.searchCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

// viewportStart keeps the cursor visible within the per-depth scroll window.
func (m *Model) viewportStart(depth, cursor, count int) int {
	max := m.maxVisibleItems()
	if max <= 0 || count <= max {
		return 0
	}
	for len(m.offsets) <= depth {
		m.offsets = append(m.offsets, 0)
	}
	start := m.offsets[depth]
	if cursor < start {
		start = cursor
	}
	if cursor >= start+max {
		start = cursor - max + 1
	}
	if start+max > count {
		start = count - max
	}
	if start < 0 {
		start = 0
	}
	m.offsets[depth] = start
	return start
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 4 // header + bottom bar
	if m.verbose {
		used += 5
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = line
		result[i].text = truncateText(line.text, width)
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width-1, "…")
}
