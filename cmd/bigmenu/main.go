// Virtual windowing over a large flat menu: only the items inside the
// computed window are rendered, and the block is translated to keep scroll
// fidelity. Uses x/term for the initial size so the first frame is right
// even before bubbletea reports one.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"menu"
)

const itemCount = 5000

var (
	rowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	markStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	gutterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type model struct {
	eng    *menu.Engine
	scroll float64
	rows   int
}

func buildItems() []menu.Item {
	items := make([]menu.Item, itemCount)
	for i := range items {
		items[i] = menu.Item{
			ID:    fmt.Sprintf("item-%04d", i),
			Label: fmt.Sprintf("Entry %04d", i),
		}
	}
	return items
}

func newModel() model {
	eng, err := menu.New(buildItems(), menu.Config{
		ItemHeight:       1,
		VirtualScroll:    true,
		VirtualThreshold: 200,
		Overscan:         4,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rows := 24
	if _, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && h > 4 {
		rows = h - 3
	}
	eng.SetScroll(0, float64(rows))
	return model{eng: eng, rows: rows}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Height > 4 {
			m.rows = msg.Height - 3
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			m.scroll++
		case "up", "k":
			m.scroll--
		case "pgdown", "ctrl+d":
			m.scroll += float64(m.rows)
		case "pgup", "ctrl+u":
			m.scroll -= float64(m.rows)
		case "g":
			m.scroll = 0
		case "G":
			m.scroll = itemCount
		}
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
	if limit := float64(itemCount - m.rows); m.scroll > limit {
		m.scroll = limit
	}
	m.eng.SetScroll(m.scroll, float64(m.rows))
	return m, nil
}

func (m model) View() string {
	layout := m.eng.Layout()
	w := m.eng.Window()

	var b strings.Builder
	shown := 0
	for _, it := range layout.Items {
		// translate the windowed block back into viewport rows
		row := layout.Positions[it.ID].Y - m.scroll
		if row < 0 || row >= float64(m.rows) {
			continue
		}
		b.WriteString(gutterStyle.Render(fmt.Sprintf("%5.0f ", layout.Positions[it.ID].Y)))
		b.WriteString(rowStyle.Render(it.Label))
		b.WriteByte('\n')
		shown++
	}
	for ; shown < m.rows; shown++ {
		b.WriteByte('\n')
	}

	b.WriteString(markStyle.Render(
		fmt.Sprintf("window [%d..%d] of %d · offset %.0f · rendered %d rows",
			w.Start, w.End, itemCount, w.Offset, w.Len())))
	b.WriteString(gutterStyle.Render("  ·  j/k scroll · ctrl-d/u page · g/G ends · q quit"))
	return b.String()
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
