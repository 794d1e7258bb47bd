// Interactive vertical menu: accordion expansion, selection, rail mode and
// keyboard traversal, rendered with bubbletea/lipgloss.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"menu"
)

var tree = []menu.Item{
	{ID: "home", Label: "Home", Icon: "⌂"},
	{ID: "products", Label: "Products", Icon: "▦", Children: []menu.Item{
		{ID: "products/hardware", Label: "Hardware", Children: []menu.Item{
			{ID: "products/hardware/keyboards", Label: "Keyboards"},
			{ID: "products/hardware/displays", Label: "Displays", Badge: "new"},
		}},
		{ID: "products/software", Label: "Software", Children: []menu.Item{
			{ID: "products/software/editor", Label: "Editor"},
			{ID: "products/software/terminal", Label: "Terminal"},
		}},
	}},
	{ID: "reports", Label: "Reports", Icon: "▤", Children: []menu.Item{
		{ID: "reports/weekly", Label: "Weekly"},
		{ID: "reports/quarterly", Label: "Quarterly", Badge: "3"},
	}},
	{ID: "archive", Label: "Archive", Disabled: true},
	{ID: "settings", Label: "Settings", Icon: "⚙"},
}

var (
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type model struct {
	eng    *menu.Engine
	focus  string
	status *string
}

func newModel() model {
	eng, err := menu.New(tree, menu.Config{
		Accordion:          true,
		AutoExpandParent:   true,
		Indent:             2,
		ItemHeight:         1,
		KeyboardNavigation: true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	status := new(string)
	eng.Subscribe(menu.EventSelect, func(ev menu.Event) {
		*status = "selected " + ev.ID
	})
	return model{eng: eng, focus: eng.NextItem(""), status: status}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "down", "j":
		m.focus = m.eng.NextItem(m.focus)
		m.eng.Hover(m.focus)
	case "up", "k":
		m.focus = m.eng.PrevItem(m.focus)
		m.eng.Hover(m.focus)
	case "enter", " ":
		m.eng.Select(m.focus)
		*m.status = describe(m.eng)
	case "right", "l":
		m.eng.Expand(m.focus)
	case "left", "h":
		m.eng.Collapse(m.focus)
	case "m":
		m.eng.SetCollapsedRail(!m.eng.CollapsedRail())
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder
	rail := m.eng.CollapsedRail()
	layout := m.eng.Layout()

	for _, it := range layout.Items {
		pos := layout.Positions[it.ID]
		b.WriteString(strings.Repeat(" ", int(pos.X)))

		marker := "  "
		if it.Branch {
			marker = "▸ "
			if m.eng.IsExpanded(it.ID) {
				marker = "▾ "
			}
		}

		label := it.Label
		if rail {
			label = it.Icon
			if label == "" {
				label = string([]rune(it.Label)[0])
			}
		}
		line := marker + label
		if it.Badge != "" && !rail {
			line += " " + badgeStyle.Render(it.Badge)
		}

		switch {
		case it.ID == m.focus:
			line = focusStyle.Render(line)
		case it.ID == m.eng.SelectedKey():
			line = selectedStyle.Render(line)
		case it.Disabled:
			line = disabledStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(*m.status))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("j/k move · enter select · h/l close/open · m rail · q quit"))
	return b.String()
}

func describe(e *menu.Engine) string {
	open := strings.Join(e.ExpandedKeys(), ", ")
	if open == "" {
		open = "none"
	}
	return fmt.Sprintf("selected=%s open=[%s]", e.SelectedKey(), open)
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
