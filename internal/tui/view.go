package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/rubrica/internal/contact"
)

// styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle   = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	modalStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("214")).Padding(0, 1)
	helpLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func (a *App) View() string {
	var body string
	switch a.state {
	case viewDetail:
		body = a.renderDetail()
	case viewForm:
		body = a.form.view()
	case viewPrompt:
		body = a.renderPrompt()
	default:
		body = a.renderList()
	}
	if a.modal == modalConfirm {
		body += "\n\n" + modalStyle.Render(a.confirmText+"\n[y] Yes  [n] No")
	}
	if a.status != "" {
		status := a.status
		if strings.HasPrefix(status, "error: ") {
			status = errorStyle.Render(status)
		}
		body += "\n" + status
	}
	return body
}

func (a *App) sortLabel() string {
	if a.reg.Ordering().IsSortedByFirstName() {
		return "first name"
	}
	return "last name"
}

func (a *App) renderList() string {
	title := titleStyle.Render(fmt.Sprintf("Rubrica - %d contacts", a.reg.Len()))
	out := title + "\n"
	out += labelStyle.Render("Sorted by "+a.sortLabel()) + "\n"
	if a.query != "" {
		out += labelStyle.Render(fmt.Sprintf("Search: %q (%d matches)", a.query, len(a.contacts))) + "\n"
	}
	if len(a.contacts) == 0 {
		out += "  (no contacts)\n"
	}
	start, end := a.visibleRange()
	for i := start; i < end; i++ {
		out += a.renderRow(i, a.contacts[i]) + "\n"
	}
	out += helpLineStyle.Render(helpLine(a.keys.ShortHelp()))
	return out
}

func (a *App) renderRow(i int, c contact.Contact) string {
	check := "[ ]"
	if c.Selected {
		check = "[x]"
	}
	first, second := c.FirstName, c.LastName
	if !a.reg.Ordering().IsSortedByFirstName() {
		first, second = c.LastName, c.FirstName
	}
	phone := ""
	if len(c.Phones) > 0 {
		phone = c.Phones[0]
	}
	row := fmt.Sprintf("%s %-18s %-18s %s", check, first, second, phone)
	if i == a.cursor {
		return cursorStyle.Render("▶ " + row)
	}
	return "  " + row
}

// visibleRange keeps the cursor on screen when the window is short.
func (a *App) visibleRange() (int, int) {
	rows := len(a.contacts)
	if a.height <= 0 {
		return 0, rows
	}
	limit := a.height - 6
	if limit < 3 {
		limit = 3
	}
	if rows <= limit {
		return 0, rows
	}
	start := a.cursor - limit/2
	if start < 0 {
		start = 0
	}
	if start+limit > rows {
		start = rows - limit
	}
	return start, start + limit
}

func (a *App) renderDetail() string {
	c := a.detail
	out := titleStyle.Render(c.FullName()) + "\n"
	field := func(label, value string) {
		if value == "" {
			value = "-"
		}
		out += fmt.Sprintf("%-10s %s\n", labelStyle.Render(label), value)
	}
	field("First", c.FirstName)
	field("Last", c.LastName)
	field("Address", c.Address)
	for i, p := range c.Phones {
		field(fmt.Sprintf("Phone %d", i+1), p)
	}
	for i, e := range c.Emails {
		field(fmt.Sprintf("Email %d", i+1), e)
	}
	out += helpLineStyle.Render(helpLine(a.detailKey.ShortHelp()))
	return out
}

func (a *App) renderPrompt() string {
	var title, help string
	switch a.promptOf {
	case promptImport:
		title = "Import contacts"
		help = "Path to a .csv, .json or .yaml file. [enter] Import  [esc] Back"
	case promptExport:
		title = "Export contacts"
		help = "Destination path; the extension picks the format. [enter] Export  [esc] Back"
	default:
		title = "Search"
		help = "Type a name. [enter] Keep filter  [esc] Clear"
	}
	out := titleStyle.Render(title) + "\n" + a.prompt.View() + "\n" + helpLineStyle.Render(help)
	if a.promptOf == promptSearch {
		out += "\n"
		for i, c := range a.contacts {
			if i >= 10 {
				out += fmt.Sprintf("  ... %d more\n", len(a.contacts)-i)
				break
			}
			out += "  " + c.FullName() + "\n"
		}
	}
	return out
}
