package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tickMsg time.Time

const paramWidth = 4

// Simple delegate for binding list items.
type bindingDelegate struct {
	offset int
}

func (d bindingDelegate) Height() int  { return 1 }
func (d bindingDelegate) Spacing() int { return 0 }
func (d bindingDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d bindingDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	binding, ok := item.(bindingItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var exprStyle, nameStyle lipgloss.Style

	var displayExpr string

	width := m.Width() - paramWidth - 2

	if isSelected {
		exprStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true).
			Width(paramWidth).
			Align(lipgloss.Right)

		displayExpr = animateScroll(binding.expr, width, d.offset)
	} else {
		exprStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(paramWidth).
			Align(lipgloss.Right)

		displayExpr = truncateToWidth(binding.expr, width)
	}

	line := fmt.Sprintf("%s  %s",
		nameStyle.Render(binding.name),
		exprStyle.Render(displayExpr),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	gap := "   "

	// Ticks to wait before scrolling.
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	runes := []rune(text + gap)
	n := len(runes)

	start := effectiveStep % n

	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// inspectModel browses the bindings and fragment states of one script.
type inspectModel struct {
	width        int
	height       int
	bindings     list.Model
	fragments    table.Model
	delegate     bindingDelegate
	size         int
	rendered     bool
	animOffset   int
	lastSelected int
}

func newInspectModel() inspectModel {
	delegate := bindingDelegate{}
	bindings := list.New([]list.Item{}, delegate, 80, 20)
	bindings.SetShowPagination(false)
	bindings.SetShowFilter(true)
	bindings.SetShowHelp(false)
	bindings.SetShowTitle(false)
	bindings.SetShowStatusBar(false)
	bindings.FilterInput.Placeholder = "Filter by param or literal…"

	fragments := table.New(
		table.WithColumns([]table.Column{
			{Title: "Fragment", Width: 24},
			{Title: "State", Width: 10},
		}),
		table.WithFocused(false),
		table.WithHeight(8),
	)

	return inspectModel{
		bindings:     bindings,
		fragments:    fragments,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m inspectModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bindings.SetWidth(m.width)

	case tickMsg:
		if m.bindings.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.bindings.SetDelegate(m.delegate)

			return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			var newList list.Model

			newList, cmd = m.bindings.Update(msg)
			m.bindings = newList

			if m.bindings.Index() != m.lastSelected {
				m.lastSelected = m.bindings.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.bindings.SetDelegate(m.delegate)
			}

			return m, cmd
		}

	case scriptMsg:
		m = m.handleScriptMsg(msg)
	}

	return m, cmd
}

func (m inspectModel) handleScriptMsg(msg scriptMsg) inspectModel {
	m.size = len(msg.script.Text)

	items := make([]list.Item, 0, len(msg.script.Bindings))
	for _, b := range msg.script.Bindings {
		items = append(items, bindingItem{name: b.Name, expr: b.Expr})
	}

	rows := make([]table.Row, 0, len(msg.script.Fragments))
	for _, f := range msg.script.Fragments {
		rows = append(rows, table.Row{f.Name, f.State})
	}

	m.bindings.SetItems(items)
	m.fragments.SetRows(rows)
	m.fragments.SetHeight(len(rows) + 1)
	m.rendered = true

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m inspectModel) View() string {
	if !m.rendered {
		return "Assembling script…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("modegen inspect")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Bytes: %s   Bindings: %s   Fragments: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.size)),
		accentStyle.Render(fmt.Sprintf("%d", len(m.bindings.Items()))),
		accentStyle.Render(fmt.Sprintf("%d", len(m.fragments.Rows()))),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		m.renderBindings(),
		m.renderFragments(),
		footer,
	)
}

func (m inspectModel) renderBindings() string {
	// Title, summary, footer, borders and the fragment table.
	listHeight := m.height - 9 - len(m.fragments.Rows()) - 3
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6

	m.bindings.SetHeight(listHeight)
	m.bindings.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%*s  %s", paramWidth, "Param", "Literal"))

	return boxStyle().Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.bindings.View(),
		),
	)
}

func (m inspectModel) renderFragments() string {
	return boxStyle().Render(m.fragments.View())
}

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)
}
