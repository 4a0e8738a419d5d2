package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/ticker/internal/feed"
	"github.com/olivier-w/ticker/internal/ticker"
)

// tickerHeight is the height of the ticker box including its frame.
const tickerHeight = 3

// Model is the Bubbletea model for the demo screen.
type Model struct {
	ticker   *ticker.Model
	title    string
	keys     keyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// New creates the demo screen around the given feed.
func New(f *feed.Feed) Model {
	t := ticker.New(
		ticker.WithSource(NewSource(f)),
		ticker.WithStyle(tickerStyle),
	)
	return Model{
		ticker: t,
		title:  f.Title,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// NewSource renders a feed's items into a ticker source.
func NewSource(f *feed.Feed) ticker.Source {
	items := make([]string, len(f.Items))
	for i, it := range f.Items {
		style := itemStyle
		if it.Color != "" {
			style = style.Foreground(lipgloss.Color(it.Color))
		}
		items[i] = style.Render(it.Text)
	}
	return ticker.NewSliceSource(items...)
}

func (m Model) Init() tea.Cmd {
	return m.ticker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.ticker.Stop()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Horizontal):
			return m, m.ticker.SetDirection(m.ticker.Direction().FlipHorizontal())
		case key.Matches(msg, m.keys.Vertical):
			return m, m.ticker.SetDirection(m.ticker.Direction().FlipVertical())
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ticker.SetSize(msg.Width-4, tickerHeight)
		return m, nil
	}

	return m, m.ticker.Update(msg)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render(m.title) + "\n\n")
	for _, line := range strings.Split(m.ticker.View(), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n  " + statusStyle.Render(m.statusLine()) + "\n")
	b.WriteString("\n  " + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m Model) statusLine() string {
	src := m.ticker.Source()
	count := 0
	if src != nil {
		count = src.Len()
	}
	if count == 0 {
		return "no items"
	}
	return fmt.Sprintf("item %d/%d  %s  %s",
		m.ticker.Current()+1, count, m.ticker.State(), m.ticker.Direction())
}
