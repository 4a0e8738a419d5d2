// Package ticker implements a Bubbletea widget that cycles through a
// sequence of rendered visuals, scrolling each one horizontally into view
// when it is wider than the widget, pausing, then sliding vertically to the
// next one.
package ticker

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// item is a materialized visual: its lines and their measured cell widths.
type item struct {
	lines  []string
	widths []int
	width  int
}

func measureItem(content string) item {
	lines := strings.Split(content, "\n")
	widths := make([]int, len(lines))
	width := 0
	for i, line := range lines {
		widths[i] = ansi.StringWidth(line)
		if widths[i] > width {
			width = widths[i]
		}
	}
	return item{lines: lines, widths: widths, width: width}
}

// stepMsg asks the ticker to run one driver step. The generation is
// captured when the timer is scheduled; a message from a generation that
// has since been reset is dropped.
type stepMsg struct {
	gen int
}

// Model is the ticker widget. Use it as a sub-model: forward messages to
// Update and place View output in the parent view.
type Model struct {
	source    Source
	direction Direction
	scale     float64
	style     lipgloss.Style

	pretickDelay   time.Duration
	preswitchDelay time.Duration

	springy    bool
	springFreq float64
	springDamp float64

	width  int
	height int

	drv     *driver
	gen     int
	visible []item
	rects   []rect
}

// Option configures a Model at construction time.
type Option func(*Model)

// WithSource sets the initial item source.
func WithSource(src Source) Option {
	return func(m *Model) { m.source = src }
}

// WithDirection sets the initial scroll and switch directions.
func WithDirection(d Direction) Option {
	return func(m *Model) { m.direction = d }
}

// WithScale sets the density scale multiplying the nominal step sizes.
func WithScale(scale float64) Option {
	return func(m *Model) {
		if scale > 0 {
			m.scale = scale
		}
	}
}

// WithStyle sets the frame style. The content box is the widget size minus
// the style's frame.
func WithStyle(s lipgloss.Style) Option {
	return func(m *Model) { m.style = s }
}

// WithDelays overrides the pauses before and after the horizontal scroll.
// Non-positive values are ignored: the pauses are what let the machine
// yield between cycles, so they must stay above zero.
func WithDelays(pretick, preswitch time.Duration) Option {
	return func(m *Model) {
		if pretick > 0 {
			m.pretickDelay = pretick
		}
		if preswitch > 0 {
			m.preswitchDelay = preswitch
		}
	}
}

// WithSpring replaces the constant-velocity motion with a damped spring of
// the given angular frequency and damping ratio.
func WithSpring(frequency, damping float64) Option {
	return func(m *Model) {
		m.springy = true
		m.springFreq = frequency
		m.springDamp = damping
	}
}

// New creates a ticker. The machine starts on Init.
func New(opts ...Option) *Model {
	m := &Model{
		direction:      DefaultDirection,
		scale:          1.0,
		pretickDelay:   PretickDelay,
		preswitchDelay: PreswitchDelay,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init starts the ticker if the source has items.
func (m *Model) Init() tea.Cmd {
	return m.restart()
}

// Update consumes the ticker's own step messages and ignores everything
// else. Step messages carry the generation they were scheduled under, so a
// timer that was pending across a reset fires as a no-op.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	step, ok := msg.(stepMsg)
	if !ok {
		return nil
	}
	if step.gen != m.gen || m.drv == nil || m.drv.cancelled {
		return nil
	}
	return m.schedule(m.drv.step())
}

// SetSize sets the widget size in cells, including the style frame.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.relayout()
}

// SetSource replaces the item source and restarts the ticker. Setting the
// source the widget already has is a no-op.
func (m *Model) SetSource(src Source) tea.Cmd {
	if src == m.source {
		return nil
	}
	m.source = src
	return m.restart()
}

// SetDirection replaces the directions and restarts the ticker.
func (m *Model) SetDirection(d Direction) tea.Cmd {
	m.direction = d
	return m.restart()
}

// Stop marks the current driver inert. A pending step message for it fires
// as a no-op.
func (m *Model) Stop() {
	if m.drv != nil {
		m.drv.cancel()
	}
}

// Current returns the index of the item being shown, reduced modulo the
// source count.
func (m *Model) Current() int {
	if m.drv == nil || m.source == nil || m.source.Len() == 0 {
		return 0
	}
	return m.drv.current % m.source.Len()
}

// State returns the active phase of the ticker.
func (m *Model) State() State {
	if m.drv == nil {
		return StatePretick
	}
	return m.drv.state
}

// Direction returns the configured directions.
func (m *Model) Direction() Direction { return m.direction }

// Source returns the configured item source.
func (m *Model) Source() Source { return m.source }

// restart cancels any in-flight driver, clears all animation state and
// starts a fresh driver instance. If the source is empty nothing is
// materialized and no timer is scheduled.
func (m *Model) restart() tea.Cmd {
	if m.drv != nil {
		m.drv.cancel()
	}
	m.gen++
	m.visible = nil
	m.rects = nil
	m.drv = newDriver(m, m.tickMotion(), m.switchMotion(), m.pretickDelay, m.preswitchDelay)
	if m.source == nil || m.source.Len() == 0 {
		return nil
	}
	m.materialize(0)
	return m.schedule(m.drv.start())
}

func (m *Model) tickMotion() Motion {
	if m.springy {
		return newSpringMotion(m.springFreq, m.springDamp)
	}
	return LinearMotion{Step: TickStepSize * m.scale}
}

func (m *Model) switchMotion() Motion {
	if m.springy {
		return newSpringMotion(m.springFreq, m.springDamp)
	}
	return LinearMotion{Step: SwitchStepSize * m.scale}
}

// schedule turns a driver delay into a step command for the current
// generation. A non-positive delay means the driver was cancelled.
func (m *Model) schedule(delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return nil
	}
	gen := m.gen
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return stepMsg{gen: gen}
	})
}

// contentSize returns the content box, the widget size minus the style
// frame, floored at zero.
func (m *Model) contentSize() (int, int) {
	w := m.width - m.style.GetHorizontalFrameSize()
	h := m.height - m.style.GetVerticalFrameSize()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// materialize renders the item at position, reduced modulo the source
// count, and appends it to the visible items.
func (m *Model) materialize(position int) {
	count := m.source.Len()
	if count == 0 {
		return
	}
	m.visible = append(m.visible, measureItem(m.source.Item(position%count)))
	m.relayout()
}

// discardFirst drops the outgoing item once a switch completes.
func (m *Model) discardFirst() {
	if len(m.visible) == 0 {
		return
	}
	m.visible = m.visible[1:]
	m.relayout()
}

// relayout re-runs the placement pass.
func (m *Model) relayout() {
	m.layout()
}
