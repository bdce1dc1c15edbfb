package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"framer/internal/processor"
)

// Model renders transform progress from a stream of processor updates. It
// quits once the update channel is closed.
type Model struct {
	updates      <-chan processor.ProgressUpdate
	started      time.Time
	width        int
	total        int
	processed    int
	errors       int
	bytesWritten int64
	quitting     bool
}

type doneMsg struct{}

type updateMsg processor.ProgressUpdate

func NewModel(updates <-chan processor.ProgressUpdate) Model {
	return Model{updates: updates, started: time.Now()}
}

func (m Model) Init() tea.Cmd {
	return listenForUpdates(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		m.total += msg.TotalDelta
		m.processed += msg.ProcessedDelta
		m.errors += msg.ErrorDelta
		m.bytesWritten += msg.BytesWrittenDelta
		return m, listenForUpdates(m.updates)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	barWidth := 40
	if m.width > 0 {
		barWidth = int(math.Min(60, float64(m.width-10)))
		if barWidth < 20 {
			barWidth = 20
		}
	}

	ratio := 0.0
	if m.total > 0 {
		ratio = math.Min(1, float64(m.processed)/float64(m.total))
	}

	errorStyle := dimStyle
	if m.errors > 0 {
		errorStyle = warnStyle
	}

	lines := []string{
		titleStyle.Render("framer 🖼"),
		labelStyle.Render(fmt.Sprintf("Images: %d/%d", m.processed, m.total)) + errorStyle.Render(fmt.Sprintf("  errors:%d", m.errors)),
		labelStyle.Render(fmt.Sprintf("Written: %s", FormatBytes(m.bytesWritten))),
		dimStyle.Render(fmt.Sprintf("Elapsed: %s", time.Since(m.started).Round(time.Millisecond))),
		barStyle.Render(renderBar(barWidth, ratio)),
	}

	return strings.Join(lines, "\n")
}

func listenForUpdates(updates <-chan processor.ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return updateMsg(update)
	}
}

func renderBar(width int, ratio float64) string {
	filled := int(math.Round(ratio * float64(width)))
	filled = max(0, min(filled, width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

// FormatBytes renders n with a binary unit suffix.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	labelStyle = lipgloss.NewStyle().Foreground(ColorInk)
	barStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	dimStyle   = lipgloss.NewStyle().Foreground(ColorDim)
	warnStyle  = lipgloss.NewStyle().Foreground(ColorWarn)
)
