package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"framer/internal/naming"
	"framer/internal/processor"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestProgressModelCountsUpdates(t *testing.T) {
	updates := make(chan processor.ProgressUpdate, 4)
	var m tea.Model = NewModel(updates)

	for _, u := range []processor.ProgressUpdate{
		{TotalDelta: 3},
		{ProcessedDelta: 1, BytesWrittenDelta: 2048},
		{ProcessedDelta: 1, ErrorDelta: 1},
	} {
		m, _ = m.Update(updateMsg(u))
	}

	pm := m.(Model)
	if pm.total != 3 || pm.processed != 2 || pm.errors != 1 || pm.bytesWritten != 2048 {
		t.Fatalf("unexpected counters: %+v", pm)
	}
	view := pm.View()
	if !strings.Contains(view, "Images: 2/3") || !strings.Contains(view, "2.0 KiB") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestProgressModelQuitsWhenChannelCloses(t *testing.T) {
	updates := make(chan processor.ProgressUpdate)
	close(updates)

	m := NewModel(updates)
	msg := m.Init()()
	if _, ok := msg.(doneMsg); !ok {
		t.Fatalf("expected doneMsg, got %T", msg)
	}
	next, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if next.View() != "" {
		t.Fatal("expected empty view after quitting")
	}
}

func TestTextModelRequiresValue(t *testing.T) {
	var m tea.Model = NewTextModel("Where are the images?", "")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("empty answer should not submit")
	}
	if !strings.Contains(m.View(), emptyAnswer) {
		t.Fatalf("expected validation hint, got %q", m.View())
	}

	m, _ = m.Update(runes("phots"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(runes("os"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected submit")
	}
	if got := m.(TextModel).Value(); got != "photos" {
		t.Fatalf("Value() = %q, want %q", got, "photos")
	}
}

func TestTextModelInitialValue(t *testing.T) {
	m := NewTextModel("Max width of image", "640")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || next.(TextModel).Value() != "640" {
		t.Fatalf("expected initial value to be accepted")
	}
}

func TestTextModelAbort(t *testing.T) {
	next, _ := NewTextModel("q", "").Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(TextModel).aborted {
		t.Fatal("expected aborted")
	}
}

func TestConfirmModel(t *testing.T) {
	tests := []struct {
		name string
		def  bool
		key  tea.KeyMsg
		want bool
	}{
		{"enter keeps default yes", true, tea.KeyMsg{Type: tea.KeyEnter}, true},
		{"enter keeps default no", false, tea.KeyMsg{Type: tea.KeyEnter}, false},
		{"y answers yes", false, runes("y"), true},
		{"n answers no", true, runes("n"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, cmd := NewConfirmModel("Should the images be cropped?", tt.def).Update(tt.key)
			if cmd == nil {
				t.Fatal("expected quit")
			}
			if got := next.(ConfirmModel).value; got != tt.want {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfirmModelIgnoresOtherKeys(t *testing.T) {
	next, cmd := NewConfirmModel("q", true).Update(runes("x"))
	if cmd != nil || next.(ConfirmModel).done {
		t.Fatal("unexpected submit on unrelated key")
	}
}

func TestSelectModel(t *testing.T) {
	var m tea.Model = NewSelectModel("How should output images be named?", naming.Choices, naming.Same)
	if got := m.(SelectModel).Selected(); got != naming.Same {
		t.Fatalf("default = %v", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if got := m.(SelectModel).Selected(); got != naming.Numerical {
		t.Fatalf("Selected() = %v, want numerical", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if got := m.(SelectModel).Selected(); got != naming.Same {
		t.Fatalf("Selected() after up = %v, want same", got)
	}
}

func TestSelectModelStartsAtDefault(t *testing.T) {
	m := NewSelectModel("q", naming.Choices, naming.Numerical)
	if m.Selected() != naming.Numerical {
		t.Fatalf("expected numerical preselected")
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary([]SummaryRow{
		{Label: "Images written", Value: "2"},
		{Label: "Failed", Value: "0"},
	})
	for _, want := range []string{"Images written", "Failed", "2", "0", "---"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
