package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

func testTheme() *Theme {
	theme := DefaultTheme()
	theme.NoColor = true
	return theme
}

func headless() *HeadlessManager {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	return hm
}

func TestHeadlessManagerForce(t *testing.T) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)
	if hm.IsHeadless() {
		t.Error("forced interactive should not be headless")
	}
	hm.ForceHeadless(true)
	if !hm.IsHeadless() {
		t.Error("forced headless should be headless")
	}

	hm.ClearForce()
	t.Setenv("CI", "true")
	if !hm.IsHeadless() {
		t.Error("CI=true should be headless")
	}
}

func TestPhaseReporterHeadless(t *testing.T) {
	var buf bytes.Buffer
	r := NewPhaseReporter(testTheme(), headless(), &buf)

	r.Step("ignored before start")
	r.Start(2)
	r.Step("Copying framework templates")
	if err := r.Wrap("Installing", func() error { return nil }); err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	r.Step("Writing project manifest")
	r.Step("overflow")
	r.Done()
	r.Done()

	want := "[1/2] Copying framework templates\n" +
		"[2/2] Writing project manifest\n" +
		"[2/2] overflow\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPhaseReporterWrapError(t *testing.T) {
	r := NewPhaseReporter(testTheme(), headless(), io.Discard)
	boom := errors.New("boom")
	if err := r.Wrap("Installing", func() error { return boom }); !errors.Is(err, boom) {
		t.Errorf("Wrap() = %v, want boom", err)
	}
}

func TestProgressModel(t *testing.T) {
	m := newProgressModel(testTheme(), 3)

	var tm tea.Model = m
	tm, _ = tm.Update(progressTitleMsg("Running generate hooks"))
	tm, _ = tm.Update(progressIncrMsg(2))
	view := tm.View()
	if !strings.Contains(view, "[2/3] Running generate hooks") {
		t.Errorf("View() = %q", view)
	}

	tm, _ = tm.Update(progressIncrMsg(5))
	if got := tm.(progressModel).current; got != 3 {
		t.Errorf("current = %d, want capped at 3", got)
	}

	tm, cmd := tm.Update(progressDoneMsg{})
	if cmd == nil {
		t.Error("done should quit the program")
	}
	if tm.View() != "" {
		t.Error("finished bar should render nothing")
	}

	// Frame messages for another bar are ignored by the bubbles model.
	if _, cmd := m.Update(progress.FrameMsg{}); cmd != nil {
		t.Error("unexpected command for foreign frame")
	}
}

func TestInteractiveProgressBar(t *testing.T) {
	p := tea.NewProgram(newProgressModel(testTheme(), 2),
		tea.WithInput(strings.NewReader("")),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
	b := &interactiveProgressBar{program: p}
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run()
	}()

	b.SetTitle("Copying")
	b.Increment(1)
	b.Done()
	b.Done()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("tea.Program did not exit within 2 second timeout")
	}
}

func TestSpinnerHeadless(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(t.Context(), testTheme(), headless(), &buf)

	ran := false
	err := s.Wrap("Adding zod", func() error {
		ran = true
		return nil
	})
	if err != nil || !ran {
		t.Fatalf("Wrap() err=%v ran=%v", err, ran)
	}
	if buf.String() != "Adding zod\n" {
		t.Errorf("output = %q", buf.String())
	}

	boom := errors.New("exit status 1")
	if err := s.Wrap("Installing", func() error { return boom }); !errors.Is(err, boom) {
		t.Errorf("Wrap() = %v, want action error", err)
	}
}

func TestRendererMarkdown(t *testing.T) {
	r := NewRenderer(testTheme(), headless())
	out, err := r.Markdown("## Stripe\n\n- Add your STRIPE_SECRET_KEY to .env\n")
	if err != nil {
		t.Fatalf("Markdown: %v", err)
	}
	if !strings.Contains(out, "Stripe") || !strings.Contains(out, "STRIPE_SECRET_KEY") {
		t.Errorf("Markdown() = %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("headless markdown should not contain escape sequences")
	}
}

func TestRendererTable(t *testing.T) {
	r := NewRenderer(testTheme(), headless())
	out := r.Table([]string{"ID", "NAME"}, [][]string{
		{"react", "React"},
		{"vue", "Vue"},
	})
	for _, want := range []string{"ID", "NAME", "react", "React", "vue"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRendererSuccessCard(t *testing.T) {
	r := NewRenderer(testTheme(), headless())
	out := r.SuccessCard("Project created", []string{"cd my-app", "npm run dev"})
	for _, want := range []string{"Project created", "cd my-app", "npm run dev", "╭"} {
		if !strings.Contains(out, want) {
			t.Errorf("card missing %q:\n%s", want, out)
		}
	}
}

func TestRendererWarnings(t *testing.T) {
	r := NewRenderer(testTheme(), headless())
	got := r.Warnings([]string{"mcp: unknown server", "auth: schema missing"})
	want := "! mcp: unknown server\n! auth: schema missing\n"
	if got != want {
		t.Errorf("Warnings() = %q, want %q", got, want)
	}
}
