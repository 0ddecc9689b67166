package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressBar tracks a fixed number of steps.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// PhaseReporter shows generator phases as a progress bar. It satisfies
// generator.Reporter.
type PhaseReporter struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer

	mu  sync.Mutex
	bar ProgressBar
}

// NewPhaseReporter creates a PhaseReporter writing to w.
func NewPhaseReporter(theme *Theme, hm *HeadlessManager, w io.Writer) *PhaseReporter {
	return &PhaseReporter{theme: theme, headless: hm, writer: w}
}

// Start opens a bar with total steps.
func (r *PhaseReporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.headless.IsHeadless() || r.theme.NoColor {
		r.bar = newHeadlessProgressBar(total, r.writer)
		return
	}
	r.bar = newInteractiveProgressBar(r.theme, total, r.writer)
}

// Step advances the bar and shows name.
func (r *PhaseReporter) Step(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar == nil {
		return
	}
	r.bar.SetTitle(name)
	r.bar.Increment(1)
}

// Wrap shows title on the bar while fn runs. It lets package installs
// report through the bar instead of starting a competing spinner.
func (r *PhaseReporter) Wrap(title string, fn func() error) error {
	r.mu.Lock()
	if r.bar != nil {
		r.bar.SetTitle(title)
	}
	r.mu.Unlock()
	return fn()
}

// Done closes the bar.
func (r *PhaseReporter) Done() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar == nil {
		return
	}
	r.bar.Done()
	r.bar = nil
}

// --- interactiveProgressBar ---

// progressIncrMsg is sent to increment the progress bar.
type progressIncrMsg int

// progressTitleMsg is sent to update the progress bar title.
type progressTitleMsg string

// progressDoneMsg is sent to complete the progress bar.
type progressDoneMsg struct{}

// progressModel is the bubbletea Model for the animated progress bar.
type progressModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newProgressModel(theme *Theme, total int) progressModel {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
	)
	if !theme.NoColor {
		bar = progress.New(
			progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
			progress.WithWidth(40),
		)
	}
	return progressModel{bar: bar, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressIncrMsg:
		m.current = min(m.current+int(msg), m.total)
		return m, nil
	case progressTitleMsg:
		m.title = string(msg)
		return m, nil
	case progressDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return m.bar.ViewAs(pct) + " " + stepLine(m.current, m.total, m.title)
}

func stepLine(current, total int, title string) string {
	return fmt.Sprintf("[%d/%d] %s\n", current, total, title)
}

// interactiveProgressBar implements ProgressBar with an animated bubbles progress bar.
type interactiveProgressBar struct {
	program *tea.Program
	once    sync.Once
}

// newInteractiveProgressBar starts the program in the background. Input is
// not read so that ctrl-c keeps reaching the process signal handler.
func newInteractiveProgressBar(theme *Theme, total int, w io.Writer) *interactiveProgressBar {
	p := tea.NewProgram(newProgressModel(theme, total), tea.WithOutput(w), tea.WithInput(nil))
	pb := &interactiveProgressBar{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return pb
}

// Increment advances the progress by n.
func (b *interactiveProgressBar) Increment(n int) {
	b.program.Send(progressIncrMsg(n))
}

// SetTitle updates the progress bar title.
func (b *interactiveProgressBar) SetTitle(title string) {
	b.program.Send(progressTitleMsg(title))
}

// Done completes the progress bar at 100%.
func (b *interactiveProgressBar) Done() {
	b.once.Do(func() {
		b.program.Send(progressDoneMsg{})
		b.program.Wait()
	})
}

// --- headlessProgressBar ---

// headlessProgressBar writes one line per step.
type headlessProgressBar struct {
	title   string
	total   int
	current int
	writer  io.Writer
}

func newHeadlessProgressBar(total int, w io.Writer) *headlessProgressBar {
	return &headlessProgressBar{total: total, writer: w}
}

// Increment advances the progress by n and writes a log line.
func (b *headlessProgressBar) Increment(n int) {
	b.current = min(b.current+n, b.total)
	_, _ = io.WriteString(b.writer, stepLine(b.current, b.total, b.title))
}

// SetTitle updates the progress bar title.
func (b *headlessProgressBar) SetTitle(title string) {
	b.title = title
}

// Done marks the bar complete without further output.
func (b *headlessProgressBar) Done() {
	b.current = b.total
}
