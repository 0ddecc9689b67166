package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/huh/spinner"
)

// Spinner runs long actions such as package installs behind an
// indeterminate spinner.
type Spinner struct {
	ctx      context.Context
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewSpinner creates a Spinner. In headless mode the title is printed on
// its own line to w.
func NewSpinner(ctx context.Context, theme *Theme, hm *HeadlessManager, w io.Writer) *Spinner {
	return &Spinner{ctx: ctx, theme: theme, headless: hm, writer: w}
}

// Wrap runs fn while the spinner shows title and returns fn's error. It
// satisfies generator.Wrapper.
func (s *Spinner) Wrap(title string, fn func() error) error {
	if s.headless.IsHeadless() {
		_, _ = fmt.Fprintf(s.writer, "%s\n", title)
		return fn()
	}

	var actionErr error
	err := spinner.New().
		Context(s.ctx).
		Type(spinner.Dots).
		Style(s.theme.style(s.theme.Colors.Primary)).
		Title(" " + title).
		Action(func() {
			actionErr = fn()
		}).
		Run()
	if err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}
	return actionErr
}
