// Package teatest drives bubbletea models from tests without a tea.Program.
//
// Messages go straight to Update and every returned Cmd is run inline, so a
// huh form can be filled in key by key and inspected afterwards. Cmds that
// block (cursor blink timers) are dropped after a short wait.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// maxDepth bounds how many chained Cmds one message may trigger.
const maxDepth = 100

// cmdWait separates instant Cmds from timer-driven ones.
const cmdWait = 10 * time.Millisecond

// Driver feeds key presses to a model and keeps the latest version of it.
type Driver struct {
	t     *testing.T
	model tea.Model

	// Quit is set once the model asks to exit.
	Quit bool
}

// New wraps model and runs its Init command.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	d := &Driver{t: t, model: model}
	d.Send(tea.WindowSizeMsg{Width: 80, Height: 24})
	d.run(model.Init(), 0)
	return d
}

// Model returns the model after every message sent so far.
func (d *Driver) Model() tea.Model {
	return d.model
}

// Form returns the model as a huh form, failing the test if it is not one.
func (d *Driver) Form() *huh.Form {
	d.t.Helper()
	f, ok := d.model.(*huh.Form)
	if !ok {
		d.t.Fatalf("teatest: model is %T, not *huh.Form", d.model)
	}
	return f
}

// Send passes msg to Update and runs whatever it returns.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.Quit {
		return
	}
	next, cmd := d.model.Update(msg)
	d.model = next
	d.run(cmd, 0)
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.t.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Press sends a special key such as tea.KeyEnter or tea.KeyDown.
func (d *Driver) Press(k tea.KeyType) {
	d.t.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// Submit types s and presses Enter.
func (d *Driver) Submit(s string) {
	d.t.Helper()
	d.Type(s)
	d.Press(tea.KeyEnter)
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.t.Logf("teatest: stopped after %d chained commands", maxDepth)
		return
	}

	msg := runWithin(cmd, cmdWait)
	if msg == nil || isBlink(msg) {
		return
	}

	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range m {
			d.run(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quit = true
	}

	next, cmd := d.model.Update(msg)
	d.model = next
	if !d.Quit {
		d.run(cmd, depth+1)
	}
}

func runWithin(cmd tea.Cmd, wait time.Duration) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(wait):
		return nil
	}
}

// isBlink matches the unexported blink messages of the bubbles cursor.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
