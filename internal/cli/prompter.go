package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/mvpcoach/internal/cli/formatter"
	"github.com/alexanderramin/mvpcoach/internal/questions"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// errAborted means the user left the wizard. Recorded answers are kept.
var errAborted = errors.New("wizard aborted")

// option is one entry of a Choose prompt.
type option struct {
	Key   string
	Label string
}

// Prompter collects answers from the user.
type Prompter interface {
	// Ask returns the answer to q. Required questions never return blank.
	Ask(q questions.Question) (string, error)
	// Choose returns the Key of the picked option. The first option is the
	// default.
	Choose(title string, options []option) (string, error)
}

func newPrompter(in io.Reader, out io.Writer, interactive bool) Prompter {
	if interactive {
		return &huhPrompter{in: in, out: out}
	}
	return &linePrompter{in: in, out: out}
}

func mvpHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateAnswer is shared by both prompters.
func validateAnswer(q questions.Question, s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		if q.Optional {
			return nil
		}
		return errors.New("an answer is required")
	}
	if q.Kind == questions.KindNumber {
		if _, ok := questions.ParseCount(s); !ok {
			return errors.New("please enter a number")
		}
	}
	return nil
}

// huhPrompter renders each prompt as a one-field huh form.
type huhPrompter struct {
	in  io.Reader
	out io.Writer
}

func newForm(field huh.Field) *huh.Form {
	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(mvpHuhTheme()).
		WithShowHelp(false)
}

// answerForm binds a free-text or list answer to q. Yes/no questions use
// confirmForm instead.
func answerForm(q questions.Question, answer *string) *huh.Form {
	validate := func(s string) error { return validateAnswer(q, s) }
	if q.Kind == questions.KindList {
		return newForm(huh.NewText().Title(q.Text).Description(q.Help).Lines(5).Value(answer).Validate(validate))
	}
	return newForm(huh.NewInput().Title(q.Text).Description(q.Help).Value(answer).Validate(validate))
}

func confirmForm(q questions.Question, yes *bool) *huh.Form {
	return newForm(huh.NewConfirm().Title(q.Text).Description(q.Help).Affirmative("Yes").Negative("No").Value(yes))
}

func chooseForm(title string, options []option, choice *string) *huh.Form {
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.Key))
	}
	return newForm(huh.NewSelect[string]().Title(title).Options(opts...).Value(choice))
}

func (p *huhPrompter) run(form *huh.Form) error {
	err := form.WithProgramOptions(tea.WithInput(p.in), tea.WithOutput(p.out)).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return errAborted
	}
	return err
}

func (p *huhPrompter) Ask(q questions.Question) (string, error) {
	if q.Kind == questions.KindYesNo {
		yes := false
		if err := p.run(confirmForm(q, &yes)); err != nil {
			return "", err
		}
		if yes {
			return "yes", nil
		}
		return "no", nil
	}

	var answer string
	if err := p.run(answerForm(q, &answer)); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func (p *huhPrompter) Choose(title string, options []option) (string, error) {
	if len(options) == 0 {
		return "", errors.New("nothing to choose from")
	}
	choice := options[0].Key
	if err := p.run(chooseForm(title, options, &choice)); err != nil {
		return "", err
	}
	return choice, nil
}

// linePrompter reads plain lines, for pipes and --plain. List questions
// accept comma separated items on one line.
type linePrompter struct {
	in  io.Reader
	out io.Writer
}

func (p *linePrompter) Ask(q questions.Question) (string, error) {
	fmt.Fprint(p.out, formatter.FormatQuestion(q))
	for {
		fmt.Fprint(p.out, "> ")
		text, err := readPromptLine(p.in)
		if err != nil && strings.TrimSpace(text) == "" {
			if errors.Is(err, io.EOF) {
				return "", errAborted
			}
			return "", err
		}
		if verr := validateAnswer(q, text); verr != nil {
			fmt.Fprintln(p.out, formatter.StyleRed.Render(verr.Error()))
			continue
		}
		return strings.TrimSpace(text), nil
	}
}

func (p *linePrompter) Choose(title string, options []option) (string, error) {
	if len(options) == 0 {
		return "", errors.New("nothing to choose from")
	}
	fmt.Fprintln(p.out, formatter.Bold(title))
	for i, o := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, o.Label)
	}
	for {
		fmt.Fprintf(p.out, "Choice [%s]: ", options[0].Key)
		text, err := readPromptLine(p.in)
		if err != nil && strings.TrimSpace(text) == "" {
			if errors.Is(err, io.EOF) {
				return "", errAborted
			}
			return "", err
		}
		if key, ok := matchOption(strings.TrimSpace(text), options); ok {
			return key, nil
		}
		fmt.Fprintln(p.out, formatter.Dim("Pick a number or an option name."))
	}
}

// matchOption resolves blank input to the default, then tries a 1-based
// index, the key and the key's first letter.
func matchOption(text string, options []option) (string, bool) {
	if text == "" {
		return options[0].Key, true
	}
	if n, err := strconv.Atoi(text); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1].Key, true
		}
		return "", false
	}
	text = strings.ToLower(text)
	for _, o := range options {
		if text == o.Key {
			return o.Key, true
		}
	}
	if len(text) == 1 {
		for _, o := range options {
			if text[0] == o.Key[0] {
				return o.Key, true
			}
		}
	}
	return "", false
}

// readPromptLine reads until either LF or CR so Enter works in normal and raw terminal modes.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := in.Read(one[:])
		if n > 0 {
			switch one[0] {
			case '\n', '\r':
				return string(buf), nil
			default:
				buf = append(buf, one[0])
			}
		}

		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}
