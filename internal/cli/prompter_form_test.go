package cli

import (
	"testing"

	"github.com/alexanderramin/mvpcoach/internal/questions"
	"github.com/alexanderramin/mvpcoach/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestAnswerForm_ValidatesBeforeSubmitting(t *testing.T) {
	var answer string
	d := teatest.New(t, answerForm(scriptQuestion(t, questions.IDUserScale), &answer))

	d.Submit("")
	assert.Equal(t, huh.StateNormal, d.Form().State, "blank answers are rejected")

	d.Submit("250")
	assert.Equal(t, huh.StateCompleted, d.Form().State)
	assert.Equal(t, "250", answer)
}

func TestAnswerForm_CtrlCAborts(t *testing.T) {
	var answer string
	d := teatest.New(t, answerForm(scriptQuestion(t, questions.IDProjectName), &answer))

	d.Type("List")
	d.Press(tea.KeyCtrlC)
	assert.Equal(t, huh.StateAborted, d.Form().State)
}

func TestChooseForm_PicksHighlightedOption(t *testing.T) {
	choice := actionKeep
	opts := []option{
		{Key: actionKeep, Label: "Keep"},
		{Key: actionRevise, Label: "Revise"},
		{Key: actionQuit, Label: "Quit"},
	}
	d := teatest.New(t, chooseForm("What next?", opts, &choice))

	d.Press(tea.KeyDown)
	d.Press(tea.KeyEnter)
	assert.Equal(t, huh.StateCompleted, d.Form().State)
	assert.Equal(t, actionRevise, choice)
}
