// Package prompt contains adapters that ask the user yes/no questions.
package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/example/apihelper/internal/ports/secondary"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt aborted")

// SurveyConfirmer asks on the terminal.
type SurveyConfirmer struct{}

// NewSurveyConfirmer creates a terminal confirmer.
func NewSurveyConfirmer() *SurveyConfirmer {
	return &SurveyConfirmer{}
}

// Confirm asks message and blocks until the user answers.
func (c *SurveyConfirmer) Confirm(ctx context.Context, message string, defaultAnswer bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var out bool
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultAnswer,
	}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}

// StaticConfirmer answers without asking: with Answer when set, otherwise
// with the question's default. Used for --no-interaction and in tests.
type StaticConfirmer struct {
	Answer *bool
	Asked  []string
}

// NewStaticConfirmer returns a confirmer that always accepts the default.
func NewStaticConfirmer() *StaticConfirmer {
	return &StaticConfirmer{}
}

// Always returns a confirmer that always answers answer.
func Always(answer bool) *StaticConfirmer {
	return &StaticConfirmer{Answer: &answer}
}

// Confirm records message and returns the fixed answer.
func (c *StaticConfirmer) Confirm(ctx context.Context, message string, defaultAnswer bool) (bool, error) {
	c.Asked = append(c.Asked, message)
	if c.Answer != nil {
		return *c.Answer, nil
	}
	return defaultAnswer, nil
}

// Ensure confirmers implement the interface
var (
	_ secondary.Confirmer = (*SurveyConfirmer)(nil)
	_ secondary.Confirmer = (*StaticConfirmer)(nil)
)
