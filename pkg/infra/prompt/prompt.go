package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgmigrate/pkg/domain/interfaces"
	"github.com/m-mizutani/orgmigrate/pkg/domain/types"
)

// Survey asks on the controlling terminal
type Survey struct {
	opts []survey.AskOpt
}

var _ interfaces.Prompter = (*Survey)(nil)

func NewSurvey(opts ...survey.AskOpt) *Survey {
	return &Survey{opts: opts}
}

// Confirm returns types.ErrInterrupted when the operator interrupts the prompt
func (x *Survey) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, goerr.Wrap(types.ErrInterrupted, "context is done before prompt", goerr.V("cause", err))
	}

	var ok bool
	q := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(q, &ok, x.opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, goerr.Wrap(types.ErrInterrupted, "prompt interrupted")
		}
		return false, goerr.Wrap(err, "failed to ask confirmation", goerr.V("message", message))
	}

	return ok, nil
}

// Static answers every question with the same value. It serves
// non-interactive runs such as --yes.
type Static struct {
	answer bool
}

var _ interfaces.Prompter = (*Static)(nil)

func NewStatic(answer bool) *Static {
	return &Static{answer: answer}
}

func (x *Static) Confirm(ctx context.Context, message string) (bool, error) {
	return x.answer, nil
}
