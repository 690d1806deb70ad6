package explaintopic

import (
	"context"
	"edumentor/internal/core/domain/assistant"
	e "edumentor/internal/core/domain/errors"
	"edumentor/internal/core/domain/logging"
	"edumentor/internal/core/domain/user"
	"edumentor/internal/core/services"
	"edumentor/internal/core/services/auth"
	"fmt"
	"strings"
)

const promptTemplate = "Explain the concept of %q in about 300 words, " +
	"in clear beginner-friendly language with a real-world example, " +
	"then add a realistic interviewer-style question on the topic " +
	"and finish with a one-line summary."

type Input struct {
	User  user.User
	Topic string
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

func (i Input) GetRateLimitKey() string {
	return "explain-topic::" + string(i.User.Email)
}

type Result struct {
	Text string
}

type service struct {
	log           logging.Logger
	textGenerator assistant.TextGenerator
}

func New(
	log logging.Logger,
	textGenerator assistant.TextGenerator,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if textGenerator == nil {
		panic(e.NewNilArgumentError("textGenerator"))
	}
	return &service{log: log, textGenerator: textGenerator}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	topic := strings.TrimSpace(input.Topic)
	if topic == "" {
		return result, assistant.ErrEmptyPrompt
	}

	text, err := s.textGenerator.GenerateText(ctx, fmt.Sprintf(promptTemplate, topic))
	if err != nil {
		s.log.Error(
			ctx,
			"Could not generate explanation.",
			logging.Entry("topic", topic),
			logging.Entry("err", err),
		)
		return result, err
	}

	return Result{Text: text}, nil
}
