package explaintopic

import (
	"edumentor/internal/core/domain/assistant"
	ratelimiter "edumentor/internal/core/domain/rate_limiter"
	"edumentor/internal/core/domain/user"
	"edumentor/internal/core/services"
	explaintopic "edumentor/internal/core/services/explain_topic"
	"edumentor/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[explaintopic.Input, explaintopic.Result]
}

func New(
	service services.Service[explaintopic.Input, explaintopic.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Topic string `json:"topic"`
}

type Result struct {
	Explanation string `json:"explanation"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Topic, validation.Required, validation.Length(1, 1024)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		explaintopic.Input{Topic: input.Topic},
	)
	if errors.Is(err, ratelimiter.ErrRateLimitExceeded) {
		response.RenderRateLimitExceeded(rw)
		return
	}
	if errors.Is(err, assistant.ErrEmptyPrompt) {
		response.RenderError(rw, "topic must not be empty", http.StatusUnprocessableEntity)
		return
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderError(rw, "assistant is unavailable", http.StatusBadGateway)
		return
	}

	response.Render(rw, Result{Explanation: result.Text}, http.StatusOK)
}
