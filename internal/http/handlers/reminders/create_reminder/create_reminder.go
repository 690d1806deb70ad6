package createreminder

import (
	"edumentor/internal/core/domain/reminder"
	"edumentor/internal/core/domain/user"
	"edumentor/internal/core/services"
	createreminder "edumentor/internal/core/services/create_reminder"
	"edumentor/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[createreminder.Input, createreminder.Result]
}

func New(
	service services.Service[createreminder.Input, createreminder.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	At      string `json:"at"`
	Message string `json:"message"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.At, validation.Required, validation.Length(5, 5)),
		validation.Field(&i.Message, validation.Length(0, 1024)),
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
		createreminder.Input{RawTime: input.At, Message: input.Message},
	)
	if errors.Is(err, reminder.ErrInvalidTime) {
		response.RenderError(rw, "invalid time, expected HH:MM", http.StatusUnprocessableEntity)
		return
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	entry := response.ReminderEntry{}
	entry.FromDomainEntry(result.Entry)
	response.Render(rw, entry, http.StatusCreated)
}
