package createstudyplan

import (
	"edumentor/internal/core/domain/studyplan"
	"edumentor/internal/core/domain/user"
	"edumentor/internal/core/services"
	createstudyplan "edumentor/internal/core/services/create_study_plan"
	"edumentor/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[createstudyplan.Input, createstudyplan.Result]
}

func New(
	service services.Service[createstudyplan.Input, createstudyplan.Result],
) *Handler {
	return &Handler{service: service}
}

type Input struct {
	Name          string   `json:"name"`
	Goal          string   `json:"goal"`
	DurationWeeks int      `json:"duration_weeks"`
	HoursPerDay   int      `json:"hours_per_day"`
	Topics        []string `json:"topics"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.Goal, validation.Length(0, 1024)),
		validation.Field(&i.DurationWeeks, validation.Required, validation.Min(1), validation.Max(52)),
		validation.Field(&i.HoursPerDay, validation.Min(0), validation.Max(24)),
		validation.Field(&i.Topics, validation.Required, validation.Length(1, 100)),
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
		createstudyplan.Input{
			Name:          input.Name,
			Goal:          input.Goal,
			DurationWeeks: input.DurationWeeks,
			HoursPerDay:   input.HoursPerDay,
			Topics:        input.Topics,
		},
	)
	if errors.Is(err, studyplan.ErrNoTopics) || errors.Is(err, studyplan.ErrInvalidDuration) {
		response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
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

	plan := response.StudyPlan{}
	plan.FromDomainPlan(result.Plan)
	response.Render(rw, plan, http.StatusCreated)
}
