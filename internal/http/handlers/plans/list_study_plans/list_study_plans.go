package liststudyplans

import (
	"edumentor/internal/core/domain/user"
	"edumentor/internal/core/services"
	liststudyplans "edumentor/internal/core/services/list_study_plans"
	"edumentor/internal/http/handlers/response"
	"errors"
	"net/http"
)

type Handler struct {
	service services.Service[liststudyplans.Input, liststudyplans.Result]
}

func New(
	service services.Service[liststudyplans.Input, liststudyplans.Result],
) *Handler {
	return &Handler{service: service}
}

type Result struct {
	Plans []response.StudyPlan `json:"plans"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(
		r.Context(),
		liststudyplans.Input{},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	plans := make([]response.StudyPlan, 0, len(result.Plans))
	for _, domainPlan := range result.Plans {
		plan := response.StudyPlan{}
		plan.FromDomainPlan(domainPlan)
		plans = append(plans, plan)
	}
	response.Render(rw, Result{Plans: plans}, http.StatusOK)
}
