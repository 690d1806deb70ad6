package listreminders

import (
	"edumentor/internal/core/domain/user"
	"edumentor/internal/core/services"
	listreminders "edumentor/internal/core/services/list_reminders"
	"edumentor/internal/http/handlers/response"
	"errors"
	"net/http"
)

type Handler struct {
	service services.Service[listreminders.Input, listreminders.Result]
}

func New(
	service services.Service[listreminders.Input, listreminders.Result],
) *Handler {
	return &Handler{service: service}
}

type Result struct {
	Reminders []response.ReminderEntry `json:"reminders"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	result, err := h.service.Run(
		r.Context(),
		listreminders.Input{},
	)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		response.RenderUnauthorized(rw)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	entries := make([]response.ReminderEntry, 0, len(result.Entries))
	for _, domainEntry := range result.Entries {
		entry := response.ReminderEntry{}
		entry.FromDomainEntry(domainEntry)
		entries = append(entries, entry)
	}
	response.Render(rw, Result{Reminders: entries}, http.StatusOK)
}
