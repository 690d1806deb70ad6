package attemptevents

import (
	e "edumentor/internal/core/domain/errors"
	"edumentor/internal/core/domain/logging"
	"edumentor/internal/core/domain/user"
	"edumentor/internal/http/handlers/auth"
	"edumentor/internal/http/handlers/response"
	"net/http"

	"github.com/r3labs/sse/v2"
)

// Handler streams delivery attempt events for the authenticated user over
// SSE. Each user gets a stream keyed by their email address.
type Handler struct {
	log               logging.Logger
	sseServer         *sse.Server
	sessionRepository user.SessionRepository
}

func New(
	log logging.Logger,
	sseServer *sse.Server,
	sessionRepository user.SessionRepository,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	return &Handler{log: log, sseServer: sseServer, sessionRepository: sessionRepository}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token, ok := auth.ParseToken(r)
	if !ok {
		response.RenderUnauthorized(rw)
		return
	}
	u, err := h.sessionRepository.GetUserByToken(r.Context(), token)
	if err != nil {
		response.RenderUnauthorized(rw)
		return
	}

	streamID := string(u.Email)
	q := r.URL.Query()
	q.Set("stream", streamID)
	r.URL.RawQuery = q.Encode()

	go func() {
		// Received browser disconnection
		<-r.Context().Done()
		h.log.Info(
			r.Context(),
			"Unsubscribed from delivery attempt events.",
			logging.Entry("email", u.Email),
		)
	}()

	h.sseServer.CreateStream(streamID)
	h.log.Info(
		r.Context(),
		"Subscribed to delivery attempt events.",
		logging.Entry("email", u.Email),
	)
	h.sseServer.ServeHTTP(rw, r)
}
