package httpserver

import (
	"net/http"

	"github.com/rs/zerolog"

	"knowledgehub.dev/hub-web/internal/handlers"
	"knowledgehub.dev/hub-web/internal/metrics"
	mw "knowledgehub.dev/hub-web/internal/middleware"
	"knowledgehub.dev/hub-web/internal/routes"
)

type pageHandler struct {
	builder     *handlers.Builder
	renderer    *Renderer
	metrics     *metrics.Registry
	log         zerolog.Logger
	defaultLang string
}

// serve renders rt as a full document, or as the page fragment plus an
// out-of-band nav refresh when htmx swaps the page container.
func (h *pageHandler) serve(rt routes.Route, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := h.builder.Build(rt, r.URL.Path, mw.Lang(r, h.defaultLang))
		if err != nil {
			h.fail(w, r, rt, err)
			return
		}
		data.Fragment = mw.HTMXInfoFromContext(r.Context()).WantsFragment(pageTarget)
		if err := h.renderer.Render(w, rt.Page, data, status); err != nil {
			h.fail(w, r, rt, err)
			return
		}
		h.metrics.ObserveRender(string(rt.Page), data.Fragment)
	}
}

// notFound answers every unregistered path with the not-found page inside the shell.
func (h *pageHandler) notFound(w http.ResponseWriter, r *http.Request) {
	h.metrics.IncNotFound()
	w.Header().Set("X-Robots-Tag", "noindex")
	h.serve(routes.NotFound, http.StatusNotFound)(w, r)
}

func (h *pageHandler) fail(w http.ResponseWriter, r *http.Request, rt routes.Route, err error) {
	rid, _ := mw.RequestID(r.Context())
	h.log.Error().Err(err).Str("page", string(rt.Page)).Str("request_id", rid).Msg("render page")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
