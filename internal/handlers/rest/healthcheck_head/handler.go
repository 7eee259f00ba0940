package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

// Handler отдает 204 пока сервис жив. Как только начался graceful shutdown,
// отвечает 503 чтобы балансировщик перестал слать новые запросы.
type Handler struct {
	draining *atomic.Bool
}

func New(draining *atomic.Bool) *Handler {
	return &Handler{
		draining: draining,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.draining.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
