package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bookcatalog/internal/catalog"
)

// NewRouter registers the catalog API, health probes and metrics.
func NewRouter(h *CatalogHandler, svc *catalog.Service) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !svc.Ready() {
			http.Error(w, "catalog not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", promhttp.Handler())

	router.HandleFunc("GET /v1/options", h.Options)
	router.HandleFunc("POST /v1/sessions", h.CreateSession)
	router.HandleFunc("GET /v1/sessions/{id}", h.GetSession)
	router.HandleFunc("DELETE /v1/sessions/{id}", h.DeleteSession)
	router.HandleFunc("POST /v1/sessions/{id}/search", h.Search)
	router.HandleFunc("POST /v1/sessions/{id}/more", h.More)
	router.HandleFunc("GET /v1/sessions/{id}/items/{itemID}", h.OpenDetail)
	router.HandleFunc("DELETE /v1/sessions/{id}/detail", h.CloseDetail)
	router.HandleFunc("PUT /v1/sessions/{id}/theme", h.SetTheme)

	return router
}
