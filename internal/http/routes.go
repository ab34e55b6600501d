package http

import (
	"net/http"
)

// NewRouter mounts the book routes and the liveness probe.
func NewRouter(h *BookHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("DELETE /books", h.DeleteAll)
	mux.HandleFunc("GET /books/{id}", h.Get)
	mux.HandleFunc("PUT /books/{id}", h.Replace)
	mux.HandleFunc("DELETE /books/{id}", h.Delete)
	mux.HandleFunc("POST /books/{id}/read", h.MarkRead)
	mux.HandleFunc("PUT /books/{id}/rating", h.Rate)
	mux.HandleFunc("DELETE /books/{id}/rating", h.ClearRating)
	mux.HandleFunc("DELETE /positions/{index}", h.DeleteAt)
	mux.HandleFunc("GET /stats", h.Stats)

	return mux
}
