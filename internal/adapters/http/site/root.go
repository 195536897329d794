// Package site serves the embedded sign-up front-end.
package site

import (
	"context"
	"net/http"
)

// IndexPath is where the root path redirects to. http.FileServer answers it
// with static/index.html.
const IndexPath = "/static/"

// Register attaches the front-end routes to mux:
//
//	GET /          -> redirect to /static/
//	GET /static/*  -> embedded files
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(FS())))
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, IndexPath, http.StatusTemporaryRedirect)
	})
}
