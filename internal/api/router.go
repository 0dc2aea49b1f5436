package api

import (
	"net/http"

	"route-optimization-service/internal/api/handlers"
	"route-optimization-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// cache may be nil; optimization then always recomputes.
func NewRouter(repo ports.StopRepository, cache ports.ResultCache) http.Handler {
	mux := http.NewServeMux()

	stopsHandler := &handlers.StopsHandler{Repo: repo}
	optimizeHandler := &handlers.OptimizeHandler{Repo: repo, Cache: cache}
	clustersHandler := &handlers.ClustersHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/stops", stopsHandler.List)
	mux.HandleFunc("/optimize", optimizeHandler.Optimize)
	mux.HandleFunc("/clusters", clustersHandler.Cluster)

	return requestIDMiddleware(loggingMiddleware(mux))
}
