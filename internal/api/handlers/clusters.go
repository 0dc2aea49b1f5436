package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"route-optimization-service/internal/api/dto"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/ports"
	"route-optimization-service/internal/services"
)

// ClustersHandler partitions a stop set for multi-vehicle splitting.
type ClustersHandler struct {
	Repo ports.StopRepository
}

func (h *ClustersHandler) Cluster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ClusterRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	var stops []domain.Location
	if len(req.Stops) > 0 {
		for _, p := range req.Stops {
			stops = append(stops, p.ToDomain())
		}
	} else {
		var err error
		stops, err = h.Repo.ListStops(r.Context())
		if err != nil {
			log.Printf("list stops failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	valid := make([]domain.Location, 0, len(stops))
	for _, s := range stops {
		if s.Coords.Valid() {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		writeError(w, r, http.StatusBadRequest, "no stops with valid coordinates")
		return
	}

	clusters, err := services.ClusterStops(valid, req.Clusters)
	if errors.Is(err, services.ErrInvalidClusterCount) {
		writeError(w, r, http.StatusBadRequest, "clusters must be a positive integer")
		return
	}
	if err != nil {
		log.Printf("cluster stops failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListClustersResponse{
		Clusters: make([]dto.ClusterResponse, 0, len(clusters)),
	}
	for _, c := range clusters {
		ids := make([]string, 0, len(c.Stops))
		for _, s := range c.Stops {
			ids = append(ids, s.ID)
		}
		res.Clusters = append(res.Clusters, dto.ClusterResponse{
			SeedStopID: c.Seed.ID,
			StopIDs:    ids,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
