package handlers

import (
	"log"
	"net/http"

	"route-optimization-service/internal/api/dto"
	"route-optimization-service/internal/ports"
)

// StopsHandler exposes read-only stop retrieval endpoints.
type StopsHandler struct {
	Repo ports.StopRepository
}

func (h *StopsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	stops, err := h.Repo.ListStops(r.Context())
	if err != nil {
		log.Printf("list stops failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListStopsResponse{
		Stops: make([]dto.StopRecordResponse, 0, len(stops)),
	}
	for _, s := range stops {
		res.Stops = append(res.Stops, dto.StopRecordResponse{
			StopID:        s.ID,
			Name:          s.Name,
			Address:       s.Address,
			Lat:           s.Coords.Lat,
			Lng:           s.Coords.Lng,
			DemandGallons: s.DemandGallons,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
