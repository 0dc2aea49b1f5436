package handlers

import (
	"crypto/sha256"
	"encoding/hex"
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

// OptimizeHandler runs the route optimization engine over inline or
// stored stops. Cache is optional; when present, identical requests
// are answered from it (the engine is deterministic).
type OptimizeHandler struct {
	Repo  ports.StopRepository
	Cache ports.ResultCache
}

// Optimize resolves the depot, stop set and tuning options, then runs
// the construction + improvement pipeline and reports both metric
// blocks plus the achieved savings.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

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

	ctx := r.Context()

	var depot domain.Location
	if req.Depot != nil {
		depot = req.Depot.ToDomain()
	} else {
		var err error
		depot, err = h.Repo.GetDepot(ctx)
		if err != nil {
			log.Printf("resolve depot failed: %v", err)
			writeError(w, r, http.StatusBadRequest, "depot is required and none is configured")
			return
		}
	}

	var stops []domain.Location
	if len(req.Stops) > 0 {
		stops = make([]domain.Location, 0, len(req.Stops))
		for _, p := range req.Stops {
			stops = append(stops, p.ToDomain())
		}
	} else {
		var err error
		stops, err = h.Repo.ListStops(ctx)
		if err != nil {
			log.Printf("list stops failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return
		}
	}

	engineReq := services.OptimizeRequest{
		Depot:  depot,
		Stops:  stops,
		Params: tuningParams(req.Options),
	}

	// Cache lookups are best-effort: a failed key derivation or a
	// cache error degrades to recomputation, never to a failed call.
	key, keyErr := cacheKey(engineReq)
	useCache := h.Cache != nil && keyErr == nil

	if useCache {
		if cached, ok, err := h.Cache.Get(ctx, key); err != nil {
			log.Printf("result cache get failed: %v", err)
		} else if ok {
			writeJSON(w, r, http.StatusOK, toOptimizeResponse(cached, true))
			return
		}
	}

	result, err := services.Optimize(engineReq)
	if errors.Is(err, services.ErrInvalidDepot) || errors.Is(err, services.ErrNoValidStops) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Printf("optimize failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if useCache {
		if err := h.Cache.Put(ctx, key, result); err != nil {
			log.Printf("result cache put failed: %v", err)
		}
	}

	writeJSON(w, r, http.StatusOK, toOptimizeResponse(result, false))
}

func tuningParams(o *dto.OptimizeOptions) domain.TuningParams {
	if o == nil {
		return domain.TuningParams{}
	}
	return domain.TuningParams{
		FuelPricePerGallon: o.FuelPricePerGallon,
		VehicleMPG:         o.VehicleMPG,
		AvgSpeedMPH:        o.AvgSpeedMPH,
		StopServiceMinutes: o.StopServiceMinutes,
		DriverHourlyRate:   o.DriverHourlyRate,
	}
}

// cacheKey digests the effective engine input: the depot, the stops
// that survive coordinate filtering, and the defaulted tuning
// parameters. Two requests with the same digest produce the same
// result.
func cacheKey(req services.OptimizeRequest) (string, error) {
	valid := make([]domain.Location, 0, len(req.Stops))
	for _, s := range req.Stops {
		if s.Coords.Valid() {
			valid = append(valid, s)
		}
	}

	payload := struct {
		Depot  domain.Location
		Stops  []domain.Location
		Params domain.TuningParams
	}{req.Depot, valid, req.Params.WithDefaults()}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

func toMetricsResponse(m domain.RouteMetrics) dto.MetricsResponse {
	return dto.MetricsResponse{
		TotalDistanceMiles: m.TotalDistanceMiles,
		FuelGallons:        m.FuelGallons,
		FuelCost:           m.FuelCost,
		DriveMinutes:       m.DriveMinutes,
		StopMinutes:        m.StopMinutes,
		TotalMinutes:       m.TotalMinutes,
		TotalCost:          m.TotalCost,
	}
}

func toOptimizeResponse(res *domain.OptimizationResult, fromCache bool) dto.OptimizeResponse {
	stops := make([]dto.OptimizedStopResponse, 0, len(res.Stops))
	for _, s := range res.Stops {
		stops = append(stops, dto.OptimizedStopResponse{
			StopID:             s.ID,
			Name:               s.Name,
			Position:           s.Position,
			Lat:                s.Coords.Lat,
			Lng:                s.Coords.Lng,
			DistanceFromPrev:   s.DistanceFromPrev,
			ETAMinutesFromPrev: s.ETAMinutesFromPrev,
		})
	}

	return dto.OptimizeResponse{
		Depot: dto.StopRecordResponse{
			StopID:        res.Depot.ID,
			Name:          res.Depot.Name,
			Address:       res.Depot.Address,
			Lat:           res.Depot.Coords.Lat,
			Lng:           res.Depot.Coords.Lng,
			DemandGallons: res.Depot.DemandGallons,
		},
		Stops:           stops,
		Metrics:         toMetricsResponse(res.Metrics),
		OriginalMetrics: toMetricsResponse(res.OriginalMetrics),
		Savings: dto.SavingsResponse{
			DistanceMiles:   res.Savings.DistanceMiles,
			DistancePercent: res.Savings.DistancePercent,
			FuelCost:        res.Savings.FuelCost,
			TimeMinutes:     res.Savings.TimeMinutes,
		},
		ImprovementPasses: res.ImprovementPasses,
		FromCache:         fromCache,
	}
}
