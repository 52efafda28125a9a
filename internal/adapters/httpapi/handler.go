// Package httpapi exposes the store directory as a JSON API.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/example/storefinder/internal/core/record"
	"github.com/example/storefinder/internal/ports/primary"
)

// Handler wires directory endpoints to the directory service.
type Handler struct {
	service primary.DirectoryService
	logger  *slog.Logger
}

// New constructs a directory handler with its dependencies.
func New(service primary.DirectoryService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts directory endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/stores", h.HandleStores)
	r.Get("/api/cities", h.HandleCities)
	r.Get("/api/cities/{city}/districts", h.HandleDistricts)
	r.Post("/api/reload", h.HandleReload)
	r.Get("/healthz", h.HandleHealth)
}

// NewRouter builds the full API router. metrics may be nil.
func NewRouter(h *Handler, metrics http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	h.Register(r)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	return r
}

// HandleStores handles GET /api/stores?q=&city=&district= requests.
func (h *Handler) HandleStores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := r.URL.Query()

	snap := h.service.Query(ctx, primary.QueryRequest{
		Query:    params.Get("q"),
		City:     params.Get("city"),
		District: params.Get("district"),
	})

	h.logger.DebugContext(ctx, "stores queried",
		"request_id", middleware.GetReqID(ctx),
		"city", snap.State.City,
		"district", snap.State.District,
		"matches", len(snap.Matches),
	)

	writeJSON(w, http.StatusOK, FromSnapshot(snap))
}

// HandleCities handles GET /api/cities requests.
func (h *Handler) HandleCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CitiesResponse{
		AllLabel: primary.AllCitiesLabel,
		Cities:   nonNil(h.service.CityOptions(r.Context())),
	})
}

// HandleDistricts handles GET /api/cities/{city}/districts requests.
func (h *Handler) HandleDistricts(w http.ResponseWriter, r *http.Request) {
	// chi matches on RawPath when the request has one, leaving the
	// parameter escaped; otherwise it is already decoded.
	city := chi.URLParam(r, "city")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(city); err == nil {
			city = unescaped
		}
	}

	districts := h.service.DistrictOptions(r.Context(), city)
	writeJSON(w, http.StatusOK, DistrictsResponse{
		City:      city,
		AllLabel:  primary.AllDistrictsLabel,
		Districts: nonNil(districts),
		Visible:   len(districts) > 0,
	})
}

// HandleReload handles POST /api/reload requests.
func (h *Handler) HandleReload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetReqID(ctx)

	result, err := h.service.Load(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "reload failed",
			"request_id", requestID,
			"error", err,
		)
		var loadErr *record.LoadError
		if errors.As(err, &loadErr) {
			writeJSON(w, http.StatusBadGateway, FromLoadError(loadErr))
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	h.logger.InfoContext(ctx, "reload complete",
		"request_id", requestID,
		"count", result.Count,
	)

	writeJSON(w, http.StatusOK, ReloadResponse{
		Source:     result.Source,
		Count:      result.Count,
		DurationMS: result.Duration.Milliseconds(),
	})
}

// HandleHealth handles GET /healthz requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"records": len(h.service.Records(r.Context())),
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
