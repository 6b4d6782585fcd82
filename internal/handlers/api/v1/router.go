package v1

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/realmforge/catalog-api/internal/errors"
	charactersvc "github.com/realmforge/catalog-api/internal/orchestrators/character"
	equipmentsvc "github.com/realmforge/catalog-api/internal/orchestrators/equipment"
	factionsvc "github.com/realmforge/catalog-api/internal/orchestrators/faction"
)

// RouterConfig holds the services backing the API routes
type RouterConfig struct {
	CharacterService charactersvc.Service
	EquipmentService equipmentsvc.Service
	FactionService   factionsvc.Service
}

// Validate ensures all required dependencies are provided
func (c *RouterConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.EquipmentService == nil {
		vb.RequiredField("EquipmentService")
	}
	if c.FactionService == nil {
		vb.RequiredField("FactionService")
	}

	return vb.Build()
}

// NewRouter builds the full v1 route table
func NewRouter(cfg *RouterConfig) (*mux.Router, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	characterHandler, err := NewCharacterHandler(&CharacterHandlerConfig{Service: cfg.CharacterService})
	if err != nil {
		return nil, err
	}
	equipmentHandler, err := NewEquipmentHandler(&EquipmentHandlerConfig{Service: cfg.EquipmentService})
	if err != nil {
		return nil, err
	}
	factionHandler, err := NewFactionHandler(&FactionHandlerConfig{Service: cfg.FactionService})
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()
	r.Use(requestLogging)

	characterHandler.RegisterRoutes(r)
	equipmentHandler.RegisterRoutes(r)
	factionHandler.RegisterRoutes(r)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeData(w, http.StatusOK, nil, "ok")
	}).Methods(http.MethodGet)

	return r, nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		slog.InfoContext(r.Context(), "request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
