package v1

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/realmforge/catalog-api/internal/errors"
	factionsvc "github.com/realmforge/catalog-api/internal/orchestrators/faction"
)

// FactionHandlerConfig holds the dependencies for the faction handler
type FactionHandlerConfig struct {
	Service factionsvc.Service
}

// Validate ensures all required dependencies are provided
func (c *FactionHandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Service == nil {
		return errors.InvalidArgument("service cannot be nil")
	}
	return nil
}

// FactionHandler serves the /v1/factions routes
type FactionHandler struct {
	service factionsvc.Service
}

// NewFactionHandler creates a new faction handler
func NewFactionHandler(cfg *FactionHandlerConfig) (*FactionHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &FactionHandler{service: cfg.Service}, nil
}

// RegisterRoutes attaches the faction routes to the router
func (h *FactionHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/v1/factions", h.List).Methods(http.MethodGet)
	r.HandleFunc("/v1/factions", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/v1/factions/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/v1/factions/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/v1/factions/{id}", h.Delete).Methods(http.MethodDelete)
}

type factionRequest struct {
	FactionName string `json:"faction_name"`
	Description string `json:"description"`
}

// Create handles POST /v1/factions
func (h *FactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req factionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.Create(r.Context(), &factionsvc.CreateInput{
		FactionName: req.FactionName,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, output.Faction, "faction created")
}

// Get handles GET /v1/factions/{id}
func (h *FactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.Get(r.Context(), &factionsvc.GetInput{ID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, output.Faction, "")
}

// List handles GET /v1/factions
func (h *FactionHandler) List(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.List(r.Context(), &factionsvc.ListInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, output.Factions, "")
}

// Update handles PUT /v1/factions/{id}
func (h *FactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req factionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.Update(r.Context(), &factionsvc.UpdateInput{
		ID:          id,
		FactionName: req.FactionName,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, output.Faction, "faction updated")
}

// Delete handles DELETE /v1/factions/{id}
func (h *FactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.service.Delete(r.Context(), &factionsvc.DeleteInput{ID: id}); err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, nil, "faction deleted")
}
