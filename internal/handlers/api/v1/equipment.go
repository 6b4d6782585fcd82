package v1

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/realmforge/catalog-api/internal/errors"
	equipmentsvc "github.com/realmforge/catalog-api/internal/orchestrators/equipment"
)

// EquipmentHandlerConfig holds the dependencies for the equipment handler
type EquipmentHandlerConfig struct {
	Service equipmentsvc.Service
}

// Validate ensures all required dependencies are provided
func (c *EquipmentHandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Service == nil {
		return errors.InvalidArgument("service cannot be nil")
	}
	return nil
}

// EquipmentHandler serves the /v1/equipment routes
type EquipmentHandler struct {
	service equipmentsvc.Service
}

// NewEquipmentHandler creates a new equipment handler
func NewEquipmentHandler(cfg *EquipmentHandlerConfig) (*EquipmentHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &EquipmentHandler{service: cfg.Service}, nil
}

// RegisterRoutes attaches the equipment routes to the router
func (h *EquipmentHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/v1/equipment", h.List).Methods(http.MethodGet)
	r.HandleFunc("/v1/equipment", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/v1/equipment/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/v1/equipment/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/v1/equipment/{id}", h.Delete).Methods(http.MethodDelete)
}

type equipmentRequest struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	MadeBy string `json:"made_by"`
}

// Create handles POST /v1/equipment
func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.Create(r.Context(), &equipmentsvc.CreateInput{
		Name:   req.Name,
		Type:   req.Type,
		MadeBy: req.MadeBy,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, output.Equipment, "equipment created")
}

// Get handles GET /v1/equipment/{id}
func (h *EquipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.Get(r.Context(), &equipmentsvc.GetInput{ID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, output.Equipment, "")
}

// List handles GET /v1/equipment
func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.List(r.Context(), &equipmentsvc.ListInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, output.Equipment, "")
}

// Update handles PUT /v1/equipment/{id}
func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req equipmentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.Update(r.Context(), &equipmentsvc.UpdateInput{
		ID:     id,
		Name:   req.Name,
		Type:   req.Type,
		MadeBy: req.MadeBy,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, output.Equipment, "equipment updated")
}

// Delete handles DELETE /v1/equipment/{id}
func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.service.Delete(r.Context(), &equipmentsvc.DeleteInput{ID: id}); err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, nil, "equipment deleted")
}
