package v1

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/realmforge/catalog-api/internal/errors"
	charactersvc "github.com/realmforge/catalog-api/internal/orchestrators/character"
)

// CharacterHandlerConfig holds the dependencies for the character handler
type CharacterHandlerConfig struct {
	Service charactersvc.Service
}

// Validate ensures all required dependencies are provided
func (c *CharacterHandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Service == nil {
		return errors.InvalidArgument("service cannot be nil")
	}
	return nil
}

// CharacterHandler serves the /v1/characters routes
type CharacterHandler struct {
	service charactersvc.Service
}

// NewCharacterHandler creates a new character handler
func NewCharacterHandler(cfg *CharacterHandlerConfig) (*CharacterHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &CharacterHandler{service: cfg.Service}, nil
}

// RegisterRoutes attaches the character routes to the router
func (h *CharacterHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/v1/characters", h.List).Methods(http.MethodGet)
	r.HandleFunc("/v1/characters", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/v1/characters/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/v1/characters/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/v1/characters/{id}", h.Delete).Methods(http.MethodDelete)
}

type characterRequest struct {
	Name        string `json:"name"`
	BirthDate   string `json:"birth_date"`
	Kingdom     string `json:"kingdom"`
	EquipmentID int64  `json:"equipment_id"`
	FactionID   int64  `json:"faction_id"`
}

// Create handles POST /v1/characters
func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req characterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.Create(r.Context(), &charactersvc.CreateInput{
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		Kingdom:     req.Kingdom,
		EquipmentID: req.EquipmentID,
		FactionID:   req.FactionID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusCreated, output.Character, "character created")
}

// Get handles GET /v1/characters/{id}
func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.Get(r.Context(), &charactersvc.GetInput{ID: id})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, output.Character, "")
}

// List handles GET /v1/characters
func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	output, err := h.service.List(r.Context(), &charactersvc.ListInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, output.Characters, "")
}

// Update handles PUT /v1/characters/{id}
func (h *CharacterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req characterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.service.Update(r.Context(), &charactersvc.UpdateInput{
		ID:          id,
		Name:        req.Name,
		BirthDate:   req.BirthDate,
		Kingdom:     req.Kingdom,
		EquipmentID: req.EquipmentID,
		FactionID:   req.FactionID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, output.Character, "character updated")
}

// Delete handles DELETE /v1/characters/{id}
func (h *CharacterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if _, err := h.service.Delete(r.Context(), &charactersvc.DeleteInput{ID: id}); err != nil {
		writeError(w, err)
		return
	}

	writeData(w, http.StatusOK, nil, "character deleted")
}
