package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dvillalba/drinks-manager/internal/supply/domain"
	"github.com/dvillalba/drinks-manager/internal/supply/usecase/command"
	"github.com/dvillalba/drinks-manager/pkg/logger"
)

// SupplyHandler handles HTTP requests for supplies
type SupplyHandler struct {
	createHandler *command.CreateSupplyHandler
	updateHandler *command.UpdateSupplyHandler
	deleteHandler *command.DeleteSupplyHandler

	repo domain.SupplyRepository
}

// NewSupplyHandler creates a new supply handler
func NewSupplyHandler(repo domain.SupplyRepository) *SupplyHandler {
	return &SupplyHandler{
		createHandler: command.NewCreateSupplyHandler(repo),
		updateHandler: command.NewUpdateSupplyHandler(repo),
		deleteHandler: command.NewDeleteSupplyHandler(repo),
		repo:          repo,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListSupplies handles GET /api/supplies
func (h *SupplyHandler) ListSupplies(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.repo.List(r.Context()),
	})
}

// CreateSupply handles POST /api/supplies
func (h *SupplyHandler) CreateSupply(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type        domain.SupplyType `json:"type"`
		Description string            `json:"description"`
		Amount      int               `json:"amount"`
		Date        string            `json:"date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	supply, err := h.createHandler.Handle(r.Context(), command.CreateSupplyCommand{
		Type:        req.Type,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to create supply")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Supply created successfully",
		Data:    supply,
	})
}

// UpdateSupply handles PATCH /api/supplies/{id}
func (h *SupplyHandler) UpdateSupply(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type        *domain.SupplyType `json:"type"`
		Description *string            `json:"description"`
		Amount      *int               `json:"amount"`
		Date        *string            `json:"date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.updateHandler.Handle(r.Context(), command.UpdateSupplyCommand{
		ID:          mux.Vars(r)["id"],
		Type:        req.Type,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	})
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Supply updated successfully",
	})
}

// DeleteSupply handles DELETE /api/supplies/{id}
func (h *SupplyHandler) DeleteSupply(w http.ResponseWriter, r *http.Request) {
	h.deleteHandler.Handle(r.Context(), mux.Vars(r)["id"])

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Supply deleted successfully",
	})
}

// GetInvestment handles GET /api/supplies/investment
func (h *SupplyHandler) GetInvestment(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"totalInvestment":  h.repo.TotalInvestment(r.Context()),
			"investmentByType": h.repo.InvestmentByType(r.Context()),
		},
	})
}

// RegisterRoutes registers all supply routes
func (h *SupplyHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/supplies", h.ListSupplies).Methods("GET")
	router.HandleFunc("/api/supplies", h.CreateSupply).Methods("POST")
	router.HandleFunc("/api/supplies/investment", h.GetInvestment).Methods("GET")
	router.HandleFunc("/api/supplies/{id}", h.UpdateSupply).Methods("PATCH")
	router.HandleFunc("/api/supplies/{id}", h.DeleteSupply).Methods("DELETE")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
