package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	drinkdomain "github.com/dvillalba/drinks-manager/internal/drink/domain"
	saledomain "github.com/dvillalba/drinks-manager/internal/sale/domain"
	supplydomain "github.com/dvillalba/drinks-manager/internal/supply/domain"
	"github.com/dvillalba/drinks-manager/pkg/logger"
)

// SettingsHandler handles administrative HTTP requests
type SettingsHandler struct {
	supplies supplydomain.SupplyRepository
	drinks   drinkdomain.DrinkRepository
	sales    saledomain.SaleRepository
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(supplies supplydomain.SupplyRepository, drinks drinkdomain.DrinkRepository, sales saledomain.SaleRepository) *SettingsHandler {
	return &SettingsHandler{
		supplies: supplies,
		drinks:   drinks,
		sales:    sales,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ResetData handles POST /api/settings/reset. It clears every
// collection; the drink catalog reseeds on its next read.
func (h *SettingsHandler) ResetData(w http.ResponseWriter, r *http.Request) {
	h.supplies.Clear(r.Context())
	h.drinks.Clear(r.Context())
	h.sales.Clear(r.Context())

	logger.Info(r.Context()).Msg("All application data cleared")

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "All data reset successfully",
	})
}

// RegisterRoutes registers all settings routes
func (h *SettingsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/settings/reset", h.ResetData).Methods("POST")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
