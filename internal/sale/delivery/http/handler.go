package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	drinkdomain "github.com/dvillalba/drinks-manager/internal/drink/domain"
	"github.com/dvillalba/drinks-manager/internal/sale/domain"
	"github.com/dvillalba/drinks-manager/internal/sale/usecase/command"
	"github.com/dvillalba/drinks-manager/pkg/logger"
)

// SaleHandler handles HTTP requests for the sales ledger
type SaleHandler struct {
	createHandler *command.CreateSaleHandler
	updateHandler *command.UpdateSaleHandler
	deleteHandler *command.DeleteSaleHandler

	repo domain.SaleRepository
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(repo domain.SaleRepository, drinks drinkdomain.DrinkRepository) *SaleHandler {
	return &SaleHandler{
		createHandler: command.NewCreateSaleHandler(repo, drinks),
		updateHandler: command.NewUpdateSaleHandler(repo),
		deleteHandler: command.NewDeleteSaleHandler(repo),
		repo:          repo,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListSales handles GET /api/sales with an optional ?date= filter
func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	var sales []domain.Sale
	if date := r.URL.Query().Get("date"); date != "" {
		sales = h.repo.SalesByDate(r.Context(), date)
	} else {
		sales = h.repo.List(r.Context())
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    sales,
	})
}

// ListDates handles GET /api/sales/dates
func (h *SaleHandler) ListDates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.repo.DatesWithSales(r.Context()),
	})
}

// CreateSale handles POST /api/sales
func (h *SaleHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DrinkID  string `json:"drinkId"`
		Quantity int    `json:"quantity"`
		Date     string `json:"date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	sale, err := h.createHandler.Handle(r.Context(), command.CreateSaleCommand{
		DrinkID:  req.DrinkID,
		Quantity: req.Quantity,
		Date:     req.Date,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to create sale")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Sale created successfully",
		Data:    sale,
	})
}

// UpdateSale handles PATCH /api/sales/{id}
func (h *SaleHandler) UpdateSale(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity     *int    `json:"quantity"`
		PricePerUnit *int    `json:"pricePerUnit"`
		Date         *string `json:"date"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.updateHandler.Handle(r.Context(), command.UpdateSaleCommand{
		ID:           mux.Vars(r)["id"],
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
		Date:         req.Date,
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
		Message: "Sale updated successfully",
	})
}

// DeleteSale handles DELETE /api/sales/{id}
func (h *SaleHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	h.deleteHandler.Handle(r.Context(), mux.Vars(r)["id"])

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Sale deleted successfully",
	})
}

// RegisterRoutes registers all sale routes
func (h *SaleHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/sales", h.ListSales).Methods("GET")
	router.HandleFunc("/api/sales", h.CreateSale).Methods("POST")
	router.HandleFunc("/api/sales/dates", h.ListDates).Methods("GET")
	router.HandleFunc("/api/sales/{id}", h.UpdateSale).Methods("PATCH")
	router.HandleFunc("/api/sales/{id}", h.DeleteSale).Methods("DELETE")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
