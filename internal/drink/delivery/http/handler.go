package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dvillalba/drinks-manager/internal/drink/domain"
	"github.com/dvillalba/drinks-manager/internal/drink/usecase/command"
	"github.com/dvillalba/drinks-manager/pkg/logger"
)

// DrinkHandler handles HTTP requests for the drink catalog
type DrinkHandler struct {
	createHandler *command.CreateDrinkHandler
	updateHandler *command.UpdateDrinkHandler
	deleteHandler *command.DeleteDrinkHandler

	repo domain.DrinkRepository
}

// NewDrinkHandler creates a new drink handler
func NewDrinkHandler(repo domain.DrinkRepository) *DrinkHandler {
	return &DrinkHandler{
		createHandler: command.NewCreateDrinkHandler(repo),
		updateHandler: command.NewUpdateDrinkHandler(repo),
		deleteHandler: command.NewDeleteDrinkHandler(repo),
		repo:          repo,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListDrinks handles GET /api/drinks
func (h *DrinkHandler) ListDrinks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.repo.List(r.Context()),
	})
}

// ListActiveDrinks handles GET /api/drinks/active
func (h *DrinkHandler) ListActiveDrinks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.repo.Active(r.Context()),
	})
}

// CreateDrink handles POST /api/drinks
func (h *DrinkHandler) CreateDrink(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		Price  int    `json:"price"`
		Active bool   `json:"active"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	drink, err := h.createHandler.Handle(r.Context(), command.CreateDrinkCommand{
		Name:   req.Name,
		Price:  req.Price,
		Active: req.Active,
	})
	if err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to create drink")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Drink created successfully",
		Data:    drink,
	})
}

// UpdateDrink handles PATCH /api/drinks/{id}
func (h *DrinkHandler) UpdateDrink(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   *string `json:"name"`
		Price  *int    `json:"price"`
		Active *bool   `json:"active"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.updateHandler.Handle(r.Context(), command.UpdateDrinkCommand{
		ID:     mux.Vars(r)["id"],
		Name:   req.Name,
		Price:  req.Price,
		Active: req.Active,
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
		Message: "Drink updated successfully",
	})
}

// DeleteDrink handles DELETE /api/drinks/{id}
func (h *DrinkHandler) DeleteDrink(w http.ResponseWriter, r *http.Request) {
	h.deleteHandler.Handle(r.Context(), mux.Vars(r)["id"])

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Drink deleted successfully",
	})
}

// RegisterRoutes registers all drink routes
func (h *DrinkHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/drinks", h.ListDrinks).Methods("GET")
	router.HandleFunc("/api/drinks", h.CreateDrink).Methods("POST")
	router.HandleFunc("/api/drinks/active", h.ListActiveDrinks).Methods("GET")
	router.HandleFunc("/api/drinks/{id}", h.UpdateDrink).Methods("PATCH")
	router.HandleFunc("/api/drinks/{id}", h.DeleteDrink).Methods("DELETE")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
