package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dvillalba/drinks-manager/internal/export"
	"github.com/dvillalba/drinks-manager/internal/report"
	saledomain "github.com/dvillalba/drinks-manager/internal/sale/domain"
	supplydomain "github.com/dvillalba/drinks-manager/internal/supply/domain"
	"github.com/dvillalba/drinks-manager/pkg/logger"
)

// ReportHandler handles report and export HTTP requests
type ReportHandler struct {
	sales    saledomain.SaleRepository
	supplies supplydomain.SupplyRepository
}

// NewReportHandler creates a new report handler
func NewReportHandler(sales saledomain.SaleRepository, supplies supplydomain.SupplyRepository) *ReportHandler {
	return &ReportHandler{
		sales:    sales,
		supplies: supplies,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// GetDailyReport handles GET /api/reports/daily/{date}
func (h *ReportHandler) GetDailyReport(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    report.GenerateDailyReport(h.sales.List(r.Context()), date),
	})
}

// GetTotalReport handles GET /api/reports/total
func (h *ReportHandler) GetTotalReport(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    report.GenerateTotalReport(h.sales.List(r.Context()), h.supplies.List(r.Context())),
	})
}

// ExportSales handles GET /api/reports/export/sales
func (h *ReportHandler) ExportSales(w http.ResponseWriter, r *http.Request) {
	sales := h.sales.List(r.Context())
	if len(sales) == 0 {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Message: "No sales to export",
		})
		return
	}

	h.writeCSV(w, r, "ventas", export.SalesRecords(sales))
}

// ExportSupplies handles GET /api/reports/export/supplies
func (h *ReportHandler) ExportSupplies(w http.ResponseWriter, r *http.Request) {
	supplies := h.supplies.List(r.Context())
	if len(supplies) == 0 {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Message: "No supplies to export",
		})
		return
	}

	h.writeCSV(w, r, "insumos", export.SuppliesRecords(supplies))
}

// ExportTotalReport handles GET /api/reports/export/total
func (h *ReportHandler) ExportTotalReport(w http.ResponseWriter, r *http.Request) {
	total := report.GenerateTotalReport(h.sales.List(r.Context()), h.supplies.List(r.Context()))

	h.writeCSV(w, r, "reporte-total", export.TotalReportRecords(total))
}

func (h *ReportHandler) writeCSV(w http.ResponseWriter, r *http.Request, name string, records []export.Record) {
	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().UTC().Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WriteCSV(w, records); err != nil {
		logger.Error(r.Context()).Err(err).Str("filename", filename).Msg("Failed to write export")
	}
}

// RegisterRoutes registers all report routes
func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/reports/daily/{date}", h.GetDailyReport).Methods("GET")
	router.HandleFunc("/api/reports/total", h.GetTotalReport).Methods("GET")
	router.HandleFunc("/api/reports/export/sales", h.ExportSales).Methods("GET")
	router.HandleFunc("/api/reports/export/supplies", h.ExportSupplies).Methods("GET")
	router.HandleFunc("/api/reports/export/total", h.ExportTotalReport).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
