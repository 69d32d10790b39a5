package export

import (
	"fmt"
	"strconv"

	"github.com/dvillalba/drinks-manager/internal/report"
	saledomain "github.com/dvillalba/drinks-manager/internal/sale/domain"
	supplydomain "github.com/dvillalba/drinks-manager/internal/supply/domain"
)

// SalesRecords builds the sales export, one row per sale in ledger order.
func SalesRecords(sales []saledomain.Sale) []Record {
	records := make([]Record, 0, len(sales))
	for _, s := range sales {
		records = append(records, Record{
			{Column: "Fecha", Value: s.Date},
			{Column: "Trago", Value: s.DrinkName},
			{Column: "Cantidad", Value: strconv.Itoa(s.Quantity)},
			{Column: "Precio Unitario", Value: strconv.Itoa(s.PricePerUnit)},
			{Column: "Total", Value: strconv.Itoa(s.Total)},
		})
	}
	return records
}

// SuppliesRecords builds the supplies export with display labels for
// the type column.
func SuppliesRecords(supplies []supplydomain.Supply) []Record {
	records := make([]Record, 0, len(supplies))
	for _, s := range supplies {
		records = append(records, Record{
			{Column: "Fecha", Value: s.Date},
			{Column: "Tipo", Value: s.Type.Label()},
			{Column: "Descripción", Value: s.Description},
			{Column: "Monto", Value: strconv.Itoa(s.Amount)},
		})
	}
	return records
}

// TotalReportRecords builds the total report export: the fixed summary
// rows followed by one row per non-zero investment type.
func TotalReportRecords(r report.TotalReport) []Record {
	records := []Record{
		{{Column: "Concepto", Value: "Inversión Total"}, {Column: "Valor", Value: strconv.Itoa(r.TotalInvestment)}},
		{{Column: "Concepto", Value: "Ventas Totales"}, {Column: "Valor", Value: strconv.Itoa(r.TotalSales)}},
		{{Column: "Concepto", Value: "Ganancia Neta"}, {Column: "Valor", Value: strconv.Itoa(r.NetProfit)}},
		{{Column: "Concepto", Value: "Porcentaje de Ganancia"}, {Column: "Valor", Value: fmt.Sprintf("%.1f%%", r.ProfitPercentage)}},
		{{Column: "Concepto", Value: "Días con Ventas"}, {Column: "Valor", Value: strconv.Itoa(r.DaysWithSales)}},
	}

	for _, item := range r.InvestmentByType {
		records = append(records, Record{
			{Column: "Concepto", Value: fmt.Sprintf("Inversión en %s", item.Type)},
			{Column: "Valor", Value: strconv.Itoa(item.Total)},
		})
	}

	return records
}
