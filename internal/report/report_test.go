package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	saledomain "github.com/dvillalba/drinks-manager/internal/sale/domain"
	supplydomain "github.com/dvillalba/drinks-manager/internal/supply/domain"
)

func sale(drinkName, date string, quantity, pricePerUnit int) saledomain.Sale {
	return saledomain.Sale{
		DrinkName:    drinkName,
		Quantity:     quantity,
		PricePerUnit: pricePerUnit,
		Total:        quantity * pricePerUnit,
		Date:         date,
	}
}

func TestGenerateDailyReportAggregatesByDrinkName(t *testing.T) {
	sales := []saledomain.Sale{
		sale("Mojito", "2026-08-29", 2, 15000),
		sale("Caipirinha", "2026-08-29", 1, 15000),
		sale("Mojito", "2026-08-29", 3, 15000),
		sale("Mojito", "2026-08-30", 5, 15000),
	}

	report := GenerateDailyReport(sales, "2026-08-29")

	assert.Equal(t, "2026-08-29", report.Date)
	assert.Equal(t, 6*15000, report.TotalSales)
	assert.Equal(t, 6, report.TotalQuantity)

	// First-seen order, one entry per drink name
	assert.Equal(t, []DrinkSales{
		{DrinkName: "Mojito", Quantity: 5, Total: 75000},
		{DrinkName: "Caipirinha", Quantity: 1, Total: 15000},
	}, report.SalesByDrink)
}

func TestGenerateDailyReportNoSalesForDate(t *testing.T) {
	sales := []saledomain.Sale{
		sale("Mojito", "2026-08-29", 2, 15000),
	}

	report := GenerateDailyReport(sales, "2026-01-01")

	assert.Equal(t, 0, report.TotalSales)
	assert.Equal(t, 0, report.TotalQuantity)
	assert.Empty(t, report.SalesByDrink)
	assert.NotNil(t, report.SalesByDrink)
}

func TestGenerateTotalReport(t *testing.T) {
	sales := []saledomain.Sale{
		sale("Mojito", "2026-08-28", 4, 15000),
		sale("Caipirinha", "2026-08-29", 2, 15000),
		sale("Mojito", "2026-08-29", 1, 15000),
	}
	supplies := []supplydomain.Supply{
		{Type: supplydomain.TypeIce, Amount: 20000},
		{Type: supplydomain.TypeBeverages, Amount: 50000},
		{Type: supplydomain.TypeIce, Amount: 10000},
	}

	report := GenerateTotalReport(sales, supplies)

	assert.Equal(t, 80000, report.TotalInvestment)
	assert.Equal(t, 105000, report.TotalSales)
	assert.Equal(t, 25000, report.NetProfit)
	assert.InDelta(t, 31.25, report.ProfitPercentage, 0.001)
	assert.Equal(t, 2, report.DaysWithSales)

	// Declaration order of the type enumeration, zero-spend types omitted
	assert.Equal(t, []TypeInvestment{
		{Type: supplydomain.TypeBeverages, Total: 50000},
		{Type: supplydomain.TypeIce, Total: 30000},
	}, report.InvestmentByType)
}

func TestGenerateTotalReportZeroInvestment(t *testing.T) {
	sales := []saledomain.Sale{
		sale("Mojito", "2026-08-29", 1, 15000),
	}

	report := GenerateTotalReport(sales, nil)

	assert.Equal(t, 15000, report.NetProfit)
	assert.Equal(t, 0.0, report.ProfitPercentage)
	assert.Empty(t, report.InvestmentByType)
}

func TestGenerateTotalReportNegativeProfit(t *testing.T) {
	supplies := []supplydomain.Supply{
		{Type: supplydomain.TypeOther, Amount: 40000},
	}

	report := GenerateTotalReport(nil, supplies)

	assert.Equal(t, -40000, report.NetProfit)
	assert.InDelta(t, -100.0, report.ProfitPercentage, 0.001)
	assert.Equal(t, 0, report.DaysWithSales)
}
