// Package report derives financial summaries from the sales ledger and
// the supplies collection. All functions are pure: they fold over
// already-loaded slices and never touch storage.
package report

import (
	saledomain "github.com/dvillalba/drinks-manager/internal/sale/domain"
	supplydomain "github.com/dvillalba/drinks-manager/internal/supply/domain"
)

// DrinkSales aggregates one drink name within a day
type DrinkSales struct {
	DrinkName string `json:"drinkName"`
	Quantity  int    `json:"quantity"`
	Total     int    `json:"total"`
}

// DailyReport summarizes the sales of a single calendar date
type DailyReport struct {
	Date          string       `json:"date"`
	TotalSales    int          `json:"totalSales"`
	TotalQuantity int          `json:"totalQuantity"`
	SalesByDrink  []DrinkSales `json:"salesByDrink"`
}

// TypeInvestment aggregates the spend of one supply type
type TypeInvestment struct {
	Type  supplydomain.SupplyType `json:"type"`
	Total int                     `json:"total"`
}

// TotalReport summarizes all sales and supplies across history
type TotalReport struct {
	TotalInvestment  int              `json:"totalInvestment"`
	TotalSales       int              `json:"totalSales"`
	NetProfit        int              `json:"netProfit"`
	ProfitPercentage float64          `json:"profitPercentage"`
	DaysWithSales    int              `json:"daysWithSales"`
	InvestmentByType []TypeInvestment `json:"investmentByType"`
}

// GenerateDailyReport folds the sales of the given date (exact string
// match) into per-drink-name totals, in first-seen order. Sales of
// different drink ids sharing a name aggregate together.
func GenerateDailyReport(sales []saledomain.Sale, date string) DailyReport {
	report := DailyReport{Date: date, SalesByDrink: []DrinkSales{}}
	index := make(map[string]int)

	for _, s := range sales {
		if s.Date != date {
			continue
		}

		report.TotalSales += s.Total
		report.TotalQuantity += s.Quantity

		i, ok := index[s.DrinkName]
		if !ok {
			i = len(report.SalesByDrink)
			index[s.DrinkName] = i
			report.SalesByDrink = append(report.SalesByDrink, DrinkSales{DrinkName: s.DrinkName})
		}
		report.SalesByDrink[i].Quantity += s.Quantity
		report.SalesByDrink[i].Total += s.Total
	}

	return report
}

// GenerateTotalReport folds all sales and supplies into the aggregate
// financial summary. InvestmentByType follows the enumeration's
// declaration order and omits types with no spend.
func GenerateTotalReport(sales []saledomain.Sale, supplies []supplydomain.Supply) TotalReport {
	report := TotalReport{InvestmentByType: []TypeInvestment{}}

	byType := make(map[supplydomain.SupplyType]int)
	for _, s := range supplies {
		report.TotalInvestment += s.Amount
		byType[s.Type] += s.Amount
	}

	dates := make(map[string]bool)
	for _, s := range sales {
		report.TotalSales += s.Total
		dates[s.Date] = true
	}

	report.NetProfit = report.TotalSales - report.TotalInvestment
	if report.TotalInvestment > 0 {
		report.ProfitPercentage = float64(report.NetProfit) / float64(report.TotalInvestment) * 100
	}
	report.DaysWithSales = len(dates)

	for _, t := range supplydomain.SupplyTypes {
		if total := byType[t]; total > 0 {
			report.InvestmentByType = append(report.InvestmentByType, TypeInvestment{Type: t, Total: total})
		}
	}

	return report
}
