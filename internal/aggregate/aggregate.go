// Package aggregate derives the dashboard metrics from a ledger snapshot.
// Every function here is pure; callers supply the cards, transactions and
// the current time.
package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

var (
	ten  = decimal.NewFromInt(10)
	half = decimal.NewFromFloat(0.5)
)

// TotalBalance sums the balance of every card. An empty set sums to 0.
func TotalBalance(cards []models.Card) int64 {
	var total int64
	for i := range cards {
		total += cards[i].Balance
	}
	return total
}

// MonthStart returns the first day of now's calendar month, read in now's
// own location, as a UTC midnight date. Transaction dates are stored the
// same way so the two compare directly.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// InMonth reports whether a transaction date falls on or after the first day
// of now's calendar month.
func InMonth(date, now time.Time) bool {
	start := MonthStart(now)
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(start)
}

// MonthlySpending sums the magnitude of the expenses dated in the current
// month. Income and earlier months contribute nothing.
func MonthlySpending(txs []models.Transaction, now time.Time) int64 {
	var spent int64
	for i := range txs {
		if txs[i].Amount < 0 && InMonth(txs[i].Date, now) {
			spent -= txs[i].Amount
		}
	}
	return spent
}

// Runway estimates how many months the balance covers at the current
// spending rate, rounded half-up to one decimal place. It is 0 when nothing
// was spent.
func Runway(totalBalance, monthlySpending int64) float64 {
	if monthlySpending <= 0 {
		return 0
	}
	ratio := decimal.NewFromInt(totalBalance).Div(decimal.NewFromInt(monthlySpending))
	rounded := ratio.Mul(ten).Add(half).Floor().Div(ten)
	return rounded.InexactFloat64()
}

// CategorySpend is the month-to-date spending of one category, in cents.
type CategorySpend struct {
	Category models.Category `json:"category"`
	Amount   int64           `json:"amount"`
}

// SpendingByCategory groups the month's expenses by category, largest first.
// Ties keep the fixed category order.
func SpendingByCategory(txs []models.Transaction, now time.Time) []CategorySpend {
	totals := make(map[models.Category]int64)
	for i := range txs {
		if txs[i].Amount < 0 && InMonth(txs[i].Date, now) {
			totals[txs[i].Category] -= txs[i].Amount
		}
	}

	result := make([]CategorySpend, 0, len(totals))
	for _, c := range models.Categories {
		if amt, ok := totals[c]; ok {
			result = append(result, CategorySpend{Category: c, Amount: amt})
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount > result[j].Amount
	})
	return result
}
