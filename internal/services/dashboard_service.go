package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"gorm.io/gorm"

	"fintrack/internal/aggregate"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/money"
	"fintrack/internal/pagination"
)

// dashboardService computes the dashboard from a consistent ledger snapshot.
type dashboardService struct {
	db          *gorm.DB
	recentLimit int
}

// NewDashboardService creates a new DashboardServicer showing recentLimit
// recent transactions.
func NewDashboardService(db *gorm.DB, recentLimit int) DashboardServicer {
	req := pagination.LimitRequest{Limit: recentLimit}
	req.Defaults(pagination.DefaultLimit)
	return &dashboardService{db: db, recentLimit: req.Limit}
}

// snapshot is everything the dashboard reads, taken in one transaction.
type snapshot struct {
	cards  []models.Card
	month  []models.Transaction
	recent []models.Transaction
}

// readSnapshot loads cards and transactions in a single read transaction, so
// a transaction is never seen without its balance adjustment. Postgres gets
// a repeatable-read, read-only snapshot.
func (s *dashboardService) readSnapshot(ctx context.Context, userID string, now time.Time, withRecent bool) (*snapshot, error) {
	var opts []*sql.TxOptions
	if s.db.Dialector.Name() == "postgres" {
		opts = append(opts, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	}

	snap := &snapshot{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if snap.cards, err = listCards(tx, userID); err != nil {
			return err
		}

		snap.month = []models.Transaction{}
		if err := tx.Where("user_id = ? AND date >= ?", userID, aggregate.MonthStart(now)).
			Find(&snap.month).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if withRecent {
			if snap.recent, err = recentTransactions(tx, userID, s.recentLimit); err != nil {
				return err
			}
		}
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// GetDashboard returns the balance total, this month's spending, the runway
// and the latest transactions for userID.
func (s *dashboardService) GetDashboard(ctx context.Context, userID string, now time.Time) (*Dashboard, error) {
	snap, err := s.readSnapshot(ctx, userID, now, true)
	if err != nil {
		return nil, err
	}

	total := aggregate.TotalBalance(snap.cards)
	spent := aggregate.MonthlySpending(snap.month, now)

	return &Dashboard{
		TotalBalance:       total,
		MonthlySpending:    spent,
		Runway:             aggregate.Runway(total, spent),
		MonthStart:         aggregate.MonthStart(now),
		Cards:              snap.cards,
		RecentTransactions: snap.recent,
		SpendingByCategory: aggregate.SpendingByCategory(snap.month, now),
	}, nil
}

// SpendingChart renders this month's spending by category as a PNG pie chart.
func (s *dashboardService) SpendingChart(ctx context.Context, userID string, now time.Time) ([]byte, error) {
	snap, err := s.readSnapshot(ctx, userID, now, false)
	if err != nil {
		return nil, err
	}

	png, err := renderSpendingChart(aggregate.SpendingByCategory(snap.month, now))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return png, nil
}

func renderSpendingChart(spend []aggregate.CategorySpend) ([]byte, error) {
	var total int64
	for _, c := range spend {
		total += c.Amount
	}

	values := make([]chart.Value, 0, len(spend))
	for _, c := range spend {
		pct := float64(c.Amount) / float64(total) * 100
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s (%.1f%%)", c.Category, money.Format(c.Amount), pct),
			Value: float64(c.Amount),
		})
	}
	if len(values) == 0 {
		values = append(values, chart.Value{Label: "No spending this month", Value: 1})
	}

	pie := chart.PieChart{
		Width:  800,
		Height: 600,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   40,
				Right:  40,
				Bottom: 40,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("render spending chart: %w", err)
	}
	return buffer.Bytes(), nil
}
