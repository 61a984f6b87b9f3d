package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fintrack/internal/aggregate"
	"fintrack/internal/money"
	"fintrack/internal/services"
)

// DashboardHandler serves the dashboard summary and chart.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
	now              func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, now: time.Now}
}

// DashboardResponse represents the dashboard. Money fields are in cents, with
// decimal string copies for display.
type DashboardResponse struct {
	TotalBalance           int64                     `json:"total_balance"`
	TotalBalanceDecimal    string                    `json:"total_balance_decimal"`
	MonthlySpending        int64                     `json:"monthly_spending"`
	MonthlySpendingDecimal string                    `json:"monthly_spending_decimal"`
	Runway                 float64                   `json:"runway"`
	MonthStart             string                    `json:"month_start"`
	Cards                  []CardResponse            `json:"cards"`
	RecentTransactions     []TransactionResponse     `json:"recent_transactions"`
	SpendingByCategory     []aggregate.CategorySpend `json:"spending_by_category"`
}

// GetDashboard returns the caller's dashboard
// @Summary     Dashboard
// @Description Total balance, this month's spending, runway in months, cards and recent transactions
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DashboardResponse "Dashboard"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	d, err := h.dashboardService.GetDashboard(c.Request.Context(), userID, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	spend := d.SpendingByCategory
	if spend == nil {
		spend = []aggregate.CategorySpend{}
	}

	c.JSON(http.StatusOK, DashboardResponse{
		TotalBalance:           d.TotalBalance,
		TotalBalanceDecimal:    money.Format(d.TotalBalance),
		MonthlySpending:        d.MonthlySpending,
		MonthlySpendingDecimal: money.Format(d.MonthlySpending),
		Runway:                 d.Runway,
		MonthStart:             d.MonthStart.Format(time.DateOnly),
		Cards:                  toCardResponses(d.Cards),
		RecentTransactions:     toTransactionResponses(d.RecentTransactions),
		SpendingByCategory:     spend,
	})
}

// GetSpendingChart renders this month's spending by category
// @Summary     Spending chart
// @Description PNG pie chart of this month's spending by category
// @Tags        dashboard
// @Produce     png
// @Security    BearerAuth
// @Success     200 {file}   binary "PNG image"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/spending.png [get]
func (h *DashboardHandler) GetSpendingChart(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	png, err := h.dashboardService.SpendingChart(c.Request.Context(), userID, h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", png)
}
