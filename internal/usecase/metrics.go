package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/telecrm/internal/entity"
)

// trendDays is the number of days looked back by CallTrends. The range
// is inclusive on both ends, so the result always holds trendDays+1
// calendar days: [today-7d .. today].
const trendDays = 7

// MetricsUseCase computes the admin dashboard aggregates.
type MetricsUseCase struct {
	Users UserRepositoryInterface
	Leads LeadRepositoryInterface
	Calls CallRecordRepositoryInterface
	Now   func() time.Time
}

func NewMetricsUseCase(users UserRepositoryInterface, leads LeadRepositoryInterface, calls CallRecordRepositoryInterface) *MetricsUseCase {
	return &MetricsUseCase{
		Users: users,
		Leads: leads,
		Calls: calls,
		Now:   time.Now,
	}
}

// DashboardMetrics returns point-in-time totals. Admin only; the
// telecaller count excludes admin accounts.
func (uc *MetricsUseCase) DashboardMetrics(ctx context.Context, actor entity.Actor) (*DashboardMetrics, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden("not authorized to access dashboard metrics")
	}

	totalTelecallers, err := uc.Users.CountByRole(ctx, entity.RoleTelecaller)
	if err != nil {
		return nil, err
	}

	totalCalls, err := uc.Calls.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalCustomers, err := uc.Leads.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardMetrics{
		TotalTelecallers: totalTelecallers,
		TotalCalls:       totalCalls,
		TotalCustomers:   totalCustomers,
	}, nil
}

// CallTrends returns one point per UTC calendar day in the inclusive
// window, ascending. Days without records are present with zero calls:
// the store only reports days that have records, so the rows are
// left-joined against the full day range here.
func (uc *MetricsUseCase) CallTrends(ctx context.Context, actor entity.Actor) ([]CallTrendPoint, error) {
	if !actor.IsAdmin() {
		return nil, Forbidden("not authorized to access call trends")
	}

	now := uc.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := today.AddDate(0, 0, -trendDays)

	rows, err := uc.Calls.CountByDaySince(ctx, start)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Date] = row.Calls
	}

	trends := make([]CallTrendPoint, 0, trendDays+1)
	for day := start; !day.After(today); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")
		trends = append(trends, CallTrendPoint{
			Date:  date,
			Calls: counts[date],
		})
	}

	return trends, nil
}
