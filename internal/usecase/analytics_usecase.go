package usecase

import (
	"context"
	"time"

	"printshop/internal/domain/entities"
	"printshop/internal/domain/views"
	"printshop/internal/usecase/interfaces"
)

// IAnalyticsUseCase exposes the two derived dashboard series.

type IAnalyticsUseCase interface {
	FilamentRemaining(ctx context.Context) ([]views.FilamentRemaining, error)
	OrdersPerWeek(ctx context.Context) ([]views.WeeklyOrderCount, error)
}

type AnalyticsUseCase struct {
	orders    interfaces.IOrderRepository
	filaments interfaces.IFilamentRepository
	now       func() time.Time
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(orders interfaces.IOrderRepository, filaments interfaces.IFilamentRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{orders: orders, filaments: filaments, now: time.Now}
}

// FilamentRemaining reports remaining weight per enumerated colour using the
// fixed colour set of the order form, not the editable catalog.
func (u *AnalyticsUseCase) FilamentRemaining(ctx context.Context) ([]views.FilamentRemaining, error) {
	filaments, err := u.filaments.List(ctx)
	if err != nil {
		return nil, err
	}
	return views.RemainingByColour(entities.ColourOptions, filaments), nil
}

// OrdersPerWeek buckets all orders into ISO weeks from the start of the
// current year through the current week.
func (u *AnalyticsUseCase) OrdersPerWeek(ctx context.Context) ([]views.WeeklyOrderCount, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return views.OrdersPerWeek(orders, u.now()), nil
}
