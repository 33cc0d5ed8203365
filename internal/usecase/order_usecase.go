package usecase

import (
	"context"
	"errors"
	"fmt"

	"printshop/internal/domain/entities"
	"printshop/internal/domain/views"
	"printshop/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidOrderDate = errors.New("invalid order date")
	ErrInvalidDiscount  = errors.New("invalid discount percentage")
	ErrFilamentRequired = errors.New("filament and amount used required for this status")
)

// IOrderUseCase exposes order operations.
//
// Saving is where the two non-CRUD rules live:
//   - the stored price is the submitted price with the discount applied,
//     computed once per save and never rescaled on read;
//   - a save with a non-initial status must carry a filament selection and a
//     positive amount used, and a new selection charges the spool and appends
//     a usage note to the order description.

type IOrderUseCase interface {
	ListOrders(ctx context.Context, q views.Query) ([]entities.Order, error)
	CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	DeleteOrder(ctx context.Context, id int) error
}

type OrderUseCase struct {
	orders    interfaces.IOrderRepository
	filaments interfaces.IFilamentRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, filaments interfaces.IFilamentRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, filaments: filaments}
}

// ListOrders fetches the collection and runs the view pipeline over it:
// filter first, then sort. An empty query returns the raw collection.
func (u *OrderUseCase) ListOrders(ctx context.Context, q views.Query) ([]entities.Order, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return views.Render(orders, q), nil
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	o, err := u.prepareSave(ctx, o, nil)
	if err != nil {
		return entities.Order{}, err
	}
	return u.orders.Create(ctx, o)
}

func (u *OrderUseCase) UpdateOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.ID <= 0 {
		return entities.Order{}, ErrInvalidOrderID
	}

	existing, err := u.orders.GetByID(ctx, o.ID)
	if err != nil {
		return entities.Order{}, err
	}
	if existing.ID == 0 {
		return entities.Order{}, ErrOrderNotFound
	}

	o, err = u.prepareSave(ctx, o, &existing)
	if err != nil {
		return entities.Order{}, err
	}

	updated, err := u.orders.Update(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == 0 {
		// The row vanished between the pre-check and the conditional write.
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

func (u *OrderUseCase) DeleteOrder(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidOrderID
	}
	return u.orders.Delete(ctx, id)
}

// prepareSave applies the shared save rules. previous is nil for a create.
func (u *OrderUseCase) prepareSave(ctx context.Context, o entities.Order, previous *entities.Order) (entities.Order, error) {
	if o.DateOfOrder.IsZero() {
		return entities.Order{}, ErrInvalidOrderDate
	}
	if o.Discount < 0 || o.Discount > 100 {
		return entities.Order{}, ErrInvalidDiscount
	}

	o.Price = applyDiscount(o.Price, o.Discount)

	if !o.Status.IsInitial() && (o.FilamentID == nil || o.AmountUsed <= 0) {
		return entities.Order{}, ErrFilamentRequired
	}

	if !o.Status.IsInitial() && o.FilamentID != nil && o.AmountUsed > 0 && usageChanged(o, previous) {
		note, err := u.chargeFilament(ctx, *o.FilamentID, o.AmountUsed)
		if err != nil {
			return entities.Order{}, err
		}
		o.Description += note
	}
	return o, nil
}

// usageChanged reports whether this save introduces a new material charge.
// Resaving an order with the same spool and amount must not double-charge.
func usageChanged(o entities.Order, previous *entities.Order) bool {
	if previous == nil || previous.FilamentID == nil {
		return true
	}
	return *previous.FilamentID != *o.FilamentID || previous.AmountUsed != o.AmountUsed
}

// chargeFilament bumps the spool's cumulative usage and returns the note to
// append to the order description.
func (u *OrderUseCase) chargeFilament(ctx context.Context, filamentID int, amount float64) (string, error) {
	f, err := u.filaments.GetByID(ctx, filamentID)
	if err != nil {
		return "", err
	}
	if f.ID == 0 {
		return "", ErrFilamentNotFound
	}

	f.AmountUsed += amount
	if _, err := u.filaments.Update(ctx, f); err != nil {
		return "", err
	}

	return fmt.Sprintf(" Filament used: %s:%s:%g (Weight) - %g", f.Material, f.ColourName, f.Size, amount), nil
}

// applyDiscount computes price * (1 - discount/100) rounded to cents.
// Decimal arithmetic keeps e.g. a 10% discount on 33.30 at exactly 29.97.
func applyDiscount(price, discount float64) float64 {
	if discount == 0 {
		return price
	}
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(discount).Div(decimal.NewFromInt(100)))
	out, _ := decimal.NewFromFloat(price).Mul(factor).Round(2).Float64()
	return out
}
