package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"printshop/internal/domain/entities"
	"printshop/internal/domain/views"
	mock_interfaces "printshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testDate(t *testing.T, s string) entities.DateOnly {
	t.Helper()
	d, err := entities.ParseDateOnly(s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func validOrder(t *testing.T) entities.Order {
	t.Helper()
	return entities.Order{
		Nickname:    "pony",
		Color:       "black",
		Price:       100,
		DateOfOrder: testDate(t, "2024-05-01"),
		Status:      entities.StatusContact,
	}
}

func intPtr(v int) *int { return &v }

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("missing date", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		o := validOrder(t)
		o.DateOfOrder = entities.DateOnly{}
		_, err := uc.CreateOrder(context.Background(), o)
		if !errors.Is(err, ErrInvalidOrderDate) {
			t.Fatalf("expected ErrInvalidOrderDate, got %v", err)
		}
	})

	t.Run("discount out of range", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		o := validOrder(t)
		o.Discount = 120
		_, err := uc.CreateOrder(context.Background(), o)
		if !errors.Is(err, ErrInvalidDiscount) {
			t.Fatalf("expected ErrInvalidDiscount, got %v", err)
		}
	})

	t.Run("discount applied once at save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil)

		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Price != 90 {
					t.Fatalf("expected discounted price 90, got %v", o.Price)
				}
				if o.Discount != 10 {
					t.Fatalf("discount field must be stored untouched, got %v", o.Discount)
				}
				o.ID = 7
				return o, nil
			},
		)

		o := validOrder(t)
		o.Discount = 10
		saved, err := uc.CreateOrder(context.Background(), o)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ID != 7 {
			t.Fatalf("expected assigned id, got %d", saved.ID)
		}
	})

	t.Run("non-initial status without filament is rejected", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		o := validOrder(t)
		o.Status = entities.StatusPrinting
		_, err := uc.CreateOrder(context.Background(), o)
		if !errors.Is(err, ErrFilamentRequired) {
			t.Fatalf("expected ErrFilamentRequired, got %v", err)
		}
	})

	t.Run("non-initial status with zero amount is rejected", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		o := validOrder(t)
		o.Status = entities.StatusPrinting
		o.FilamentID = intPtr(3)
		_, err := uc.CreateOrder(context.Background(), o)
		if !errors.Is(err, ErrFilamentRequired) {
			t.Fatalf("expected ErrFilamentRequired, got %v", err)
		}
	})

	t.Run("unknown filament", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		filaments := mock_interfaces.NewMockIFilamentRepository(ctrl)
		uc := NewOrderUseCase(nil, filaments)

		filaments.EXPECT().GetByID(gomock.Any(), 42).Return(entities.Filament{}, nil)

		o := validOrder(t)
		o.Status = entities.StatusPrinting
		o.FilamentID = intPtr(42)
		o.AmountUsed = 12.5
		_, err := uc.CreateOrder(context.Background(), o)
		if !errors.Is(err, ErrFilamentNotFound) {
			t.Fatalf("expected ErrFilamentNotFound, got %v", err)
		}
	})

	t.Run("initial status never charges the spool", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		filaments := mock_interfaces.NewMockIFilamentRepository(ctrl)
		uc := NewOrderUseCase(orders, filaments)

		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if strings.Contains(o.Description, "Filament used") {
					t.Fatalf("contact-stage order must not record usage: %q", o.Description)
				}
				o.ID = 2
				return o, nil
			},
		)

		o := validOrder(t)
		o.FilamentID = intPtr(3)
		o.AmountUsed = 12.5
		if _, err := uc.CreateOrder(context.Background(), o); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("charges spool and appends usage note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		filaments := mock_interfaces.NewMockIFilamentRepository(ctrl)
		uc := NewOrderUseCase(orders, filaments)

		spool := entities.Filament{ID: 3, Size: 1000, AmountUsed: 100, Material: "PLA", ColourName: "black"}
		filaments.EXPECT().GetByID(gomock.Any(), 3).Return(spool, nil)
		filaments.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Filament{})).DoAndReturn(
			func(_ context.Context, f entities.Filament) (entities.Filament, error) {
				if f.AmountUsed != 112.5 {
					t.Fatalf("expected spool usage 112.5, got %v", f.AmountUsed)
				}
				return f, nil
			},
		)
		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if !strings.Contains(o.Description, "Filament used: PLA:black:1000 (Weight) - 12.5") {
					t.Fatalf("usage note missing from description: %q", o.Description)
				}
				o.ID = 1
				return o, nil
			},
		)

		o := validOrder(t)
		o.Status = entities.StatusPrinting
		o.FilamentID = intPtr(3)
		o.AmountUsed = 12.5
		if _, err := uc.CreateOrder(context.Background(), o); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_UpdateOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.UpdateOrder(context.Background(), entities.Order{})
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil)

		orders.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Order{}, nil)

		o := validOrder(t)
		o.ID = 9
		_, err := uc.UpdateOrder(context.Background(), o)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("row vanished before the write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil)

		existing := validOrder(t)
		existing.ID = 9

		orders.EXPECT().GetByID(gomock.Any(), 9).Return(existing, nil)
		orders.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).Return(entities.Order{}, nil)

		o := existing
		_, err := uc.UpdateOrder(context.Background(), o)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("unchanged usage is not recharged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		filaments := mock_interfaces.NewMockIFilamentRepository(ctrl)
		uc := NewOrderUseCase(orders, filaments)

		existing := validOrder(t)
		existing.ID = 9
		existing.Status = entities.StatusPrinting
		existing.FilamentID = intPtr(3)
		existing.AmountUsed = 20

		orders.EXPECT().GetByID(gomock.Any(), 9).Return(existing, nil)
		orders.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		o := existing
		o.Status = entities.StatusFinished
		if _, err := uc.UpdateOrder(context.Background(), o); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("changed amount charges the spool again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		filaments := mock_interfaces.NewMockIFilamentRepository(ctrl)
		uc := NewOrderUseCase(orders, filaments)

		existing := validOrder(t)
		existing.ID = 9
		existing.Status = entities.StatusPrinting
		existing.FilamentID = intPtr(3)
		existing.AmountUsed = 20

		spool := entities.Filament{ID: 3, Size: 1000, AmountUsed: 500, Material: "PETG", ColourName: "blue"}
		orders.EXPECT().GetByID(gomock.Any(), 9).Return(existing, nil)
		filaments.EXPECT().GetByID(gomock.Any(), 3).Return(spool, nil)
		filaments.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Filament{})).DoAndReturn(
			func(_ context.Context, f entities.Filament) (entities.Filament, error) {
				if f.AmountUsed != 530 {
					t.Fatalf("expected spool usage 530, got %v", f.AmountUsed)
				}
				return f, nil
			},
		)
		orders.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)

		o := existing
		o.AmountUsed = 30
		if _, err := uc.UpdateOrder(context.Background(), o); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestOrderUseCase_ListOrders(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil)

		orders.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.ListOrders(context.Background(), views.Query{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("applies the view pipeline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil)

		all := []entities.Order{
			{ID: 1, Status: entities.StatusFinished, PaymentReceived: true, Price: 5},
			{ID: 2, Status: entities.StatusPrinting, PaymentReceived: false, Price: 9},
			{ID: 3, Status: entities.StatusPrinting, PaymentReceived: false, Price: 2},
		}
		orders.EXPECT().List(gomock.Any()).Return(all, nil)

		status := entities.StatusPrinting
		got, err := uc.ListOrders(context.Background(), views.Query{
			Filter: views.Filter{Status: &status},
			Sort:   &views.Sort{Key: views.SortByPrice, Direction: views.Ascending},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != 3 || got[1].ID != 2 {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}

func TestOrderUseCase_DeleteOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		if err := uc.DeleteOrder(context.Background(), 0); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil)

		orders.EXPECT().Delete(gomock.Any(), 5).Return(nil)

		if err := uc.DeleteOrder(context.Background(), 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestApplyDiscount(t *testing.T) {
	cases := []struct {
		price    float64
		discount float64
		want     float64
	}{
		{100, 10, 90},
		{100, 0, 100},
		{33.30, 10, 29.97},
		{19.99, 100, 0},
		{0, 50, 0},
	}
	for _, tc := range cases {
		if got := applyDiscount(tc.price, tc.discount); got != tc.want {
			t.Fatalf("applyDiscount(%v, %v) = %v, want %v", tc.price, tc.discount, got, tc.want)
		}
	}
}
