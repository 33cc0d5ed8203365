package usecase

import (
	"context"
	"errors"
	"testing"

	"printshop/internal/domain/entities"
	mock_interfaces "printshop/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validFilament(t *testing.T) entities.Filament {
	t.Helper()
	return entities.Filament{
		Size:           1000,
		AmountUsed:     0,
		DateOfAddition: testDate(t, "2024-04-01"),
		Material:       "PLA",
		ColourName:     "black",
	}
}

func TestFilamentUseCase_CreateFilament(t *testing.T) {
	t.Run("invalid size", func(t *testing.T) {
		uc := NewFilamentUseCase(nil)
		f := validFilament(t)
		f.Size = 0
		_, err := uc.CreateFilament(context.Background(), f)
		if !errors.Is(err, ErrInvalidFilamentSize) {
			t.Fatalf("expected ErrInvalidFilamentSize, got %v", err)
		}
	})

	t.Run("negative usage", func(t *testing.T) {
		uc := NewFilamentUseCase(nil)
		f := validFilament(t)
		f.AmountUsed = -1
		_, err := uc.CreateFilament(context.Background(), f)
		if !errors.Is(err, ErrInvalidAmountUsed) {
			t.Fatalf("expected ErrInvalidAmountUsed, got %v", err)
		}
	})

	t.Run("missing colour", func(t *testing.T) {
		uc := NewFilamentUseCase(nil)
		f := validFilament(t)
		f.ColourName = " "
		_, err := uc.CreateFilament(context.Background(), f)
		if !errors.Is(err, ErrInvalidColourName) {
			t.Fatalf("expected ErrInvalidColourName, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFilamentRepository(ctrl)
		uc := NewFilamentUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Filament{})).DoAndReturn(
			func(_ context.Context, f entities.Filament) (entities.Filament, error) {
				f.ID = 2
				return f, nil
			},
		)

		f, err := uc.CreateFilament(context.Background(), validFilament(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.ID != 2 {
			t.Fatalf("expected assigned id, got %d", f.ID)
		}
	})
}

func TestFilamentUseCase_UpdateFilament(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewFilamentUseCase(nil)
		_, err := uc.UpdateFilament(context.Background(), validFilament(t))
		if !errors.Is(err, ErrInvalidFilamentID) {
			t.Fatalf("expected ErrInvalidFilamentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFilamentRepository(ctrl)
		uc := NewFilamentUseCase(repo)

		f := validFilament(t)
		f.ID = 6
		repo.EXPECT().Update(gomock.Any(), f).Return(entities.Filament{}, nil)

		_, err := uc.UpdateFilament(context.Background(), f)
		if !errors.Is(err, ErrFilamentNotFound) {
			t.Fatalf("expected ErrFilamentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFilamentRepository(ctrl)
		uc := NewFilamentUseCase(repo)

		f := validFilament(t)
		f.ID = 6
		repo.EXPECT().Update(gomock.Any(), f).Return(f, nil)

		got, err := uc.UpdateFilament(context.Background(), f)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 6 {
			t.Fatalf("unexpected filament: %+v", got)
		}
	})
}

func TestFilamentUseCase_DeleteFilament(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewFilamentUseCase(nil)
		if err := uc.DeleteFilament(context.Background(), 0); !errors.Is(err, ErrInvalidFilamentID) {
			t.Fatalf("expected ErrInvalidFilamentID, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIFilamentRepository(ctrl)
		uc := NewFilamentUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), 6).Return(nil)

		if err := uc.DeleteFilament(context.Background(), 6); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
