package usecase

import (
	"context"
	"errors"
	"strings"

	"printshop/internal/domain/entities"
	"printshop/internal/usecase/interfaces"
)

var (
	ErrFilamentNotFound    = errors.New("filament not found")
	ErrInvalidFilamentID   = errors.New("invalid filament id")
	ErrInvalidFilamentSize = errors.New("invalid filament size")
	ErrInvalidAmountUsed   = errors.New("invalid amount used")
)

// IFilamentUseCase exposes filament catalog operations.

type IFilamentUseCase interface {
	ListFilaments(ctx context.Context) ([]entities.Filament, error)
	CreateFilament(ctx context.Context, f entities.Filament) (entities.Filament, error)
	UpdateFilament(ctx context.Context, f entities.Filament) (entities.Filament, error)
	DeleteFilament(ctx context.Context, id int) error
}

type FilamentUseCase struct {
	repo interfaces.IFilamentRepository
}

var _ IFilamentUseCase = (*FilamentUseCase)(nil)

func NewFilamentUseCase(repo interfaces.IFilamentRepository) *FilamentUseCase {
	return &FilamentUseCase{repo: repo}
}

func (u *FilamentUseCase) ListFilaments(ctx context.Context) ([]entities.Filament, error) {
	return u.repo.List(ctx)
}

func (u *FilamentUseCase) CreateFilament(ctx context.Context, f entities.Filament) (entities.Filament, error) {
	if err := validateFilament(f); err != nil {
		return entities.Filament{}, err
	}
	return u.repo.Create(ctx, f)
}

func (u *FilamentUseCase) UpdateFilament(ctx context.Context, f entities.Filament) (entities.Filament, error) {
	if f.ID <= 0 {
		return entities.Filament{}, ErrInvalidFilamentID
	}
	if err := validateFilament(f); err != nil {
		return entities.Filament{}, err
	}

	updated, err := u.repo.Update(ctx, f)
	if err != nil {
		return entities.Filament{}, err
	}
	if updated.ID == 0 {
		return entities.Filament{}, ErrFilamentNotFound
	}
	return updated, nil
}

func (u *FilamentUseCase) DeleteFilament(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidFilamentID
	}
	return u.repo.Delete(ctx, id)
}

func validateFilament(f entities.Filament) error {
	if f.Size <= 0 {
		return ErrInvalidFilamentSize
	}
	if f.AmountUsed < 0 {
		return ErrInvalidAmountUsed
	}
	if strings.TrimSpace(f.ColourName) == "" {
		return ErrInvalidColourName
	}
	return nil
}
