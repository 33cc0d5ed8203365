package usecase

import (
	"context"
	"errors"
	"strings"

	"printshop/internal/domain/entities"
	"printshop/internal/usecase/interfaces"
)

var (
	ErrColourNotFound    = errors.New("colour not found")
	ErrInvalidColourID   = errors.New("invalid colour id")
	ErrInvalidColourName = errors.New("invalid colour name")
)

// IColourUseCase exposes colour catalog operations. Renames and deletes do
// not touch orders or filaments that reference the colour by name; the
// dangling match is accepted behaviour.

type IColourUseCase interface {
	ListColours(ctx context.Context) ([]entities.Colour, error)
	CreateColour(ctx context.Context, name string) (entities.Colour, error)
	RenameColour(ctx context.Context, id int, name string) (entities.Colour, error)
	DeleteColour(ctx context.Context, id int) error
}

type ColourUseCase struct {
	repo interfaces.IColourRepository
}

var _ IColourUseCase = (*ColourUseCase)(nil)

func NewColourUseCase(repo interfaces.IColourRepository) *ColourUseCase {
	return &ColourUseCase{repo: repo}
}

func (u *ColourUseCase) ListColours(ctx context.Context) ([]entities.Colour, error) {
	return u.repo.List(ctx)
}

func (u *ColourUseCase) CreateColour(ctx context.Context, name string) (entities.Colour, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Colour{}, ErrInvalidColourName
	}
	return u.repo.Create(ctx, entities.Colour{ColourName: name})
}

func (u *ColourUseCase) RenameColour(ctx context.Context, id int, name string) (entities.Colour, error) {
	if id <= 0 {
		return entities.Colour{}, ErrInvalidColourID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Colour{}, ErrInvalidColourName
	}

	updated, err := u.repo.Update(ctx, entities.Colour{ID: id, ColourName: name})
	if err != nil {
		return entities.Colour{}, err
	}
	if updated.ID == 0 {
		return entities.Colour{}, ErrColourNotFound
	}
	return updated, nil
}

func (u *ColourUseCase) DeleteColour(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidColourID
	}
	return u.repo.Delete(ctx, id)
}
