package interfaces

import (
	"context"

	"printshop/internal/domain/entities"
)

// IFilamentRepository abstracts DynamoDB persistence for filament spools.
//
// Spools are written from two paths: catalog edits replace the whole record,
// and order saves bump the cumulative amount used. Both go through Update.

type IFilamentRepository interface {
	List(ctx context.Context) ([]entities.Filament, error)
	GetByID(ctx context.Context, id int) (entities.Filament, error)
	Create(ctx context.Context, f entities.Filament) (entities.Filament, error)
	Update(ctx context.Context, f entities.Filament) (entities.Filament, error)
	Delete(ctx context.Context, id int) error
}
