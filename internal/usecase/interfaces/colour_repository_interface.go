package interfaces

import (
	"context"

	"printshop/internal/domain/entities"
)

// IColourRepository abstracts DynamoDB persistence for the colour catalog.

type IColourRepository interface {
	List(ctx context.Context) ([]entities.Colour, error)
	Create(ctx context.Context, c entities.Colour) (entities.Colour, error)
	Update(ctx context.Context, c entities.Colour) (entities.Colour, error)
	Delete(ctx context.Context, id int) error
}
