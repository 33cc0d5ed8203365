package interfaces

import (
	"context"

	"printshop/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Lookups that find nothing return a zero-value Order and a nil error; the
// use case layer turns the zero id into its not-found error.

type IOrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id int) (entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Update(ctx context.Context, o entities.Order) (entities.Order, error)
	Delete(ctx context.Context, id int) error
}
