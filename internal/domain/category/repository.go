package category

import "context"

type Repository interface {
	Save(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}
