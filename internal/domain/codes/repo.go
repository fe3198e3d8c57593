package codes

import "context"

// Repository provides access to the code_option reference table.
type Repository interface {
	ListByCategory(ctx context.Context, category string) ([]*Option, error)
	GetActive(ctx context.Context, category, code string) (*Option, error)
	Upsert(ctx context.Context, o *Option) error
}
