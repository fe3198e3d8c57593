package artist

import "context"

// Repository is the persistence boundary for artist profiles.
type Repository interface {
	CreateBasicInfo(ctx context.Context, artistID, stageName string) (*BasicInfo, error)
	GetBasicInfo(ctx context.Context, artistID string) (*BasicInfo, error)
	ListBasicInfo(ctx context.Context, q string, limit, offset int) ([]*BasicInfo, error)
	UpdateBasicInfoColumns(ctx context.Context, artistID string, cols map[string]*string) error
	GetDetail(ctx context.Context, artistID string) (*Detail, error)
	UpsertDetail(ctx context.Context, artistID string, fields map[string]*string) (*Detail, error)
}
