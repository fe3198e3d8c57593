package patient

import "context"

// Repository is the persistence boundary for patient profiles. The attribute
// collections go through the shared reconcile store instead.
type Repository interface {
	CreateBasicInfo(ctx context.Context, mrn, ptName string) (*BasicInfo, error)
	GetBasicInfo(ctx context.Context, mrn string) (*BasicInfo, error)
	ListBasicInfo(ctx context.Context, q string, limit, offset int) ([]*BasicInfo, error)
	// UpdateBasicInfoColumns applies the staged display-column values. A nil
	// value clears the column; columns absent from the map are left alone.
	UpdateBasicInfoColumns(ctx context.Context, mrn string, cols map[string]*string) error
	GetDetail(ctx context.Context, mrn string) (*Detail, error)
	// UpsertDetail creates or patches the 1:1 detail row, touching only the
	// columns present in fields.
	UpsertDetail(ctx context.Context, mrn string, fields map[string]*string) (*Detail, error)
}
