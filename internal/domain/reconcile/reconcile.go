// Package reconcile implements the shared procedure behind every detail save:
// reconciling a submitted multi-valued attribute list (nationalities,
// languages, religions, identity documents) against its stored rows, and
// computing the subject columns that mirror the primary row. Each attribute
// type in each domain is described by a ListSpec; the algorithm is written
// once and parameterized by the descriptor.
package reconcile

import (
	"context"
	"time"
)

// TempIDThreshold is the boundary between store-assigned row ids and
// client-side placeholders. Clients tag unsaved rows with a millisecond
// timestamp, so any id at or above this value can never reference a
// persisted row.
const TempIDThreshold int64 = 1_000_000_000

// Ref is a tagged reference to a child row: either an existing persisted row
// or a new one yet to be inserted. The numeric placeholder convention is
// confined to RefFromClientID; the rest of the code never compares ids
// against the threshold.
type Ref struct {
	id        int64
	persisted bool
}

// RefFromClientID classifies a client-supplied id. Ids at or above
// TempIDThreshold (and the zero id of an omitted field) denote new rows.
func RefFromClientID(id int64) Ref {
	if id <= 0 || id >= TempIDThreshold {
		return Ref{}
	}
	return Ref{id: id, persisted: true}
}

// NewRef returns a reference to a row that has never been persisted.
func NewRef() Ref { return Ref{} }

// ExistingRef returns a reference to a persisted row.
func ExistingRef(id int64) Ref { return Ref{id: id, persisted: true} }

func (r Ref) Persisted() bool { return r.persisted }

// ID returns the persisted row id. Zero for new rows.
func (r Ref) ID() int64 { return r.id }

// Item is one incoming child row. Extra carries the second value for
// two-field attribute types (identity documents: Code is the document type,
// Extra the document number) and is empty otherwise.
type Item struct {
	Ref       Ref
	Code      string
	Extra     string
	IsPrimary bool
}

// Row is a stored child row.
type Row struct {
	ID        int64
	Key       string
	Code      string
	Extra     string
	IsPrimary bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ListSpec describes one multi-valued attribute type of one domain: where its
// rows live, which columns carry its values, and which subject columns mirror
// the primary row.
type ListSpec struct {
	Table       string // child table name
	KeyColumn   string // subject natural-key column (mrn / artist_id)
	CodeColumn  string // value column
	ExtraColumn string // second value column, "" for single-value types
	Category    string // code-option category resolving Code to a display name
	MirrorCode  string // subject column mirroring the primary row's code
	MirrorName  string // subject column mirroring the resolved display name
	MirrorExtra string // subject column mirroring Extra, "" when unused
}

// Store persists child rows for any ListSpec.
type Store interface {
	List(ctx context.Context, spec ListSpec, key string) ([]Row, error)
	Get(ctx context.Context, spec ListSpec, id int64) (*Row, error)
	DeleteExcept(ctx context.Context, spec ListSpec, key string, keep []int64) error
	Update(ctx context.Context, spec ListSpec, id int64, item Item) error
	Insert(ctx context.Context, spec ListSpec, key string, item Item) (int64, error)
	Delete(ctx context.Context, spec ListSpec, id int64) error
}

// Apply reconciles the submitted items against the stored rows for one
// subject: rows absent from the submitted persisted-id set are deleted,
// persisted items are updated in place, new items are inserted with
// store-assigned ids. It returns the authoritative post-save list. Callers
// run it inside the enclosing detail-save transaction.
func Apply(ctx context.Context, store Store, spec ListSpec, key string, items []Item) ([]Row, error) {
	keep := make([]int64, 0, len(items))
	for _, it := range items {
		if it.Ref.Persisted() {
			keep = append(keep, it.Ref.ID())
		}
	}

	if err := store.DeleteExcept(ctx, spec, key, keep); err != nil {
		return nil, err
	}

	for _, it := range items {
		if it.Ref.Persisted() {
			if err := store.Update(ctx, spec, it.Ref.ID(), it); err != nil {
				return nil, err
			}
			continue
		}
		if _, err := store.Insert(ctx, spec, key, it); err != nil {
			return nil, err
		}
	}

	return store.List(ctx, spec, key)
}

// PrimaryOf returns the first item in list order flagged primary. When a
// client submits more than one primary, list order is the documented
// tie-break: the first wins the mirror.
func PrimaryOf(items []Item) (Item, bool) {
	for _, it := range items {
		if it.IsPrimary {
			return it, true
		}
	}
	return Item{}, false
}

// NameResolver translates a {category, code} pair into a display name,
// falling back to the raw code when no option matches.
type NameResolver interface {
	ResolveName(ctx context.Context, category, code string) string
}

// MirrorColumns computes the staged subject-column update for one reconciled
// list: the primary item's code and resolved display name (plus the second
// value for two-field types), or nil values to clear stale mirrors when no
// item is primary.
func MirrorColumns(ctx context.Context, spec ListSpec, items []Item, resolver NameResolver) map[string]*string {
	cols := ClearedMirror(spec)
	p, ok := PrimaryOf(items)
	if !ok {
		return cols
	}

	code := p.Code
	name := resolver.ResolveName(ctx, spec.Category, p.Code)
	cols[spec.MirrorCode] = &code
	cols[spec.MirrorName] = &name
	if spec.MirrorExtra != "" {
		extra := p.Extra
		cols[spec.MirrorExtra] = &extra
	}
	return cols
}

// ClearedMirror returns the staged update that nulls every mirror column of
// the spec. Used when a list reconciles to no primary and when the primary
// row is deleted directly.
func ClearedMirror(spec ListSpec) map[string]*string {
	cols := map[string]*string{
		spec.MirrorCode: nil,
		spec.MirrorName: nil,
	}
	if spec.MirrorExtra != "" {
		cols[spec.MirrorExtra] = nil
	}
	return cols
}
