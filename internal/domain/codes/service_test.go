package codes

import (
	"context"
	"fmt"
	"testing"

	"github.com/recordbook/recordbook/internal/platform/api"
)

// -- Mock Repository --

type mockRepo struct {
	options map[string]*Option // keyed category/code
	gets    int
}

func newMockRepo() *mockRepo {
	return &mockRepo{options: make(map[string]*Option)}
}

func (m *mockRepo) key(category, code string) string { return category + "/" + code }

func (m *mockRepo) ListByCategory(_ context.Context, category string) ([]*Option, error) {
	var result []*Option
	for _, o := range m.options {
		if o.Category == category && o.IsActive {
			result = append(result, o)
		}
	}
	return result, nil
}

func (m *mockRepo) GetActive(_ context.Context, category, code string) (*Option, error) {
	m.gets++
	o, ok := m.options[m.key(category, code)]
	if !ok || !o.IsActive {
		return nil, fmt.Errorf("code option %s/%s: %w", category, code, api.ErrNotFound)
	}
	return o, nil
}

func (m *mockRepo) Upsert(_ context.Context, o *Option) error {
	o.ID = int64(len(m.options) + 1)
	m.options[m.key(o.Category, o.Code)] = o
	return nil
}

func seedMock(repo *mockRepo) {
	repo.Upsert(context.Background(), &Option{Category: CategoryNationality, Code: "TWN", Name: "台灣", DisplayOrder: 3, IsActive: true})
	repo.Upsert(context.Background(), &Option{Category: CategoryNationality, Code: "JPN", Name: "日本", DisplayOrder: 2, IsActive: true})
	repo.Upsert(context.Background(), &Option{Category: CategoryReligion, Code: "shinto", Name: "神道", IsActive: false})
}

func TestResolveName(t *testing.T) {
	repo := newMockRepo()
	seedMock(repo)
	svc := NewService(repo)

	if got := svc.ResolveName(context.Background(), CategoryNationality, "JPN"); got != "日本" {
		t.Errorf("expected 日本, got %q", got)
	}
}

func TestResolveName_MissFallsBackToCode(t *testing.T) {
	repo := newMockRepo()
	seedMock(repo)
	svc := NewService(repo)

	if got := svc.ResolveName(context.Background(), CategoryNationality, "XXX"); got != "XXX" {
		t.Errorf("expected raw code fallback, got %q", got)
	}
	// Inactive options are misses too.
	if got := svc.ResolveName(context.Background(), CategoryReligion, "shinto"); got != "shinto" {
		t.Errorf("expected raw code for inactive option, got %q", got)
	}
}

func TestResolveName_EmptyCode(t *testing.T) {
	svc := NewService(newMockRepo())
	if got := svc.ResolveName(context.Background(), CategoryNationality, ""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestResolver_CachesLookups(t *testing.T) {
	repo := newMockRepo()
	seedMock(repo)
	svc := NewService(repo)

	r := svc.NewResolver()
	for i := 0; i < 3; i++ {
		if got := r.ResolveName(context.Background(), CategoryNationality, "TWN"); got != "台灣" {
			t.Fatalf("expected 台灣, got %q", got)
		}
	}
	if repo.gets != 1 {
		t.Errorf("expected 1 store lookup, got %d", repo.gets)
	}
}

func TestListOptions_RequiresCategory(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.ListOptions(context.Background(), ""); err == nil {
		t.Error("expected error for empty category")
	}
}

func TestSeed(t *testing.T) {
	repo := newMockRepo()
	count, err := Seed(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != len(seedOptions) {
		t.Errorf("expected %d seeded options, got %d", len(seedOptions), count)
	}

	svc := NewService(repo)
	if got := svc.ResolveName(context.Background(), CategoryIDType, "passport"); got != "護照" {
		t.Errorf("expected 護照, got %q", got)
	}
}
