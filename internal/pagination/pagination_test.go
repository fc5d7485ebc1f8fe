package pagination

import "testing"

func TestDefaults(t *testing.T) {
	p := PageRequest{}
	p.Defaults()

	if p.Page != 1 || p.PageSize != 20 || p.Sort != "start_date" {
		t.Errorf("unexpected defaults: %+v", p)
	}
	if p.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset())
	}
}

func TestOffsetAndOrder(t *testing.T) {
	p := PageRequest{Page: 3, PageSize: 10, Sort: "-created_at"}
	p.Defaults()

	if p.Offset() != 20 {
		t.Errorf("expected offset 20, got %d", p.Offset())
	}
	if got := p.OrderClause(); got != "created_at DESC, id DESC" {
		t.Errorf("unexpected order clause %q", got)
	}

	p.Sort = "name"
	if got := p.OrderClause(); got != "name ASC, id ASC" {
		t.Errorf("unexpected order clause %q", got)
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[string](nil, 1, 2, 5)

	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}
	if resp.Data == nil {
		t.Error("expected empty slice, got nil")
	}
}
