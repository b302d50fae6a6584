package view_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/farmflow/farmdash/internal/view"
)

func fixtureItems() []item {
	return []item{
		{ID: "1", Name: "Wheat", Note: "Field A-12", Status: statusInProgress},
		{ID: "2", Name: "Corn", Note: "Field B-7", Status: statusPending},
		{ID: "3", Name: "Soybeans", Note: "needs water", Status: statusPending},
		{ID: "4", Name: "Buckwheat", Note: "", Status: statusCompleted},
		{ID: "5", Name: "Rice", Note: "paddy  flooded", Status: statusPending},
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		records []item
		query   string
		sel     status
		wantIDs []string
	}{
		{
			name:    "empty query and selector returns all",
			records: fixtureItems(),
			wantIDs: []string{"1", "2", "3", "4", "5"},
		},
		{
			name:    "empty records",
			records: nil,
			query:   "wheat",
			wantIDs: []string{},
		},
		{
			name:    "case insensitive substring",
			records: []item{{ID: "w", Name: "Wheat"}, {ID: "c", Name: "Corn"}},
			query:   "WHE",
			wantIDs: []string{"w"},
		},
		{
			name:    "matches any search field",
			records: fixtureItems(),
			query:   "field",
			wantIDs: []string{"1", "2"},
		},
		{
			name:    "substring inside word keeps order",
			records: fixtureItems(),
			query:   "wheat",
			wantIDs: []string{"1", "4"},
		},
		{
			name:    "selector narrows",
			records: fixtureItems(),
			sel:     statusPending,
			wantIDs: []string{"2", "3", "5"},
		},
		{
			name:    "selector and query combine",
			records: fixtureItems(),
			query:   "o",
			sel:     statusPending,
			wantIDs: []string{"2", "3", "5"},
		},
		{
			name:    "selector and query exclude",
			records: fixtureItems(),
			query:   "wheat",
			sel:     statusPending,
			wantIDs: []string{},
		},
		{
			name:    "whitespace query is literal",
			records: fixtureItems(),
			query:   "  ",
			wantIDs: []string{"5"},
		},
		{
			name:    "single space matches fields containing a space",
			records: fixtureItems(),
			query:   " ",
			wantIDs: []string{"1", "2", "3", "5"},
		},
		{
			name:    "no match",
			records: fixtureItems(),
			query:   "barley",
			wantIDs: []string{},
		},
		{
			name:    "invalid selector fails closed",
			records: fixtureItems(),
			sel:     "archived",
			wantIDs: []string{},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := itemSchema.Filter(tt.records, tt.query, tt.sel)

			if diff := cmp.Diff(tt.wantIDs, ids(got)); diff != "" {
				t.Errorf("Filter(%q, %q) mismatch (-want +got):\n%s", tt.query, tt.sel, diff)
			}
		})
	}
}

func TestFilterEmptyQueryReturnsInput(t *testing.T) {
	t.Parallel()

	records := fixtureItems()

	if diff := cmp.Diff(records, itemSchema.Filter(records, "", "")); diff != "" {
		t.Errorf("Filter(R, \"\", none) != R (-want +got):\n%s", diff)
	}
}

func TestFilterIdempotent(t *testing.T) {
	t.Parallel()

	records := fixtureItems()

	for _, q := range []string{"", "e", "FIELD", " ", "zzz"} {
		for _, sel := range []status{"", statusPending, statusCompleted} {
			once := itemSchema.Filter(records, q, sel)
			twice := itemSchema.Filter(once, q, sel)

			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("Filter not idempotent for q=%q sel=%q (-once +twice):\n%s", q, sel, diff)
			}
		}
	}
}

func TestFilterSelectorNarrowing(t *testing.T) {
	t.Parallel()

	records := fixtureItems()

	for _, sel := range itemSchema.Selectors {
		got := itemSchema.Filter(records, "", sel)

		for _, rec := range got {
			if rec.Status != sel {
				t.Errorf("Filter(sel=%s) returned %s with status %s", sel, rec.ID, rec.Status)
			}
		}

		want := 0

		for _, rec := range records {
			if rec.Status == sel {
				want++
			}
		}

		if len(got) != want {
			t.Errorf("Filter(sel=%s) len=%d, want=%d", sel, len(got), want)
		}
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	records := fixtureItems()
	got := itemSchema.Filter(records, "", "")
	got[0].Name = "changed"

	if records[0].Name != "Wheat" {
		t.Errorf("Filter result aliases input: %q", records[0].Name)
	}
}

func TestWhereNarrowsFilterResult(t *testing.T) {
	t.Parallel()

	records := fixtureItems()
	records[1].Amount = 40
	records[4].Amount = 12

	visible := itemSchema.Filter(records, "", statusPending)
	got := view.Where(visible, func(i item) bool { return i.Amount > 10 })

	if diff := cmp.Diff([]string{"2", "5"}, ids(got)); diff != "" {
		t.Errorf("Where mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(ids(visible), ids(view.Where(visible, nil))); diff != "" {
		t.Errorf("Where(nil) changed records (-want +got):\n%s", diff)
	}

	if got := view.Where([]item(nil), func(item) bool { return true }); len(got) != 0 {
		t.Errorf("Where(empty) len=%d, want 0", len(got))
	}
}

func TestParseSelector(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		raw     string
		want    status
		wantErr error
	}{
		{raw: "", want: ""},
		{raw: "pending", want: statusPending},
		{raw: "in-progress", want: statusInProgress},
		{raw: "Pending", wantErr: view.ErrInvalidSelector},
		{raw: "archived", wantErr: view.ErrInvalidSelector},
	} {
		got, err := itemSchema.ParseSelector(tt.raw)

		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseSelector(%q) err=%v, want %v", tt.raw, err, tt.wantErr)

			continue
		}

		if got != tt.want {
			t.Errorf("ParseSelector(%q)=%q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseSelectorListsChoices(t *testing.T) {
	t.Parallel()

	_, err := itemSchema.ParseSelector("nope")
	if err == nil {
		t.Fatal("expected error")
	}

	want := "invalid selector: nope (want one of pending|in-progress|completed)"
	if err.Error() != want {
		t.Errorf("err=%q, want %q", err.Error(), want)
	}
}
