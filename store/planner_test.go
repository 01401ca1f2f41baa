package store

import (
	"reflect"
	"testing"
)

func TestFiltersNormalize_Paging(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "zero page clamps to first", page: 0, limit: 20, wantPage: 1, wantLimit: 20},
		{name: "negative page clamps to first", page: -5, limit: 20, wantPage: 1, wantLimit: 20},
		{name: "valid page passes through", page: 3, limit: 20, wantPage: 3, wantLimit: 20},
		{name: "limit below range falls back to default", page: 1, limit: 10, wantPage: 1, wantLimit: DefaultPageSize},
		{name: "limit in range passes through", page: 1, limit: 35, wantPage: 1, wantLimit: 35},
		{name: "limit above range falls back to default", page: 1, limit: 100, wantPage: 1, wantLimit: DefaultPageSize},
		{name: "lower bound is inclusive", page: 1, limit: MinPageSize, wantPage: 1, wantLimit: MinPageSize},
		{name: "upper bound is inclusive", page: 1, limit: MaxPageSize, wantPage: 1, wantLimit: MaxPageSize},
		{name: "absent limit falls back to default", page: 1, limit: 0, wantPage: 1, wantLimit: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filters{Page: tt.page, Limit: tt.limit}.Normalize()
			if got.Page != tt.wantPage {
				t.Errorf("Normalize() page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("Normalize() limit = %d, want %d", got.Limit, tt.wantLimit)
			}
		})
	}
}

func TestFiltersNormalize_TrimsText(t *testing.T) {
	got := Filters{QueryTerm: "  breaking  ", Genre: " drama "}.Normalize()
	if got.QueryTerm != "breaking" {
		t.Errorf("Normalize() query term = %q, want %q", got.QueryTerm, "breaking")
	}
	if got.Genre != "drama" {
		t.Errorf("Normalize() genre = %q, want %q", got.Genre, "drama")
	}
}

func TestFiltersNormalize_SortFallback(t *testing.T) {
	tests := []struct {
		name   string
		sortBy string
		want   string
	}{
		{name: "absent sort falls back", sortBy: "", want: SortDateAdded},
		{name: "unknown sort falls back", sortBy: "bogus", want: SortDateAdded},
		{name: "known sort passes through", sortBy: SortRating, want: SortRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filters{SortBy: tt.sortBy}.Normalize()
			if got.SortBy != tt.want {
				t.Errorf("Normalize() sortBy = %q, want %q", got.SortBy, tt.want)
			}
		})
	}
}

func TestPlanListing_Order(t *testing.T) {
	tests := []struct {
		name   string
		sortBy string
		want   string
	}{
		{name: "title sorts ascending", sortBy: SortTitle, want: "show.title ASC"},
		{name: "year sorts descending", sortBy: SortYear, want: "show.year DESC"},
		{name: "rating sorts descending", sortBy: SortRating, want: "rating.percentage DESC"},
		{name: "loved sorts descending", sortBy: SortLoved, want: "rating.loved DESC"},
		{name: "votes sorts descending", sortBy: SortVotes, want: "rating.votes DESC"},
		{name: "watching sorts descending", sortBy: SortWatching, want: "rating.watching DESC"},
		{name: "date added sorts by last update descending", sortBy: SortDateAdded, want: "show.last_updated DESC"},
		{name: "unknown token falls back to last update", sortBy: "drop table shows", want: "show.last_updated DESC"},
		{name: "absent token falls back to last update", sortBy: "", want: "show.last_updated DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanListing(Filters{SortBy: tt.sortBy})
			if plan.Order != tt.want {
				t.Errorf("PlanListing() order = %q, want %q", plan.Order, tt.want)
			}
		})
	}
}

func TestPlanListing_Offset(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		wantOffset int
		wantLimit  int
	}{
		{name: "first page starts at zero", page: 1, limit: 20, wantOffset: 0, wantLimit: 20},
		{name: "offset scales with page size", page: 3, limit: 25, wantOffset: 50, wantLimit: 25},
		{name: "clamped limit drives the offset", page: 2, limit: 100, wantOffset: 20, wantLimit: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanListing(Filters{Page: tt.page, Limit: tt.limit})
			if plan.Offset != tt.wantOffset {
				t.Errorf("PlanListing() offset = %d, want %d", plan.Offset, tt.wantOffset)
			}
			if plan.Limit != tt.wantLimit {
				t.Errorf("PlanListing() limit = %d, want %d", plan.Limit, tt.wantLimit)
			}
		})
	}
}

func TestPlanListing_RatingWindow(t *testing.T) {
	tests := []struct {
		name      string
		minRating int
		want      bool
	}{
		{name: "zero is inactive", minRating: 0, want: false},
		{name: "lower interior is active", minRating: 1, want: true},
		{name: "mid range is active", minRating: 5, want: true},
		{name: "upper interior is active", minRating: 9, want: true},
		{name: "ten is inactive", minRating: 10, want: false},
		{name: "above ten is inactive", minRating: 11, want: false},
		{name: "negative is inactive", minRating: -3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanListing(Filters{MinRating: tt.minRating})
			got := len(plan.Predicates) == 1
			if got != tt.want {
				t.Errorf("PlanListing() rating predicate present = %v, want %v", got, tt.want)
			}
			if tt.want {
				p := plan.Predicates[0]
				if p.Expr != "rating.percentage >= ?" {
					t.Errorf("PlanListing() predicate expr = %q", p.Expr)
				}
				if p.Arg != tt.minRating {
					t.Errorf("PlanListing() predicate arg = %v, want %d", p.Arg, tt.minRating)
				}
			}
		})
	}
}

func TestPlanListing_PredicatesAreAdditive(t *testing.T) {
	plan := PlanListing(Filters{MinRating: 7, QueryTerm: "wire", Genre: "crime"})

	if len(plan.Predicates) != 3 {
		t.Fatalf("PlanListing() predicates = %d, want 3", len(plan.Predicates))
	}

	args := make([]any, 0, len(plan.Predicates))
	for _, p := range plan.Predicates {
		args = append(args, p.Arg)
	}
	want := []any{7, "wire", "crime"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("PlanListing() bound args = %v, want %v", args, want)
	}
}

func TestPlanListing_AbsentFiltersProduceNoPredicates(t *testing.T) {
	plan := PlanListing(Filters{Page: 2, Limit: 50, SortBy: SortTitle})
	if len(plan.Predicates) != 0 {
		t.Errorf("PlanListing() predicates = %d, want 0", len(plan.Predicates))
	}
}

func TestPlanListing_FilterInputStaysBound(t *testing.T) {
	// A hostile term must land in the bound argument, never in the query
	// text.
	term := "'; DROP TABLE shows; --"
	plan := PlanListing(Filters{QueryTerm: term})

	if len(plan.Predicates) != 1 {
		t.Fatalf("PlanListing() predicates = %d, want 1", len(plan.Predicates))
	}
	p := plan.Predicates[0]
	if p.Arg != term {
		t.Errorf("PlanListing() arg = %v, want the raw term", p.Arg)
	}
	if p.Expr != "lower(show.title) LIKE '%' || lower(?) || '%'" {
		t.Errorf("PlanListing() expr = %q contains interpolated input", p.Expr)
	}
}
