package query

import (
	"math"
	"slices"
	"testing"
	"time"
)

type event struct {
	id    int64
	start time.Time
}

func (e event) Key() int64       { return e.id }
func (e event) Start() time.Time { return e.start }

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	t.Run("Pages", func(t *testing.T) {
		items := seq(23)
		tests := []struct {
			name string
			page int
			want []int
		}{
			{"first page", 1, seq(10)},
			{"second page", 2, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}},
			{"partial last page", 3, []int{21, 22, 23}},
			{"past the end", 4, []int{}},
			{"zero is page one", 0, seq(10)},
			{"negative is page one", -3, seq(10)},
			{"largest page", math.MaxInt, []int{}},
			{"page whose offset wraps", 1844674407370955162, []int{}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := Paginate(items, tt.page, DefaultPageSize)
				if !slices.Equal(got, tt.want) {
					t.Errorf("page %d: expected %v, got %v", tt.page, tt.want, got)
				}
			})
		}
	})

	t.Run("ConcatenationReproducesInput", func(t *testing.T) {
		for _, n := range []int{0, 1, 9, 10, 11, 20, 57} {
			items := seq(n)
			var joined []int
			pages := Pages(n, DefaultPageSize)
			for p := 1; p <= pages; p++ {
				joined = append(joined, Paginate(items, p, DefaultPageSize)...)
			}

			if !slices.Equal(joined, items) && !(n == 0 && len(joined) == 0) {
				t.Errorf("n=%d: pages do not reproduce input: %v", n, joined)
			}

			if extra := Paginate(items, pages+1, DefaultPageSize); len(extra) != 0 {
				t.Errorf("n=%d: expected page %d to be empty, got %v", n, pages+1, extra)
			}
		}
	})

	t.Run("DefaultSize", func(t *testing.T) {
		if got := Paginate(seq(15), 1, 0); len(got) != DefaultPageSize {
			t.Errorf("expected default page size %d, got %d", DefaultPageSize, len(got))
		}
	})

	t.Run("LargeSize", func(t *testing.T) {
		if got := Paginate(seq(3), 1, math.MaxInt); !slices.Equal(got, seq(3)) {
			t.Errorf("expected every item on page 1, got %v", got)
		}
		if got := Paginate(seq(3), 2, math.MaxInt); len(got) != 0 {
			t.Errorf("expected page 2 to be empty, got %v", got)
		}
	})

	t.Run("AppendDoesNotClobberInput", func(t *testing.T) {
		items := seq(12)
		page := Paginate(items, 1, 5)
		_ = append(page, 99)

		if items[5] != 6 {
			t.Errorf("expected input to be untouched, got %v", items)
		}
	})
}

func TestPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{19, 0, 2},
		{3, math.MaxInt, 1},
	}

	for _, tt := range tests {
		if got := Pages(tt.total, tt.size); got != tt.want {
			t.Errorf("Pages(%d, %d) = %d, expected %d", tt.total, tt.size, got, tt.want)
		}
	}
}

func TestPartition(t *testing.T) {
	ref := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Split", func(t *testing.T) {
		events := []event{
			{1, ref.Add(48 * time.Hour)},
			{2, ref.Add(-time.Hour)},
			{3, ref},
			{4, ref.Add(-72 * time.Hour)},
			{5, ref.Add(time.Minute)},
		}

		past, upcoming := Partition(events, ref)

		if got := keys(past); !slices.Equal(got, []int64{4, 2}) {
			t.Errorf("expected past [4 2], got %v", got)
		}

		if got := keys(upcoming); !slices.Equal(got, []int64{3, 5, 1}) {
			t.Errorf("expected upcoming [3 5 1], got %v", got)
		}
	})

	t.Run("EveryEventExactlyOnce", func(t *testing.T) {
		var events []event
		for i := range 40 {
			events = append(events, event{int64(i), ref.Add(time.Duration(i-20) * time.Hour)})
		}

		past, upcoming := Partition(events, ref)
		if len(past)+len(upcoming) != len(events) {
			t.Fatalf("expected %d events, got %d", len(events), len(past)+len(upcoming))
		}

		seen := make(map[int64]bool)
		for _, e := range append(past, upcoming...) {
			if seen[e.id] {
				t.Errorf("event %d appears twice", e.id)
			}
			seen[e.id] = true
		}
	})

	t.Run("AtReferenceIsUpcoming", func(t *testing.T) {
		past, upcoming := Partition([]event{{7, ref}}, ref)
		if len(past) != 0 || len(upcoming) != 1 {
			t.Errorf("expected event at ref to be upcoming, got past=%v upcoming=%v", past, upcoming)
		}
	})

	t.Run("TiesByKey", func(t *testing.T) {
		at := ref.Add(time.Hour)
		_, upcoming := Partition([]event{{9, at}, {3, at}, {5, at}}, ref)
		if got := keys(upcoming); !slices.Equal(got, []int64{3, 5, 9}) {
			t.Errorf("expected ties ordered by key, got %v", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		past, upcoming := Partition([]event(nil), ref)
		if past == nil || upcoming == nil {
			t.Error("expected non-nil empty halves")
		}
	})
}

func keys(events []event) []int64 {
	out := make([]int64, len(events))
	for i, e := range events {
		out[i] = e.id
	}
	return out
}

func TestSearch(t *testing.T) {
	names := []string{"Guns N Petals", "Matt Quevedo", "The Wild Sax Band", "The Musical Hop", "STRASSE Club"}
	identity := func(s string) string { return s }

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"case insensitive", "A", []string{"Guns N Petals", "Matt Quevedo", "The Wild Sax Band", "STRASSE Club"}},
		{"substring", "band", []string{"The Wild Sax Band"}},
		{"shared prefix", "the", []string{"The Wild Sax Band", "The Musical Hop"}},
		{"no match", "zzz", []string{}},
		{"empty matches all", "", names},
		{"unicode folding", "straße", []string{"STRASSE Club"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(names, tt.term, identity)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Search(%q) = %v, expected %v", tt.term, got, tt.want)
			}
		})
	}

	t.Run("Idempotent", func(t *testing.T) {
		for _, term := range []string{"", "a", "the", "hop"} {
			once := Search(names, term, identity)
			twice := Search(once, term, identity)
			if !slices.Equal(once, twice) {
				t.Errorf("search for %q is not idempotent: %v vs %v", term, once, twice)
			}
		}
	})
}

func TestFold(t *testing.T) {
	if Fold("Straße") != Fold("STRASSE") {
		t.Errorf("expected full case folding, got %q and %q", Fold("Straße"), Fold("STRASSE"))
	}
}
