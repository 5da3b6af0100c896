package sorting

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/rcypher/bidsort/internal/model"
)

func bidsFromTitles(titles ...string) []model.Bid {
	bids := make([]model.Bid, len(titles))
	for i, title := range titles {
		bids[i] = model.Bid{ID: fmt.Sprintf("%03d", i), Title: title}
	}
	return bids
}

func titles(bids []model.Bid) []string {
	out := make([]string, len(bids))
	for i, b := range bids {
		out[i] = b.Title
	}
	return out
}

func assertAscending(t *testing.T, bids []model.Bid) {
	t.Helper()
	for i := 1; i < len(bids); i++ {
		if bids[i].Title < bids[i-1].Title {
			t.Fatalf("not ascending at %d: %q before %q", i, bids[i-1].Title, bids[i].Title)
		}
	}
}

var sorters = []struct {
	name string
	fn   func([]model.Bid)
}{
	{"Selection", Selection},
	{"Quick", Quick},
}

func TestSortOrdersByTitle(t *testing.T) {
	for _, s := range sorters {
		t.Run(s.name, func(t *testing.T) {
			bids := bidsFromTitles("Bridge", "Arch", "Culvert", "Abutment")
			s.fn(bids)

			want := []string{"Abutment", "Arch", "Bridge", "Culvert"}
			got := titles(bids)
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("titles[%d] = %q, want %q", i, got[i], want[i])
				}
			}
		})
	}
}

func TestSortTwoElementScenario(t *testing.T) {
	for _, s := range sorters {
		t.Run(s.name, func(t *testing.T) {
			bids := []model.Bid{
				{ID: "001", Title: "Bridge", Fund: "FundA"},
				{ID: "002", Title: "Arch", Fund: "FundB"},
			}
			s.fn(bids)

			if bids[0].Title != "Arch" || bids[1].Title != "Bridge" {
				t.Errorf("order = [%q, %q], want [Arch, Bridge]", bids[0].Title, bids[1].Title)
			}
			// The whole record moves, not just the key
			if bids[0].ID != "002" || bids[0].Fund != "FundB" {
				t.Errorf("bids[0] = %+v, want the full Arch record", bids[0])
			}
		})
	}
}

func TestSortEmptyAndSingle(t *testing.T) {
	for _, s := range sorters {
		t.Run(s.name, func(t *testing.T) {
			var empty []model.Bid
			s.fn(empty) // must not panic

			one := bidsFromTitles("Solo")
			s.fn(one)
			if one[0].Title != "Solo" {
				t.Errorf("single element changed: %q", one[0].Title)
			}
		})
	}
}

func TestSortIdempotent(t *testing.T) {
	for _, s := range sorters {
		t.Run(s.name, func(t *testing.T) {
			bids := bidsFromTitles("Arch", "Bridge", "Culvert")
			s.fn(bids)
			s.fn(bids)

			want := []string{"Arch", "Bridge", "Culvert"}
			got := titles(bids)
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("titles[%d] = %q, want %q", i, got[i], want[i])
				}
			}
		})
	}
}

func TestSortPreservesLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, s := range sorters {
		t.Run(s.name, func(t *testing.T) {
			for _, n := range []int{0, 1, 2, 7, 100} {
				titleSet := make([]string, n)
				for i := range titleSet {
					titleSet[i] = fmt.Sprintf("title-%04d", rng.Intn(50))
				}
				bids := bidsFromTitles(titleSet...)
				s.fn(bids)

				if len(bids) != n {
					t.Errorf("n=%d: len = %d after sort", n, len(bids))
				}
				assertAscending(t, bids)
			}
		})
	}
}

func TestSortDuplicateTitles(t *testing.T) {
	for _, s := range sorters {
		t.Run(s.name, func(t *testing.T) {
			bids := bidsFromTitles("Bridge", "Arch", "Bridge", "Arch", "Bridge")
			s.fn(bids)

			assertAscending(t, bids)
			// Duplicates end up adjacent
			got := titles(bids)
			want := []string{"Arch", "Arch", "Bridge", "Bridge", "Bridge"}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("titles[%d] = %q, want %q", i, got[i], want[i])
				}
			}
		})
	}
}

func TestSelectionSortStableForFirstMinimum(t *testing.T) {
	// Selection keeps the first-encountered minimum, so records with equal
	// titles keep their original relative order.
	bids := []model.Bid{
		{ID: "a", Title: "Bridge"},
		{ID: "b", Title: "Arch"},
		{ID: "c", Title: "Arch"},
	}
	Selection(bids)

	if bids[0].ID != "b" || bids[1].ID != "c" {
		t.Errorf("equal-title order = [%s, %s], want [b, c]", bids[0].ID, bids[1].ID)
	}
}

func TestSortsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(64)
		titleSet := make([]string, n)
		for i := range titleSet {
			titleSet[i] = fmt.Sprintf("t%02d", rng.Intn(16))
		}

		a := bidsFromTitles(titleSet...)
		b := bidsFromTitles(titleSet...)
		Selection(a)
		Quick(b)

		gotA, gotB := titles(a), titles(b)
		for i := range gotA {
			if gotA[i] != gotB[i] {
				t.Fatalf("trial %d: Selection[%d] = %q, Quick[%d] = %q", trial, i, gotA[i], i, gotB[i])
			}
		}

		// And both agree with the reference ordering
		ref := append([]string(nil), titleSet...)
		sort.Strings(ref)
		for i := range ref {
			if gotA[i] != ref[i] {
				t.Fatalf("trial %d: sorted[%d] = %q, want %q", trial, i, gotA[i], ref[i])
			}
		}
	}
}

func TestQuickSortAlreadySortedWorstCase(t *testing.T) {
	// Midpoint pivot keeps sorted input off the quadratic recursion path;
	// this guards against a naive first-element pivot slipping in.
	titleSet := make([]string, 2000)
	for i := range titleSet {
		titleSet[i] = fmt.Sprintf("title-%06d", i)
	}
	bids := bidsFromTitles(titleSet...)
	Quick(bids)
	assertAscending(t, bids)
}
