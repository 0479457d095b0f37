package search

import (
	"reflect"
	"testing"

	"github.com/serviceradar/radar/models"
)

func f(v float64) *float64 { return &v }

func fixtures() []models.Listing {
	return []models.Listing{
		{ID: 1, Title: "Zeta cleaning", PriceRangeMin: f(300), PriceRangeMax: f(500),
			Company: models.Company{Name: "Zeta Co", Location: "Kadikoy"}, Category: "cleaning"},
		{ID: 2, Title: "Alpha repair", PriceRangeMin: f(100), PriceRangeMax: f(200),
			Company: models.Company{Name: "Alpha Ltd", Location: "Besiktas"}, Category: "repair"},
		{ID: 3, Title: "Mu plumbing", PriceRangeMin: f(200), PriceRangeMax: f(400),
			Company: models.Company{Name: "Mu AS", Location: "Kadikoy"}, Category: "plumbing"},
	}
}

func ids(listings []models.Listing) []int {
	out := make([]int, len(listings))
	for i, l := range listings {
		out[i] = l.ID
	}
	return out
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	input := fixtures()
	snapshot := fixtures()

	max := 250.0
	Apply(input, models.FilterOptions{PriceMax: &max, SortBy: models.SortName, SortOrder: models.OrderAsc})

	if !reflect.DeepEqual(input, snapshot) {
		t.Error("Apply mutated its input slice")
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	opts := models.FilterOptions{Location: "kadikoy", SortBy: models.SortPrice, SortOrder: models.OrderAsc}

	first := Apply(fixtures(), opts)
	second := Apply(fixtures(), opts)
	if !reflect.DeepEqual(first, second) {
		t.Error("Repeated Apply with same inputs differed")
	}
}

func TestApplyEmptyOptionsKeepsEverything(t *testing.T) {
	result := Apply(fixtures(), models.FilterOptions{})
	if len(result) != 3 {
		t.Fatalf("Expected all 3 listings with empty options, got %d", len(result))
	}
}

func TestApplyEmptyOptionsAppliesDefaultSort(t *testing.T) {
	// Reset is not a pass-through: empty options still carry the default
	// recent/desc sort, which orders ascending by id (the filter panel's
	// reset payload in the original client does the same).
	shuffled := []models.Listing{
		fixtures()[2], fixtures()[0], fixtures()[1],
	}

	result := Apply(shuffled, models.FilterOptions{})
	if got := ids(result); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("Empty options: got ids %v, want [1 2 3]", got)
	}
}

func TestPriceFilters(t *testing.T) {
	result := Apply(fixtures(), models.FilterOptions{PriceMin: f(150)})
	if got := ids(result); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("PriceMin=150: got ids %v, want [1 3]", got)
	}

	result = Apply(fixtures(), models.FilterOptions{PriceMax: f(450)})
	if got := ids(result); !reflect.DeepEqual(got, []int{2, 3}) {
		t.Errorf("PriceMax=450: got ids %v, want [2 3]", got)
	}
}

func TestPriceFilterKeepsUnpricedListings(t *testing.T) {
	listings := []models.Listing{
		{ID: 10, Title: "No price"},
		{ID: 11, Title: "Priced", PriceRangeMin: f(50), PriceRangeMax: f(80)},
	}

	result := Apply(listings, models.FilterOptions{PriceMin: f(100)})
	if got := ids(result); !reflect.DeepEqual(got, []int{10}) {
		t.Errorf("Unpriced listing should pass price filters, got ids %v", got)
	}
}

func TestLocationFilter(t *testing.T) {
	// Case-insensitive substring match
	result := Apply(fixtures(), models.FilterOptions{Location: "KADI"})
	if got := ids(result); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Location filter: got ids %v, want [1 3]", got)
	}
}

func TestLocationFilterExcludesListingsWithoutLocation(t *testing.T) {
	listings := []models.Listing{
		{ID: 10, Title: "Nowhere"},
		{ID: 11, Title: "Somewhere", Company: models.Company{Location: "Kadikoy"}},
	}

	result := Apply(listings, models.FilterOptions{Location: "kadikoy"})
	if got := ids(result); !reflect.DeepEqual(got, []int{11}) {
		t.Errorf("Listing without a location must fail a set filter, got ids %v", got)
	}
}

func TestCategoryFilter(t *testing.T) {
	result := Apply(fixtures(), models.FilterOptions{Category: "Repair"})
	if got := ids(result); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("Category filter: got ids %v, want [2]", got)
	}
}

func TestSortByNameAscending(t *testing.T) {
	result := Apply(fixtures(), models.FilterOptions{SortBy: models.SortName, SortOrder: models.OrderAsc})

	got := []string{result[0].Title, result[1].Title, result[2].Title}
	want := []string{"Alpha repair", "Mu plumbing", "Zeta cleaning"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Name asc: got %v, want %v", got, want)
	}
}

func TestSortByNameDescending(t *testing.T) {
	result := Apply(fixtures(), models.FilterOptions{SortBy: models.SortName, SortOrder: models.OrderDesc})

	if result[0].Title != "Zeta cleaning" {
		t.Errorf("Name desc: expected Zeta first, got %q", result[0].Title)
	}
}

func TestSortByPrice(t *testing.T) {
	result := Apply(fixtures(), models.FilterOptions{SortBy: models.SortPrice, SortOrder: models.OrderAsc})
	if got := ids(result); !reflect.DeepEqual(got, []int{2, 3, 1}) {
		t.Errorf("Price asc: got ids %v, want [2 3 1]", got)
	}

	result = Apply(fixtures(), models.FilterOptions{SortBy: models.SortPrice, SortOrder: models.OrderDesc})
	if got := ids(result); !reflect.DeepEqual(got, []int{1, 3, 2}) {
		t.Errorf("Price desc: got ids %v, want [1 3 2]", got)
	}
}

func TestSortByRecent(t *testing.T) {
	// The recent comparator is newest-first at base, so asc order shows the
	// highest id first.
	result := Apply(fixtures(), models.FilterOptions{SortBy: models.SortRecent, SortOrder: models.OrderAsc})
	if got := ids(result); !reflect.DeepEqual(got, []int{3, 2, 1}) {
		t.Errorf("Recent asc: got ids %v, want [3 2 1]", got)
	}

	// Desc negates the already-descending comparator, ending up oldest-first.
	// This mirrors the production ordering, quirk included.
	result = Apply(fixtures(), models.FilterOptions{SortBy: models.SortRecent, SortOrder: models.OrderDesc})
	if got := ids(result); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("Recent desc: got ids %v, want [1 2 3]", got)
	}
}

func TestSortIsStable(t *testing.T) {
	listings := []models.Listing{
		{ID: 1, Title: "Same", PriceRangeMin: f(100)},
		{ID: 2, Title: "Same", PriceRangeMin: f(100)},
		{ID: 3, Title: "Same", PriceRangeMin: f(100)},
	}

	result := Apply(listings, models.FilterOptions{SortBy: models.SortPrice, SortOrder: models.OrderAsc})
	if got := ids(result); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("Equal keys must preserve input order, got %v", got)
	}
}
