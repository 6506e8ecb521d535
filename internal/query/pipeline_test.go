package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID     int
	Name   string
	Status string
	Amount float64
	Date   string
}

var rowSpec = Spec[row]{
	PageSize:     5,
	SearchFields: []func(row) string{func(r row) string { return r.Name }, func(r row) string { return fmt.Sprint(r.ID) }},
	Filters: map[string]Predicate[row]{
		"status": Equals(func(r row) string { return r.Status }),
	},
	Sorts: map[string]Compare[row]{
		"amount": Ordered(func(r row) float64 { return r.Amount }),
		"status": Ranked(func(r row) string { return r.Status }, map[string]int{"Paid": 1, "Pending": 2, "Cancelled": 3}),
		"date":   Chronological(func(r row) string { return r.Date }, "2006-01-02"),
		"name":   Lexical(func(r row) string { return r.Name }),
	},
}

func ids(rows []row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func makeRows(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{ID: i + 1, Name: fmt.Sprintf("item %02d", i+1), Status: "Paid", Amount: float64(i)}
	}
	return rows
}

func TestSortToggleScenario(t *testing.T) {
	rows := []row{{ID: 1, Status: "Paid", Amount: 100}, {ID: 2, Status: "Pending", Amount: 50}}

	st := State{}.ToggleSort("amount")
	require.Equal(t, Asc, st.SortDir)
	assert.Equal(t, []int{2, 1}, ids(Run(rows, rowSpec, st).Rows))

	st = st.ToggleSort("amount")
	require.Equal(t, Desc, st.SortDir)
	assert.Equal(t, []int{1, 2}, ids(Run(rows, rowSpec, st).Rows))

	st = st.ToggleSort("status")
	assert.Equal(t, "status", st.SortField)
	assert.Equal(t, Asc, st.SortDir)
}

func TestPageClampScenario(t *testing.T) {
	res := Run(makeRows(12), rowSpec, State{Page: 5})
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 3, res.Page)
	assert.Equal(t, 12, res.TotalFiltered)
	assert.Equal(t, []int{11, 12}, ids(res.Rows))
	assert.True(t, res.HasPrev())
	assert.False(t, res.HasNext())
}

func TestPageClampAnyInput(t *testing.T) {
	for _, n := range []int{0, 1, 4, 5, 6, 12, 23} {
		for _, page := range []int{-3, 0, 1, 2, 3, 4, 5, 100} {
			res := Run(makeRows(n), rowSpec, State{Page: page})
			assert.GreaterOrEqual(t, res.Page, 1, "n=%d page=%d", n, page)
			assert.LessOrEqual(t, res.Page, res.TotalPages, "n=%d page=%d", n, page)

			want := rowSpec.PageSize
			if rest := n - (res.Page-1)*rowSpec.PageSize; rest < want {
				want = max(0, rest)
			}
			assert.Len(t, res.Rows, want, "n=%d page=%d", n, page)
		}
	}
}

func TestEmptyCollection(t *testing.T) {
	res := Run([]row{}, rowSpec, State{Page: 7})
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 1, res.Page)
	assert.Empty(t, res.Rows)
}

func TestStableSortAndMirroredDescending(t *testing.T) {
	rows := []row{
		{ID: 1, Amount: 10},
		{ID: 2, Amount: 5},
		{ID: 3, Amount: 10},
		{ID: 4, Amount: 5},
		{ID: 5, Amount: 10},
	}
	asc := Apply(rows, rowSpec, State{SortField: "amount", SortDir: Asc})
	assert.Equal(t, []int{2, 4, 1, 3, 5}, ids(asc))

	desc := Apply(rows, rowSpec, State{SortField: "amount", SortDir: Desc})
	assert.Equal(t, []int{5, 3, 1, 4, 2}, ids(desc))
}

func TestSearchMatchesAnyFieldIgnoringCase(t *testing.T) {
	rows := []row{
		{ID: 1, Name: "Ahmed Ali"},
		{ID: 2, Name: "Sara Mohamed"},
		{ID: 31, Name: "Omar"},
	}
	assert.Equal(t, []int{1}, ids(Apply(rows, rowSpec, State{Search: "  AHMED "})))
	assert.Equal(t, []int{2}, ids(Apply(rows, rowSpec, State{Search: "mohAMED"})))
	assert.Equal(t, []int{31}, ids(Apply(rows, rowSpec, State{Search: "31"})))
	assert.Len(t, Apply(rows, rowSpec, State{Search: ""}), 3)
}

func TestFiltersAreAnded(t *testing.T) {
	rows := []row{
		{ID: 1, Name: "alpha", Status: "Paid"},
		{ID: 2, Name: "alpha", Status: "Pending"},
		{ID: 3, Name: "beta", Status: "Paid"},
	}
	st := State{Search: "alpha"}.WithFilter("status", "Paid")
	assert.Equal(t, []int{1}, ids(Apply(rows, rowSpec, st)))

	st = st.WithFilter("status", All)
	assert.Equal(t, []int{1, 2}, ids(Apply(rows, rowSpec, st)))

	st = st.WithFilter("unknown", "x")
	assert.Equal(t, []int{1, 2}, ids(Apply(rows, rowSpec, st)))
}

func TestRankedAndChronological(t *testing.T) {
	rows := []row{
		{ID: 1, Status: "Cancelled", Date: "2024-11-18"},
		{ID: 2, Status: "Refunded", Date: "2024-11-26"},
		{ID: 3, Status: "Paid", Date: "2024-11-20"},
		{ID: 4, Status: "Pending", Date: "2024-11-22"},
	}
	assert.Equal(t, []int{3, 4, 1, 2}, ids(Apply(rows, rowSpec, State{SortField: "status", SortDir: Asc})))
	assert.Equal(t, []int{2, 4, 3, 1}, ids(Apply(rows, rowSpec, State{SortField: "date", SortDir: Desc})))
}

func TestUnknownSortKeepsInputOrder(t *testing.T) {
	rows := []row{{ID: 3}, {ID: 1}, {ID: 2}}
	assert.Equal(t, []int{3, 1, 2}, ids(Apply(rows, rowSpec, State{SortField: "nope", SortDir: Desc})))
}

func TestSortable(t *testing.T) {
	assert.True(t, rowSpec.Sortable("amount"))
	assert.False(t, rowSpec.Sortable("nope"))
	assert.False(t, rowSpec.Sortable(""))
}

func TestRunDoesNotModifyInput(t *testing.T) {
	rows := []row{{ID: 2, Amount: 2}, {ID: 1, Amount: 1}}
	_ = Run(rows, rowSpec, State{SortField: "amount", SortDir: Asc})
	assert.Equal(t, []int{2, 1}, ids(rows))
}

func TestUnpaginatedSpec(t *testing.T) {
	spec := rowSpec
	spec.PageSize = 0
	res := Run(makeRows(9), spec, State{Page: 4})
	assert.Equal(t, 1, res.TotalPages)
	assert.Len(t, res.Rows, 9)
}
