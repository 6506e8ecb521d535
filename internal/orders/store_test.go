package orders

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/odyssey-admin/internal/query"
	"github.com/odyssey-erp/odyssey-admin/internal/store"
)

func orderIDs(os []Order) []string {
	out := make([]string, len(os))
	for i, o := range os {
		out[i] = o.ID
	}
	return out
}

func TestDefaultSortIsNewestFirst(t *testing.T) {
	s := NewStore(Seed())
	res := s.View()
	assert.Equal(t, []string{"ORD-1008", "ORD-1007", "ORD-1006", "ORD-1005", "ORD-1004"}, orderIDs(res.Rows))
	assert.Equal(t, 2, res.TotalPages)
}

func TestSortToggleAndStatusRank(t *testing.T) {
	s := NewStore(Seed())

	s.SetSort("status")
	assert.Equal(t, query.Asc, s.Query().SortDir)
	assert.Equal(t, []string{"ORD-1001", "ORD-1004", "ORD-1005", "ORD-1007", "ORD-1002", "ORD-1006", "ORD-1003", "ORD-1008"}, orderIDs(s.Filtered()))

	s.SetSort("status")
	assert.Equal(t, query.Desc, s.Query().SortDir)
	assert.Equal(t, "ORD-1008", s.Filtered()[0].ID)

	s.SetSort("amount")
	assert.Equal(t, query.Asc, s.Query().SortDir)
	assert.Equal(t, []string{"ORD-1006", "ORD-1003", "ORD-1002"}, orderIDs(s.Filtered()[:3]))

	s.SetSort("date")
	s.SetSort("date")
	assert.Equal(t, query.Desc, s.Query().SortDir)
}

func TestUnknownSortFieldIsIgnored(t *testing.T) {
	s := NewStore(Seed())
	var events int
	s.Subscribe(func(store.Event) { events++ })

	s.SetSort("customer")
	assert.Equal(t, "date", s.Query().SortField)
	assert.Equal(t, query.Desc, s.Query().SortDir)
	assert.Zero(t, events)
	assert.Equal(t, []string{"ORD-1008", "ORD-1007", "ORD-1006", "ORD-1005", "ORD-1004"}, orderIDs(s.View().Rows))
}

func TestUnknownStatusRanksLast(t *testing.T) {
	seed := []Order{
		{ID: "A", Status: "Refunded"},
		{ID: "B", Status: StatusCancelled},
		{ID: "C", Status: StatusPaid},
	}
	s := NewStore(seed)
	s.SetSort("status")
	assert.Equal(t, []string{"C", "B", "A"}, orderIDs(s.Filtered()))
}

func TestSearchAndStatusFilter(t *testing.T) {
	s := NewStore(Seed())

	s.SetSearch("sara")
	assert.Equal(t, []string{"ORD-1002"}, orderIDs(s.Filtered()))

	s.SetSearch("ord-100")
	s.SetStatusFilter("Paid")
	assert.Equal(t, []string{"ORD-1007", "ORD-1005", "ORD-1004", "ORD-1001"}, orderIDs(s.Filtered()))

	s.SetStatusFilter(query.All)
	assert.Len(t, s.Filtered(), 8)
}

func TestPageClampsToLastPage(t *testing.T) {
	s := NewStore(Seed())
	s.SetPage(5)
	res := s.View()
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, []string{"ORD-1002", "ORD-1001", "ORD-1003"}, orderIDs(res.Rows))

	s.SetPage(0)
	assert.Equal(t, 1, s.View().Page)
}

func TestGetAndStats(t *testing.T) {
	s := NewStore(Seed())
	o, ok := s.Get("ORD-1001")
	require.True(t, ok)
	assert.Equal(t, "Credit Card", o.PaymentMethod)
	assert.InDelta(t, 100.0, o.Items[1].Total(), 0.001)

	_, ok = s.Get("ORD-9999")
	assert.False(t, ok)

	assert.Equal(t, Stats{Total: 8, Revenue: 2225, Paid: 4}, s.Stats())
}

func TestWriteCSVQuotesCommas(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []Order{
		{ID: "ORD-1", Customer: "Doe, Jane", Amount: 12.5, Status: StatusPaid, Date: "2024-01-01"},
		{ID: "ORD-2", Customer: "Sam", Amount: 90, Status: StatusPending, Date: "2024-01-02"},
	})
	require.NoError(t, err)
	assert.Equal(t, "id,customer,amount,status,date\nORD-1,\"Doe, Jane\",12.5,Paid,2024-01-01\nORD-2,Sam,90,Pending,2024-01-02\n", buf.String())
}

func TestBadge(t *testing.T) {
	assert.Equal(t, "green", Order{Status: StatusPaid}.Badge())
	assert.Equal(t, "yellow", Order{Status: StatusPending}.Badge())
	assert.Equal(t, "red", Order{Status: StatusCancelled}.Badge())
	assert.Equal(t, "gray", Order{Status: "Other"}.Badge())
}
