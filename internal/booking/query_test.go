package booking

import (
	"testing"

	"github.com/gdg-garage/tour-api/internal/models"
)

func amounts(bookings []models.Booking) []int {
	out := make([]int, len(bookings))
	for i, b := range bookings {
		out[i] = b.TotalAmount
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSort_Toggle(t *testing.T) {
	bookings := []models.Booking{{ID: "a", TotalAmount: 500}, {ID: "b", TotalAmount: 100}, {ID: "c", TotalAmount: 300}}

	state := DefaultSort.Request(SortByTotalAmount)
	if state.Order != Asc {
		t.Fatalf("expected first request to sort ascending, got %s", state.Order)
	}
	if got := amounts(Sort(bookings, state)); !equalInts(got, []int{100, 300, 500}) {
		t.Errorf("ascending: got %v", got)
	}

	state = state.Request(SortByTotalAmount)
	if got := amounts(Sort(bookings, state)); !equalInts(got, []int{500, 300, 100}) {
		t.Errorf("descending: got %v", got)
	}

	state = state.Request(SortByTotalAmount)
	if state.Order != Asc {
		t.Errorf("expected third request to flip back to ascending, got %s", state.Order)
	}

	state = state.Request(SortByFullName)
	if state.Key != SortByFullName || state.Order != Asc {
		t.Errorf("expected new column to reset to ascending, got %+v", state)
	}

	if amounts(bookings)[0] != 500 {
		t.Error("input collection was reordered")
	}
}

func TestSort_Keys(t *testing.T) {
	bookings := []models.Booking{
		{ID: "1", FullName: "Carol", Status: models.StatusVerified, Timestamp: 3},
		{ID: "2", FullName: "alice", Status: models.StatusPendingVerification, Timestamp: 1},
		{ID: "3", FullName: "Bob", Status: models.StatusRejected, Timestamp: 2},
	}

	tests := []struct {
		state SortState
		want  string
	}{
		{SortState{SortByTimestamp, Asc}, "231"},
		{SortState{SortByTimestamp, Desc}, "132"},
		{SortState{SortByFullName, Asc}, "312"}, // byte order puts uppercase first
		{SortState{SortByStatus, Asc}, "231"},
	}

	for _, tt := range tests {
		t.Run(string(tt.state.Key)+"_"+string(tt.state.Order), func(t *testing.T) {
			got := ""
			for _, b := range Sort(bookings, tt.state) {
				got += b.ID
			}
			if got != tt.want {
				t.Errorf("expected order %s, got %s", tt.want, got)
			}
		})
	}
}

func TestSort_StableTies(t *testing.T) {
	bookings := []models.Booking{{ID: "x", TotalAmount: 1}, {ID: "y", TotalAmount: 1}, {ID: "z", TotalAmount: 1}}
	for _, order := range []SortOrder{Asc, Desc} {
		got := Sort(bookings, SortState{SortByTotalAmount, order})
		if got[0].ID != "x" || got[1].ID != "y" || got[2].ID != "z" {
			t.Errorf("%s: expected input order for ties, got %+v", order, got)
		}
	}
}

func TestFilter(t *testing.T) {
	bookings := []models.Booking{
		{ID: "alice", FullName: "Alice Rao", Mobile: "9999999999", Email: "alice@example.com"},
		{ID: "bob", FullName: "Bob Singh", Mobile: "8888888888", Email: "BOB@Example.com"},
	}

	tests := []struct {
		term string
		want []string
	}{
		{"ali", []string{"alice"}},
		{"ALI", []string{"alice"}},
		{"999", []string{"alice"}},
		{"bob@example", []string{"bob"}},
		{"example.com", []string{"alice", "bob"}},
		{"", []string{"alice", "bob"}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := Filter(bookings, tt.term)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %+v", tt.want, got)
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("expected %s at %d, got %s", id, i, got[i].ID)
				}
			}
		})
	}
}

func TestParseSort(t *testing.T) {
	s, err := ParseSort("", "")
	if err != nil || s != DefaultSort {
		t.Errorf("expected default sort, got %+v (%v)", s, err)
	}

	s, err = ParseSort("fullName", "asc")
	if err != nil || s != (SortState{SortByFullName, Asc}) {
		t.Errorf("unexpected sort %+v (%v)", s, err)
	}

	if _, err := ParseSort("mobile", ""); err == nil {
		t.Error("expected error for unknown key")
	}
	if _, err := ParseSort("", "sideways"); err == nil {
		t.Error("expected error for unknown order")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]models.Booking{
		{Status: models.StatusVerified, TotalAmount: 100},
		{Status: models.StatusVerified, TotalAmount: 50},
		{Status: models.StatusPendingVerification, TotalAmount: 10},
		{Status: models.StatusRejected, TotalAmount: 5},
	})

	want := Stats{Total: 4, Verified: 2, Pending: 1, Rejected: 1, VerifiedRevenue: 150}
	if s != want {
		t.Errorf("expected %+v, got %+v", want, s)
	}
}
