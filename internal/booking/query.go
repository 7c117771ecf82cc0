package booking

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/gdg-garage/tour-api/internal/models"
)

type SortKey string

const (
	SortByTimestamp   SortKey = "timestamp"
	SortByFullName    SortKey = "fullName"
	SortByTotalAmount SortKey = "totalAmount"
	SortByStatus      SortKey = "status"
)

var SortKeys = []SortKey{SortByTimestamp, SortByFullName, SortByTotalAmount, SortByStatus}

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

type SortState struct {
	Key   SortKey
	Order SortOrder
}

// DefaultSort shows the newest bookings first.
var DefaultSort = SortState{Key: SortByTimestamp, Order: Desc}

// Request returns the state after asking to sort by key: the same column
// flips direction, any other column starts ascending.
func (s SortState) Request(key SortKey) SortState {
	if s.Key == key && s.Order == Asc {
		return SortState{Key: key, Order: Desc}
	}
	return SortState{Key: key, Order: Asc}
}

func ParseSort(key, order string) (SortState, error) {
	s := DefaultSort
	if key != "" {
		if !slices.Contains(SortKeys, SortKey(key)) {
			return s, fmt.Errorf("unknown sort key %q", key)
		}
		s.Key = SortKey(key)
	}
	switch SortOrder(order) {
	case "":
	case Asc, Desc:
		s.Order = SortOrder(order)
	default:
		return s, fmt.Errorf("unknown sort order %q", order)
	}
	return s, nil
}

// Matches reports whether term appears in the name or email (ignoring case)
// or verbatim in the mobile number.
func Matches(b models.Booking, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(b.FullName), lower) ||
		strings.Contains(b.Mobile, term) ||
		strings.Contains(strings.ToLower(b.Email), lower)
}

func Filter(bookings []models.Booking, term string) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if Matches(b, term) {
			out = append(out, b)
		}
	}
	return out
}

func compare(a, b models.Booking, key SortKey) int {
	switch key {
	case SortByFullName:
		return cmp.Compare(a.FullName, b.FullName)
	case SortByTotalAmount:
		return cmp.Compare(a.TotalAmount, b.TotalAmount)
	case SortByStatus:
		return cmp.Compare(a.Status, b.Status)
	default:
		return cmp.Compare(a.Timestamp, b.Timestamp)
	}
}

// Sort returns a sorted copy. Equal keys keep their input order.
func Sort(bookings []models.Booking, s SortState) []models.Booking {
	out := slices.Clone(bookings)
	slices.SortStableFunc(out, func(a, b models.Booking) int {
		c := compare(a, b, s.Key)
		if s.Order == Desc {
			return -c
		}
		return c
	})
	return out
}

type Stats struct {
	Total           int `json:"total"`
	Verified        int `json:"verified"`
	Pending         int `json:"pending"`
	Rejected        int `json:"rejected"`
	VerifiedRevenue int `json:"verified_revenue"`
}

func Summarize(bookings []models.Booking) Stats {
	s := Stats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case models.StatusVerified:
			s.Verified++
			s.VerifiedRevenue += b.TotalAmount
		case models.StatusPendingVerification:
			s.Pending++
		case models.StatusRejected:
			s.Rejected++
		}
	}
	return s
}
