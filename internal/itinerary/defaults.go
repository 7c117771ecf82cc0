package itinerary

import (
	"github.com/gdg-garage/tour-api/internal/models"
)

const DefaultPackageID = "default"

// DefaultPackages is the catalogue served when nothing has been stored yet.
func DefaultPackages() []models.ItineraryPackage {
	return []models.ItineraryPackage{
		{
			ID:        DefaultPackageID,
			StartDate: "2026-01-18",
			EndDate:   "2026-01-22",
			IsActive:  true,
			Days: []models.ItineraryDay{
				{
					ID:          "1",
					DayNumber:   1,
					Title:       "Arrival & Tiger Park Adventure",
					Description: "Transfer from Bangkok Airport to Pattaya Hotel. Visit Tiger Park (Medium Tiger). Includes Entry Tickets + Private Transfers. Lunch & Dinner at Nearest Indian Restaurant (Pattaya).",
					ImageURL:    "https://images.unsplash.com/photo-1504450758481-7338eba7524a?auto=format&fit=crop&q=80&w=800",
				},
				{
					ID:          "2",
					DayNumber:   2,
					Title:       "Coral Island Getaway",
					Description: "Coral Island Tour by Speed Boat. Includes Lunch + Private Land Transfer. Water Sports Excluded. Dinner at Nearest Indian Restaurant (Pattaya).",
					ImageURL:    "https://images.unsplash.com/photo-1552465011-b4e21bf6e79a?auto=format&fit=crop&q=80&w=800",
				},
				{
					ID:          "3",
					DayNumber:   3,
					Title:       "Bangkok City Tour",
					Description: "Transfer to Bangkok Hotel. Enroute City Tour: Golden Buddha, Marble Buddha, and Gems Gallery. Includes Tickets + Private Transfers. Lunch & Dinner at Indian Restaurant (Bangkok).",
					ImageURL:    "https://images.unsplash.com/photo-1508009603885-50cf7c579367?auto=format&fit=crop&q=80&w=800",
				},
				{
					ID:          "4",
					DayNumber:   4,
					Title:       "Safari World & Marine Park",
					Description: "A full day of adventure at Safari World & Marine Park. Includes Tickets + Private Transfers. Lunch Included. Dinner at Indian Restaurant (Bangkok).",
					ImageURL:    "https://images.unsplash.com/photo-1583499871881-49657682245b?auto=format&fit=crop&q=80&w=800",
				},
				{
					ID:          "5",
					DayNumber:   5,
					Title:       "Farewell Bangkok",
					Description: "Enjoy your final breakfast before transferring from Bangkok Hotel to Bangkok Airport for your departure.",
					ImageURL:    "https://images.unsplash.com/photo-1563910627449-33f90a00d0be?auto=format&fit=crop&q=80&w=800",
				},
			},
		},
	}
}
