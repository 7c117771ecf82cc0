package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/tour-api/internal/app"
	"github.com/gdg-garage/tour-api/internal/auth"
	"github.com/gdg-garage/tour-api/internal/booking"
	"github.com/gdg-garage/tour-api/internal/models"
	"github.com/gdg-garage/tour-api/internal/payment"
)

type ItineraryHandler struct {
	app         *app.App
	calendar    payment.Calendar
	authHandler *auth.AuthHandler
}

func NewItineraryHandler(a *app.App, calendar payment.Calendar, authHandler *auth.AuthHandler) *ItineraryHandler {
	return &ItineraryHandler{app: a, calendar: calendar, authHandler: authHandler}
}

type PartyLimits struct {
	MinAdults   int `json:"min_adults"`
	MaxAdults   int `json:"max_adults"`
	MaxChildren int `json:"max_children"`
}

type ItineraryResponse struct {
	Body struct {
		Package     models.ItineraryPackage `json:"package"`
		CalendarURL string                  `json:"calendar_url"`
		Prices      booking.Prices          `json:"prices"`
		Limits      PartyLimits             `json:"limits"`
	}
}

// HandleGetItinerary serves the package shown on the public page.
func (h *ItineraryHandler) HandleGetItinerary(ctx context.Context, input *struct{}) (*ItineraryResponse, error) {
	p, ok := h.app.DisplayedPackage()
	if !ok {
		return nil, huma.Error404NotFound("No itinerary available")
	}

	res := &ItineraryResponse{}
	res.Body.Package = p
	res.Body.CalendarURL = h.calendar.EventURL(p.StartDate, p.EndDate)
	res.Body.Prices = h.app.Prices()
	res.Body.Limits = PartyLimits{
		MinAdults:   booking.MinAdults,
		MaxAdults:   booking.MaxAdults,
		MaxChildren: booking.MaxChildren,
	}
	return res, nil
}

type PackagesResponse struct {
	Body []models.ItineraryPackage
}

func (h *ItineraryHandler) HandleListPackages(ctx context.Context, input *auth.AuthInput) (*PackagesResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}
	return &PackagesResponse{Body: h.app.Packages()}, nil
}

type PackageRequest struct {
	auth.AuthInput
	ID string `path:"id"`
}

type PackageResponse struct {
	Body models.ItineraryPackage
}

type DuplicatePackageRequest struct {
	auth.AuthInput
	ID   string `path:"id"`
	Body struct {
		StartDate string `json:"start_date,omitempty" doc:"Start date (YYYY-MM-DD). Empty cancels."`
	} `required:"false"`
}

type DuplicatePackageResponse struct {
	Body struct {
		Created bool                     `json:"created"`
		Package *models.ItineraryPackage `json:"package,omitempty"`
	}
}

func (h *ItineraryHandler) HandleDuplicate(ctx context.Context, input *DuplicatePackageRequest) (*DuplicatePackageResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	dup, created, err := h.app.DuplicatePackage(ctx, input.ID, input.Body.StartDate)
	if err != nil {
		return nil, apiError(err)
	}

	res := &DuplicatePackageResponse{}
	res.Body.Created = created
	if created {
		res.Body.Package = &dup
	}
	return res, nil
}

type ConfirmedPackageRequest struct {
	auth.AuthInput
	ID      string `path:"id"`
	Confirm bool   `query:"confirm" doc:"Must be true to delete"`
}

func (h *ItineraryHandler) HandleDeletePackage(ctx context.Context, input *ConfirmedPackageRequest) (*struct{}, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}
	if !input.Confirm {
		return nil, confirmationRequired()
	}

	if err := h.app.DeletePackage(ctx, input.ID); err != nil {
		return nil, apiError(err)
	}
	return nil, nil
}

func (h *ItineraryHandler) HandleActivate(ctx context.Context, input *PackageRequest) (*PackagesResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	if err := h.app.SetActivePackage(ctx, input.ID); err != nil {
		return nil, apiError(err)
	}
	return &PackagesResponse{Body: h.app.Packages()}, nil
}

type ChangeDatesRequest struct {
	auth.AuthInput
	ID   string `path:"id"`
	Body struct {
		StartDate string `json:"start_date" doc:"YYYY-MM-DD"`
		EndDate   string `json:"end_date" doc:"YYYY-MM-DD"`
	}
}

func (h *ItineraryHandler) HandleChangeDates(ctx context.Context, input *ChangeDatesRequest) (*PackageResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	p, err := h.app.ChangePackageDates(ctx, input.ID, input.Body.StartDate, input.Body.EndDate)
	if err != nil {
		return nil, apiError(err)
	}
	return &PackageResponse{Body: p}, nil
}

type DayResponse struct {
	Body models.ItineraryDay
}

// HandleDayDraft returns a placeholder day. Nothing is stored until the
// draft is saved with HandleSaveDay.
func (h *ItineraryHandler) HandleDayDraft(ctx context.Context, input *PackageRequest) (*DayResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	day, err := h.app.NewDayDraft(input.ID)
	if err != nil {
		return nil, apiError(err)
	}
	return &DayResponse{Body: day}, nil
}

type SaveDayRequest struct {
	auth.AuthInput
	ID    string `path:"id"`
	DayID string `path:"dayId"`
	Body  struct {
		DayNumber   int    `json:"dayNumber" minimum:"1"`
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageURL    string `json:"imageUrl"`
	}
}

func (h *ItineraryHandler) HandleSaveDay(ctx context.Context, input *SaveDayRequest) (*PackageResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	p, err := h.app.SaveDay(ctx, input.ID, models.ItineraryDay{
		ID:          input.DayID,
		DayNumber:   input.Body.DayNumber,
		Title:       input.Body.Title,
		Description: input.Body.Description,
		ImageURL:    input.Body.ImageURL,
	})
	if err != nil {
		return nil, apiError(err)
	}
	return &PackageResponse{Body: p}, nil
}

type DeleteDayRequest struct {
	auth.AuthInput
	ID      string `path:"id"`
	DayID   string `path:"dayId"`
	Confirm bool   `query:"confirm" doc:"Must be true to delete"`
}

func (h *ItineraryHandler) HandleDeleteDay(ctx context.Context, input *DeleteDayRequest) (*struct{}, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}
	if !input.Confirm {
		return nil, confirmationRequired()
	}

	if err := h.app.DeleteDay(ctx, input.ID, input.DayID); err != nil {
		return nil, apiError(err)
	}
	return nil, nil
}
