package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/tour-api/internal/app"
	"github.com/gdg-garage/tour-api/internal/auth"
	"github.com/gdg-garage/tour-api/internal/booking"
	"github.com/gdg-garage/tour-api/internal/export"
	"github.com/gdg-garage/tour-api/internal/models"
	"github.com/gdg-garage/tour-api/internal/notifier"
	"github.com/gdg-garage/tour-api/internal/payment"
)

type BookingHandler struct {
	app         *app.App
	merchant    payment.Merchant
	notifier    notifier.Notifier
	authHandler *auth.AuthHandler
}

func NewBookingHandler(a *app.App, merchant payment.Merchant, n notifier.Notifier, authHandler *auth.AuthHandler) *BookingHandler {
	return &BookingHandler{app: a, merchant: merchant, notifier: n, authHandler: authHandler}
}

type PaymentDetails struct {
	TotalAmount int    `json:"total_amount"`
	PaymentURI  string `json:"payment_uri"`
	QRImageURL  string `json:"qr_image_url"`
}

func (h *BookingHandler) paymentDetails(total int) PaymentDetails {
	return PaymentDetails{
		TotalAmount: total,
		PaymentURI:  h.merchant.URI(total),
		QRImageURL:  h.merchant.QRImageURL(total),
	}
}

type QuoteRequest struct {
	Adults   int `query:"adults" minimum:"1" maximum:"50" default:"1" doc:"Number of adults"`
	Children int `query:"children" minimum:"0" maximum:"20" default:"0" doc:"Number of children"`
}

type QuoteResponse struct {
	Body PaymentDetails
}

func (h *BookingHandler) HandleQuote(ctx context.Context, input *QuoteRequest) (*QuoteResponse, error) {
	total := booking.Quote(h.app.Prices(), input.Adults, input.Children)
	return &QuoteResponse{Body: h.paymentDetails(total)}, nil
}

type QRResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

func (h *BookingHandler) HandleQR(ctx context.Context, input *QuoteRequest) (*QRResponse, error) {
	total := booking.Quote(h.app.Prices(), input.Adults, input.Children)
	png, err := h.merchant.QRPNG(total)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate QR code")
	}
	return &QRResponse{ContentType: "image/png", Body: png}, nil
}

type CreateBookingRequest struct {
	Body struct {
		FullName string `json:"fullName" minLength:"1" doc:"Guest full name"`
		Mobile   string `json:"mobile" minLength:"1" doc:"Mobile number"`
		Email    string `json:"email" format:"email" doc:"Email address"`
		Adults   int    `json:"adults" minimum:"1" maximum:"50" doc:"Number of adults"`
		Children int    `json:"children,omitempty" minimum:"0" maximum:"20" doc:"Number of children"`
	}
}

type BookingResponse struct {
	Body models.Booking
}

type CreateBookingResponse struct {
	Body struct {
		Booking models.Booking `json:"booking"`
		Payment PaymentDetails `json:"payment"`
	}
}

// HandleCreate records a booking once the guest says they have paid.
func (h *BookingHandler) HandleCreate(ctx context.Context, input *CreateBookingRequest) (*CreateBookingResponse, error) {
	created, err := h.app.SubmitBooking(ctx, booking.Intake{
		FullName: input.Body.FullName,
		Mobile:   input.Body.Mobile,
		Email:    input.Body.Email,
		Adults:   input.Body.Adults,
		Children: input.Body.Children,
	})
	if err != nil {
		return nil, apiError(err)
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyBooking(created); err != nil {
			log.Printf("Failed to send notification: %v", err)
		}
	}

	res := &CreateBookingResponse{}
	res.Body.Booking = created
	res.Body.Payment = h.paymentDetails(created.TotalAmount)
	return res, nil
}

type ListBookingsRequest struct {
	auth.AuthInput
	Query string `query:"q" doc:"Matches name or email ignoring case, or mobile verbatim"`
	Sort  string `query:"sort" enum:"timestamp,fullName,totalAmount,status" doc:"Sort column (default timestamp)"`
	Order string `query:"order" enum:"asc,desc" doc:"Sort direction (default desc)"`
}

type ListBookingsResponse struct {
	Body struct {
		Bookings []models.Booking `json:"bookings"`
		Sort     string           `json:"sort"`
		Order    string           `json:"order"`
		// NextOrder is the direction each column would use if requested next.
		NextOrder map[string]string `json:"next_order"`
		Stats     booking.Stats     `json:"stats"`
	}
}

func (h *BookingHandler) HandleList(ctx context.Context, input *ListBookingsRequest) (*ListBookingsResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	state, err := booking.ParseSort(input.Sort, input.Order)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	res := &ListBookingsResponse{}
	res.Body.Bookings = h.app.ListBookings(input.Query, state)
	res.Body.Sort = string(state.Key)
	res.Body.Order = string(state.Order)
	res.Body.NextOrder = make(map[string]string, len(booking.SortKeys))
	for _, key := range booking.SortKeys {
		res.Body.NextOrder[string(key)] = string(state.Request(key).Order)
	}
	res.Body.Stats = h.app.BookingStats()
	return res, nil
}

type BookingActionRequest struct {
	auth.AuthInput
	ID string `path:"id"`
}

func (h *BookingHandler) transition(ctx context.Context, input *BookingActionRequest, status models.BookingStatus) (*BookingResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.Cookie); err != nil {
		return nil, err
	}

	updated, err := h.app.SetBookingStatus(ctx, input.ID, status)
	if err != nil {
		return nil, apiError(err)
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyStatusChange(updated); err != nil {
			log.Printf("Failed to send notification: %v", err)
		}
	}

	return &BookingResponse{Body: updated}, nil
}

func (h *BookingHandler) HandleApprove(ctx context.Context, input *BookingActionRequest) (*BookingResponse, error) {
	return h.transition(ctx, input, models.StatusVerified)
}

func (h *BookingHandler) HandleReject(ctx context.Context, input *BookingActionRequest) (*BookingResponse, error) {
	return h.transition(ctx, input, models.StatusRejected)
}

func (h *BookingHandler) HandleReset(ctx context.Context, input *BookingActionRequest) (*BookingResponse, error) {
	return h.transition(ctx, input, models.StatusPendingVerification)
}

// HandleExport streams the filtered bookings as XLSX. It sits behind
// auth.AuthMiddleware on the plain router.
func (h *BookingHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	state, err := booking.ParseSort(r.URL.Query().Get("sort"), r.URL.Query().Get("order"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	buf, err := export.BookingsXLSX(h.app.ListBookings(r.URL.Query().Get("q"), state))
	if err != nil {
		log.Printf("Failed to export bookings: %v", err)
		http.Error(w, "Failed to export bookings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(time.Now())+`"`)
	w.Write(buf.Bytes())
}
