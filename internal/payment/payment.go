// Package payment builds the display-only artifacts shown while a guest pays:
// the UPI payment URI, its QR code and the calendar link for the tour.
package payment

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"
)

const QRSize = 256

type Merchant struct {
	UPIID      string
	Name       string
	QREndpoint string
}

// URI returns upi://pay?pa=<id>&pn=<name>&am=<amount>.
func (m Merchant) URI(amount int) string {
	return "upi://pay?pa=" + url.QueryEscape(m.UPIID) +
		"&pn=" + url.QueryEscape(m.Name) +
		"&am=" + strconv.Itoa(amount)
}

// QRImageURL points at the public QR rendering service for the payment URI.
func (m Merchant) QRImageURL(amount int) string {
	u, err := url.Parse(m.QREndpoint)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set("size", "200x200")
	q.Set("data", m.URI(amount))
	u.RawQuery = q.Encode()
	return u.String()
}

// QRPNG renders the payment URI as a PNG.
func (m Merchant) QRPNG(amount int) ([]byte, error) {
	return qrcode.Encode(m.URI(amount), qrcode.Medium, QRSize)
}

type Calendar struct {
	Title    string
	Details  string
	Location string
}

// EventURL builds a Google Calendar template link running from 09:00Z on
// startDate to 21:00Z on endDate. Dates are YYYY-MM-DD.
func (c Calendar) EventURL(startDate, endDate string) string {
	dates := strings.ReplaceAll(startDate, "-", "") + "T090000Z/" +
		strings.ReplaceAll(endDate, "-", "") + "T210000Z"

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", c.Title)
	q.Set("dates", dates)
	q.Set("details", c.Details)
	q.Set("location", c.Location)
	return "https://www.google.com/calendar/render?" + q.Encode()
}
