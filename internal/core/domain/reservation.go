package domain

import (
	"github.com/shopspring/decimal"
)

// ReservationStatus indicates the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationConfirmed  ReservationStatus = "CONFIRMED"
	ReservationPreChecked ReservationStatus = "PRE_CHECKED"
	ReservationCheckedIn  ReservationStatus = "CHECKED_IN"
	ReservationCompleted  ReservationStatus = "COMPLETED"
	ReservationCancelled  ReservationStatus = "CANCELLED"
)

// BillingProfileType distinguishes personal from corporate (fiscal) billing.
type BillingProfileType string

const (
	BillingPersonal  BillingProfileType = "PERSONAL"
	BillingCorporate BillingProfileType = "CORPORATE"
)

// BillingProfile holds the data printed on the fiscal document.
type BillingProfile struct {
	Type    BillingProfileType `json:"type"`
	Name    string             `json:"name,omitempty"`
	TaxID   string             `json:"taxID,omitempty"`
	Phone   string             `json:"phone,omitempty"`
	Address string             `json:"address,omitempty"`
}

// Reservation is the aggregate the folio ledger hangs off. Dates are ISO
// "2006-01-02" strings in the hotel's local day; CheckOut is never before
// CheckIn. InvoiceNumber and ControlNumber stay nil until the first
// operation that requires a fiscal identity and are immutable afterwards.
type Reservation struct {
	ReservationID string            `json:"reservationID"`
	GuestID       string            `json:"guestID"`
	GuestName     string            `json:"guestName"`
	RoomID        *string           `json:"roomID,omitempty"` // nil until assigned
	RoomType      string            `json:"roomType"`
	CheckIn       string            `json:"checkIn"`
	CheckOut      string            `json:"checkOut"`
	Status        ReservationStatus `json:"status"`
	Channel       string            `json:"channel"`
	NightlyRate   decimal.Decimal   `json:"nightlyRate"`
	Folio         []FolioEntry      `json:"folio"`
	Billing       BillingProfile    `json:"billing"`

	// Document id captured at booking, before the guest profile exists.
	GuestDocumentID string `json:"guestDocumentID,omitempty"`
	Notes           string `json:"notes,omitempty"`

	InvoiceNumber *int64 `json:"invoiceNumber,omitempty"`
	ControlNumber *int64 `json:"controlNumber,omitempty"`

	AuditFields
}

// Numbered reports whether fiscal document numbers have been assigned.
func (r *Reservation) Numbered() bool {
	return r.InvoiceNumber != nil
}

// EntryByID returns a pointer into the folio for the entry with the given
// id, or nil when absent.
func (r *Reservation) EntryByID(entryID string) *FolioEntry {
	for i := range r.Folio {
		if r.Folio[i].EntryID == entryID {
			return &r.Folio[i]
		}
	}
	return nil
}
