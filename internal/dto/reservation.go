package dto

import (
	"github.com/shopspring/decimal"
)

// CreateReservationRequest carries the data to open a new reservation.
// Dates are "2006-01-02" strings in the hotel's local day.
type CreateReservationRequest struct {
	GuestName   string          `json:"guestName" binding:"required"`
	DocumentID  string          `json:"documentID"`
	CheckIn     string          `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut    string          `json:"checkOut" binding:"required,datetime=2006-01-02"`
	RoomType    string          `json:"roomType" binding:"required"`
	RoomID      *string         `json:"roomID"`
	Channel     string          `json:"channel"`
	NightlyRate decimal.Decimal `json:"nightlyRate" binding:"required"`
	Notes       string          `json:"notes"`
}

// PreCheckInRequest is the optional guest self-service registration step.
type PreCheckInRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DocumentID  string `json:"documentID" binding:"required"`
	Nationality string `json:"nationality"`
	Phone       string `json:"phone"`
}

// CheckInRequest carries the legal guest registration captured at the desk.
type CheckInRequest struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName"`
	DocumentID   string `json:"documentID"`
	BirthDate    string `json:"birthDate"`
	Nationality  string `json:"nationality"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Occupation   string `json:"occupation"`
	Adults       int    `json:"adults"`
	Kids         int    `json:"kids"`
	VehiclePlate string `json:"vehiclePlate"`
	VehicleModel string `json:"vehicleModel"`
}

// ExtendStayRequest adds nights to an in-house reservation.
type ExtendStayRequest struct {
	Nights int `json:"nights" binding:"required,min=1"`
}

// UpdateBillingRequest switches the fiscal document between personal and
// corporate billing data.
type UpdateBillingRequest struct {
	Type    string `json:"type" binding:"required,oneof=PERSONAL CORPORATE"`
	Name    string `json:"name"`
	TaxID   string `json:"taxID"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
