package dto

import (
	"github.com/shopspring/decimal"
)

// InvoiceLine is one grouped charge row on the printable invoice.
type InvoiceLine struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitAmount  decimal.Decimal `json:"unitAmount"`
	Total       decimal.Decimal `json:"total"`
}

// InvoicePayment is one payment row on the printable invoice.
type InvoicePayment struct {
	Method    string          `json:"method"`
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
}

// InvoiceResponse carries every field a collaborator needs to print the
// fiscal document. Local-currency figures are display-only conversions at
// the snapshot rate.
type InvoiceResponse struct {
	InvoiceNumber string `json:"invoiceNumber"` // zero-padded
	ControlNumber string `json:"controlNumber"` // prefixed, zero-padded

	HotelName    string `json:"hotelName"`
	HotelTaxID   string `json:"hotelTaxID"`
	HotelAddress string `json:"hotelAddress"`
	HotelPhone   string `json:"hotelPhone"`

	BillToName    string `json:"billToName"`
	BillToTaxID   string `json:"billToTaxID,omitempty"`
	BillToAddress string `json:"billToAddress,omitempty"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`

	Items    []InvoiceLine    `json:"items"`
	Payments []InvoicePayment `json:"payments"`

	Subtotal      decimal.Decimal `json:"subtotal"`
	VAT           decimal.Decimal `json:"vat"`
	FXTax         decimal.Decimal `json:"fxTax"`
	GrandTotal    decimal.Decimal `json:"grandTotal"`
	TotalWithheld decimal.Decimal `json:"totalWithheld"`
	Balance       decimal.Decimal `json:"balance"`

	ExchangeRate    decimal.Decimal `json:"exchangeRate"`
	SubtotalLocal   decimal.Decimal `json:"subtotalLocal"`
	VATLocal        decimal.Decimal `json:"vatLocal"`
	GrandTotalLocal decimal.Decimal `json:"grandTotalLocal"`
}
