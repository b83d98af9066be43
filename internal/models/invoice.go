package models

import "github.com/go-openapi/strfmt"

// ItemType categorizes an invoice line item.
type ItemType string

const (
	ItemTypeService ItemType = "service"
	ItemTypeProduct ItemType = "product"
)

// ValidItemType reports whether t is one of the two supported categories.
func ValidItemType(t string) bool {
	return t == string(ItemTypeService) || t == string(ItemTypeProduct)
}

// Invoice is one invoice as served by the API.
// InvoiceID is the human-readable reference, server-assigned and immutable.
// FiscalStamp is derived from the currency and never set directly.
type Invoice struct {
	ID           string        `json:"id,omitempty"`
	ClientID     string        `json:"client_id"`
	InvoiceID    string        `json:"invoice_id,omitempty"`
	CreationDate strfmt.Date   `json:"creation_date"`
	DueDate      strfmt.Date   `json:"due_date"`
	Currency     string        `json:"currency"`
	FiscalStamp  bool          `json:"fiscal_stamp"`
	Items        []InvoiceItem `json:"invoiceItems"`

	// Expanded is per-screen accordion state, never persisted.
	Expanded bool `json:"-"`
}

// InvoiceItem is one billable line: name, unit price, category, quantity
// and tax rate. All except taxes are required by the server on submit.
type InvoiceItem struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Type     ItemType `json:"type"`
	Quantity float64  `json:"quantity"`
	Taxes    float64  `json:"taxes"`
}

// Currencies is the fixed list offered by the currency picker. The company's
// local currency is offered additionally via the profile.
var Currencies = []string{"TND", "USD", "EUR", "GBP"}
