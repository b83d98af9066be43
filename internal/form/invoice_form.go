// Package form models the in-progress editable state of one invoice.
// Numeric fields are held as free-form text while editing and only promoted
// to numbers at submit; all mutations are local and synchronous.
package form

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"

	"github.com/diewo77/billing-client/internal/models"
	"github.com/diewo77/billing-client/internal/validation"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// Header field names accepted by SetHeaderField.
const (
	FieldClientID  = "client_id"
	FieldInvoiceID = "invoice_id"
	FieldCurrency  = "currency"
)

// Date field names accepted by SetDate.
const (
	FieldCreationDate = "creation_date"
	FieldDueDate      = "due_date"
)

// Item field names accepted by UpdateItem.
const (
	ItemFieldName     = "name"
	ItemFieldPrice    = "price"
	ItemFieldType     = "type"
	ItemFieldQuantity = "quantity"
	ItemFieldTaxes    = "taxes"
)

// ItemDraft is one editable line. Price, Quantity and Taxes stay strings
// until Build so the user can type partial numbers.
type ItemDraft struct {
	Name     string
	Price    string
	Type     string
	Quantity string
	Taxes    string
}

// Draft is the editable representation of one invoice, new or existing.
type Draft struct {
	id            string
	invoiceID     string
	clientID      string
	creationDate  string
	dueDate       string
	currency      string
	fiscalStamp   bool
	localCurrency string
	items         []ItemDraft
}

// NewDraft starts a fresh invoice with one blank item row.
// localCurrency is the company's local currency, used to derive fiscal_stamp.
func NewDraft(localCurrency string) *Draft {
	return &Draft{
		localCurrency: localCurrency,
		items:         []ItemDraft{{}},
	}
}

// EditDraft loads an existing invoice for editing. The server id and the
// human-readable invoice reference are carried over and stay immutable.
func EditDraft(inv models.Invoice, localCurrency string) *Draft {
	d := &Draft{
		id:            inv.ID,
		invoiceID:     inv.InvoiceID,
		clientID:      inv.ClientID,
		creationDate:  inv.CreationDate.String(),
		dueDate:       inv.DueDate.String(),
		currency:      inv.Currency,
		fiscalStamp:   inv.Currency == localCurrency,
		localCurrency: localCurrency,
	}
	for _, it := range inv.Items {
		d.items = append(d.items, ItemDraft{
			Name:     it.Name,
			Price:    trimFloat(it.Price),
			Type:     string(it.Type),
			Quantity: trimFloat(it.Quantity),
			Taxes:    trimFloat(it.Taxes),
		})
	}
	if len(d.items) == 0 {
		d.items = []ItemDraft{{}}
	}
	return d
}

// ID returns the server-assigned id, empty for a new invoice.
func (d *Draft) ID() string { return d.id }

// InvoiceID returns the human-readable reference.
func (d *Draft) InvoiceID() string { return d.invoiceID }

// FiscalStamp returns the derived flag; there is no setter.
func (d *Draft) FiscalStamp() bool { return d.fiscalStamp }

// Currency returns the selected currency code.
func (d *Draft) Currency() string { return d.currency }

// Items returns a copy of the line rows in order.
func (d *Draft) Items() []ItemDraft {
	return append([]ItemDraft(nil), d.items...)
}

// AddItem appends a blank row. There is no upper bound.
func (d *Draft) AddItem() {
	d.items = append(d.items, ItemDraft{})
}

// RemoveItem removes the row at index. Removing the last remaining row is
// allowed; the resulting empty sequence is rejected by the server on submit.
func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.items) {
		return fmt.Errorf("item index %d out of range (have %d)", index, len(d.items))
	}
	d.items = append(d.items[:index], d.items[index+1:]...)
	return nil
}

// UpdateItem replaces one field of one row with the raw text the user typed.
// No coercion or range checks happen here; last write wins.
func (d *Draft) UpdateItem(index int, field, value string) error {
	if index < 0 || index >= len(d.items) {
		return fmt.Errorf("item index %d out of range (have %d)", index, len(d.items))
	}
	switch field {
	case ItemFieldName:
		d.items[index].Name = value
	case ItemFieldPrice:
		d.items[index].Price = value
	case ItemFieldType:
		d.items[index].Type = value
	case ItemFieldQuantity:
		d.items[index].Quantity = value
	case ItemFieldTaxes:
		d.items[index].Taxes = value
	default:
		return fmt.Errorf("unknown item field %q", field)
	}
	return nil
}

// SetHeaderField replaces one top-level field. Changing the currency
// recomputes fiscal_stamp against the company local currency; the flag
// itself is never settable.
func (d *Draft) SetHeaderField(field, value string) error {
	switch field {
	case FieldClientID:
		d.clientID = value
	case FieldInvoiceID:
		if d.id != "" {
			return fmt.Errorf("invoice_id is immutable once assigned")
		}
		d.invoiceID = value
	case FieldCurrency:
		d.currency = value
		d.fiscalStamp = value == d.localCurrency
	default:
		return fmt.Errorf("unknown header field %q", field)
	}
	return nil
}

// SetDate assigns a calendar date to creation_date or due_date, formatted
// YYYY-MM-DD in UTC regardless of the input timezone.
func (d *Draft) SetDate(field string, t time.Time) error {
	formatted := t.UTC().Format(dateLayout)
	switch field {
	case FieldCreationDate:
		d.creationDate = formatted
	case FieldDueDate:
		d.dueDate = formatted
	default:
		return fmt.Errorf("unknown date field %q", field)
	}
	return nil
}

// Build promotes the draft to a submittable invoice. Numeric text buffers
// are parsed exactly; non-numeric input comes back as violations instead of
// being forwarded to the server.
func (d *Draft) Build() (models.Invoice, validation.Violations) {
	v := validation.Violations{}

	validation.Required("client_id", d.clientID, v)
	creation := parseDate("creation_date", d.creationDate, v)
	due := parseDate("due_date", d.dueDate, v)
	validation.Required("currency", d.currency, v)

	inv := models.Invoice{
		ID:           d.id,
		ClientID:     d.clientID,
		InvoiceID:    d.invoiceID,
		CreationDate: creation,
		DueDate:      due,
		Currency:     d.currency,
		FiscalStamp:  d.currency == d.localCurrency,
		Items:        make([]models.InvoiceItem, 0, len(d.items)),
	}

	for i, it := range d.items {
		prefix := fmt.Sprintf("items[%d].", i)

		item := models.InvoiceItem{Name: it.Name, Type: models.ItemType(it.Type)}
		validation.Required(prefix+"name", it.Name, v)
		if !models.ValidItemType(it.Type) {
			v[prefix+"type"] = "must_be_service_or_product"
		}
		item.Price = parseNumber(prefix+"price", it.Price, true, v)
		if _, bad := v[prefix+"price"]; !bad {
			validation.PositiveFloat(prefix+"price", item.Price, v)
		}
		item.Quantity = parseNumber(prefix+"quantity", it.Quantity, true, v)
		if _, bad := v[prefix+"quantity"]; !bad {
			validation.PositiveFloat(prefix+"quantity", item.Quantity, v)
		}
		item.Taxes = parseNumber(prefix+"taxes", it.Taxes, false, v)

		inv.Items = append(inv.Items, item)
	}

	if !v.Empty() {
		return models.Invoice{}, v
	}
	return inv, v
}

// parseNumber promotes a text buffer to a number. Empty optional fields
// parse to zero; anything decimal cannot parse exactly is a violation.
func parseNumber(field, raw string, required bool, v validation.Violations) float64 {
	if raw == "" {
		if required {
			v[field] = "required"
		}
		return 0
	}
	dec, err := decimal.NewFromString(raw)
	if err != nil {
		v[field] = "not_a_number"
		return 0
	}
	return dec.InexactFloat64()
}

func parseDate(field, raw string, v validation.Violations) strfmt.Date {
	if raw == "" {
		v[field] = "required"
		return strfmt.Date{}
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		v[field] = "invalid_date"
		return strfmt.Date{}
	}
	return strfmt.Date(t)
}

// trimFloat renders a stored number back into an edit buffer without
// trailing zeros, the way a user would have typed it.
func trimFloat(f float64) string {
	if f == 0 {
		return ""
	}
	return decimal.NewFromFloat(f).String()
}
