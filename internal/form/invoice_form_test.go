package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/billing-client/internal/models"
)

func validDraft(t *testing.T) *Draft {
	t.Helper()
	d := NewDraft("TND")
	require.NoError(t, d.SetHeaderField(FieldClientID, "c1"))
	require.NoError(t, d.SetHeaderField(FieldCurrency, "TND"))
	require.NoError(t, d.SetDate(FieldCreationDate, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, d.SetDate(FieldDueDate, time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, d.UpdateItem(0, ItemFieldName, "Design work"))
	require.NoError(t, d.UpdateItem(0, ItemFieldPrice, "100.50"))
	require.NoError(t, d.UpdateItem(0, ItemFieldType, "service"))
	require.NoError(t, d.UpdateItem(0, ItemFieldQuantity, "2"))
	return d
}

func TestNewDraftStartsWithOneBlankRow(t *testing.T) {
	d := NewDraft("TND")
	require.Len(t, d.Items(), 1)
	assert.Equal(t, ItemDraft{}, d.Items()[0])
	assert.Empty(t, d.ID())
}

func TestAddRemoveItem(t *testing.T) {
	d := NewDraft("TND")
	d.AddItem()
	d.AddItem()
	require.Len(t, d.Items(), 3)

	for i, name := range []string{"first", "second", "third"} {
		require.NoError(t, d.UpdateItem(i, ItemFieldName, name))
	}

	// Removing the middle row keeps the surviving rows in order.
	require.NoError(t, d.RemoveItem(1))
	require.Len(t, d.Items(), 2)
	assert.Equal(t, "first", d.Items()[0].Name)
	assert.Equal(t, "third", d.Items()[1].Name)

	// Out-of-range indexes are rejected without touching the rows.
	require.Error(t, d.RemoveItem(5))
	require.Error(t, d.RemoveItem(-1))
	require.Len(t, d.Items(), 2)

	// Removing down to zero rows is allowed.
	require.NoError(t, d.RemoveItem(1))
	require.NoError(t, d.RemoveItem(0))
	assert.Empty(t, d.Items())
}

func TestUpdateItemLastWriteWins(t *testing.T) {
	d := NewDraft("TND")
	require.NoError(t, d.UpdateItem(0, ItemFieldPrice, "10"))
	require.NoError(t, d.UpdateItem(0, ItemFieldPrice, "12.5"))
	assert.Equal(t, "12.5", d.Items()[0].Price)
	assert.Len(t, d.Items(), 1, "rapid edits must not duplicate rows")

	// Partial text is stored verbatim; promotion only happens at Build.
	require.NoError(t, d.UpdateItem(0, ItemFieldQuantity, "1."))
	assert.Equal(t, "1.", d.Items()[0].Quantity)

	require.Error(t, d.UpdateItem(0, "color", "red"))
	require.Error(t, d.UpdateItem(9, ItemFieldPrice, "1"))
}

func TestCurrencyDrivesFiscalStamp(t *testing.T) {
	d := NewDraft("TND")
	assert.False(t, d.FiscalStamp())

	require.NoError(t, d.SetHeaderField(FieldCurrency, "TND"))
	assert.True(t, d.FiscalStamp())

	require.NoError(t, d.SetHeaderField(FieldCurrency, "USD"))
	assert.False(t, d.FiscalStamp())
}

func TestInvoiceIDImmutableOnceAssigned(t *testing.T) {
	d := NewDraft("TND")
	require.NoError(t, d.SetHeaderField(FieldInvoiceID, "INV-1"))
	assert.Equal(t, "INV-1", d.InvoiceID())

	existing := models.Invoice{ID: "7", InvoiceID: "INV-7", Currency: "TND"}
	d = EditDraft(existing, "TND")
	require.Error(t, d.SetHeaderField(FieldInvoiceID, "INV-8"))
	assert.Equal(t, "INV-7", d.InvoiceID())
}

func TestSetDateNormalizesToUTC(t *testing.T) {
	d := NewDraft("TND")

	// 01:00 at UTC+3 is still the previous calendar day in UTC.
	east := time.FixedZone("UTC+3", 3*60*60)
	require.NoError(t, d.SetDate(FieldCreationDate, time.Date(2024, 3, 5, 1, 0, 0, 0, east)))
	require.NoError(t, d.SetDate(FieldDueDate, time.Date(2024, 4, 5, 12, 0, 0, 0, time.UTC)))

	require.NoError(t, d.SetHeaderField(FieldClientID, "c1"))
	require.NoError(t, d.SetHeaderField(FieldCurrency, "TND"))
	require.NoError(t, d.UpdateItem(0, ItemFieldName, "x"))
	require.NoError(t, d.UpdateItem(0, ItemFieldPrice, "1"))
	require.NoError(t, d.UpdateItem(0, ItemFieldType, "product"))
	require.NoError(t, d.UpdateItem(0, ItemFieldQuantity, "1"))

	inv, violations := d.Build()
	require.True(t, violations.Empty(), "unexpected violations: %v", violations)
	assert.Equal(t, "2024-03-04", inv.CreationDate.String())
	assert.Equal(t, "2024-04-05", inv.DueDate.String())

	require.Error(t, d.SetDate("paid_date", time.Now()))
}

func TestBuildPromotesNumericBuffers(t *testing.T) {
	d := validDraft(t)
	require.NoError(t, d.UpdateItem(0, ItemFieldTaxes, "19"))

	inv, violations := d.Build()
	require.True(t, violations.Empty(), "unexpected violations: %v", violations)

	assert.Equal(t, "c1", inv.ClientID)
	assert.Equal(t, "TND", inv.Currency)
	assert.True(t, inv.FiscalStamp)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, models.InvoiceItem{
		Name:     "Design work",
		Price:    100.5,
		Type:     models.ItemTypeService,
		Quantity: 2,
		Taxes:    19,
	}, inv.Items[0])
}

func TestBuildOptionalTaxesDefaultToZero(t *testing.T) {
	d := validDraft(t)
	inv, violations := d.Build()
	require.True(t, violations.Empty())
	assert.Zero(t, inv.Items[0].Taxes)
}

func TestBuildRejectsNonNumericInput(t *testing.T) {
	d := validDraft(t)
	require.NoError(t, d.UpdateItem(0, ItemFieldPrice, "abc"))
	require.NoError(t, d.UpdateItem(0, ItemFieldTaxes, "1.2.3"))

	_, violations := d.Build()
	assert.Equal(t, "not_a_number", violations["items[0].price"])
	assert.Equal(t, "not_a_number", violations["items[0].taxes"])
}

func TestBuildRejectsNonPositiveAmounts(t *testing.T) {
	d := validDraft(t)
	require.NoError(t, d.UpdateItem(0, ItemFieldPrice, "0"))
	require.NoError(t, d.UpdateItem(0, ItemFieldQuantity, "-2"))

	_, violations := d.Build()
	assert.Equal(t, "must_be_positive", violations["items[0].price"])
	assert.Equal(t, "must_be_positive", violations["items[0].quantity"])
}

func TestBuildEmptyDraftViolations(t *testing.T) {
	_, violations := NewDraft("TND").Build()

	for _, field := range []string{
		"client_id", "creation_date", "due_date", "currency",
		"items[0].name", "items[0].price", "items[0].quantity",
	} {
		assert.Equal(t, "required", violations[field], field)
	}
	assert.Equal(t, "must_be_service_or_product", violations["items[0].type"])
}

func TestEditDraftRendersBuffersBack(t *testing.T) {
	existing := models.Invoice{
		ID:        "7",
		ClientID:  "c1",
		InvoiceID: "INV-7",
		Currency:  "USD",
		Items: []models.InvoiceItem{
			{Name: "Hosting", Price: 100.5, Type: models.ItemTypeService, Quantity: 2, Taxes: 0},
		},
	}

	d := EditDraft(existing, "TND")
	assert.Equal(t, "7", d.ID())
	assert.False(t, d.FiscalStamp())

	require.Len(t, d.Items(), 1)
	it := d.Items()[0]
	assert.Equal(t, "100.5", it.Price)
	assert.Equal(t, "2", it.Quantity)
	assert.Equal(t, "", it.Taxes)
}

func TestEditDraftWithoutItemsGetsBlankRow(t *testing.T) {
	d := EditDraft(models.Invoice{ID: "7", Currency: "TND"}, "TND")
	require.Len(t, d.Items(), 1)
	assert.Equal(t, ItemDraft{}, d.Items()[0])
}
