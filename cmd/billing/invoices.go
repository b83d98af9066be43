package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/diewo77/billing-client/internal/form"
	"github.com/diewo77/billing-client/internal/models"
)

// itemList collects repeatable -item flags of the shape
// "name|price|type|quantity|taxes"; trailing parts may be omitted.
type itemList []form.ItemDraft

func (l *itemList) String() string { return fmt.Sprintf("%d items", len(*l)) }

func (l *itemList) Set(value string) error {
	parts := strings.Split(value, "|")
	var it form.ItemDraft
	for i, p := range parts {
		switch i {
		case 0:
			it.Name = p
		case 1:
			it.Price = p
		case 2:
			it.Type = p
		case 3:
			it.Quantity = p
		case 4:
			it.Taxes = p
		default:
			return fmt.Errorf("too many fields in -item %q", value)
		}
	}
	*l = append(*l, it)
	return nil
}

func (c *cli) cmdInvoices(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return c.invoicesList(ctx)
	case "add":
		return c.invoicesAdd(ctx, args[1:])
	case "edit":
		return c.invoicesEdit(ctx, args[1:])
	case "delete":
		return c.invoicesDelete(ctx, args[1:])
	case "print":
		return c.invoicesPrint(ctx, args[1:])
	default:
		return fmt.Errorf("unknown invoices subcommand %q (list|add|edit|delete|print)", args[0])
	}
}

func (c *cli) invoicesList(ctx context.Context) error {
	invoices, err := c.app.ListInvoices(ctx)
	if err != nil {
		return c.fail("failed_to_fetch_invoices", err)
	}
	if len(invoices) == 0 {
		fmt.Println("No invoices found.")
		return nil
	}

	// Resolve client labels from the shared registry; an invoice only
	// carries the client id. Listing still works when the refresh fails.
	_ = c.app.RefreshClients(ctx)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREFERENCE\tCLIENT\tCREATED\tDUE\tCURRENCY\tSTAMP\tITEMS")
	for _, inv := range invoices {
		label := inv.ClientID
		if cl, ok := c.app.Clients().Get(inv.ClientID); ok {
			label = cl.Label()
		}
		stamp := ""
		if inv.FiscalStamp {
			stamp = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			inv.ID, inv.InvoiceID, label, inv.CreationDate, inv.DueDate, inv.Currency, stamp, len(inv.Items))
	}
	return w.Flush()
}

// localCurrency loads the company profile so drafts can derive fiscal_stamp.
func (c *cli) localCurrency(ctx context.Context) (string, error) {
	profile, err := c.app.FetchProfile(ctx)
	if err != nil {
		return "", c.fail("failed_to_fetch_company", err)
	}
	return profile.LocalCurrency, nil
}

// supportedCurrency reports whether code is offered by the currency picker.
// The company's local currency is always offered in addition to the fixed list.
func supportedCurrency(code, local string) bool {
	if code == local {
		return true
	}
	for _, c := range models.Currencies {
		if c == code {
			return true
		}
	}
	return false
}

func applyDraftFlags(draft *form.Draft, local, clientID, currency, creation, due string) error {
	if clientID != "" {
		if err := draft.SetHeaderField(form.FieldClientID, clientID); err != nil {
			return err
		}
	}
	if currency != "" {
		if !supportedCurrency(currency, local) {
			return fmt.Errorf("unsupported currency %q (supported: %s)", currency, strings.Join(models.Currencies, ", "))
		}
		if err := draft.SetHeaderField(form.FieldCurrency, currency); err != nil {
			return err
		}
	}
	for field, raw := range map[string]string{form.FieldCreationDate: creation, form.FieldDueDate: due} {
		if raw == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fmt.Errorf("invalid %s %q (want YYYY-MM-DD)", field, raw)
		}
		if err := draft.SetDate(field, t); err != nil {
			return err
		}
	}
	return nil
}

func (c *cli) invoicesAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("invoices add", flag.ExitOnError)
	clientID := fs.String("client", "", "Client id (required)")
	currency := fs.String("currency", "", "Currency code, e.g. USD")
	creation := fs.String("creation", "", "Creation date YYYY-MM-DD")
	due := fs.String("due", "", "Due date YYYY-MM-DD")
	var items itemList
	fs.Var(&items, "item", "Line item name|price|type|quantity|taxes (repeatable)")
	fs.Parse(args)

	local, err := c.localCurrency(ctx)
	if err != nil {
		return err
	}

	draft := form.NewDraft(local)
	if err := applyDraftFlags(draft, local, *clientID, *currency, *creation, *due); err != nil {
		return err
	}
	for i, it := range items {
		if i > 0 {
			draft.AddItem()
		}
		setItem(draft, i, it)
	}

	created, err := c.app.AddInvoice(ctx, draft)
	if err != nil {
		return c.fail("failed_to_add_invoice", err)
	}
	fmt.Printf("Invoice %s created (id %s).\n", created.InvoiceID, created.ID)
	return nil
}

func (c *cli) invoicesEdit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("invoices edit", flag.ExitOnError)
	id := fs.String("id", "", "Invoice id (required)")
	clientID := fs.String("client", "", "Client id")
	currency := fs.String("currency", "", "Currency code")
	creation := fs.String("creation", "", "Creation date YYYY-MM-DD")
	due := fs.String("due", "", "Due date YYYY-MM-DD")
	var items itemList
	fs.Var(&items, "item", "Replacement line item name|price|type|quantity|taxes (repeatable)")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	invoices, err := c.app.ListInvoices(ctx)
	if err != nil {
		return c.fail("failed_to_fetch_invoices", err)
	}
	var current *models.Invoice
	for i := range invoices {
		if invoices[i].ID == *id {
			current = &invoices[i]
			break
		}
	}
	if current == nil {
		return fmt.Errorf("invoice %s not found", *id)
	}

	local, err := c.localCurrency(ctx)
	if err != nil {
		return err
	}

	draft := form.EditDraft(*current, local)
	if err := applyDraftFlags(draft, local, *clientID, *currency, *creation, *due); err != nil {
		return err
	}
	if len(items) > 0 {
		// Replacement semantics: drop existing rows, then load the new set.
		for n := len(draft.Items()); n > 0; n-- {
			_ = draft.RemoveItem(n - 1)
		}
		for i, it := range items {
			draft.AddItem()
			setItem(draft, i, it)
		}
	}

	updated, err := c.app.UpdateInvoice(ctx, draft)
	if err != nil {
		return c.fail("failed_to_update_invoice", err)
	}
	fmt.Printf("Invoice %s updated.\n", updated.ID)
	return nil
}

func setItem(draft *form.Draft, index int, it form.ItemDraft) {
	_ = draft.UpdateItem(index, form.ItemFieldName, it.Name)
	_ = draft.UpdateItem(index, form.ItemFieldPrice, it.Price)
	_ = draft.UpdateItem(index, form.ItemFieldType, it.Type)
	_ = draft.UpdateItem(index, form.ItemFieldQuantity, it.Quantity)
	_ = draft.UpdateItem(index, form.ItemFieldTaxes, it.Taxes)
}

func (c *cli) invoicesDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("invoices delete", flag.ExitOnError)
	id := fs.String("id", "", "Invoice id (required)")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("-id is required")
	}
	if err := c.app.DeleteInvoice(ctx, *id, c.confirm); err != nil {
		return c.fail("failed_to_delete_invoice", err)
	}
	return nil
}

func (c *cli) invoicesPrint(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("invoices print", flag.ExitOnError)
	id := fs.String("id", "", "Invoice id (required)")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("-id is required")
	}
	path, err := c.app.PrintInvoice(ctx, *id)
	if err != nil {
		return c.fail("failed_to_fetch_invoice_pdf", err)
	}
	fmt.Printf("Invoice document saved to %s. Open it with your system's print dialog.\n", path)
	return nil
}
