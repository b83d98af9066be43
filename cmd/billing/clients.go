package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/diewo77/billing-client/internal/models"
)

func (c *cli) cmdClients(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		return c.clientsList(ctx)
	case "add":
		return c.clientsAdd(ctx, args[1:])
	case "edit":
		return c.clientsEdit(ctx, args[1:])
	case "delete":
		return c.clientsDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown clients subcommand %q (list|add|edit|delete)", args[0])
	}
}

func (c *cli) clientsList(ctx context.Context) error {
	if err := c.app.RefreshClients(ctx); err != nil {
		return c.fail("failed_to_fetch_clients", err)
	}

	clients := c.app.Clients().All()
	if len(clients) == 0 {
		fmt.Println("No clients found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMPANY\tCOUNTRY\tPHONE\tEMAIL")
	for _, cl := range clients {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", cl.ID, cl.CompanyName, cl.Country, cl.Phone, cl.Email)
	}
	return w.Flush()
}

func clientFlags(fs *flag.FlagSet, cl *models.Client) {
	fs.StringVar(&cl.CompanyName, "company", "", "Company name (required)")
	fs.StringVar(&cl.FiscalCode, "fiscal-code", "", "Fiscal code")
	fs.StringVar(&cl.Address, "address", "", "Address (required)")
	fs.StringVar(&cl.ZipCode, "zip", "", "Zip code (required)")
	fs.StringVar(&cl.Country, "country", "", "Country")
	fs.StringVar(&cl.Phone, "phone", "", "Phone (required)")
	fs.StringVar(&cl.Email, "email", "", "Email")
}

func (c *cli) clientsAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("clients add", flag.ExitOnError)
	var cl models.Client
	clientFlags(fs, &cl)
	fs.Parse(args)

	created, err := c.app.AddClient(ctx, cl)
	if err != nil {
		return c.fail("failed_to_add_client", err)
	}
	fmt.Printf("Client %s created (id %s).\n", created.CompanyName, created.ID)
	return nil
}

func (c *cli) clientsEdit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("clients edit", flag.ExitOnError)
	var cl models.Client
	fs.StringVar(&cl.ID, "id", "", "Client id (required)")
	clientFlags(fs, &cl)
	fs.Parse(args)

	updated, err := c.app.EditClient(ctx, cl)
	if err != nil {
		return c.fail("failed_to_edit_client", err)
	}
	fmt.Printf("Client %s updated.\n", updated.ID)
	return nil
}

func (c *cli) clientsDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("clients delete", flag.ExitOnError)
	id := fs.String("id", "", "Client id (required)")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("-id is required")
	}
	if err := c.app.DeleteClient(ctx, *id, c.confirm); err != nil {
		return c.fail("failed_to_delete_client", err)
	}
	return nil
}
