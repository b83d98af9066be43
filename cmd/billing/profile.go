package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/diewo77/billing-client/internal/models"
	"github.com/diewo77/billing-client/internal/validation"
)

func (c *cli) cmdProfile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}

	switch args[0] {
	case "show":
		return c.profileShow(ctx)
	case "update":
		return c.profileUpdate(ctx, args[1:])
	default:
		return fmt.Errorf("unknown profile subcommand %q (show|update)", args[0])
	}
}

func (c *cli) profileShow(ctx context.Context) error {
	profile, err := c.app.FetchProfile(ctx)
	if err != nil {
		return c.fail("failed_to_fetch_company", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Company:\t%s\n", profile.CompanyName)
	fmt.Fprintf(w, "Fiscal code:\t%s\n", profile.FiscalCode)
	fmt.Fprintf(w, "Address:\t%s, %s, %s\n", profile.Address, profile.ZipCode, profile.Country)
	fmt.Fprintf(w, "Phone:\t%s\n", profile.Phone)
	fmt.Fprintf(w, "Email:\t%s\n", profile.Email)
	fmt.Fprintf(w, "Currency:\t%s\n", profile.LocalCurrency)
	fmt.Fprintf(w, "Tax rate:\t%s%%\n", profile.LocalTaxPercentage)
	if profile.HasPicture() {
		fmt.Fprintf(w, "Logo:\tset\n")
	}
	return w.Flush()
}

func (c *cli) profileUpdate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile update", flag.ExitOnError)
	company := fs.String("company", "", "Company name")
	fiscal := fs.String("fiscal-code", "", "Fiscal code")
	address := fs.String("address", "", "Address")
	zip := fs.String("zip", "", "Zip code")
	country := fs.String("country", "", "Country")
	phone := fs.String("phone", "", "Phone")
	email := fs.String("email", "", "Email")
	currency := fs.String("currency", "", "Local currency")
	tax := fs.String("tax", "", "Local tax percentage")
	fs.Parse(args)

	// Only flags the user actually set become part of the patch.
	patch := models.ProfilePatch{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "company":
			patch.CompanyName = company
		case "fiscal-code":
			patch.FiscalCode = fiscal
		case "address":
			patch.Address = address
		case "zip":
			patch.ZipCode = zip
		case "country":
			patch.Country = country
		case "phone":
			patch.Phone = phone
		case "email":
			patch.Email = email
		case "currency":
			patch.LocalCurrency = currency
		case "tax":
			patch.LocalTaxPercentage = tax
		}
	})

	if _, err := c.app.UpdateProfile(ctx, patch); err != nil {
		return c.fail("failed_to_update_company", err)
	}
	fmt.Println("Company details updated.")
	return nil
}

func (c *cli) cmdPicture(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("picture needs a subcommand (set|delete)")
	}

	switch args[0] {
	case "set":
		fs := flag.NewFlagSet("picture set", flag.ExitOnError)
		file := fs.String("file", "", "Path to the logo image (required)")
		fs.Parse(args[1:])
		if *file == "" {
			return fmt.Errorf("-file is required")
		}
		if err := c.app.SetPicture(ctx, *file); err != nil {
			return c.fail("failed_to_update_picture", err)
		}
		fmt.Println("Profile picture updated.")
		return nil
	case "delete":
		if err := c.app.DeletePicture(ctx); err != nil {
			return c.fail("failed_to_delete_picture", err)
		}
		fmt.Println("Profile picture deleted.")
		return nil
	default:
		return fmt.Errorf("unknown picture subcommand %q (set|delete)", args[0])
	}
}

func (c *cli) cmdOnboard(ctx context.Context) error {
	w := validation.NewProfileWizard()

	for !w.AtReview() {
		step := w.Current()
		fmt.Printf("\n%s:\n", step.Label)
		for _, rule := range step.Rules {
			w.Set(rule.Field, c.prompt(fieldLabel(rule.Field)))
		}
		// Navigation is advisory: messages are shown, Next still advances.
		for field, msg := range w.StepViolations() {
			fmt.Printf("  ! %s: %s\n", field, msg)
		}
		w.Next()
	}

	fmt.Println("\nReview:")
	for _, pair := range w.Review() {
		fmt.Printf("  %s: %s\n", fieldLabel(pair[0]), pair[1])
	}
	if !c.confirm("confirm_finish_onboarding") {
		return nil
	}

	created, violations, err := c.app.FinishOnboarding(ctx, w)
	if err != nil {
		for field, msg := range violations {
			fmt.Printf("  ! %s: %s\n", field, msg)
		}
		return c.fail("profile_creation_failed", err)
	}
	fmt.Printf("Profile for %s created.\n", created.CompanyName)
	return nil
}

func fieldLabel(field string) string {
	switch field {
	case "company_name":
		return "Company name"
	case "fisical_code":
		return "Fiscal code"
	case "address":
		return "Address"
	case "zip_code":
		return "Zip code"
	case "country":
		return "Country"
	case "phone":
		return "Phone"
	case "email":
		return "Email"
	case "local_currency":
		return "Local currency"
	case "local_tax_percentage":
		return "Local tax percentage"
	default:
		return field
	}
}
