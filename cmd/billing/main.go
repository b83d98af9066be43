package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/diewo77/billing-client/internal/api"
	"github.com/diewo77/billing-client/internal/app"
	"github.com/diewo77/billing-client/internal/config"
	"github.com/diewo77/billing-client/internal/i18n"
	"github.com/diewo77/billing-client/internal/logger"
	"github.com/diewo77/billing-client/internal/registry"
	"github.com/diewo77/billing-client/internal/session"
)

const usage = `Usage: billing <command> [flags]

Commands:
  login             Sign in and store the session token
  register          Create an account
  onboard           Run the company-profile creation wizard
  profile           Show or update the company profile
  picture           Set or delete the company logo
  clients           List and manage client records
  invoices          List and manage invoices
  change-password   Rotate the account password
  logout            Clear the stored session
  delete-account    Remove all local account state
`

type cli struct {
	app  *app.App
	lang string
	in   *bufio.Reader
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.New(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	sessions := session.NewStore(cfg.SessionFile)
	gw := api.New(cfg, sessions, log)
	a := app.New(gw, registry.New(), sessions, log)

	c := &cli{
		app:  a,
		lang: i18n.DetectLanguage(os.Getenv("LANG")),
		in:   bufio.NewReader(os.Stdin),
	}

	ctx := context.Background()
	if err := c.dispatch(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (c *cli) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "login":
		return c.cmdLogin(ctx, args)
	case "register":
		return c.cmdRegister(ctx, args)
	case "onboard":
		return c.cmdOnboard(ctx)
	case "profile":
		return c.cmdProfile(ctx, args)
	case "picture":
		return c.cmdPicture(ctx, args)
	case "clients":
		return c.cmdClients(ctx, args)
	case "invoices":
		return c.cmdInvoices(ctx, args)
	case "change-password":
		return c.cmdChangePassword(ctx, args)
	case "logout":
		return c.app.Logout(ctx)
	case "delete-account":
		return c.app.DeleteAccount(ctx, c.confirm)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// confirm prints the translated question and reads a y/N answer.
func (c *cli) confirm(code string) bool {
	fmt.Printf("%s [y/N] ", i18n.T(c.lang, code))
	line, err := c.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// prompt reads one line of input after showing a label.
func (c *cli) prompt(label string) string {
	fmt.Printf("%s: ", label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// fail translates a failure for the user while keeping the original error
// for the exit path. Precondition failures surface their own text.
func (c *cli) fail(code string, err error) error {
	if errors.Is(err, session.ErrNoSession) {
		return errors.New(i18n.T(c.lang, "no_token"))
	}
	if errors.Is(err, session.ErrSessionExpired) {
		return errors.New(i18n.T(c.lang, "session_expired"))
	}
	if errors.Is(err, app.ErrActionInFlight) {
		return errors.New(i18n.T(c.lang, "action_in_progress"))
	}
	var verr *app.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return fmt.Errorf("%s (%s)", i18n.T(c.lang, code), apiErr.Message)
	}
	return fmt.Errorf("%s: %w", i18n.T(c.lang, code), err)
}

func (c *cli) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "Account username")
	password := fs.String("password", "", "Account password")
	fs.Parse(args)

	if *username == "" {
		*username = c.prompt("Username")
	}
	if *password == "" {
		*password = c.prompt("Password")
	}

	if err := c.app.Login(ctx, *username, *password); err != nil {
		return c.fail("login_failed", err)
	}
	fmt.Println("Logged in.")
	return nil
}

func (c *cli) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "Account username (letters and digits)")
	password := fs.String("password", "", "Account password (at least 6 characters)")
	fs.Parse(args)

	if *username == "" {
		*username = c.prompt("Username")
	}
	if *password == "" {
		*password = c.prompt("Password")
	}

	if err := c.app.Register(ctx, *username, *password); err != nil {
		return c.fail("registration_failed", err)
	}
	fmt.Println("Account created. Run `billing onboard` to set up your company profile.")
	return nil
}

func (c *cli) cmdChangePassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("change-password", flag.ExitOnError)
	current := fs.String("current", "", "Current password")
	next := fs.String("new", "", "New password")
	confirm := fs.String("confirm", "", "New password again")
	fs.Parse(args)

	if *current == "" {
		*current = c.prompt("Current password")
	}
	if *next == "" {
		*next = c.prompt("New password")
	}
	if *confirm == "" {
		*confirm = c.prompt("Confirm new password")
	}

	if *next != *confirm {
		return errors.New(i18n.T(c.lang, "passwords_do_not_match"))
	}

	msg, err := c.app.ChangePassword(ctx, *current, *next, *confirm)
	if err != nil {
		return c.fail("password_change_failed", err)
	}
	if msg == "" {
		msg = i18n.T(c.lang, "password_changed")
	}
	fmt.Println(msg)
	return nil
}
