// The teller command is the GV Bank teller demo: a login surface (by PIN,
// or by face verification with an email OTP fallback) and a dashboard
// serving deposit, transfer and PIN change against a CSV account ledger.
//
// Provisioning is explicit: `teller init` seeds the example dataset;
// plain `teller` refuses to run without an accounts file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gvbank/teller/infra/initializer"
	"github.com/gvbank/teller/infra/ledger"
	"github.com/gvbank/teller/pkg/config"
	"github.com/gvbank/teller/pkg/domain"
	"github.com/gvbank/teller/pkg/money"
	"github.com/gvbank/teller/pkg/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "init" {
		if err := seedLedger(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	deps, err := initializer.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Fail fast without provisioned accounts.
	if _, err := deps.Ledger.Load(); err != nil {
		deps.Logger.Error("ledger unavailable, run `teller init` or provision accounts", "error", err)
		os.Exit(1)
	}

	if err := run(deps); err != nil {
		deps.Logger.Error("teller stopped", "error", err)
		os.Exit(1)
	}
}

// seedLedger provisions the example dataset the demo ships with.
func seedLedger(cfg *config.App) error {
	store := ledger.NewCSVStore(cfg.Ledger.AccountsPath)
	err := store.Seed([]*domain.Account{
		{
			Number:  1001,
			Name:    "User1",
			Email:   "your-email@example.com",
			Balance: money.Must(50000),
			PIN:     1234,
		},
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created %s with default data.\n", cfg.Ledger.AccountsPath)
	return nil
}

// run is the login loop. It returns only on quit or a store fault.
func run(deps *initializer.Deps) error {
	prompter := newTerminalPrompter()

	for {
		title("GV Bank - Secure Login")
		fmt.Println(" 1) Face login")
		fmt.Println(" 2) PIN login")
		fmt.Println(" 3) Check balance")
		fmt.Println(" 4) Quit")

		choice, ok := prompter.line("Choose an option")
		if !ok {
			return nil
		}
		var err error
		switch choice {
		case "1":
			err = faceLogin(deps, prompter)
		case "2":
			err = pinLogin(deps, prompter)
		case "3":
			err = checkBalance(deps, prompter)
		case "4", "q":
			return nil
		default:
			errorDialog("Unknown option %q", choice)
			continue
		}

		if err == nil || errors.Is(err, domain.ErrCanceled) {
			continue
		}
		if service.IsRecoverable(err) {
			errorDialog("%v", err)
			continue
		}
		return err
	}
}

// credentials prompts for the account number and PIN.
func credentials(prompter *terminalPrompter) (int64, int, bool) {
	number, ok := prompter.AccountNumber("Enter your Account Number")
	if !ok {
		return 0, 0, false
	}
	pin, ok := prompter.PIN("Enter your PIN")
	if !ok {
		return 0, 0, false
	}
	return number, pin, true
}

func faceLogin(deps *initializer.Deps, prompter *terminalPrompter) error {
	number, pin, ok := credentials(prompter)
	if !ok {
		return domain.ErrCanceled
	}
	captured, ok := prompter.ImagePath("Path to your captured face image")
	if !ok {
		return domain.ErrCanceled
	}

	sess, err := deps.Auth.LoginWithFace(context.Background(), number, pin, captured, prompter)
	if errors.Is(err, domain.ErrEnrolled) {
		successDialog("New face registered. Please login again.")
		return nil
	}
	if err != nil {
		return err
	}
	successDialog("Welcome %s!", sess.Name)
	return dashboard(sess, prompter)
}

func pinLogin(deps *initializer.Deps, prompter *terminalPrompter) error {
	number, pin, ok := credentials(prompter)
	if !ok {
		return domain.ErrCanceled
	}
	sess, err := deps.Auth.LoginWithPIN(number, pin)
	if err != nil {
		return err
	}
	successDialog("Welcome %s!", sess.Name)
	return dashboard(sess, prompter)
}

func checkBalance(deps *initializer.Deps, prompter *terminalPrompter) error {
	number, ok := prompter.AccountNumber("Enter your Account Number")
	if !ok {
		return domain.ErrCanceled
	}
	balance, err := deps.Accounts.Balance(number)
	if err != nil {
		return err
	}
	infoDialog("Your Balance: %s", balance)
	return nil
}

// dashboard serves one authenticated session until logout.
func dashboard(sess *service.Session, prompter *terminalPrompter) error {
	for {
		balance, err := sess.Balance()
		if err != nil {
			return err
		}
		title("GV Bank - Dashboard - " + sess.Name)
		infoDialog("Balance: %s", balance)
		fmt.Println(" 1) Deposit")
		fmt.Println(" 2) Transfer")
		fmt.Println(" 3) Change PIN")
		fmt.Println(" 4) Logout")

		choice, ok := prompter.line("Choose an option")
		if !ok {
			sess.Logout()
			return nil
		}
		switch choice {
		case "1":
			newBalance, err := sess.Deposit(prompter)
			if err := report(err); err != nil {
				return err
			}
			if err == nil {
				successDialog("Deposited. New balance: %s", newBalance)
			}
		case "2":
			newBalance, err := sess.Transfer(prompter)
			if err := report(err); err != nil {
				return err
			}
			if err == nil {
				successDialog("Transfer complete. New balance: %s", newBalance)
			}
		case "3":
			err := sess.ChangePIN(prompter)
			if err := report(err); err != nil {
				return err
			}
			if err == nil {
				successDialog("PIN updated.")
			}
		case "4":
			sess.Logout()
			infoDialog("Logged out.")
			return nil
		default:
			errorDialog("Unknown option %q", choice)
		}
	}
}

// report shows recoverable errors as dialogs and passes store faults up.
func report(err error) error {
	if err == nil || errors.Is(err, domain.ErrCanceled) {
		return nil
	}
	if service.IsRecoverable(err) {
		errorDialog("%v", err)
		return nil
	}
	return err
}
