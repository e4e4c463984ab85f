package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vaibhavi0810/bank-app/internal/adapter/console/models"
	"github.com/vaibhavi0810/bank-app/internal/config"
	"github.com/vaibhavi0810/bank-app/internal/usecase/service_interfaces"
)

// Console is the interactive front end. It only collects field input and
// prints the Message of every response verbatim; no ledger logic lives here.
type Console struct {
	ledger service_interfaces.LedgerService
	cfg    config.Config
	in     *bufio.Scanner
	out    io.Writer
}

func New(ledger service_interfaces.LedgerService, cfg config.Config, in io.Reader, out io.Writer) *Console {
	return &Console{
		ledger: ledger,
		cfg:    cfg,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Welcome to the Banking System")
	c.printHelp()

	for {
		fmt.Fprint(c.out, "\nbank> ")
		line, ok := c.readLine()
		if !ok {
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			continue
		case "help":
			c.printHelp()
		case "create":
			c.createAccount(ctx)
		case "deposit":
			c.deposit(ctx)
		case "withdraw":
			c.withdraw(ctx)
		case "balance":
			c.checkBalance(ctx)
		case "details":
			c.accountDetails(ctx)
		case "history":
			c.transactionHistory(ctx)
		case "list":
			c.listAccounts(ctx)
		case "delete":
			c.deleteAccount(ctx)
		case "exit", "quit":
			return nil
		default:
			fmt.Fprintln(c.out, "Unknown command. Type 'help' for the command list.")
		}
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, "Commands: create, deposit, withdraw, balance, details, history, list, delete, help, exit")
}

func (c *Console) createAccount(ctx context.Context) {
	holder, ok := c.prompt("Account holder name: ")
	if !ok {
		return
	}
	balance, ok := c.prompt("Initial balance (optional): ")
	if !ok {
		return
	}
	accountType, ok := c.prompt(fmt.Sprintf("Account type [%s] (default %s): ", strings.Join(c.cfg.AccountTypes, "/"), c.cfg.DefaultAccountType))
	if !ok {
		return
	}

	accountType = strings.TrimSpace(accountType)
	if accountType == "" {
		accountType = c.cfg.DefaultAccountType
	}
	if !c.knownAccountType(accountType) {
		fmt.Fprintf(c.out, "Account type must be one of: %s\n", strings.Join(c.cfg.AccountTypes, ", "))
		return
	}

	resp, _ := c.ledger.CreateAccount(ctx, models.CreateAccountRequest{
		HolderName:     holder,
		InitialBalance: balance,
		AccountType:    accountType,
	})
	fmt.Fprintln(c.out, resp.Message)
}

func (c *Console) deposit(ctx context.Context) {
	id, ok := c.prompt("Account number: ")
	if !ok {
		return
	}
	amount, ok := c.prompt("Amount: ")
	if !ok {
		return
	}

	resp, _ := c.ledger.Deposit(ctx, models.DepositRequest{AccountID: id, Amount: amount})
	fmt.Fprintln(c.out, resp.Message)
}

func (c *Console) withdraw(ctx context.Context) {
	id, ok := c.prompt("Account number: ")
	if !ok {
		return
	}
	amount, ok := c.prompt("Amount: ")
	if !ok {
		return
	}

	resp, _ := c.ledger.Withdraw(ctx, models.WithdrawRequest{AccountID: id, Amount: amount})
	fmt.Fprintln(c.out, resp.Message)
}

func (c *Console) checkBalance(ctx context.Context) {
	id, ok := c.prompt("Account number: ")
	if !ok {
		return
	}

	resp, _ := c.ledger.CheckBalance(ctx, id)
	fmt.Fprintln(c.out, resp.Message)
}

func (c *Console) accountDetails(ctx context.Context) {
	id, ok := c.prompt("Account number: ")
	if !ok {
		return
	}

	resp, _ := c.ledger.AccountDetails(ctx, id)
	fmt.Fprintln(c.out, resp.Message)
}

func (c *Console) transactionHistory(ctx context.Context) {
	id, ok := c.prompt("Account number: ")
	if !ok {
		return
	}

	resp, _ := c.ledger.TransactionHistory(ctx, id)
	fmt.Fprintln(c.out, resp.Message)
}

func (c *Console) listAccounts(ctx context.Context) {
	resp, _ := c.ledger.ListAccounts(ctx)
	fmt.Fprintln(c.out, resp.Message)
}

func (c *Console) deleteAccount(ctx context.Context) {
	id, ok := c.prompt("Account number: ")
	if !ok {
		return
	}

	resp, _ := c.ledger.DeleteAccount(ctx, id)
	fmt.Fprintln(c.out, resp.Message)
}

func (c *Console) knownAccountType(accountType string) bool {
	for _, known := range c.cfg.AccountTypes {
		if strings.EqualFold(known, accountType) {
			return true
		}
	}
	return false
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}
