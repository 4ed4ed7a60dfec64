package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rdsilva/carteira"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	date        string
	description string
	amount      string
	txType      string
	category    string
	member      string
	account     string
	card        string
	parcels     int
	recurring   bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction (single, parceled or recurring)" }
func (*addCmd) Usage() string {
	return `bolso add -desc <text> -amount <value> -type <income|expense> -category <name> -member <name> [-account <name> | -card <name>] [-d <date>] [-parcels <n>] [-recurring]

  Records a transaction. A parceled expense on a credit card expands into one
  record per month; a recurring expense expands into twelve monthly
  occurrences. The whole batch is committed atomically.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", carteira.Today().String(), "Transaction date")
	f.StringVar(&c.description, "desc", "", "Description")
	f.StringVar(&c.amount, "amount", "", "Amount (decimal point or comma)")
	f.StringVar(&c.txType, "type", "expense", "Transaction type: income or expense")
	f.StringVar(&c.category, "category", "", "Category name or id")
	f.StringVar(&c.member, "member", "", "Family member name or id")
	f.StringVar(&c.account, "account", "", "Funding bank account name or id")
	f.StringVar(&c.card, "card", "", "Funding credit card name or id")
	f.IntVar(&c.parcels, "parcels", 1, "Number of installments (expense on a card only)")
	f.BoolVar(&c.recurring, "recurring", false, "Repeat monthly")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	on, err := carteira.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := carteira.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	txType, err := carteira.ParseTransactionType(c.txType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	req := carteira.TransactionRequest{
		Date:             on,
		Description:      c.description,
		Amount:           amount,
		Type:             txType,
		InstallmentCount: c.parcels,
		Recurring:        c.recurring,
	}
	if c.member != "" {
		if req.MemberID, err = resolveMember(book, c.member); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.category != "" {
		if req.CategoryID, err = resolveCategory(book, c.category); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.account != "" {
		if req.AccountID, err = resolveAccount(book, c.account); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.card != "" {
		if req.CreditCardID, err = resolveCard(book, c.card); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	batch, err := book.AddTransaction(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %d transaction(s):\n", len(batch))
	for _, tx := range batch {
		fmt.Printf("  %s  %-30s %s [%s]\n", tx.Date.BR(), tx.Description, tx.Amount, tx.Status)
	}
	return subcommands.ExitSuccess
}
