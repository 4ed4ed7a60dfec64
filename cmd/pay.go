package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// payCmd holds the flags for the 'pay' subcommand.
type payCmd struct{}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "settle a pending transaction" }
func (*payCmd) Usage() string {
	return `bolso pay <transaction-id>...

  Marks pending transactions as paid. A recurring occurrence spawns next
  month's one; a non-terminal installment spawns the next parcel.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one transaction id is required")
		return subcommands.ExitUsageError
	}
	book, err := loadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, id := range f.Args() {
		next, err := book.MarkPaid(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error settling %q: %v\n", id, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Settled %s\n", id)
		if next != nil {
			fmt.Printf("  next: %s  %-30s %s [%s]\n", next.Date.BR(), next.Description, next.Amount, next.Status)
		}
	}

	if err := saveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
