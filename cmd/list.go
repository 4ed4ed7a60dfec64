package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rdsilva/carteira"
	"github.com/rdsilva/carteira/renderer"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	from   string
	to     string
	txType string
	search string
	status string
	member string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions matching a filter" }
func (*listCmd) Usage() string {
	return `bolso list [-from <date>] [-to <date>] [-type <income|expense>] [-q <text>] [-status <paid|pending|late>] [-member <name>]

  Lists transactions in store order. All filters combine with AND; omitted
  filters do not restrict.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date (inclusive)")
	f.StringVar(&c.to, "to", "", "End date (inclusive)")
	f.StringVar(&c.txType, "type", "", "Transaction type")
	f.StringVar(&c.search, "q", "", "Free text over description and category")
	f.StringVar(&c.status, "status", "", "Settlement status")
	f.StringVar(&c.member, "member", "", "Family member name or id")
}

func (c *listCmd) spec(book *carteira.Book) (carteira.FilterSpec, error) {
	var spec carteira.FilterSpec
	var err error

	var from, to carteira.Date
	if c.from != "" {
		if from, err = carteira.ParseDate(c.from); err != nil {
			return spec, err
		}
	}
	if c.to != "" {
		if to, err = carteira.ParseDate(c.to); err != nil {
			return spec, err
		}
	}
	if c.from != "" || c.to != "" {
		if to.IsZero() {
			to = carteira.Today()
		}
		spec.Range = carteira.NewRange(from, to)
	}
	if c.txType != "" {
		if spec.Type, err = carteira.ParseTransactionType(c.txType); err != nil {
			return spec, err
		}
	}
	if c.status != "" {
		status, err := carteira.ParseStatus(c.status)
		if err != nil {
			return spec, err
		}
		// "late" is derived at display time, never stored; it is applied as an
		// extra predicate in Execute.
		if status != carteira.Late {
			spec.Status = status
		}
	}
	if c.member != "" {
		if spec.MemberID, err = resolveMember(book, c.member); err != nil {
			return spec, err
		}
	}
	spec.Search = c.search
	return spec, nil
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}
	spec, err := c.spec(book)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	txs := book.Filter(spec)
	if c.status == string(carteira.Late) {
		txs = carteira.Filter(txs, carteira.ByDisplayStatus(carteira.Late, carteira.Today()))
	}
	printMarkdown(renderer.TransactionsMarkdown(book, txs))
	return subcommands.ExitSuccess
}
