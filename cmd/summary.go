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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date   string
	period string
	member string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard summary for a period" }
func (*summaryCmd) Usage() string {
	return `bolso summary [-d <date>] [-p <period>] [-member <name>]

  Displays totals, savings rate, expenses by category, card utilization,
  upcoming pending bills and goal progress for the period containing the date.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", carteira.Today().String(), "Reference date inside the period")
	f.StringVar(&c.period, "p", "month", "Period: day, week, month, quarter or year")
	f.StringVar(&c.member, "member", "", "Restrict to one family member")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := carteira.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	period, err := carteira.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, err := loadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	memberID := ""
	if c.member != "" {
		if memberID, err = resolveMember(book, c.member); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	summary := carteira.NewSummary(book, period.Range(on), memberID)
	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
