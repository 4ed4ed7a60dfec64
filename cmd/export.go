package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/rdsilva/carteira"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
	from   string
	to     string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export transactions as CSV" }
func (*exportCmd) Usage() string {
	return `bolso export [-o <file>] [-from <date>] [-to <date>]

  Writes transactions in the CSV interchange format
  (Data;Descrição;Tipo;Categoria;Conta/Cartão;Valor;Status).
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (default stdout)")
	f.StringVar(&c.from, "from", "", "Start date (inclusive)")
	f.StringVar(&c.to, "to", "", "End date (inclusive)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := loadBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	var spec carteira.FilterSpec
	if c.from != "" || c.to != "" {
		from, to := carteira.Date{}, carteira.Today()
		if c.from != "" {
			if from, err = carteira.ParseDate(c.from); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		if c.to != "" {
			if to, err = carteira.ParseDate(c.to); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		spec.Range = carteira.NewRange(from, to)
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		w = f
	}

	if err := carteira.ExportCSV(w, book, book.Filter(spec)); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting CSV: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
