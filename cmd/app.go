// Package cmd implements the CLI application hosting the family ledger engine.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rdsilva/carteira"
	"github.com/sirupsen/logrus"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book", "carteira.jsonl", "Path to the book file (JSONL interchange format)")
var verbose = flag.Bool("v", false, "Enable debug logging")

// Commands lists the registered subcommands. A main package registers them on
// a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&payCmd{},
	&listCmd{},
	&summaryCmd{},
	&exportCmd{},
}

// Setup configures logging. Called by main after flag parsing.
func Setup() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// loadBook reads the book file. A missing file yields an empty book so every
// command works on a fresh session.
func loadBook() (*carteira.Book, error) {
	f, err := os.Open(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.Warnf("book file %q does not exist, starting an empty book", *bookFile)
		return carteira.NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open book file %q: %w", *bookFile, err)
	}
	defer f.Close()
	return carteira.ImportBook(f)
}

// saveBook writes the book back to the book file so the next invocation sees
// this session's mutations.
func saveBook(b *carteira.Book) error {
	f, err := os.Create(*bookFile)
	if err != nil {
		return fmt.Errorf("cannot write book file %q: %w", *bookFile, err)
	}
	defer f.Close()
	return carteira.ExportBook(f, b)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be built.
func printMarkdown(markdown string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}

// resolvers: commands accept entity names or ids interchangeably.

func resolveCategory(b *carteira.Book, nameOrID string) (string, error) {
	for _, c := range b.Categories() {
		if c.ID == nameOrID || strings.EqualFold(c.Name, nameOrID) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", nameOrID)
}

func resolveMember(b *carteira.Book, nameOrID string) (string, error) {
	for _, m := range b.Members() {
		if m.ID == nameOrID || strings.EqualFold(m.Name, nameOrID) {
			return m.ID, nil
		}
	}
	return "", fmt.Errorf("unknown family member %q", nameOrID)
}

func resolveAccount(b *carteira.Book, nameOrID string) (string, error) {
	for _, a := range b.Accounts() {
		if a.ID == nameOrID || strings.EqualFold(a.Name, nameOrID) {
			return a.ID, nil
		}
	}
	return "", fmt.Errorf("unknown account %q", nameOrID)
}

func resolveCard(b *carteira.Book, nameOrID string) (string, error) {
	for _, c := range b.Cards() {
		if c.ID == nameOrID || strings.EqualFold(c.Name, nameOrID) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("unknown card %q", nameOrID)
}
