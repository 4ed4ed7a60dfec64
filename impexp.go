package carteira

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file handles the book interchange format: a JSONL stream, one entity
// per line, tagged with its kind. It exists to seed a session (demo data,
// fixtures, hand-offs); the engine itself never persists mutations.

type line struct {
	Kind string `json:"kind"`
}

// ImportBook reads a whole book from r. Lines are appended in file order, so
// an exported book round-trips with its store order intact.
func ImportBook(r io.Reader) (*Book, error) {
	b := NewBook()
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		raw := scanner.Bytes()
		if len(strings.TrimSpace(string(raw))) == 0 {
			continue
		}
		var l line
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, fmt.Errorf("cannot parse line %d of book file: %w", n, err)
		}
		if err := b.importLine(l.Kind, raw, n); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read book file: %w", err)
	}
	b.rebalance()
	return b, nil
}

func (b *Book) importLine(kind string, raw []byte, n int) error {
	unmarshal := func(v any) error {
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("cannot parse %s on line %d: %w", kind, n, err)
		}
		return nil
	}
	switch kind {
	case "member":
		var m FamilyMember
		if err := unmarshal(&m); err != nil {
			return err
		}
		if m.ID == "" {
			m.ID = newID()
		}
		b.members = append(b.members, m)
	case "category":
		var c Category
		if err := unmarshal(&c); err != nil {
			return err
		}
		if c.ID == "" {
			c.ID = newID()
		}
		b.categories = append(b.categories, c)
	case "account":
		var a BankAccount
		if err := unmarshal(&a); err != nil {
			return err
		}
		if a.ID == "" {
			a.ID = newID()
		}
		a.opening = a.Balance
		b.accounts = append(b.accounts, a)
	case "card":
		var c CreditCard
		if err := unmarshal(&c); err != nil {
			return err
		}
		if c.ID == "" {
			c.ID = newID()
		}
		b.cards = append(b.cards, c)
	case "goal":
		var g Goal
		if err := unmarshal(&g); err != nil {
			return err
		}
		if g.ID == "" {
			g.ID = newID()
		}
		b.goals = append(b.goals, g)
	case "transaction":
		var t Transaction
		if err := unmarshal(&t); err != nil {
			return err
		}
		if t.ID == "" {
			t.ID = newID()
		}
		b.transactions = append(b.transactions, t)
	default:
		return fmt.Errorf("unknown kind %q on line %d", kind, n)
	}
	return nil
}

// ExportBook writes the whole book to w in the interchange format, store order
// preserved. Accounts are written with their opening balance so a reimport
// recomputes the same running balances.
func ExportBook(w io.Writer, b *Book) error {
	write := func(kind string, v any) error {
		payload, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("cannot marshal %s: %w", kind, err)
		}
		// Inject the kind tag without a per-entity wrapper type.
		tagged := append([]byte(fmt.Sprintf(`{"kind":%q,`, kind)), payload[1:]...)
		if _, err := w.Write(append(tagged, '\n')); err != nil {
			return fmt.Errorf("cannot write %s: %w", kind, err)
		}
		return nil
	}
	for _, m := range b.members {
		if err := write("member", m); err != nil {
			return err
		}
	}
	for _, c := range b.categories {
		if err := write("category", c); err != nil {
			return err
		}
	}
	for _, a := range b.accounts {
		a.Balance = a.opening
		if err := write("account", a); err != nil {
			return err
		}
	}
	for _, c := range b.cards {
		if err := write("card", c); err != nil {
			return err
		}
	}
	for _, g := range b.goals {
		if err := write("goal", g); err != nil {
			return err
		}
	}
	for _, t := range b.transactions {
		if err := write("transaction", t); err != nil {
			return err
		}
	}
	return nil
}
