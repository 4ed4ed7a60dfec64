package carteira

import (
	"slices"
	"strings"
)

// Predicate decides whether a transaction matches one filter criterion.
type Predicate func(Transaction) bool

// Filter returns the transactions matching every predicate, preserving the
// input order. It is pure: the result is always a (possibly empty) subset of
// the input and never reorders it.
func Filter(transactions []Transaction, predicates ...Predicate) []Transaction {
	out := make([]Transaction, 0, len(transactions))
	for _, tx := range transactions {
		accept := true
		for _, p := range predicates {
			if !p(tx) {
				accept = false
				break
			}
		}
		if accept {
			out = append(out, tx)
		}
	}
	return out
}

// ByMember filters by owner. An empty id means all members.
func ByMember(id string) Predicate {
	return func(tx Transaction) bool {
		return id == "" || tx.MemberID == id
	}
}

// ByRange filters by date, boundaries included. A zero range means no restriction.
func ByRange(r Range) Predicate {
	return func(tx Transaction) bool {
		return r.IsZero() || r.Contains(tx.Date)
	}
}

// ByType filters by income/expense. An empty type means all.
func ByType(t TransactionType) Predicate {
	return func(tx Transaction) bool {
		return t == "" || tx.Type == t
	}
}

// BySearch matches a case-insensitive substring of the description or of the
// resolved category name. The empty string matches everything.
func BySearch(text string, categoryName func(id string) string) Predicate {
	needle := strings.ToLower(strings.TrimSpace(text))
	return func(tx Transaction) bool {
		if needle == "" {
			return true
		}
		if strings.Contains(strings.ToLower(tx.Description), needle) {
			return true
		}
		return strings.Contains(strings.ToLower(categoryName(tx.CategoryID)), needle)
	}
}

// ByCategories filters by category-id set membership. An empty set means no
// restriction, not "match nothing". Listing views rely on this.
func ByCategories(ids ...string) Predicate {
	return func(tx Transaction) bool {
		return len(ids) == 0 || slices.Contains(ids, tx.CategoryID)
	}
}

// BySources filters by funding-source set membership (account or card ids
// mixed). An empty set means no restriction.
func BySources(ids ...string) Predicate {
	return func(tx Transaction) bool {
		if len(ids) == 0 {
			return true
		}
		return slices.Contains(ids, tx.AccountID) || slices.Contains(ids, tx.CreditCardID)
	}
}

// ByStatus filters by stored settlement status. An empty status means all.
func ByStatus(s Status) Predicate {
	return func(tx Transaction) bool {
		return s == "" || tx.Status == s
	}
}

// ByDisplayStatus filters by the status a record displays on the given day.
// Stored status never becomes late, so this is the predicate that can find
// overdue records.
func ByDisplayStatus(s Status, on Date) Predicate {
	return func(tx Transaction) bool {
		return s == "" || tx.DisplayStatus(on) == s
	}
}

// FilterSpec is the canonical set of recognized query options. All options are
// conjunctive; zero values mean "no restriction".
type FilterSpec struct {
	MemberID    string
	Range       Range
	Type        TransactionType
	Search      string
	CategoryIDs []string
	SourceIDs   []string
	Status      Status
}

// Predicates expands the spec into its predicate list. The book resolves
// category names for the free-text search.
func (s FilterSpec) Predicates(b *Book) []Predicate {
	return []Predicate{
		ByMember(s.MemberID),
		ByRange(s.Range),
		ByType(s.Type),
		BySearch(s.Search, b.CategoryName),
		ByCategories(s.CategoryIDs...),
		BySources(s.SourceIDs...),
		ByStatus(s.Status),
	}
}
