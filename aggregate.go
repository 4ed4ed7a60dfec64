package carteira

import (
	"slices"
	"strings"
)

// This file contains the pure aggregation functions. All of them accumulate
// with Money (decimal) and are insensitive to the order of the input set.

// TotalByType sums the amounts of transactions of the given type.
func TotalByType(transactions []Transaction, t TransactionType) Money {
	total := M(0)
	for _, tx := range transactions {
		if tx.Type == t {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// CategoryBreakdown is one row of the expenses-by-category aggregation.
type CategoryBreakdown struct {
	CategoryID   string
	CategoryName string
	Amount       Money
	Share        Percent // of the total expense sum, not of income
	Color        string
}

// ExpensesByCategory groups expense transactions by category, sums their
// amounts and computes each group's share of the total expense sum. Rows are
// sorted descending by amount (category name breaks ties so permuting the
// input cannot change the result). A transaction whose category is
// unresolvable lands in "Sem categoria".
func ExpensesByCategory(transactions []Transaction, b *Book) []CategoryBreakdown {
	sums := make(map[string]Money)
	for _, tx := range transactions {
		if tx.Type != Expense {
			continue
		}
		sums[tx.CategoryID] = sums[tx.CategoryID].Add(tx.Amount)
	}

	total := TotalByType(transactions, Expense)
	rows := make([]CategoryBreakdown, 0, len(sums))
	for id, amount := range sums {
		row := CategoryBreakdown{
			CategoryID:   id,
			CategoryName: b.CategoryName(id),
			Amount:       amount,
			Share:        amount.Share(total),
		}
		if c := b.Category(id); c != nil {
			row.Color = c.Color
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, c CategoryBreakdown) int {
		switch {
		case a.Amount.GreaterThan(c.Amount):
			return -1
		case a.Amount.LessThan(c.Amount):
			return 1
		default:
			return strings.Compare(a.CategoryName, c.CategoryName)
		}
	})
	return rows
}

// CategoryShareOfIncome returns the expense total of one category as a share
// of the total income over the same set. Zero income resolves to 0 by policy,
// never a division error.
func CategoryShareOfIncome(transactions []Transaction, categoryID string) Percent {
	income := TotalByType(transactions, Income)
	spent := M(0)
	for _, tx := range transactions {
		if tx.Type == Expense && tx.CategoryID == categoryID {
			spent = spent.Add(tx.Amount)
		}
	}
	return spent.Share(income)
}

// SavingsRate returns (income - expenses) / income as a percentage. Zero
// income resolves to 0 by policy.
func SavingsRate(transactions []Transaction) Percent {
	income := TotalByType(transactions, Income)
	expenses := TotalByType(transactions, Expense)
	return income.Sub(expenses).Share(income)
}
