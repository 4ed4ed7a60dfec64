package carteira

import "testing"

// BRL is a helper for tests to create money from const.
func BRL(v float64) Money { return M(v) }

// fixture is a seeded book with the ids of its entities, so tests read naturally.
type fixture struct {
	book *Book

	ana, bruno FamilyMember

	salario, moradia, mercado Category

	conta  BankAccount
	cartao CreditCard
}

// newFixture builds a book with two members, three categories, one account
// (opening balance 1000) and one card (limit 5000).
func newFixture(t *testing.T) *fixture {
	t.Helper()
	b := NewBook()

	// Members are a fixed seed list, so they bypass the (unsupported) mutation API.
	fx := &fixture{book: b}
	fx.ana = FamilyMember{ID: newID(), Name: "Ana", Email: "ana@example.com"}
	fx.bruno = FamilyMember{ID: newID(), Name: "Bruno", Email: "bruno@example.com"}
	b.members = append(b.members, fx.ana, fx.bruno)

	var err error
	if fx.salario, err = b.AddCategory(Category{Name: "Salário", Type: Income, Color: "#0a0"}); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	if fx.moradia, err = b.AddCategory(Category{Name: "Moradia", Type: Expense, Color: "#a00"}); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	if fx.mercado, err = b.AddCategory(Category{Name: "Mercado", Type: Expense, Color: "#00a"}); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	if fx.conta, err = b.AddAccount(BankAccount{Name: "Conta Corrente", Bank: "Nubank", Balance: BRL(1000), AccountNumber: "1234-5"}); err != nil {
		t.Fatalf("AddAccount: %v", err)
	}
	if fx.cartao, err = b.AddCard(CreditCard{Name: "Violeta", Bank: "Nubank", Limit: BRL(5000), ClosingDay: 28, DueDay: 5, LastDigits: "4242"}); err != nil {
		t.Fatalf("AddCard: %v", err)
	}
	return fx
}

// income records a paid income transaction on the fixture account.
func (fx *fixture) income(t *testing.T, day, desc string, amount float64) Transaction {
	t.Helper()
	batch, err := fx.book.AddTransaction(TransactionRequest{
		MemberID:    fx.ana.ID,
		Date:        MustParse(day),
		Description: desc,
		Amount:      BRL(amount),
		Type:        Income,
		CategoryID:  fx.salario.ID,
		AccountID:   fx.conta.ID,
	})
	if err != nil {
		t.Fatalf("income %q: %v", desc, err)
	}
	return batch[0]
}

// expense records a paid expense transaction on the fixture account.
func (fx *fixture) expense(t *testing.T, day, desc string, amount float64, category string) Transaction {
	t.Helper()
	batch, err := fx.book.AddTransaction(TransactionRequest{
		MemberID:    fx.ana.ID,
		Date:        MustParse(day),
		Description: desc,
		Amount:      BRL(amount),
		Type:        Expense,
		CategoryID:  category,
		AccountID:   fx.conta.ID,
	})
	if err != nil {
		t.Fatalf("expense %q: %v", desc, err)
	}
	return batch[0]
}
