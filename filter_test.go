package carteira

import "testing"

func seedFiltering(t *testing.T) (*fixture, []Transaction) {
	t.Helper()
	fx := newFixture(t)
	fx.income(t, "2026-01-05", "Salário Ana", 12000)
	fx.expense(t, "2026-01-10", "Aluguel", 3500, fx.moradia.ID)
	fx.expense(t, "2026-02-02", "Feira da semana", 420, fx.mercado.ID)

	if _, err := fx.book.AddTransaction(TransactionRequest{
		MemberID:     fx.bruno.ID,
		Date:         MustParse("2026-02-10"),
		Description:  "Compras online",
		Amount:       BRL(300),
		Type:         Expense,
		CategoryID:   fx.mercado.ID,
		CreditCardID: fx.cartao.ID,
	}); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}
	return fx, fx.book.Transactions()
}

func TestFilterReturnsSubsetAndIsIdempotent(t *testing.T) {
	fx, all := seedFiltering(t)

	spec := FilterSpec{Type: Expense, Search: "a"}
	once := Filter(all, spec.Predicates(fx.book)...)
	twice := Filter(once, spec.Predicates(fx.book)...)

	if len(once) > len(all) {
		t.Fatalf("filter invented records: %d out of %d", len(once), len(all))
	}
	for _, tx := range once {
		found := false
		for _, orig := range all {
			if orig.ID == tx.ID {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("filtered transaction %q not in input", tx.ID)
		}
	}
	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d then %d", len(once), len(twice))
	}
	for i := range once {
		if !once[i].Equal(twice[i]) {
			t.Errorf("filter not idempotent at %d", i)
		}
	}
}

func TestFilterEmptySelectionsAreVacuous(t *testing.T) {
	fx, all := seedFiltering(t)

	got := fx.book.Filter(FilterSpec{})
	if len(got) != len(all) {
		t.Fatalf("empty spec restricted: got %d, want %d", len(got), len(all))
	}

	// Empty id sets mean "no restriction", never "match nothing".
	got = Filter(all, ByCategories(), BySources())
	if len(got) != len(all) {
		t.Fatalf("empty sets restricted: got %d, want %d", len(got), len(all))
	}
}

func TestFilterByMemberAndRange(t *testing.T) {
	fx, _ := seedFiltering(t)

	got := fx.book.Filter(FilterSpec{MemberID: fx.bruno.ID})
	if len(got) != 1 || got[0].Description != "Compras online" {
		t.Fatalf("member filter = %v", got)
	}

	jan := NewRange(MustParse("2026-01-01"), MustParse("2026-01-31"))
	got = fx.book.Filter(FilterSpec{Range: jan})
	if len(got) != 2 {
		t.Fatalf("january filter: got %d, want 2", len(got))
	}
}

func TestFilterSearchMatchesResolvedCategoryName(t *testing.T) {
	fx, _ := seedFiltering(t)

	// "mercado" appears only in the category name, not in any description.
	got := fx.book.Filter(FilterSpec{Search: "MERCADO"})
	if len(got) != 2 {
		t.Fatalf("category-name search: got %d, want 2", len(got))
	}
	for _, tx := range got {
		if tx.CategoryID != fx.mercado.ID {
			t.Errorf("unexpected match %q", tx.Description)
		}
	}

	got = fx.book.Filter(FilterSpec{Search: "aluguel"})
	if len(got) != 1 || got[0].Description != "Aluguel" {
		t.Fatalf("description search = %v", got)
	}
}

func TestFilterConjunction(t *testing.T) {
	fx, _ := seedFiltering(t)

	got := fx.book.Filter(FilterSpec{
		Type:        Expense,
		CategoryIDs: []string{fx.mercado.ID},
		SourceIDs:   []string{fx.cartao.ID},
	})
	if len(got) != 1 || got[0].Description != "Compras online" {
		t.Fatalf("conjunctive filter = %v", got)
	}
}

func TestFilterByDisplayStatusFindsOverdueRecords(t *testing.T) {
	fx := newFixture(t)
	if _, err := fx.book.AddTransaction(TransactionRequest{
		MemberID:         fx.ana.ID,
		Date:             MustParse("2026-01-15"),
		Description:      "Notebook",
		Amount:           BRL(300),
		Type:             Expense,
		CategoryID:       fx.mercado.ID,
		CreditCardID:     fx.cartao.ID,
		InstallmentCount: 3,
	}); err != nil {
		t.Fatalf("AddTransaction: %v", err)
	}

	// Stored status never becomes late, so ByStatus(Late) matches nothing.
	if got := fx.book.Filter(FilterSpec{Status: Late}); len(got) != 0 {
		t.Fatalf("stored late records: %v", got)
	}

	// As of Mar 1 the February parcel is past due, the March one is not.
	late := Filter(fx.book.Transactions(), ByDisplayStatus(Late, MustParse("2026-03-01")))
	if len(late) != 1 {
		t.Fatalf("got %d late records, want 1", len(late))
	}
	if got := late[0].Date.String(); got != "2026-02-15" {
		t.Errorf("late record date = %s, want 2026-02-15", got)
	}

	// Paid and future-pending records keep their stored display status.
	paid := Filter(fx.book.Transactions(), ByDisplayStatus(Paid, MustParse("2026-03-01")))
	if len(paid) != 1 || paid[0].Date.String() != "2026-01-15" {
		t.Fatalf("paid records = %v", paid)
	}
}

func TestFilterPreservesStoreOrder(t *testing.T) {
	fx, all := seedFiltering(t)

	got := fx.book.Filter(FilterSpec{Type: Expense})
	last := -1
	for _, tx := range got {
		pos := -1
		for i, orig := range all {
			if orig.ID == tx.ID {
				pos = i
				break
			}
		}
		if pos <= last {
			t.Fatalf("filter reordered the input")
		}
		last = pos
	}
}
