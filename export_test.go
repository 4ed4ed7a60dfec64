package carteira

import (
	"strings"
	"testing"
)

func TestExportCSV(t *testing.T) {
	fx := newFixture(t)
	fx.income(t, "2026-01-05", "Salário Ana", 12000)
	fx.expense(t, "2026-01-10", "Aluguel", 3500.5, fx.moradia.ID)

	var sb strings.Builder
	if err := ExportCSV(&sb, fx.book, fx.book.Transactions()); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	want := "Data;Descrição;Tipo;Categoria;Conta/Cartão;Valor;Status\n" +
		"10/01/2026;Aluguel;Despesa;Moradia;Conta Corrente;3500,50;Pago\n" +
		"05/01/2026;Salário Ana;Receita;Salário;Conta Corrente;12000,00;Pago\n"
	if got := sb.String(); got != want {
		t.Fatalf("export mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestExportCSVUncategorizedAndPending(t *testing.T) {
	fx := newFixture(t)
	tx := fx.expense(t, "2026-01-10", "Doação avulsa", 50, fx.mercado.ID)
	pending := Pending
	if err := fx.book.UpdateTransaction(tx.ID, TransactionPatch{Status: &pending}); err != nil {
		t.Fatalf("UpdateTransaction: %v", err)
	}
	if err := fx.book.DeleteCategory(fx.mercado.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	var sb strings.Builder
	if err := ExportCSV(&sb, fx.book, fx.book.Transactions()); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	row := strings.Split(lines[1], ";")
	if row[3] != "Sem categoria" {
		t.Errorf("category column = %q, want Sem categoria", row[3])
	}
	if row[6] != "Pendente" {
		t.Errorf("status column = %q, want Pendente", row[6])
	}
}

func TestExportCSVRespectsTheGivenSubset(t *testing.T) {
	fx := newFixture(t)
	fx.income(t, "2026-01-05", "Salário Ana", 12000)
	fx.expense(t, "2026-01-10", "Aluguel", 3500, fx.moradia.ID)

	var sb strings.Builder
	subset := fx.book.Filter(FilterSpec{Type: Income})
	if err := ExportCSV(&sb, fx.book, subset); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	out := sb.String()
	if strings.Contains(out, "Aluguel") {
		t.Errorf("filtered-out row exported:\n%s", out)
	}
	if !strings.Contains(out, "Salário Ana") {
		t.Errorf("selected row missing:\n%s", out)
	}
}
