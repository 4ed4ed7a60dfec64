package carteira

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSV column contract of the export feature. Fields are ';'-separated, dates
// use dd/MM/yyyy and amounts a decimal comma.
var csvHeader = []string{"Data", "Descrição", "Tipo", "Categoria", "Conta/Cartão", "Valor", "Status"}

func typeLabel(t TransactionType) string {
	if t == Income {
		return "Receita"
	}
	return "Despesa"
}

func statusLabel(s Status) string {
	switch s {
	case Paid:
		return "Pago"
	case Late:
		return "Atrasado"
	default:
		return "Pendente"
	}
}

// ExportCSV writes the given transactions to w in the interchange format.
// Pass a filtered subset to export a view, or Book.Transactions() for
// everything.
func ExportCSV(w io.Writer, b *Book, transactions []Transaction) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, tx := range transactions {
		row := []string{
			tx.Date.BR(),
			tx.Description,
			typeLabel(tx.Type),
			b.CategoryName(tx.CategoryID),
			b.SourceName(tx.FundingSource()),
			tx.Amount.CSV(),
			statusLabel(tx.Status),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write CSV row for %q: %w", tx.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
