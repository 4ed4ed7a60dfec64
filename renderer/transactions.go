package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/rdsilva/carteira"
)

func statusLabel(s carteira.Status) string {
	switch s {
	case carteira.Paid:
		return "Pago"
	case carteira.Late:
		return "Atrasado"
	default:
		return "Pendente"
	}
}

func typeLabel(t carteira.TransactionType) string {
	if t == carteira.Income {
		return "Receita"
	}
	return "Despesa"
}

// TransactionsMarkdown renders a transaction listing to a markdown table.
// Names are resolved against the book; order is the caller's.
func TransactionsMarkdown(b *carteira.Book, transactions []carteira.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transações")
	rows := make([][]string, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, []string{
			tx.Date.BR(),
			tx.Description,
			typeLabel(tx.Type),
			b.CategoryName(tx.CategoryID),
			b.SourceName(tx.FundingSource()),
			tx.Amount.String(),
			statusLabel(tx.Status),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Data", "Descrição", "Tipo", "Categoria", "Conta/Cartão", "Valor", "Status"},
		Rows:   rows,
	})
	return doc.String()
}
