package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/rdsilva/carteira"
)

// SummaryMarkdown renders the dashboard summary to a markdown string.
func SummaryMarkdown(s *carteira.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Resumo %s a %s", s.Range.From.BR(), s.Range.To.BR()))

	doc.Table(md.TableSet{
		Header: []string{"", "Valor"},
		Rows: [][]string{
			{"Receitas", s.Income.String()},
			{"Despesas", s.Expenses.String()},
			{"Saldo", s.Net.String()},
			{"Taxa de economia", s.SavingsRate.String()},
		},
	})

	if len(s.Categories) > 0 {
		doc.H2("Despesas por categoria")
		rows := make([][]string, 0, len(s.Categories))
		for _, c := range s.Categories {
			rows = append(rows, []string{c.CategoryName, c.Amount.String(), c.Share.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Categoria", "Valor", "% das despesas"},
			Rows:   rows,
		})
	}

	if len(s.Cards) > 0 {
		doc.H2("Cartões")
		rows := make([][]string, 0, len(s.Cards))
		for _, c := range s.Cards {
			flag := ""
			if c.OverLimit {
				flag = "acima do limite"
			}
			rows = append(rows, []string{
				fmt.Sprintf("%s •%s", c.Card.Name, c.Card.LastDigits),
				c.Card.CurrentBalance.String(),
				c.Card.Limit.String(),
				c.Utilization.String(),
				flag,
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Cartão", "Fatura", "Limite", "Uso", ""},
			Rows:   rows,
		})
	}

	if len(s.Upcoming) > 0 {
		doc.H2("Próximas contas")
		rows := make([][]string, 0, len(s.Upcoming))
		for _, o := range s.Upcoming {
			rows = append(rows, []string{o.Date.BR(), o.Description, o.Amount.String(), statusLabel(o.Due)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Vencimento", "Descrição", "Valor", "Status"},
			Rows:   rows,
		})
	}

	if len(s.Goals) > 0 {
		doc.H2("Metas")
		rows := make([][]string, 0, len(s.Goals))
		for _, g := range s.Goals {
			rows = append(rows, []string{g.Name, g.CurrentAmount.String(), g.TargetAmount.String(), g.Progress().String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Meta", "Atual", "Alvo", "Progresso"},
			Rows:   rows,
		})
	}

	return doc.String()
}
