package carteira

import "fmt"

// TransactionType discriminates money coming in from money going out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income, Expense:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Status is the settlement state of a single transaction record.
//
// The only transition is pending -> paid; a chain's overall progress lives in
// the sequence of records it has spawned, never on one record.
type Status string

const (
	Paid    Status = "paid"
	Pending Status = "pending"
	Late    Status = "late"
)

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case Paid, Pending, Late:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status: %q", s)
	}
}

// Installments tags a transaction with its 1-based position in an installment chain.
type Installments struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Transaction is a single ledger entry.
type Transaction struct {
	ID           string          `json:"id"`
	MemberID     string          `json:"memberId"`
	Date         Date            `json:"date"`
	Description  string          `json:"description"`
	Amount       Money           `json:"amount"`
	Type         TransactionType `json:"type"`
	CategoryID   string          `json:"categoryId"`
	AccountID    string          `json:"accountId,omitempty"`
	CreditCardID string          `json:"creditCardId,omitempty"`
	Status       Status          `json:"status"`
	Installments *Installments   `json:"installments,omitempty"`
	Recurring    bool            `json:"recurring,omitempty"`
}

// FundingSource returns the id of the account or card the transaction draws
// from. A transaction is funded by at most one source.
func (t Transaction) FundingSource() string {
	if t.AccountID != "" {
		return t.AccountID
	}
	return t.CreditCardID
}

// IsInstallment reports whether the transaction belongs to an installment chain.
func (t Transaction) IsInstallment() bool {
	return t.Installments != nil && t.Installments.Total > 1
}

// IsLastInstallment reports whether the transaction is the terminal member of its chain.
func (t Transaction) IsLastInstallment() bool {
	return t.Installments != nil && t.Installments.Current == t.Installments.Total
}

// Overdue reports whether a pending transaction is past due on the given day.
func (t Transaction) Overdue(on Date) bool {
	return t.Status == Pending && t.Date.Before(on)
}

// DisplayStatus resolves the status shown to the caller: a pending record past
// its date reads as late, the stored status is untouched.
func (t Transaction) DisplayStatus(on Date) Status {
	if t.Overdue(on) {
		return Late
	}
	return t.Status
}

func (t Transaction) Equal(o Transaction) bool {
	if t.Installments == nil != (o.Installments == nil) {
		return false
	}
	if t.Installments != nil && *t.Installments != *o.Installments {
		return false
	}
	return t.ID == o.ID &&
		t.MemberID == o.MemberID &&
		t.Date == o.Date &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Type == o.Type &&
		t.CategoryID == o.CategoryID &&
		t.AccountID == o.AccountID &&
		t.CreditCardID == o.CreditCardID &&
		t.Status == o.Status &&
		t.Recurring == o.Recurring
}
