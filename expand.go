package carteira

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// recurrenceHorizon is how many monthly occurrences a recurring request emits
// up front. Later occurrences are synthesized one at a time as earlier ones
// are settled.
const recurrenceHorizon = 12

// ExpansionPolicy decides what happens when a request asks for both an
// installment plan and a recurrence. The two modes are intentionally
// exclusive.
type ExpansionPolicy int

const (
	// RejectConflict fails the request before any record is created.
	RejectConflict ExpansionPolicy = iota
	// CoerceToSingle keeps the recurrence and forces the installment count
	// back to 1.
	CoerceToSingle
)

// ErrModeConflict reports a request that is both recurring and installmented.
var ErrModeConflict = errors.New("a transaction cannot be both recurring and in installments")

// TransactionRequest is a user-submitted transaction before expansion.
type TransactionRequest struct {
	MemberID     string
	Date         Date
	Description  string
	Amount       Money
	Type         TransactionType
	CategoryID   string
	AccountID    string
	CreditCardID string

	// InstallmentCount above 1 turns the request into an installment plan.
	InstallmentCount int
	// Recurring turns the request into a monthly series.
	Recurring bool
}

// Expand turns one request into its ledger records.
//
// A plain request emits one paid record. An installment plan emits one record
// per month, the first paid and the rest pending, each tagged with its chain
// position. A recurring request emits twelve monthly occurrences, the first
// paid. Dates advance by calendar months, clamped to shorter months.
//
// Expand never mutates a store; the caller commits the whole batch or nothing.
func Expand(req TransactionRequest, policy ExpansionPolicy) ([]Transaction, error) {
	parcels := req.InstallmentCount
	if parcels < 1 {
		parcels = 1
	}
	if req.Recurring && parcels > 1 {
		switch policy {
		case CoerceToSingle:
			parcels = 1
		default:
			return nil, ErrModeConflict
		}
	}

	if parcels > 1 {
		if req.Type != Expense {
			return nil, fmt.Errorf("installments require an expense, got %q", req.Type)
		}
		if req.CreditCardID == "" {
			return nil, errors.New("installments require a credit card funding source")
		}
	}

	base := record(req)

	if req.Recurring {
		batch := make([]Transaction, 0, recurrenceHorizon)
		for k := 0; k < recurrenceHorizon; k++ {
			tx := base
			tx.Date = req.Date.AddMonths(k)
			tx.Recurring = true
			if k > 0 {
				tx.Status = Pending
			}
			batch = append(batch, tx)
		}
		return batch, nil
	}

	if parcels > 1 {
		batch := make([]Transaction, 0, parcels)
		for k := 1; k <= parcels; k++ {
			tx := base
			tx.Date = req.Date.AddMonths(k - 1)
			tx.Installments = &Installments{Current: k, Total: parcels}
			if k > 1 {
				tx.Status = Pending
				tx.Description = installmentLabel(req.Description, k, parcels)
			}
			batch = append(batch, tx)
		}
		return batch, nil
	}

	return []Transaction{base}, nil
}

// record builds the first ledger entry of a request, before scheduling.
func record(req TransactionRequest) Transaction {
	return Transaction{
		MemberID:     req.MemberID,
		Date:         req.Date,
		Description:  req.Description,
		Amount:       req.Amount,
		Type:         req.Type,
		CategoryID:   req.CategoryID,
		AccountID:    req.AccountID,
		CreditCardID: req.CreditCardID,
		Status:       Paid,
	}
}

var installmentSuffixRE = regexp.MustCompile(`\s*\(\d+/\d+\)$`)

// installmentLabel suffixes a description with its chain position, replacing
// any position suffix already present.
func installmentLabel(description string, current, total int) string {
	base := strings.TrimSpace(installmentSuffixRE.ReplaceAllString(description, ""))
	return fmt.Sprintf("%s (%d/%d)", base, current, total)
}

// Advance settles a pending record and synthesizes its successor.
//
// The record itself flips to paid. A recurring record spawns next month's
// occurrence as pending; a non-terminal installment spawns the next parcel.
// A record that is neither, or that closes its chain, produces no successor.
func Advance(tx Transaction) (paid Transaction, next *Transaction, err error) {
	if tx.Status != Pending {
		return tx, nil, fmt.Errorf("transaction %q is not pending", tx.ID)
	}
	paid = tx
	paid.Status = Paid

	switch {
	case tx.Recurring:
		n := tx
		n.ID = ""
		n.Date = tx.Date.AddMonths(1)
		n.Status = Pending
		next = &n
	case tx.IsInstallment() && !tx.IsLastInstallment():
		n := tx
		n.ID = ""
		n.Date = tx.Date.AddMonths(1)
		n.Status = Pending
		n.Installments = &Installments{
			Current: tx.Installments.Current + 1,
			Total:   tx.Installments.Total,
		}
		n.Description = installmentLabel(tx.Description, n.Installments.Current, n.Installments.Total)
		next = &n
	}
	return paid, next, nil
}
