package carteira

import (
	"regexp"

	"github.com/gookit/validate"
)

func init() {
	validate.Config(func(opt *validate.GlobalOption) {
		// The mutation API reports every failing field at once.
		opt.StopOnError = false
		opt.SkipOnEmpty = false
		opt.FieldTag = "json"
	})
}

// collect runs gookit validation on a rule struct and folds the failures into
// the field error map, one message per field.
func collect(rules any, into FieldErrors) {
	v := validate.Struct(rules)
	if v.Validate() {
		return
	}
	for field, msgs := range v.Errors.All() {
		for _, msg := range msgs {
			into.Add(field, msg)
			break
		}
	}
}

var lastDigitsRE = regexp.MustCompile(`^\d{4}$`)

// transactionRules holds the declarative part of request validation.
type transactionRules struct {
	Description string `json:"description" validate:"required|min_len:3" message:"min_len:description must be at least 3 characters"`
	MemberID    string `json:"memberId" validate:"required"`
	CategoryID  string `json:"categoryId" validate:"required"`
}

// validateRequest checks a transaction request in full before any expansion
// or store mutation. All failures are returned together.
func (b *Book) validateRequest(req *TransactionRequest) error {
	errs := FieldErrors{}
	collect(transactionRules{
		Description: req.Description,
		MemberID:    req.MemberID,
		CategoryID:  req.CategoryID,
	}, errs)

	if req.Date.IsZero() {
		req.Date = Today()
	}
	if !req.Amount.IsPositive() {
		errs.Add("amount", "amount must be positive")
	}
	if req.AccountID != "" && req.CreditCardID != "" {
		errs.Add("fundingSource", "select either an account or a card, not both")
	}
	if req.AccountID == "" && req.CreditCardID == "" {
		errs.Add("fundingSource", "a funding source is required")
	}
	if req.Type != Income && req.Type != Expense {
		errs.Add("type", "type must be income or expense")
	}
	if req.Type == Income && req.CreditCardID != "" {
		errs.Add("fundingSource", "income cannot be funded by a credit card")
	}
	if req.InstallmentCount < 0 {
		errs.Add("installments", "installment count cannot be negative")
	}

	if req.MemberID != "" && b.Member(req.MemberID) == nil {
		errs.Add("memberId", "unknown family member")
	}
	if req.AccountID != "" && b.Account(req.AccountID) == nil {
		errs.Add("accountId", "unknown account")
	}
	if req.CreditCardID != "" && b.Card(req.CreditCardID) == nil {
		errs.Add("creditCardId", "unknown card")
	}
	if req.CategoryID != "" {
		if c := b.Category(req.CategoryID); c == nil {
			errs.Add("categoryId", "unknown category")
		} else if c.Type != req.Type && req.Type != "" {
			errs.Add("categoryId", "category type does not match transaction type")
		}
	}
	return errs.OrNil()
}

// validateTransaction checks an edited record before it replaces the stored
// one. Edits pass the same cross-entity checks as creation, so an update can
// never introduce a dangling reference or a category type mismatch.
func (b *Book) validateTransaction(tx Transaction) error {
	errs := FieldErrors{}
	if len(tx.Description) < 3 {
		errs.Add("description", "description must be at least 3 characters")
	}
	if !tx.Amount.IsPositive() {
		errs.Add("amount", "amount must be positive")
	}
	if tx.AccountID != "" && tx.CreditCardID != "" {
		errs.Add("fundingSource", "select either an account or a card, not both")
	}
	if tx.Type != Income && tx.Type != Expense {
		errs.Add("type", "type must be income or expense")
	}
	if tx.Type == Income && tx.CreditCardID != "" {
		errs.Add("fundingSource", "income cannot be funded by a credit card")
	}
	if tx.Status != Paid && tx.Status != Pending && tx.Status != Late {
		errs.Add("status", "unknown status")
	}
	if tx.Installments != nil {
		if tx.Installments.Total < 1 || tx.Installments.Current < 1 || tx.Installments.Current > tx.Installments.Total {
			errs.Add("installments", "installment position must be within 1..total")
		}
	}

	if tx.MemberID != "" && b.Member(tx.MemberID) == nil {
		errs.Add("memberId", "unknown family member")
	}
	if tx.AccountID != "" && b.Account(tx.AccountID) == nil {
		errs.Add("accountId", "unknown account")
	}
	if tx.CreditCardID != "" && b.Card(tx.CreditCardID) == nil {
		errs.Add("creditCardId", "unknown card")
	}
	if tx.CategoryID != "" {
		if c := b.Category(tx.CategoryID); c == nil {
			errs.Add("categoryId", "unknown category")
		} else if c.Type != tx.Type && (tx.Type == Income || tx.Type == Expense) {
			errs.Add("categoryId", "category type does not match transaction type")
		}
	}
	return errs.OrNil()
}

type categoryRules struct {
	Name string `json:"name" validate:"required|min_len:3" message:"min_len:name must be at least 3 characters"`
}

func validateCategory(c Category) error {
	errs := FieldErrors{}
	collect(categoryRules{Name: c.Name}, errs)
	if c.Type != Income && c.Type != Expense {
		errs.Add("type", "type must be income or expense")
	}
	return errs.OrNil()
}

type accountRules struct {
	Name string `json:"name" validate:"required|min_len:3" message:"min_len:name must be at least 3 characters"`
	Bank string `json:"bank" validate:"required"`
}

func validateAccount(a BankAccount) error {
	errs := FieldErrors{}
	collect(accountRules{Name: a.Name, Bank: a.Bank}, errs)
	return errs.OrNil()
}

type cardRules struct {
	Name       string `json:"name" validate:"required|min_len:3" message:"min_len:name must be at least 3 characters"`
	Bank       string `json:"bank" validate:"required"`
	ClosingDay int    `json:"closingDay" validate:"required|min:1|max:31" message:"closing day must be between 1 and 31"`
	DueDay     int    `json:"dueDay" validate:"required|min:1|max:31" message:"due day must be between 1 and 31"`
}

func validateCard(c CreditCard) error {
	errs := FieldErrors{}
	collect(cardRules{Name: c.Name, Bank: c.Bank, ClosingDay: c.ClosingDay, DueDay: c.DueDay}, errs)
	if !lastDigitsRE.MatchString(c.LastDigits) {
		errs.Add("lastDigits", "last digits must be exactly 4 numbers")
	}
	if !c.Limit.IsPositive() {
		errs.Add("limit", "limit must be positive")
	}
	return errs.OrNil()
}

type goalRules struct {
	Name string `json:"name" validate:"required|min_len:3" message:"min_len:name must be at least 3 characters"`
}

func validateGoal(g Goal) error {
	errs := FieldErrors{}
	collect(goalRules{Name: g.Name}, errs)
	if !g.TargetAmount.IsPositive() {
		errs.Add("targetAmount", "target amount must be positive")
	}
	if g.CurrentAmount.IsNegative() {
		errs.Add("currentAmount", "current amount cannot be negative")
	}
	return errs.OrNil()
}
