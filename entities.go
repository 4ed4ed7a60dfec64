package carteira

// Category classifies transactions. Its type must match the type of every
// transaction referencing it.
type Category struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Type  TransactionType `json:"type"`
	Color string          `json:"color"`
}

// BankAccount is a funding source with a running balance.
//
// Balance is derived: opening balance plus the posted effect of every linked
// transaction. It is recomputed after each mutation, never edited in place.
type BankAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Bank          string `json:"bank"`
	Balance       Money  `json:"balance"`
	AccountNumber string `json:"accountNumber"`
	Color         string `json:"color"`

	opening Money // balance at creation time, base of every recompute
}

// CreditCard is a funding source with a credit ceiling.
//
// CurrentBalance is the sum of posted (paid) charges; exceeding Limit is a
// reportable condition, not a blocked one.
type CreditCard struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Bank           string `json:"bank"`
	Limit          Money  `json:"limit"`
	CurrentBalance Money  `json:"currentBalance"`
	ClosingDay     int    `json:"closingDay"`
	DueDay         int    `json:"dueDay"`
	LastDigits     string `json:"lastDigits"`
	Color          string `json:"color"`
}

// Utilization returns the share of the limit currently in use.
func (c CreditCard) Utilization() Percent {
	return c.CurrentBalance.Share(c.Limit)
}

// OverLimit reports whether posted charges exceed the card's limit.
func (c CreditCard) OverLimit() bool {
	return c.CurrentBalance.GreaterThan(c.Limit)
}

// FamilyMember is the ownership tag for transactions. The set is fixed per
// session: members arrive through seed import only.
type FamilyMember struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Color  string `json:"color"`
}

// Goal is a savings target, independent of the transaction ledger.
type Goal struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TargetAmount  Money  `json:"targetAmount"`
	CurrentAmount Money  `json:"currentAmount"`
	Deadline      Date   `json:"deadline"`
	Color         string `json:"color"`
}

// Progress returns how much of the target has been reached.
func (g Goal) Progress() Percent {
	return g.CurrentAmount.Share(g.TargetAmount)
}
