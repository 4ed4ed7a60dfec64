package carteira

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrInUse is returned when deleting a funding source that transactions still
// reference. Deletion never cascades and never leaves dangling references.
var ErrInUse = errors.New("funding source has linked transactions")

// Book holds the canonical collections of the family ledger.
//
// Collections keep insertion order, most-recent-first: additions go to the
// head. All reads and writes are synchronous; a mutation is fully visible to
// the next query. The Book is an explicit handle passed to the filter,
// aggregation and report functions, so the engine is testable without a UI
// host.
type Book struct {
	transactions []Transaction
	categories   []Category
	accounts     []BankAccount
	cards        []CreditCard
	members      []FamilyMember
	goals        []Goal

	policy ExpansionPolicy
}

// NewBook creates an empty book with the default expansion policy.
func NewBook() *Book {
	return &Book{policy: RejectConflict}
}

// SetExpansionPolicy selects how installment/recurrence conflicts are handled.
func (b *Book) SetExpansionPolicy(p ExpansionPolicy) { b.policy = p }

func newID() string { return uuid.NewString() }

// indexOf returns the position of the item with the given id, or -1.
func indexOf[T any](items []T, id func(T) string, target string) int {
	for i, it := range items {
		if id(it) == target {
			return i
		}
	}
	return -1
}

// --- read access ---

// Transactions returns a copy of the transaction collection in store order.
func (b *Book) Transactions() []Transaction { return slices.Clone(b.transactions) }

// Categories returns a copy of the category collection in store order.
func (b *Book) Categories() []Category { return slices.Clone(b.categories) }

// Accounts returns a copy of the bank account collection in store order.
func (b *Book) Accounts() []BankAccount { return slices.Clone(b.accounts) }

// Cards returns a copy of the credit card collection in store order.
func (b *Book) Cards() []CreditCard { return slices.Clone(b.cards) }

// Members returns a copy of the family member collection in store order.
func (b *Book) Members() []FamilyMember { return slices.Clone(b.members) }

// Goals returns a copy of the goal collection in store order.
func (b *Book) Goals() []Goal { return slices.Clone(b.goals) }

// Transaction returns the transaction with this id, or nil if unknown.
func (b *Book) Transaction(id string) *Transaction {
	if i := indexOf(b.transactions, func(t Transaction) string { return t.ID }, id); i >= 0 {
		t := b.transactions[i]
		return &t
	}
	return nil
}

// Category returns the category with this id, or nil if unknown.
func (b *Book) Category(id string) *Category {
	if i := indexOf(b.categories, func(c Category) string { return c.ID }, id); i >= 0 {
		c := b.categories[i]
		return &c
	}
	return nil
}

// CategoryName resolves a category id to its display name.
// Unresolvable categories report "Sem categoria" rather than failing.
func (b *Book) CategoryName(id string) string {
	if c := b.Category(id); c != nil {
		return c.Name
	}
	return "Sem categoria"
}

// Account returns the bank account with this id, or nil if unknown.
func (b *Book) Account(id string) *BankAccount {
	if i := indexOf(b.accounts, func(a BankAccount) string { return a.ID }, id); i >= 0 {
		a := b.accounts[i]
		return &a
	}
	return nil
}

// Card returns the credit card with this id, or nil if unknown.
func (b *Book) Card(id string) *CreditCard {
	if i := indexOf(b.cards, func(c CreditCard) string { return c.ID }, id); i >= 0 {
		c := b.cards[i]
		return &c
	}
	return nil
}

// Member returns the family member with this id, or nil if unknown.
func (b *Book) Member(id string) *FamilyMember {
	if i := indexOf(b.members, func(m FamilyMember) string { return m.ID }, id); i >= 0 {
		m := b.members[i]
		return &m
	}
	return nil
}

// Goal returns the goal with this id, or nil if unknown.
func (b *Book) Goal(id string) *Goal {
	if i := indexOf(b.goals, func(g Goal) string { return g.ID }, id); i >= 0 {
		g := b.goals[i]
		return &g
	}
	return nil
}

// SourceName resolves a funding source id to its display name, trying accounts
// then cards.
func (b *Book) SourceName(id string) string {
	if a := b.Account(id); a != nil {
		return a.Name
	}
	if c := b.Card(id); c != nil {
		return c.Name
	}
	return ""
}

// Filter applies a filter spec to the transaction collection.
func (b *Book) Filter(spec FilterSpec) []Transaction {
	return Filter(b.transactions, spec.Predicates(b)...)
}

// --- transaction mutations ---

// AddTransaction validates the request, expands it into one or more records
// and commits them as a single batch. Either every generated record is
// committed or none are; a partially expanded chain is never visible.
func (b *Book) AddTransaction(req TransactionRequest) ([]Transaction, error) {
	if err := b.validateRequest(&req); err != nil {
		return nil, err
	}
	batch, err := Expand(req, b.policy)
	if err != nil {
		return nil, err
	}
	for i := range batch {
		batch[i].ID = newID()
	}
	// Head insertion per record, matching the per-record add the UI performs.
	for _, tx := range batch {
		b.transactions = append([]Transaction{tx}, b.transactions...)
	}
	b.rebalance()
	logrus.WithFields(logrus.Fields{
		"description": req.Description,
		"records":     len(batch),
		"recurring":   req.Recurring,
		"parcels":     req.InstallmentCount,
	}).Debug("transaction committed")
	return batch, nil
}

// TransactionPatch carries the fields an update may change. Nil fields are
// left untouched.
type TransactionPatch struct {
	MemberID     *string
	Date         *Date
	Description  *string
	Amount       *Money
	Type         *TransactionType
	CategoryID   *string
	AccountID    *string
	CreditCardID *string
	Status       *Status
}

// UpdateTransaction merges the patch into the record with this id.
func (b *Book) UpdateTransaction(id string, patch TransactionPatch) error {
	i := indexOf(b.transactions, func(t Transaction) string { return t.ID }, id)
	if i < 0 {
		return &NotFoundError{Kind: "transaction", ID: id}
	}
	tx := b.transactions[i]
	if patch.MemberID != nil {
		tx.MemberID = *patch.MemberID
	}
	if patch.Date != nil {
		tx.Date = *patch.Date
	}
	if patch.Description != nil {
		tx.Description = *patch.Description
	}
	if patch.Amount != nil {
		tx.Amount = *patch.Amount
	}
	if patch.Type != nil {
		tx.Type = *patch.Type
	}
	if patch.CategoryID != nil {
		tx.CategoryID = *patch.CategoryID
	}
	if patch.AccountID != nil {
		tx.AccountID = *patch.AccountID
	}
	if patch.CreditCardID != nil {
		tx.CreditCardID = *patch.CreditCardID
	}
	if patch.Status != nil {
		tx.Status = *patch.Status
	}
	if err := b.validateTransaction(tx); err != nil {
		return err
	}
	b.transactions[i] = tx
	b.rebalance()
	return nil
}

// DeleteTransaction removes the record with this id.
func (b *Book) DeleteTransaction(id string) error {
	i := indexOf(b.transactions, func(t Transaction) string { return t.ID }, id)
	if i < 0 {
		return &NotFoundError{Kind: "transaction", ID: id}
	}
	b.transactions = slices.Delete(b.transactions, i, i+1)
	b.rebalance()
	return nil
}

// MarkPaid settles a pending record and, when it belongs to a recurring series
// or a non-terminal installment chain, commits its successor in the same
// mutation.
func (b *Book) MarkPaid(id string) (successor *Transaction, err error) {
	i := indexOf(b.transactions, func(t Transaction) string { return t.ID }, id)
	if i < 0 {
		return nil, &NotFoundError{Kind: "transaction", ID: id}
	}
	paid, next, err := Advance(b.transactions[i])
	if err != nil {
		return nil, err
	}
	b.transactions[i] = paid
	if next != nil {
		next.ID = newID()
		b.transactions = append([]Transaction{*next}, b.transactions...)
	}
	b.rebalance()
	logrus.WithFields(logrus.Fields{
		"id":        id,
		"successor": next != nil,
	}).Debug("obligation settled")
	return next, nil
}

// --- category mutations ---

// AddCategory inserts a new category at the head of the collection.
func (b *Book) AddCategory(c Category) (Category, error) {
	if err := validateCategory(c); err != nil {
		return Category{}, err
	}
	c.ID = newID()
	b.categories = append([]Category{c}, b.categories...)
	return c, nil
}

// UpdateCategory merges the non-zero fields of patch into the category.
// Changing the type is rejected while transactions of the old type still
// reference the category; their types must keep matching.
func (b *Book) UpdateCategory(id string, patch Category) error {
	i := indexOf(b.categories, func(c Category) string { return c.ID }, id)
	if i < 0 {
		return &NotFoundError{Kind: "category", ID: id}
	}
	c := b.categories[i]
	if patch.Name != "" {
		c.Name = patch.Name
	}
	if patch.Type != "" {
		c.Type = patch.Type
	}
	if patch.Color != "" {
		c.Color = patch.Color
	}
	if err := validateCategory(c); err != nil {
		return err
	}
	if c.Type != b.categories[i].Type && b.categoryTypeConflicts(id, c.Type) {
		errs := FieldErrors{}
		errs.Add("type", "transactions of the current type still reference this category")
		return errs.OrNil()
	}
	b.categories[i] = c
	return nil
}

// categoryTypeConflicts reports whether any transaction referencing the
// category has a type other than t.
func (b *Book) categoryTypeConflicts(id string, t TransactionType) bool {
	for _, tx := range b.transactions {
		if tx.CategoryID == id && tx.Type != t {
			return true
		}
	}
	return false
}

// DeleteCategory removes a category. Transactions referencing it fall back to
// "Sem categoria" on display.
func (b *Book) DeleteCategory(id string) error {
	i := indexOf(b.categories, func(c Category) string { return c.ID }, id)
	if i < 0 {
		return &NotFoundError{Kind: "category", ID: id}
	}
	b.categories = slices.Delete(b.categories, i, i+1)
	return nil
}

// --- bank account mutations ---

// AddAccount inserts a new bank account. The given balance becomes the opening
// balance all future recomputes start from.
func (b *Book) AddAccount(a BankAccount) (BankAccount, error) {
	if err := validateAccount(a); err != nil {
		return BankAccount{}, err
	}
	a.ID = newID()
	a.opening = a.Balance
	b.accounts = append([]BankAccount{a}, b.accounts...)
	return a, nil
}

// UpdateAccount merges the non-zero fields of patch into the account.
// Patching Balance moves the opening balance; linked transactions keep their
// effect on top of it.
func (b *Book) UpdateAccount(id string, patch BankAccount) error {
	i := indexOf(b.accounts, func(a BankAccount) string { return a.ID }, id)
	if i < 0 {
		return &NotFoundError{Kind: "account", ID: id}
	}
	a := b.accounts[i]
	if patch.Name != "" {
		a.Name = patch.Name
	}
	if patch.Bank != "" {
		a.Bank = patch.Bank
	}
	if patch.AccountNumber != "" {
		a.AccountNumber = patch.AccountNumber
	}
	if patch.Color != "" {
		a.Color = patch.Color
	}
	if !patch.Balance.IsZero() {
		a.opening = patch.Balance
	}
	if err := validateAccount(a); err != nil {
		return err
	}
	b.accounts[i] = a
	b.rebalance()
	return nil
}

// DeleteAccount removes a bank account. It is rejected while transactions
// still reference the account.
func (b *Book) DeleteAccount(id string) error {
	i := indexOf(b.accounts, func(a BankAccount) string { return a.ID }, id)
	if i < 0 {
		return &NotFoundError{Kind: "account", ID: id}
	}
	if b.referencesSource(id) {
		return fmt.Errorf("cannot delete account %q: %w", id, ErrInUse)
	}
	b.accounts = slices.Delete(b.accounts, i, i+1)
	return nil
}

// --- credit card mutations ---

// AddCard inserts a new credit card. CurrentBalance starts at zero and only
// posted charges move it.
func (b *Book) AddCard(c CreditCard) (CreditCard, error) {
	if err := validateCard(c); err != nil {
		return CreditCard{}, err
	}
	c.ID = newID()
	c.CurrentBalance = M(0)
	b.cards = append([]CreditCard{c}, b.cards...)
	return c, nil
}

// UpdateCard merges the non-zero fields of patch into the card.
func (b *Book) UpdateCard(id string, patch CreditCard) error {
	i := indexOf(b.cards, func(c CreditCard) string { return c.ID }, id)
	if i < 0 {
		return &NotFoundError{Kind: "card", ID: id}
	}
	c := b.cards[i]
	if patch.Name != "" {
		c.Name = patch.Name
	}
	if patch.Bank != "" {
		c.Bank = patch.Bank
	}
	if !patch.Limit.IsZero() {
		c.Limit = patch.Limit
	}
	if patch.ClosingDay != 0 {
		c.ClosingDay = patch.ClosingDay
	}
	if patch.DueDay != 0 {
		c.DueDay = patch.DueDay
	}
	if patch.LastDigits != "" {
		c.LastDigits = patch.LastDigits
	}
	if patch.Color != "" {
		c.Color = patch.Color
	}
	if err := validateCard(c); err != nil {
		return err
	}
	b.cards[i] = c
	b.rebalance()
	return nil
}

// DeleteCard removes a credit card. It is rejected while transactions still
// reference the card.
func (b *Book) DeleteCard(id string) error {
	i := indexOf(b.cards, func(c CreditCard) string { return c.ID }, id)
	if i < 0 {
		return &NotFoundError{Kind: "card", ID: id}
	}
	if b.referencesSource(id) {
		return fmt.Errorf("cannot delete card %q: %w", id, ErrInUse)
	}
	b.cards = slices.Delete(b.cards, i, i+1)
	return nil
}

// --- family member mutations ---

// AddFamilyMember is declared for API completeness but members are a fixed
// seed list in the current scope.
func (b *Book) AddFamilyMember(FamilyMember) (FamilyMember, error) {
	return FamilyMember{}, fmt.Errorf("family member creation: %w", ErrNotSupported)
}

// UpdateFamilyMember is declared for API completeness but members are a fixed
// seed list in the current scope.
func (b *Book) UpdateFamilyMember(string, FamilyMember) error {
	return fmt.Errorf("family member update: %w", ErrNotSupported)
}

// DeleteFamilyMember is declared for API completeness but members are a fixed
// seed list in the current scope.
func (b *Book) DeleteFamilyMember(string) error {
	return fmt.Errorf("family member deletion: %w", ErrNotSupported)
}

// --- goal mutations ---

// AddGoal inserts a new savings goal.
func (b *Book) AddGoal(g Goal) (Goal, error) {
	if err := validateGoal(g); err != nil {
		return Goal{}, err
	}
	g.ID = newID()
	b.goals = append([]Goal{g}, b.goals...)
	return g, nil
}

// UpdateGoal merges the non-zero fields of patch into the goal.
func (b *Book) UpdateGoal(id string, patch Goal) error {
	i := indexOf(b.goals, func(g Goal) string { return g.ID }, id)
	if i < 0 {
		return &NotFoundError{Kind: "goal", ID: id}
	}
	g := b.goals[i]
	if patch.Name != "" {
		g.Name = patch.Name
	}
	if !patch.TargetAmount.IsZero() {
		g.TargetAmount = patch.TargetAmount
	}
	if !patch.CurrentAmount.IsZero() {
		g.CurrentAmount = patch.CurrentAmount
	}
	if !patch.Deadline.IsZero() {
		g.Deadline = patch.Deadline
	}
	if patch.Color != "" {
		g.Color = patch.Color
	}
	if err := validateGoal(g); err != nil {
		return err
	}
	b.goals[i] = g
	return nil
}

// DeleteGoal removes a savings goal.
func (b *Book) DeleteGoal(id string) error {
	i := indexOf(b.goals, func(g Goal) string { return g.ID }, id)
	if i < 0 {
		return &NotFoundError{Kind: "goal", ID: id}
	}
	b.goals = slices.Delete(b.goals, i, i+1)
	return nil
}

// --- derived balances ---

// referencesSource reports whether any transaction is funded by this source.
func (b *Book) referencesSource(id string) bool {
	for _, tx := range b.transactions {
		if tx.AccountID == id || tx.CreditCardID == id {
			return true
		}
	}
	return false
}

// rebalance recomputes every funding source balance from the transaction
// collection. Running balances are never adjusted incrementally, so the
// cross-entity invariant survives any edit or deletion.
func (b *Book) rebalance() {
	for i := range b.accounts {
		balance := b.accounts[i].opening
		for _, tx := range b.transactions {
			if tx.AccountID != b.accounts[i].ID || tx.Status != Paid {
				continue
			}
			switch tx.Type {
			case Income:
				balance = balance.Add(tx.Amount)
			case Expense:
				balance = balance.Sub(tx.Amount)
			}
		}
		b.accounts[i].Balance = balance
	}
	for i := range b.cards {
		balance := M(0)
		for _, tx := range b.transactions {
			if tx.CreditCardID == b.cards[i].ID && tx.Type == Expense && tx.Status == Paid {
				balance = balance.Add(tx.Amount)
			}
		}
		b.cards[i].CurrentBalance = balance
	}
}
