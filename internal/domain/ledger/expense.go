package ledger

import (
	"strings"
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a standalone cost record. It contributes to no master; reports
// aggregate it directly.
type Expense struct {
	shared.OrgEntity
	TripNo       string          `gorm:"type:varchar(50);index"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	ExpenseType  string          `gorm:"type:varchar(100);not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	FromAccount  string          `gorm:"type:varchar(100)"`
	RefVehNo     string          `gorm:"type:varchar(50);index"`
	Remark1      string          `gorm:"type:text"`
	Remark2      string          `gorm:"type:text"`
	IsNonTripExp bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates an expense record.
func NewExpense(orgID uuid.UUID, date time.Time, expenseType string, amount decimal.Decimal) (*Expense, error) {
	e := &Expense{
		OrgEntity:   shared.NewOrgEntity(orgID),
		Date:        date,
		ExpenseType: strings.TrimSpace(expenseType),
		Amount:      amount,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the raw fields.
func (e *Expense) Validate() error {
	if e.Date.IsZero() {
		return shared.NewValidationError("date", "is required")
	}
	if strings.TrimSpace(e.ExpenseType) == "" {
		return shared.NewValidationError("expense_type", "cannot be empty")
	}
	if !e.Amount.IsPositive() {
		return shared.NewValidationError("amount", "must be positive")
	}
	return nil
}

// CategoryMode groups expense categories by how they are used.
type CategoryMode string

const (
	CategoryModeGeneral  CategoryMode = "General"
	CategoryModeExpenses CategoryMode = "Expenses"
	CategoryModeFuel     CategoryMode = "Fuel"
)

// ExpenseCategory is a named expense bucket, unique by name within the
// organization. Bulk imports upsert these.
type ExpenseCategory struct {
	shared.OrgEntity
	Name string       `gorm:"type:varchar(100);not null;index"`
	Mode CategoryMode `gorm:"type:varchar(20);not null;default:'General'"`
}

// TableName returns the table name for GORM
func (ExpenseCategory) TableName() string {
	return "expense_categories"
}

// NewExpenseCategory creates an expense category.
func NewExpenseCategory(orgID uuid.UUID, name string, mode CategoryMode) (*ExpenseCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("name", "cannot be empty")
	}
	if mode == "" {
		mode = CategoryModeGeneral
	}
	switch mode {
	case CategoryModeGeneral, CategoryModeExpenses, CategoryModeFuel:
	default:
		return nil, shared.NewValidationError("mode", "must be General, Expenses or Fuel")
	}
	return &ExpenseCategory{
		OrgEntity: shared.NewOrgEntity(orgID),
		Name:      name,
		Mode:      mode,
	}, nil
}

// PaymentMode is a named settlement channel (cash, bank, UPI).
type PaymentMode struct {
	shared.OrgEntity
	Name string `gorm:"type:varchar(100);not null;index"`
}

// TableName returns the table name for GORM
func (PaymentMode) TableName() string {
	return "payment_modes"
}

// NewPaymentMode creates a payment mode.
func NewPaymentMode(orgID uuid.UUID, name string) (*PaymentMode, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("name", "cannot be empty")
	}
	return &PaymentMode{
		OrgEntity: shared.NewOrgEntity(orgID),
		Name:      name,
	}, nil
}
