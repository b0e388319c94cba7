package ledger

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/google/uuid"
)

// ExpenseService handles standalone cost records. Expenses feed reports only;
// no master balance moves.
type ExpenseService struct {
	expenseRepo ledger.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo ledger.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// Create records an expense
func (s *ExpenseService) Create(ctx context.Context, orgID uuid.UUID, req CreateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := ledger.NewExpense(orgID, req.Date, req.ExpenseType, req.Amount)
	if err != nil {
		return nil, err
	}
	expense.TripNo = req.TripNo
	expense.FromAccount = req.FromAccount
	expense.RefVehNo = req.RefVehNo
	expense.Remark1 = req.Remark1
	expense.Remark2 = req.Remark2
	expense.IsNonTripExp = req.IsNonTripExp

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	response := ToExpenseResponse(expense)
	return &response, nil
}

// List retrieves expenses with filtering and pagination
func (s *ExpenseService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter, expenseType, tripNo string) ([]ExpenseResponse, int64, error) {
	domainFilter := filter.toDomainFilter()
	if expenseType != "" {
		domainFilter.Filters["expense_type"] = expenseType
	}
	if tripNo != "" {
		domainFilter.Filters["trip_no"] = tripNo
	}

	expenses, err := s.expenseRepo.FindAll(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.expenseRepo.Count(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses, total, nil
}

// Update applies a partial update to an expense
func (s *ExpenseService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}

	if req.TripNo != nil {
		expense.TripNo = *req.TripNo
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.ExpenseType != nil {
		expense.ExpenseType = *req.ExpenseType
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.FromAccount != nil {
		expense.FromAccount = *req.FromAccount
	}
	if req.RefVehNo != nil {
		expense.RefVehNo = *req.RefVehNo
	}
	if req.Remark1 != nil {
		expense.Remark1 = *req.Remark1
	}
	if req.Remark2 != nil {
		expense.Remark2 = *req.Remark2
	}
	if req.IsNonTripExp != nil {
		expense.IsNonTripExp = *req.IsNonTripExp
	}
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// Delete removes an expense
func (s *ExpenseService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.expenseRepo.Delete(ctx, orgID, id)
}

// ExpenseCategoryService handles expense category reference data
type ExpenseCategoryService struct {
	categoryRepo ledger.ExpenseCategoryRepository
}

// NewExpenseCategoryService creates a new ExpenseCategoryService
func NewExpenseCategoryService(categoryRepo ledger.ExpenseCategoryRepository) *ExpenseCategoryService {
	return &ExpenseCategoryService{categoryRepo: categoryRepo}
}

// Create creates an expense category, returning the existing one on a
// name collision
func (s *ExpenseCategoryService) Create(ctx context.Context, orgID uuid.UUID, req CreateExpenseCategoryRequest) (*ExpenseCategoryResponse, error) {
	category, _, err := s.categoryRepo.GetOrCreate(ctx, orgID, req.Name, ledger.CategoryMode(req.Mode))
	if err != nil {
		return nil, err
	}
	response := ToExpenseCategoryResponse(category)
	return &response, nil
}

// List retrieves all expense categories
func (s *ExpenseCategoryService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter, mode string) ([]ExpenseCategoryResponse, error) {
	domainFilter := filter.toDomainFilter()
	if mode != "" {
		domainFilter.Filters["mode"] = mode
	}

	categories, err := s.categoryRepo.FindAll(ctx, orgID, domainFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]ExpenseCategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToExpenseCategoryResponse(&categories[i])
	}
	return responses, nil
}

// Delete removes an expense category
func (s *ExpenseCategoryService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.categoryRepo.Delete(ctx, orgID, id)
}

// PaymentModeService handles payment mode reference data
type PaymentModeService struct {
	modeRepo ledger.PaymentModeRepository
}

// NewPaymentModeService creates a new PaymentModeService
func NewPaymentModeService(modeRepo ledger.PaymentModeRepository) *PaymentModeService {
	return &PaymentModeService{modeRepo: modeRepo}
}

// Create creates a payment mode
func (s *PaymentModeService) Create(ctx context.Context, orgID uuid.UUID, req CreatePaymentModeRequest) (*PaymentModeResponse, error) {
	mode, err := ledger.NewPaymentMode(orgID, req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.modeRepo.Save(ctx, mode); err != nil {
		return nil, err
	}
	response := ToPaymentModeResponse(mode)
	return &response, nil
}

// List retrieves all payment modes
func (s *PaymentModeService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter) ([]PaymentModeResponse, error) {
	modes, err := s.modeRepo.FindAll(ctx, orgID, filter.toDomainFilter())
	if err != nil {
		return nil, err
	}

	responses := make([]PaymentModeResponse, len(modes))
	for i := range modes {
		responses[i] = ToPaymentModeResponse(&modes[i])
	}
	return responses, nil
}

// Delete removes a payment mode
func (s *PaymentModeService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.modeRepo.Delete(ctx, orgID, id)
}
