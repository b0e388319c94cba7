package ledger

import (
	"context"
	"strings"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/google/uuid"
)

// PartyPaymentService handles receipts from billing parties
type PartyPaymentService struct {
	scope       TransactionScope
	paymentRepo ledger.PartyPaymentRepository
}

// NewPartyPaymentService creates a new PartyPaymentService
func NewPartyPaymentService(scope TransactionScope, paymentRepo ledger.PartyPaymentRepository) *PartyPaymentService {
	return &PartyPaymentService{scope: scope, paymentRepo: paymentRepo}
}

// Create records a receipt and credits the linked party's receive column
func (s *PartyPaymentService) Create(ctx context.Context, orgID uuid.UUID, req CreatePartyPaymentRequest) (*PartyPaymentResponse, error) {
	var response PartyPaymentResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		payment, err := ledger.NewPartyPayment(orgID, req.Date, req.ReceiveAmt)
		if err != nil {
			return err
		}
		payment.TripNo = req.TripNo
		payment.BillingPartyID = normalizeLink(req.BillingPartyID)
		payment.Mode = req.Mode
		payment.ShortageAmt = req.ShortageAmt
		payment.DeductionAmt = req.DeductionAmt
		payment.LrNo = req.LrNo
		payment.ToBank = req.ToBank
		payment.Remark = req.Remark
		if err := payment.Validate(); err != nil {
			return err
		}

		if payment.BillingPartyID != nil {
			party, err := repos.BillingParties().FindByID(ctx, orgID, *payment.BillingPartyID)
			if err != nil {
				return err
			}
			payment.BillingPartyName = party.Name
			// running balance after this receipt
			payment.RunBal = party.BalanceAmt.Sub(payment.ReceiveAmt)
		}

		if err := repos.PartyPayments().Save(ctx, payment); err != nil {
			return err
		}

		if c := payment.PartyContribution(); !c.IsZero() {
			if err := repos.BillingParties().ApplyDelta(ctx, orgID, *payment.BillingPartyID, c); err != nil {
				return err
			}
		}

		response = ToPartyPaymentResponse(payment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetByID retrieves a party payment by ID
func (s *PartyPaymentService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*PartyPaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	response := ToPartyPaymentResponse(payment)
	return &response, nil
}

// List retrieves party payments with filtering and pagination
func (s *PartyPaymentService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter, partyID *uuid.UUID) ([]PartyPaymentResponse, int64, error) {
	domainFilter := filter.toDomainFilter()
	if partyID != nil {
		domainFilter.Filters["billing_party_id"] = *partyID
	}

	payments, err := s.paymentRepo.FindAll(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.paymentRepo.Count(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PartyPaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPartyPaymentResponse(&payments[i])
	}
	return responses, total, nil
}

// Update applies a partial update and rebalances the linked party
func (s *PartyPaymentService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdatePartyPaymentRequest) (*PartyPaymentResponse, error) {
	var response PartyPaymentResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		payment, err := repos.PartyPayments().FindByID(ctx, orgID, id)
		if err != nil {
			return err
		}

		oldPartyID := payment.BillingPartyID
		oldC := payment.PartyContribution()

		if req.TripNo != nil {
			payment.TripNo = *req.TripNo
		}
		if req.Date != nil {
			payment.Date = *req.Date
		}
		if req.BillingPartyID != nil {
			payment.BillingPartyID = normalizeLink(req.BillingPartyID)
		}
		if req.Mode != nil {
			payment.Mode = *req.Mode
		}
		if req.ReceiveAmt != nil {
			payment.ReceiveAmt = *req.ReceiveAmt
		}
		if req.ShortageAmt != nil {
			payment.ShortageAmt = *req.ShortageAmt
		}
		if req.DeductionAmt != nil {
			payment.DeductionAmt = *req.DeductionAmt
		}
		if req.LrNo != nil {
			payment.LrNo = *req.LrNo
		}
		if req.ToBank != nil {
			payment.ToBank = *req.ToBank
		}
		if req.Remark != nil {
			payment.Remark = *req.Remark
		}
		if err := payment.Validate(); err != nil {
			return err
		}

		if payment.BillingPartyName, err = resolveParty(ctx, repos, orgID, payment.BillingPartyID); err != nil {
			return err
		}

		if err := repos.PartyPayments().Save(ctx, payment); err != nil {
			return err
		}

		if err := applyPartyDiff(ctx, repos, orgID, oldPartyID, payment.BillingPartyID, oldC, payment.PartyContribution()); err != nil {
			return err
		}

		response = ToPartyPaymentResponse(payment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Delete removes a party payment and backs its contribution out
func (s *PartyPaymentService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		payment, err := repos.PartyPayments().FindByID(ctx, orgID, id)
		if err != nil {
			return err
		}

		if err := repos.PartyPayments().Delete(ctx, orgID, id); err != nil {
			return err
		}

		if c := payment.PartyContribution(); !c.IsZero() {
			return repos.BillingParties().ApplyDelta(ctx, orgID, *payment.BillingPartyID, c.Neg())
		}
		return nil
	})
}

// DriverAdvanceService handles cash movements on driver accounts. Drivers are
// addressed by name; an advance for an unregistered driver is stored but moves
// no balance.
type DriverAdvanceService struct {
	scope       TransactionScope
	advanceRepo ledger.DriverAdvanceRepository
}

// NewDriverAdvanceService creates a new DriverAdvanceService
func NewDriverAdvanceService(scope TransactionScope, advanceRepo ledger.DriverAdvanceRepository) *DriverAdvanceService {
	return &DriverAdvanceService{scope: scope, advanceRepo: advanceRepo}
}

// Create records a driver advance and moves the driver balance
func (s *DriverAdvanceService) Create(ctx context.Context, orgID uuid.UUID, req CreateDriverAdvanceRequest) (*DriverAdvanceResponse, error) {
	var response DriverAdvanceResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		advance, err := ledger.NewDriverAdvance(orgID, req.Date, req.DriverName)
		if err != nil {
			return err
		}
		advance.TripNo = req.TripNo
		advance.Mode = req.Mode
		advance.FromAccount = req.FromAccount
		advance.Debit = req.Debit
		advance.Credit = req.Credit
		advance.FuelLtr = req.FuelLtr
		advance.Remark = req.Remark
		if err := advance.Validate(); err != nil {
			return err
		}

		if driver, err := repos.Drivers().FindByName(ctx, orgID, advance.DriverName); err == nil {
			advance.RunBal = driver.CloseBal.Add(advance.Debit).Sub(advance.Credit)
		}

		if err := repos.DriverAdvances().Save(ctx, advance); err != nil {
			return err
		}

		if c := advance.DriverContribution(); !c.IsZero() {
			if err := repos.Drivers().ApplyDeltaByName(ctx, orgID, advance.DriverName, c); err != nil {
				return err
			}
		}

		response = ToDriverAdvanceResponse(advance)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetByID retrieves a driver advance by ID
func (s *DriverAdvanceService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*DriverAdvanceResponse, error) {
	advance, err := s.advanceRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	response := ToDriverAdvanceResponse(advance)
	return &response, nil
}

// List retrieves driver advances with filtering and pagination
func (s *DriverAdvanceService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter, driverName string) ([]DriverAdvanceResponse, int64, error) {
	domainFilter := filter.toDomainFilter()
	if driverName != "" {
		domainFilter.Filters["driver_name"] = driverName
	}

	advances, err := s.advanceRepo.FindAll(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.advanceRepo.Count(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]DriverAdvanceResponse, len(advances))
	for i := range advances {
		responses[i] = ToDriverAdvanceResponse(&advances[i])
	}
	return responses, total, nil
}

// Update applies a partial update and moves the driver balances by the
// difference. Changing the driver name transfers the whole movement.
func (s *DriverAdvanceService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateDriverAdvanceRequest) (*DriverAdvanceResponse, error) {
	var response DriverAdvanceResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		advance, err := repos.DriverAdvances().FindByID(ctx, orgID, id)
		if err != nil {
			return err
		}

		oldName := advance.DriverName
		oldC := advance.DriverContribution()

		if req.TripNo != nil {
			advance.TripNo = *req.TripNo
		}
		if req.Date != nil {
			advance.Date = *req.Date
		}
		if req.DriverName != nil {
			advance.DriverName = strings.TrimSpace(*req.DriverName)
		}
		if req.Mode != nil {
			advance.Mode = *req.Mode
		}
		if req.FromAccount != nil {
			advance.FromAccount = *req.FromAccount
		}
		if req.Debit != nil {
			advance.Debit = *req.Debit
		}
		if req.Credit != nil {
			advance.Credit = *req.Credit
		}
		if req.FuelLtr != nil {
			advance.FuelLtr = *req.FuelLtr
		}
		if req.Remark != nil {
			advance.Remark = *req.Remark
		}
		if err := advance.Validate(); err != nil {
			return err
		}

		if err := repos.DriverAdvances().Save(ctx, advance); err != nil {
			return err
		}

		drivers := repos.Drivers()
		newC := advance.DriverContribution()
		if advance.DriverName != oldName {
			if !oldC.IsZero() {
				if err := drivers.ApplyDeltaByName(ctx, orgID, oldName, oldC.Neg()); err != nil {
					return err
				}
			}
			if !newC.IsZero() {
				if err := drivers.ApplyDeltaByName(ctx, orgID, advance.DriverName, newC); err != nil {
					return err
				}
			}
		} else if diff := newC.Sub(oldC); !diff.IsZero() {
			if err := drivers.ApplyDeltaByName(ctx, orgID, advance.DriverName, diff); err != nil {
				return err
			}
		}

		response = ToDriverAdvanceResponse(advance)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Delete removes a driver advance and backs its movement out
func (s *DriverAdvanceService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		advance, err := repos.DriverAdvances().FindByID(ctx, orgID, id)
		if err != nil {
			return err
		}

		if err := repos.DriverAdvances().Delete(ctx, orgID, id); err != nil {
			return err
		}

		if c := advance.DriverContribution(); !c.IsZero() {
			return repos.Drivers().ApplyDeltaByName(ctx, orgID, advance.DriverName, c.Neg())
		}
		return nil
	})
}

// MarketVehPaymentService handles payouts to transporters
type MarketVehPaymentService struct {
	scope       TransactionScope
	paymentRepo ledger.MarketVehPaymentRepository
}

// NewMarketVehPaymentService creates a new MarketVehPaymentService
func NewMarketVehPaymentService(scope TransactionScope, paymentRepo ledger.MarketVehPaymentRepository) *MarketVehPaymentService {
	return &MarketVehPaymentService{scope: scope, paymentRepo: paymentRepo}
}

// Create records a payout and debits the linked transporter's paid column
func (s *MarketVehPaymentService) Create(ctx context.Context, orgID uuid.UUID, req CreateMarketVehPaymentRequest) (*MarketVehPaymentResponse, error) {
	var response MarketVehPaymentResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		payment, err := ledger.NewMarketVehPayment(orgID, req.Date, req.PaidAmt)
		if err != nil {
			return err
		}
		payment.TripNo = req.TripNo
		payment.TransporterID = normalizeLink(req.TransporterID)
		payment.MarketVehNo = req.MarketVehNo
		payment.Mode = req.Mode
		payment.LrNo = req.LrNo
		payment.FromBank = req.FromBank
		payment.Remark = req.Remark
		if err := payment.Validate(); err != nil {
			return err
		}

		if payment.TransporterID != nil {
			transporter, err := repos.Transporters().FindByID(ctx, orgID, *payment.TransporterID)
			if err != nil {
				return err
			}
			payment.TransporterName = transporter.Name
			payment.RunBal = transporter.CloseBal.Sub(payment.PaidAmt)
		}

		if err := repos.MarketVehPayments().Save(ctx, payment); err != nil {
			return err
		}

		if c := payment.TransporterContribution(); !c.IsZero() {
			if err := repos.Transporters().ApplyDelta(ctx, orgID, *payment.TransporterID, c); err != nil {
				return err
			}
		}

		response = ToMarketVehPaymentResponse(payment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetByID retrieves a market vehicle payment by ID
func (s *MarketVehPaymentService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*MarketVehPaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	response := ToMarketVehPaymentResponse(payment)
	return &response, nil
}

// List retrieves market vehicle payments with filtering and pagination
func (s *MarketVehPaymentService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter, transporterID *uuid.UUID) ([]MarketVehPaymentResponse, int64, error) {
	domainFilter := filter.toDomainFilter()
	if transporterID != nil {
		domainFilter.Filters["transporter_id"] = *transporterID
	}

	payments, err := s.paymentRepo.FindAll(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.paymentRepo.Count(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]MarketVehPaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToMarketVehPaymentResponse(&payments[i])
	}
	return responses, total, nil
}

// Update applies a partial update and rebalances the linked transporter
func (s *MarketVehPaymentService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateMarketVehPaymentRequest) (*MarketVehPaymentResponse, error) {
	var response MarketVehPaymentResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		payment, err := repos.MarketVehPayments().FindByID(ctx, orgID, id)
		if err != nil {
			return err
		}

		oldTransporterID := payment.TransporterID
		oldC := payment.TransporterContribution()

		if req.TripNo != nil {
			payment.TripNo = *req.TripNo
		}
		if req.Date != nil {
			payment.Date = *req.Date
		}
		if req.TransporterID != nil {
			payment.TransporterID = normalizeLink(req.TransporterID)
		}
		if req.MarketVehNo != nil {
			payment.MarketVehNo = *req.MarketVehNo
		}
		if req.Mode != nil {
			payment.Mode = *req.Mode
		}
		if req.PaidAmt != nil {
			payment.PaidAmt = *req.PaidAmt
		}
		if req.LrNo != nil {
			payment.LrNo = *req.LrNo
		}
		if req.FromBank != nil {
			payment.FromBank = *req.FromBank
		}
		if req.Remark != nil {
			payment.Remark = *req.Remark
		}
		if err := payment.Validate(); err != nil {
			return err
		}

		if payment.TransporterName, err = resolveTransporter(ctx, repos, orgID, payment.TransporterID); err != nil {
			return err
		}

		if err := repos.MarketVehPayments().Save(ctx, payment); err != nil {
			return err
		}

		if err := applyTransporterDiff(ctx, repos, orgID, oldTransporterID, payment.TransporterID, oldC, payment.TransporterContribution()); err != nil {
			return err
		}

		response = ToMarketVehPaymentResponse(payment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Delete removes a market vehicle payment and backs its contribution out
func (s *MarketVehPaymentService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		payment, err := repos.MarketVehPayments().FindByID(ctx, orgID, id)
		if err != nil {
			return err
		}

		if err := repos.MarketVehPayments().Delete(ctx, orgID, id); err != nil {
			return err
		}

		if c := payment.TransporterContribution(); !c.IsZero() {
			return repos.Transporters().ApplyDelta(ctx, orgID, *payment.TransporterID, c.Neg())
		}
		return nil
	})
}
