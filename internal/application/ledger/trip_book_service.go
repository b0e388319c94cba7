package ledger

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/google/uuid"
)

// TripBookService handles the billing side of trips. Writes propagate to the
// linked billing party's and transporter's balances inside one transaction.
type TripBookService struct {
	scope    TransactionScope
	bookRepo ledger.TripBookRepository
}

// NewTripBookService creates a new TripBookService
func NewTripBookService(scope TransactionScope, bookRepo ledger.TripBookRepository) *TripBookService {
	return &TripBookService{scope: scope, bookRepo: bookRepo}
}

// resolveParty verifies the linked billing party and returns its name for the
// denormalized snapshot column. A nil link resolves to an empty snapshot.
func resolveParty(ctx context.Context, repos TransactionalRepositories, orgID uuid.UUID, partyID *uuid.UUID) (string, error) {
	if partyID == nil {
		return "", nil
	}
	party, err := repos.BillingParties().FindByID(ctx, orgID, *partyID)
	if err != nil {
		return "", err
	}
	return party.Name, nil
}

// resolveTransporter mirrors resolveParty for transporter links
func resolveTransporter(ctx context.Context, repos TransactionalRepositories, orgID uuid.UUID, transporterID *uuid.UUID) (string, error) {
	if transporterID == nil {
		return "", nil
	}
	transporter, err := repos.Transporters().FindByID(ctx, orgID, *transporterID)
	if err != nil {
		return "", err
	}
	return transporter.Name, nil
}

// normalizeLink treats the zero UUID as an explicit unlink
func normalizeLink(id *uuid.UUID) *uuid.UUID {
	if id != nil && *id == uuid.Nil {
		return nil
	}
	return id
}

// applyPartyDiff moves party balances for an update: same link gets the
// difference as one increment, a relink backs the old contribution out of the
// old party and adds the new one to the new party.
func applyPartyDiff(ctx context.Context, repos TransactionalRepositories, orgID uuid.UUID, oldID, newID *uuid.UUID, oldC, newC ledger.PartyDelta) error {
	parties := repos.BillingParties()
	sameLink := (oldID == nil && newID == nil) ||
		(oldID != nil && newID != nil && *oldID == *newID)
	if sameLink {
		if newID == nil {
			return nil
		}
		if diff := newC.Sub(oldC); !diff.IsZero() {
			return parties.ApplyDelta(ctx, orgID, *newID, diff)
		}
		return nil
	}
	if oldID != nil && !oldC.IsZero() {
		if err := parties.ApplyDelta(ctx, orgID, *oldID, oldC.Neg()); err != nil {
			return err
		}
	}
	if newID != nil && !newC.IsZero() {
		return parties.ApplyDelta(ctx, orgID, *newID, newC)
	}
	return nil
}

// applyTransporterDiff mirrors applyPartyDiff for transporter balances
func applyTransporterDiff(ctx context.Context, repos TransactionalRepositories, orgID uuid.UUID, oldID, newID *uuid.UUID, oldC, newC ledger.TransporterDelta) error {
	transporters := repos.Transporters()
	sameLink := (oldID == nil && newID == nil) ||
		(oldID != nil && newID != nil && *oldID == *newID)
	if sameLink {
		if newID == nil {
			return nil
		}
		if diff := newC.Sub(oldC); !diff.IsZero() {
			return transporters.ApplyDelta(ctx, orgID, *newID, diff)
		}
		return nil
	}
	if oldID != nil && !oldC.IsZero() {
		if err := transporters.ApplyDelta(ctx, orgID, *oldID, oldC.Neg()); err != nil {
			return err
		}
	}
	if newID != nil && !newC.IsZero() {
		return transporters.ApplyDelta(ctx, orgID, *newID, newC)
	}
	return nil
}

// Create records a trip book entry and bills the linked accounts
func (s *TripBookService) Create(ctx context.Context, orgID uuid.UUID, req CreateTripBookRequest) (*TripBookResponse, error) {
	var response TripBookResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		book, err := ledger.NewTripBook(orgID, req.TripNo, req.Date)
		if err != nil {
			return err
		}
		book.LrNo = req.LrNo
		book.BillingPartyID = normalizeLink(req.BillingPartyID)
		book.FreightMode = req.FreightMode
		book.TripAmount = req.TripAmount
		book.AdvanceAmt = req.AdvanceAmt
		book.ShortageAmt = req.ShortageAmt
		book.DeductionAmt = req.DeductionAmt
		book.HoldingAmt = req.HoldingAmt
		book.TransporterID = normalizeLink(req.TransporterID)
		book.MarketVehNo = req.MarketVehNo
		book.MarketFreight = req.MarketFreight
		book.MarketAdvance = req.MarketAdvance
		book.LWeight = req.LWeight
		book.UWeight = req.UWeight
		book.Remark = req.Remark
		if err := book.Validate(); err != nil {
			return err
		}

		if book.BillingPartyName, err = resolveParty(ctx, repos, orgID, book.BillingPartyID); err != nil {
			return err
		}
		if book.TransporterName, err = resolveTransporter(ctx, repos, orgID, book.TransporterID); err != nil {
			return err
		}
		book.Recompute()

		if err := repos.TripBooks().Save(ctx, book); err != nil {
			return err
		}

		if c := book.PartyContribution(); !c.IsZero() {
			if err := repos.BillingParties().ApplyDelta(ctx, orgID, *book.BillingPartyID, c); err != nil {
				return err
			}
		}
		if c := book.TransporterContribution(); !c.IsZero() {
			if err := repos.Transporters().ApplyDelta(ctx, orgID, *book.TransporterID, c); err != nil {
				return err
			}
		}

		response = ToTripBookResponse(book)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetByID retrieves a trip book entry by ID
func (s *TripBookService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*TripBookResponse, error) {
	book, err := s.bookRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	response := ToTripBookResponse(book)
	return &response, nil
}

// List retrieves trip book entries with filtering and pagination
func (s *TripBookService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter, partyID *uuid.UUID) ([]TripBookResponse, int64, error) {
	domainFilter := filter.toDomainFilter()
	if partyID != nil {
		domainFilter.Filters["billing_party_id"] = *partyID
	}

	books, err := s.bookRepo.FindAll(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.bookRepo.Count(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TripBookResponse, len(books))
	for i := range books {
		responses[i] = ToTripBookResponse(&books[i])
	}
	return responses, total, nil
}

// Update applies a partial update and rebalances the linked accounts
func (s *TripBookService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateTripBookRequest) (*TripBookResponse, error) {
	var response TripBookResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		book, err := repos.TripBooks().FindByID(ctx, orgID, id)
		if err != nil {
			return err
		}

		oldPartyID := book.BillingPartyID
		oldPartyC := book.PartyContribution()
		oldTransporterID := book.TransporterID
		oldTransporterC := book.TransporterContribution()

		if req.Date != nil {
			book.Date = *req.Date
		}
		if req.LrNo != nil {
			book.LrNo = *req.LrNo
		}
		if req.BillingPartyID != nil {
			book.BillingPartyID = normalizeLink(req.BillingPartyID)
		}
		if req.FreightMode != nil {
			book.FreightMode = *req.FreightMode
		}
		if req.TripAmount != nil {
			book.TripAmount = *req.TripAmount
		}
		if req.AdvanceAmt != nil {
			book.AdvanceAmt = *req.AdvanceAmt
		}
		if req.ShortageAmt != nil {
			book.ShortageAmt = *req.ShortageAmt
		}
		if req.DeductionAmt != nil {
			book.DeductionAmt = *req.DeductionAmt
		}
		if req.HoldingAmt != nil {
			book.HoldingAmt = *req.HoldingAmt
		}
		if req.TransporterID != nil {
			book.TransporterID = normalizeLink(req.TransporterID)
		}
		if req.MarketVehNo != nil {
			book.MarketVehNo = *req.MarketVehNo
		}
		if req.MarketFreight != nil {
			book.MarketFreight = *req.MarketFreight
		}
		if req.MarketAdvance != nil {
			book.MarketAdvance = *req.MarketAdvance
		}
		if req.LWeight != nil {
			book.LWeight = *req.LWeight
		}
		if req.UWeight != nil {
			book.UWeight = *req.UWeight
		}
		if req.Remark != nil {
			book.Remark = *req.Remark
		}
		if err := book.Validate(); err != nil {
			return err
		}

		if book.BillingPartyName, err = resolveParty(ctx, repos, orgID, book.BillingPartyID); err != nil {
			return err
		}
		if book.TransporterName, err = resolveTransporter(ctx, repos, orgID, book.TransporterID); err != nil {
			return err
		}
		book.Recompute()

		if err := repos.TripBooks().Save(ctx, book); err != nil {
			return err
		}

		if err := applyPartyDiff(ctx, repos, orgID, oldPartyID, book.BillingPartyID, oldPartyC, book.PartyContribution()); err != nil {
			return err
		}
		if err := applyTransporterDiff(ctx, repos, orgID, oldTransporterID, book.TransporterID, oldTransporterC, book.TransporterContribution()); err != nil {
			return err
		}

		response = ToTripBookResponse(book)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Delete removes a trip book entry and backs its contributions out
func (s *TripBookService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		book, err := repos.TripBooks().FindByID(ctx, orgID, id)
		if err != nil {
			return err
		}

		if err := repos.TripBooks().Delete(ctx, orgID, id); err != nil {
			return err
		}

		if c := book.PartyContribution(); !c.IsZero() {
			if err := repos.BillingParties().ApplyDelta(ctx, orgID, *book.BillingPartyID, c.Neg()); err != nil {
				return err
			}
		}
		if c := book.TransporterContribution(); !c.IsZero() {
			if err := repos.Transporters().ApplyDelta(ctx, orgID, *book.TransporterID, c.Neg()); err != nil {
				return err
			}
		}
		return nil
	})
}
