package ledger

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/google/uuid"
)

// ReturnTripService handles return haul billing. Writes propagate to the
// linked billing party's return-trip bill column.
type ReturnTripService struct {
	scope  TransactionScope
	rtRepo ledger.ReturnTripRepository
}

// NewReturnTripService creates a new ReturnTripService
func NewReturnTripService(scope TransactionScope, rtRepo ledger.ReturnTripRepository) *ReturnTripService {
	return &ReturnTripService{scope: scope, rtRepo: rtRepo}
}

// Create records a return trip and bills the linked party
func (s *ReturnTripService) Create(ctx context.Context, orgID uuid.UUID, req CreateReturnTripRequest) (*ReturnTripResponse, error) {
	var response ReturnTripResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		rt, err := ledger.NewReturnTrip(orgID, req.TripNo, req.Date)
		if err != nil {
			return err
		}
		rt.BillingPartyID = normalizeLink(req.BillingPartyID)
		rt.LrNo = req.LrNo
		rt.RtFreight = req.RtFreight
		rt.AdvanceAmt = req.AdvanceAmt
		rt.ShortageAmt = req.ShortageAmt
		rt.DeductionAmt = req.DeductionAmt
		rt.HoldingAmt = req.HoldingAmt
		rt.Mode = req.Mode
		rt.ToBank = req.ToBank
		rt.Remark = req.Remark
		if err := rt.Validate(); err != nil {
			return err
		}

		if rt.BillingPartyName, err = resolveParty(ctx, repos, orgID, rt.BillingPartyID); err != nil {
			return err
		}
		rt.Recompute()

		if err := repos.ReturnTrips().Save(ctx, rt); err != nil {
			return err
		}

		if c := rt.PartyContribution(); !c.IsZero() {
			if err := repos.BillingParties().ApplyDelta(ctx, orgID, *rt.BillingPartyID, c); err != nil {
				return err
			}
		}

		response = ToReturnTripResponse(rt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetByID retrieves a return trip by ID
func (s *ReturnTripService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*ReturnTripResponse, error) {
	rt, err := s.rtRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	response := ToReturnTripResponse(rt)
	return &response, nil
}

// List retrieves return trips with filtering and pagination
func (s *ReturnTripService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter, partyID *uuid.UUID) ([]ReturnTripResponse, int64, error) {
	domainFilter := filter.toDomainFilter()
	if partyID != nil {
		domainFilter.Filters["billing_party_id"] = *partyID
	}

	rts, err := s.rtRepo.FindAll(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.rtRepo.Count(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ReturnTripResponse, len(rts))
	for i := range rts {
		responses[i] = ToReturnTripResponse(&rts[i])
	}
	return responses, total, nil
}

// Update applies a partial update and rebalances the linked party
func (s *ReturnTripService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateReturnTripRequest) (*ReturnTripResponse, error) {
	var response ReturnTripResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		rt, err := repos.ReturnTrips().FindByID(ctx, orgID, id)
		if err != nil {
			return err
		}

		oldPartyID := rt.BillingPartyID
		oldC := rt.PartyContribution()

		if req.Date != nil {
			rt.Date = *req.Date
		}
		if req.BillingPartyID != nil {
			rt.BillingPartyID = normalizeLink(req.BillingPartyID)
		}
		if req.LrNo != nil {
			rt.LrNo = *req.LrNo
		}
		if req.RtFreight != nil {
			rt.RtFreight = *req.RtFreight
		}
		if req.AdvanceAmt != nil {
			rt.AdvanceAmt = *req.AdvanceAmt
		}
		if req.ShortageAmt != nil {
			rt.ShortageAmt = *req.ShortageAmt
		}
		if req.DeductionAmt != nil {
			rt.DeductionAmt = *req.DeductionAmt
		}
		if req.HoldingAmt != nil {
			rt.HoldingAmt = *req.HoldingAmt
		}
		if req.Mode != nil {
			rt.Mode = *req.Mode
		}
		if req.ToBank != nil {
			rt.ToBank = *req.ToBank
		}
		if req.Remark != nil {
			rt.Remark = *req.Remark
		}
		if err := rt.Validate(); err != nil {
			return err
		}

		if rt.BillingPartyName, err = resolveParty(ctx, repos, orgID, rt.BillingPartyID); err != nil {
			return err
		}
		rt.Recompute()

		if err := repos.ReturnTrips().Save(ctx, rt); err != nil {
			return err
		}

		if err := applyPartyDiff(ctx, repos, orgID, oldPartyID, rt.BillingPartyID, oldC, rt.PartyContribution()); err != nil {
			return err
		}

		response = ToReturnTripResponse(rt)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Delete removes a return trip and backs its contribution out
func (s *ReturnTripService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		rt, err := repos.ReturnTrips().FindByID(ctx, orgID, id)
		if err != nil {
			return err
		}

		if err := repos.ReturnTrips().Delete(ctx, orgID, id); err != nil {
			return err
		}

		if c := rt.PartyContribution(); !c.IsZero() {
			return repos.BillingParties().ApplyDelta(ctx, orgID, *rt.BillingPartyID, c.Neg())
		}
		return nil
	})
}
