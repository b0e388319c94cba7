package ledger

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/ledger"
	"github.com/google/uuid"
)

// StockEntryService handles stock movements. Writes propagate to the linked
// stock item's quantity columns.
type StockEntryService struct {
	scope     TransactionScope
	entryRepo ledger.StockEntryRepository
}

// NewStockEntryService creates a new StockEntryService
func NewStockEntryService(scope TransactionScope, entryRepo ledger.StockEntryRepository) *StockEntryService {
	return &StockEntryService{scope: scope, entryRepo: entryRepo}
}

func resolveStockItem(ctx context.Context, repos TransactionalRepositories, orgID uuid.UUID, itemID *uuid.UUID) (string, error) {
	if itemID == nil {
		return "", nil
	}
	item, err := repos.StockItems().FindByID(ctx, orgID, *itemID)
	if err != nil {
		return "", err
	}
	return item.Name, nil
}

// applyStockDiff moves stock quantities for an update, handling relinks the
// same way party diffs are handled.
func applyStockDiff(ctx context.Context, repos TransactionalRepositories, orgID uuid.UUID, oldID, newID *uuid.UUID, oldC, newC ledger.StockDelta) error {
	items := repos.StockItems()
	sameLink := (oldID == nil && newID == nil) ||
		(oldID != nil && newID != nil && *oldID == *newID)
	if sameLink {
		if newID == nil {
			return nil
		}
		if diff := newC.Sub(oldC); !diff.IsZero() {
			return items.ApplyDelta(ctx, orgID, *newID, diff)
		}
		return nil
	}
	if oldID != nil && !oldC.IsZero() {
		if err := items.ApplyDelta(ctx, orgID, *oldID, oldC.Neg()); err != nil {
			return err
		}
	}
	if newID != nil && !newC.IsZero() {
		return items.ApplyDelta(ctx, orgID, *newID, newC)
	}
	return nil
}

// Create records a stock movement and adjusts the item's quantities
func (s *StockEntryService) Create(ctx context.Context, orgID uuid.UUID, req CreateStockEntryRequest) (*StockEntryResponse, error) {
	var response StockEntryResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		entry, err := ledger.NewStockEntry(orgID, req.Date, ledger.StockEntryType(req.EntryType), req.Quantity)
		if err != nil {
			return err
		}
		entry.StockItemID = normalizeLink(req.StockItemID)
		entry.Remark = req.Remark

		if entry.StockItemName, err = resolveStockItem(ctx, repos, orgID, entry.StockItemID); err != nil {
			return err
		}

		if err := repos.StockEntries().Save(ctx, entry); err != nil {
			return err
		}

		if c := entry.StockContribution(); !c.IsZero() {
			if err := repos.StockItems().ApplyDelta(ctx, orgID, *entry.StockItemID, c); err != nil {
				return err
			}
		}

		response = ToStockEntryResponse(entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// GetByID retrieves a stock entry by ID
func (s *StockEntryService) GetByID(ctx context.Context, orgID, id uuid.UUID) (*StockEntryResponse, error) {
	entry, err := s.entryRepo.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	response := ToStockEntryResponse(entry)
	return &response, nil
}

// List retrieves stock entries with filtering and pagination
func (s *StockEntryService) List(ctx context.Context, orgID uuid.UUID, filter ListFilter, itemID *uuid.UUID) ([]StockEntryResponse, int64, error) {
	domainFilter := filter.toDomainFilter()
	if itemID != nil {
		domainFilter.Filters["stock_item_id"] = *itemID
	}

	entries, err := s.entryRepo.FindAll(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.entryRepo.Count(ctx, orgID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]StockEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToStockEntryResponse(&entries[i])
	}
	return responses, total, nil
}

// Update applies a partial update and rebalances the linked stock item.
// Flipping the entry type or quantity moves the difference; relinking
// transfers the whole movement.
func (s *StockEntryService) Update(ctx context.Context, orgID, id uuid.UUID, req UpdateStockEntryRequest) (*StockEntryResponse, error) {
	var response StockEntryResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		entry, err := repos.StockEntries().FindByID(ctx, orgID, id)
		if err != nil {
			return err
		}

		oldItemID := entry.StockItemID
		oldC := entry.StockContribution()

		if req.Date != nil {
			entry.Date = *req.Date
		}
		if req.StockItemID != nil {
			entry.StockItemID = normalizeLink(req.StockItemID)
		}
		if req.EntryType != nil {
			entry.EntryType = ledger.StockEntryType(*req.EntryType)
		}
		if req.Quantity != nil {
			entry.Quantity = *req.Quantity
		}
		if req.Remark != nil {
			entry.Remark = *req.Remark
		}
		if err := entry.Validate(); err != nil {
			return err
		}

		if entry.StockItemName, err = resolveStockItem(ctx, repos, orgID, entry.StockItemID); err != nil {
			return err
		}

		if err := repos.StockEntries().Save(ctx, entry); err != nil {
			return err
		}

		if err := applyStockDiff(ctx, repos, orgID, oldItemID, entry.StockItemID, oldC, entry.StockContribution()); err != nil {
			return err
		}

		response = ToStockEntryResponse(entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// Delete removes a stock entry and backs its movement out
func (s *StockEntryService) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		entry, err := repos.StockEntries().FindByID(ctx, orgID, id)
		if err != nil {
			return err
		}

		if err := repos.StockEntries().Delete(ctx, orgID, id); err != nil {
			return err
		}

		if c := entry.StockContribution(); !c.IsZero() {
			return repos.StockItems().ApplyDelta(ctx, orgID, *entry.StockItemID, c.Neg())
		}
		return nil
	})
}
