// Package bincard exposes the read-only bin-card ledger queries: list,
// lookup by id or batch, free-text search and date-windowed listing.
package bincard

import (
	"context"

	"github.com/lemlem-pharmacy/backend/internal/application/dto"
	"github.com/lemlem-pharmacy/backend/internal/domain"
	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
	"github.com/lemlem-pharmacy/backend/internal/domain/ledger"
	"github.com/lemlem-pharmacy/backend/internal/domain/repository"
)

// UseCase wraps the ledger read port with DTO shaping and the error
// taxonomy. It never writes: bin cards are appended by the stock-movement
// flow, not here.
type UseCase struct {
	binCards  repository.BinCardRepository
	medicines repository.MedicineRepository
}

// NewUseCase builds the bin-card query usecase.
func NewUseCase(binCards repository.BinCardRepository, medicines repository.MedicineRepository) *UseCase {
	return &UseCase{binCards: binCards, medicines: medicines}
}

// List returns every ledger entry.
func (uc *UseCase) List(ctx context.Context) ([]dto.BinCardDTO, error) {
	cards, err := uc.binCards.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewBinCards(cards), nil
}

// GetByID returns one ledger entry.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.BinCardDTO, error) {
	card, err := uc.binCards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewBinCard(*card)
	return &out, nil
}

// ListByBatchNo returns the entries of one batch. An unknown batch yields
// ErrNotFound, not an empty list.
func (uc *UseCase) ListByBatchNo(ctx context.Context, batchNo string) ([]dto.BinCardDTO, error) {
	if batchNo == "" {
		return nil, domain.ErrInvalidArgument
	}
	cards, err := uc.binCards.ListByBatchNo(ctx, batchNo)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, domain.ErrNotFound
	}
	return dto.NewBinCards(cards), nil
}

// Search matches a free-text phrase against medicine description, batch
// number and invoice, case-insensitively. The empty phrase returns every
// entry. Entries referencing an unknown batch can still match on their own
// fields.
func (uc *UseCase) Search(ctx context.Context, phrase string) ([]dto.BinCardDTO, error) {
	cards, err := uc.binCards.List(ctx)
	if err != nil {
		return nil, err
	}
	medicines, err := uc.medicines.List(ctx)
	if err != nil {
		return nil, err
	}
	byBatch := make(map[string]entity.Medicine, len(medicines))
	for _, m := range medicines {
		byBatch[m.BatchNo] = m
	}
	matched := make([]entity.BinCard, 0)
	for _, c := range cards {
		if ledger.MatchesPhrase(ledger.JoinedRow{Card: c, Batch: byBatch[c.BatchNo]}, phrase) {
			matched = append(matched, c)
		}
	}
	return dto.NewBinCards(matched), nil
}

// ListByDateRange returns the entries inside an inclusive window. The range
// is validated before touching the store.
func (uc *UseCase) ListByDateRange(ctx context.Context, req dto.DateRangeRequest) ([]dto.BinCardDTO, error) {
	r, err := req.Range()
	if err != nil {
		return nil, err
	}
	cards, err := uc.binCards.ListByDateRange(ctx, r)
	if err != nil {
		return nil, err
	}
	return dto.NewBinCards(cards), nil
}
