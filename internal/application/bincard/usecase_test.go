package bincard_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemlem-pharmacy/backend/internal/application/bincard"
	"github.com/lemlem-pharmacy/backend/internal/application/dto"
	"github.com/lemlem-pharmacy/backend/internal/domain"
	"github.com/lemlem-pharmacy/backend/internal/domain/entity"
	"github.com/lemlem-pharmacy/backend/internal/domain/ledger"
)

type fakeBinCardRepo struct {
	cards []entity.BinCard
}

func (r *fakeBinCardRepo) List(context.Context) ([]entity.BinCard, error) {
	return r.cards, nil
}

func (r *fakeBinCardRepo) GetByID(_ context.Context, id string) (*entity.BinCard, error) {
	for _, c := range r.cards {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeBinCardRepo) ListByBatchNo(_ context.Context, batchNo string) ([]entity.BinCard, error) {
	var out []entity.BinCard
	for _, c := range r.cards {
		if c.BatchNo == batchNo {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeBinCardRepo) ListByDateRange(_ context.Context, dr ledger.DateRange) ([]entity.BinCard, error) {
	var out []entity.BinCard
	for _, c := range r.cards {
		if dr.Contains(c.DateReceived) {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeMedicineRepo struct {
	medicines []entity.Medicine
}

func (r *fakeMedicineRepo) List(context.Context) ([]entity.Medicine, error) {
	return r.medicines, nil
}

func (r *fakeMedicineRepo) GetByBatchNo(_ context.Context, batchNo string) (*entity.Medicine, error) {
	for _, m := range r.medicines {
		if m.BatchNo == batchNo {
			return &m, nil
		}
	}
	return nil, nil
}

func newRepo() *fakeBinCardRepo {
	return &fakeBinCardRepo{cards: []entity.BinCard{
		{
			ID:           "c-1",
			BatchNo:      "B-100",
			Invoice:      "INV-7",
			DateReceived: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			Amount:       decimal.NewFromInt(100),
			Status:       entity.EventReceived,
		},
		{
			ID:           "c-2",
			BatchNo:      "B-100",
			Invoice:      "INV-8",
			DateReceived: time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
			Amount:       decimal.NewFromInt(-40),
			Status:       entity.EventSold,
		},
		{
			ID:           "c-3",
			BatchNo:      "B-X9",
			Invoice:      "INV-9",
			DateReceived: time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
			Amount:       decimal.NewFromInt(30),
			Status:       entity.EventReceived,
		},
	}}
}

func newUseCase() *bincard.UseCase {
	medicines := &fakeMedicineRepo{medicines: []entity.Medicine{
		{BatchNo: "B-100", Description: "Amoxicillin 500mg", Category: "Antibiotic"},
	}}
	return bincard.NewUseCase(newRepo(), medicines)
}

func TestGetByID_UnknownEntry(t *testing.T) {
	uc := newUseCase()

	_, err := uc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByBatchNo_UnknownBatchIsNotFound(t *testing.T) {
	uc := newUseCase()

	_, err := uc.ListByBatchNo(context.Background(), "B-404")
	assert.ErrorIs(t, err, domain.ErrNotFound, "an unknown batch is an error, not an empty list")
}

func TestListByBatchNo_EmptyBatchNo(t *testing.T) {
	uc := newUseCase()

	_, err := uc.ListByBatchNo(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestListByBatchNo(t *testing.T) {
	uc := newUseCase()

	cards, err := uc.ListByBatchNo(context.Background(), "B-100")
	require.NoError(t, err)
	assert.Len(t, cards, 2)
}

func TestListByDateRange_ValidatesBeforeStore(t *testing.T) {
	uc := newUseCase()

	_, err := uc.ListByDateRange(context.Background(), dto.DateRangeRequest{
		StartDate: "2026-03-10", EndDate: "2026-03-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestListByDateRange_InclusiveWindow(t *testing.T) {
	uc := newUseCase()

	cards, err := uc.ListByDateRange(context.Background(), dto.DateRangeRequest{
		StartDate: "2026-03-01", EndDate: "2026-03-01",
	})
	require.NoError(t, err)
	assert.Len(t, cards, 1, "an entry on the boundary date is included")
}

func TestSearch_MatchesMedicineDescription(t *testing.T) {
	uc := newUseCase()

	cards, err := uc.Search(context.Background(), "amoxicillin")
	require.NoError(t, err)
	require.Len(t, cards, 2, "a drug name phrase reaches the batch master description")
	assert.Equal(t, "B-100", cards[0].BatchNo)
	assert.Equal(t, "B-100", cards[1].BatchNo)
}

func TestSearch_MatchesInvoice(t *testing.T) {
	uc := newUseCase()

	cards, err := uc.Search(context.Background(), "inv-8")
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "c-2", cards[0].ID)
}

func TestSearch_OrphanEntryMatchesOwnFields(t *testing.T) {
	uc := newUseCase()

	cards, err := uc.Search(context.Background(), "b-x9")
	require.NoError(t, err)
	require.Len(t, cards, 1, "an entry without a batch master still matches on batch number")
	assert.Equal(t, "c-3", cards[0].ID)
}

func TestSearch_EmptyPhraseReturnsEverything(t *testing.T) {
	uc := newUseCase()

	cards, err := uc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, cards, 3)
}

func TestSearch_NoMatchIsEmptyList(t *testing.T) {
	uc := newUseCase()

	cards, err := uc.Search(context.Background(), "ibuprofen")
	require.NoError(t, err)
	assert.Empty(t, cards)
}
