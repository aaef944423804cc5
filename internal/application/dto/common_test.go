package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemlem-pharmacy/backend/internal/application/dto"
	"github.com/lemlem-pharmacy/backend/internal/domain"
)

func TestDateRangeRequest_EmptyMeansUnrestricted(t *testing.T) {
	r, err := dto.DateRangeRequest{}.Range()
	require.NoError(t, err)
	assert.True(t, r.IsZero())
}

func TestDateRangeRequest_EndIsInclusiveForTimestampedEvents(t *testing.T) {
	r, err := dto.DateRangeRequest{StartDate: "2026-03-01", EndDate: "2026-03-10"}.Range()
	require.NoError(t, err)

	lateOnEndDate := time.Date(2026, time.March, 10, 23, 59, 59, 0, time.UTC)
	assert.True(t, r.Contains(lateOnEndDate), "events late on the end date still fall in the window")

	nextDay := time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)
	assert.False(t, r.Contains(nextDay))
}

func TestDateRangeRequest_HalfOpenPairRejected(t *testing.T) {
	_, err := dto.DateRangeRequest{StartDate: "2026-03-01"}.Range()
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = dto.DateRangeRequest{EndDate: "2026-03-01"}.Range()
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDateRangeRequest_MalformedDate(t *testing.T) {
	_, err := dto.DateRangeRequest{StartDate: "01/03/2026", EndDate: "2026-03-10"}.Range()
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDateRangeRequest_StartAfterEnd(t *testing.T) {
	_, err := dto.DateRangeRequest{StartDate: "2026-03-10", EndDate: "2026-03-01"}.Range()
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}
