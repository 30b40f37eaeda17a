package get_professional_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceRequest_SingleDayBecomesHalfOpenInterval(t *testing.T) {
	req, err := ToServiceRequest(1, "2025-06-02", "", "", "", false)

	require.NoError(t, err)
	require.NotNil(t, req.StartDate)
	require.NotNil(t, req.EndDate)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), *req.StartDate)
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), *req.EndDate)
}

func TestToServiceRequest_ExplicitRange(t *testing.T) {
	req, err := ToServiceRequest(1, "", "2025-06-02", "2025-06-09", "confirmed", true)

	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), *req.StartDate)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), *req.EndDate)
	require.NotNil(t, req.Status)
	assert.Equal(t, "confirmed", *req.Status)
	assert.True(t, req.IncludeCancelled)
}

func TestToServiceRequest_OpenEndedRange(t *testing.T) {
	req, err := ToServiceRequest(1, "", "2025-06-02", "", "", false)

	require.NoError(t, err)
	require.NotNil(t, req.StartDate)
	assert.Nil(t, req.EndDate)
	assert.Nil(t, req.Status)
}

func TestToServiceRequest_BadDateIsError(t *testing.T) {
	_, err := ToServiceRequest(1, "02.06.2025", "", "", "", false)
	require.Error(t, err)

	_, err = ToServiceRequest(1, "", "not-a-date", "", "", false)
	require.Error(t, err)
}
