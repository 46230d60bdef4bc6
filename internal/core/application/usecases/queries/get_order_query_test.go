package queries_test

import (
	"testing"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/application/usecases/queries"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrderQuery_Validate_ZeroValue(t *testing.T) {
	var query queries.GetOrderQuery // zero value, not constructed via constructor

	err := query.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetOrderQueryResponse_OrderProgress(t *testing.T) {
	testCases := []struct {
		status   string
		expected string
	}{
		{"assigned", "0"},
		{"picked_up", "0.25"},
		{"en_route", "0.5"},
		{"out_for_delivery", "0.75"},
		{"delivered", "1"},
	}

	for _, tc := range testCases {
		t.Run(tc.status, func(t *testing.T) {
			resp := queries.GetOrderQueryResponse{Status: tc.status}
			expected, err := decimal.NewFromString(tc.expected)
			require.NoError(t, err)
			assert.True(t, resp.OrderProgress().Equal(expected),
				"progress for %s should be %s, got %s", tc.status, tc.expected, resp.OrderProgress())
		})
	}
}

func TestGetOrderQueryResponse_LastProgressAt(t *testing.T) {
	statusAt := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	locationAt := statusAt.Add(30 * time.Minute)

	resp := queries.GetOrderQueryResponse{UpdatedAt: statusAt}
	assert.Equal(t, statusAt, resp.LastProgressAt())

	resp.Tracking.LastUpdatedAt = &locationAt
	assert.Equal(t, locationAt, resp.LastProgressAt())

	earlier := statusAt.Add(-time.Hour)
	resp.Tracking.LastUpdatedAt = &earlier
	assert.Equal(t, statusAt, resp.LastProgressAt())
}
