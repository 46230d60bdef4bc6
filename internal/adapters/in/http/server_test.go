package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/application/usecases/queries"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/order"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordedMapping(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, mapDomainError(ctx, err))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestMapDomainError_StatusCodes(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"out of range coordinate", errs.NewValueIsOutOfRangeError("latitude", 95.0, -90.0, 90.0), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("address"), http.StatusBadRequest},
		{"unauthorized actor", order.NewUnauthorizedActorError(kernel.NewUUID(), kernel.NewUUID()), http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("order id", "x"), http.StatusNotFound},
		{"invalid transition", order.NewInvalidTransitionError(order.Assigned, order.OutForDelivery), http.StatusConflict},
		{"terminal state", order.NewTerminalStateError(order.Delivered), http.StatusConflict},
		{"already assigned", order.NewPartnerAlreadyAssignedError(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()), http.StatusConflict},
		{"version conflict", errs.NewObjectModifiedError("order id", "x"), http.StatusConflict},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := recordedMapping(t, tc.err)
			assert.Equal(t, tc.expected, code)
			assert.Equal(t, tc.expected, body.Code)
			if tc.expected == http.StatusInternalServerError {
				assert.Equal(t, "Internal server error", body.Message)
			} else {
				assert.NotEmpty(t, body.Message)
			}
		})
	}
}

func TestToOrderResponse_MapsReadModel(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	partnerID := kernel.NewUUID()
	lastUpdate := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	lat, lng := 12.9352, 77.6245

	resp := toOrderResponse(queries.GetOrderQueryResponse{
		ID:         orderID,
		CustomerID: customerID,
		PartnerID:  &partnerID,
		Items: []queries.OrderItemResponse{
			{Name: "Paracetamol 500mg", Quantity: 2, UnitPrice: decimal.RequireFromString("35.00")},
		},
		Total:  decimal.RequireFromString("70.00"),
		Status: "picked_up",
		History: []queries.StatusChangeResponse{
			{Status: "assigned", At: lastUpdate.Add(-time.Hour)},
			{Status: "picked_up", At: lastUpdate},
		},
		Tracking: queries.TrackingResponse{Lat: &lat, Lng: &lng, LastUpdatedAt: &lastUpdate},
	})

	assert.Equal(t, orderID.String(), resp.ID)
	assert.Equal(t, customerID.String(), resp.CustomerID)
	require.NotNil(t, resp.PartnerID)
	assert.Equal(t, partnerID.String(), *resp.PartnerID)
	assert.Nil(t, resp.PharmacyID)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "35", resp.Items[0].UnitPrice)
	assert.Equal(t, "70", resp.Total)
	assert.Equal(t, "picked_up", resp.Status)
	require.Len(t, resp.History, 2)
	require.NotNil(t, resp.Tracking.Lat)
	assert.InDelta(t, lat, *resp.Tracking.Lat, 1e-9)
}
