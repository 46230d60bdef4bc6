package order_test

import (
	"testing"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/order"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, quantity int, price string) order.Item {
	t.Helper()
	unitPrice, err := kernel.NewMoneyFromString(price)
	require.NoError(t, err)
	item, err := order.NewItem(name, quantity, unitPrice)
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T, now time.Time) *order.Order {
	t.Helper()
	destination, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	items := []order.Item{
		mustItem(t, "Paracetamol 500mg", 2, "35.00"),
		mustItem(t, "Cough Syrup 100ml", 1, "110.50"),
	}

	pharmacyID := kernel.NewUUID()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		&pharmacyID,
		"MedPlus Koramangala",
		items,
		"221B Baker Street, Bengaluru",
		destination,
		"cod",
		now,
	)
	require.NoError(t, err)
	return o
}

// assignedOrder returns an order with a partner already assigned, plus the partner id.
func assignedOrder(t *testing.T, now time.Time) (*order.Order, kernel.UUID) {
	t.Helper()
	o := newTestOrder(t, now)
	partnerID := kernel.NewUUID()
	require.NoError(t, o.AssignPartner(partnerID, "Ravi Kumar", "+91-98450-12345", now))
	return o, partnerID
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("seeds assigned state with initial history entry", func(t *testing.T) {
		o := newTestOrder(t, now)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Assigned, o.Status())
		assert.False(t, o.PickedUp())
		assert.False(t, o.Delivered())
		assert.Nil(t, o.PartnerID())
		assert.Equal(t, order.PaymentUnpaid, o.PaymentStatus())
		assert.Equal(t, int64(1), o.Version())

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.Assigned, history[0].Status)
		assert.Equal(t, now, history[0].At)
	})

	t.Run("derives total from item line totals", func(t *testing.T) {
		o := newTestOrder(t, now)

		expected, _ := kernel.NewMoneyFromString("180.50")
		assert.True(t, o.Total().IsEqual(expected))
	})

	t.Run("allows empty items as a zero-total service order", func(t *testing.T) {
		destination, _ := kernel.NewGeoPoint(12.9, 77.6)

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil, "",
			nil, "12 MG Road", destination, "card", now,
		)

		require.NoError(t, err)
		assert.True(t, o.Total().IsZero())
		assert.Empty(t, o.Items())
	})

	t.Run("rejects missing customer id", func(t *testing.T) {
		destination, _ := kernel.NewGeoPoint(12.9, 77.6)
		var missing kernel.UUID

		_, err := order.NewOrder(
			kernel.NewUUID(), missing, nil, "",
			nil, "12 MG Road", destination, "card", now,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty address", func(t *testing.T) {
		destination, _ := kernel.NewGeoPoint(12.9, 77.6)

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil, "",
			nil, "", destination, "card", now,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unconstructed destination", func(t *testing.T) {
		var destination kernel.GeoPoint

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil, "",
			nil, "12 MG Road", destination, "card", now,
		)

		require.Error(t, err)
	})

	t.Run("rejects empty payment method", func(t *testing.T) {
		destination, _ := kernel.NewGeoPoint(12.9, 77.6)

		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), nil, "",
			nil, "12 MG Road", destination, "", now,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_AssignPartner(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("takes a point-in-time snapshot of partner details", func(t *testing.T) {
		o := newTestOrder(t, now)
		partnerID := kernel.NewUUID()

		err := o.AssignPartner(partnerID, "Ravi Kumar", "+91-98450-12345", now)

		require.NoError(t, err)
		require.NotNil(t, o.PartnerID())
		assert.True(t, o.PartnerID().IsEqual(partnerID))
		assert.Equal(t, "Ravi Kumar", o.PartnerName())
		assert.Equal(t, "+91-98450-12345", o.PartnerPhone())
	})

	t.Run("same partner twice is a no-op", func(t *testing.T) {
		o := newTestOrder(t, now)
		partnerID := kernel.NewUUID()
		require.NoError(t, o.AssignPartner(partnerID, "Ravi Kumar", "x", now))

		err := o.AssignPartner(partnerID, "Ravi Kumar", "x", now.Add(time.Minute))

		require.NoError(t, err)
	})

	t.Run("different partner is rejected", func(t *testing.T) {
		o := newTestOrder(t, now)
		require.NoError(t, o.AssignPartner(kernel.NewUUID(), "Ravi Kumar", "x", now))

		err := o.AssignPartner(kernel.NewUUID(), "Asha Devi", "y", now)

		require.ErrorIs(t, err, order.ErrPartnerAlreadyAssigned)
	})

	t.Run("rejects invalid partner id", func(t *testing.T) {
		o := newTestOrder(t, now)
		var missing kernel.UUID

		err := o.AssignPartner(missing, "Ravi Kumar", "x", now)

		require.Error(t, err)
	})
}

func TestOrder_Advance(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("full lifecycle yields five history entries in sequence order", func(t *testing.T) {
		o, partnerID := assignedOrder(t, now)

		steps := []order.Status{order.PickedUp, order.EnRoute, order.OutForDelivery, order.Delivered}
		for i, target := range steps {
			at := now.Add(time.Duration(i+1) * 10 * time.Minute)
			require.NoError(t, o.Advance(target, partnerID, at))
		}

		assert.True(t, o.Delivered())
		assert.True(t, o.PickedUp())
		require.NotNil(t, o.DeliveredAt())
		require.NotNil(t, o.PickedUpAt())

		history := o.History()
		require.Len(t, history, 5)
		expected := []order.Status{
			order.Assigned, order.PickedUp, order.EnRoute, order.OutForDelivery, order.Delivered,
		}
		for i, change := range history {
			assert.Equal(t, expected[i], change.Status)
		}
		assert.Equal(t, o.Status(), history[len(history)-1].Status)
	})

	t.Run("skipping a step fails with invalid transition", func(t *testing.T) {
		o, partnerID := assignedOrder(t, now)

		err := o.Advance(order.OutForDelivery, partnerID, now)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Len(t, o.History(), 1)
	})

	t.Run("repeating the current status is a no-op success", func(t *testing.T) {
		o, partnerID := assignedOrder(t, now)
		require.NoError(t, o.Advance(order.PickedUp, partnerID, now))

		err := o.Advance(order.PickedUp, partnerID, now.Add(time.Second))

		require.NoError(t, err)
		// exactly one picked_up entry despite two requests
		history := o.History()
		require.Len(t, history, 2)
		assert.Equal(t, order.PickedUp, history[1].Status)
	})

	t.Run("transitions after delivered fail with terminal state", func(t *testing.T) {
		o, partnerID := assignedOrder(t, now)
		for _, target := range []order.Status{
			order.PickedUp, order.EnRoute, order.OutForDelivery, order.Delivered,
		} {
			require.NoError(t, o.Advance(target, partnerID, now))
		}

		err := o.Advance(order.Delivered, partnerID, now)

		require.ErrorIs(t, err, order.ErrTerminalState)
	})

	t.Run("rejects transition before a partner is assigned", func(t *testing.T) {
		o := newTestOrder(t, now)

		err := o.Advance(order.PickedUp, kernel.NewUUID(), now)

		require.ErrorIs(t, err, order.ErrUnauthorizedActor)
	})

	t.Run("rejects actor other than the assigned partner", func(t *testing.T) {
		o, _ := assignedOrder(t, now)

		err := o.Advance(order.PickedUp, kernel.NewUUID(), now)

		require.ErrorIs(t, err, order.ErrUnauthorizedActor)
	})

	t.Run("delivered-at is set exactly once", func(t *testing.T) {
		o, partnerID := assignedOrder(t, now)
		deliveredAt := now.Add(time.Hour)
		require.NoError(t, o.Advance(order.PickedUp, partnerID, now))
		require.NoError(t, o.Advance(order.EnRoute, partnerID, now))
		require.NoError(t, o.Advance(order.OutForDelivery, partnerID, now))
		require.NoError(t, o.Advance(order.Delivered, partnerID, deliveredAt))

		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, deliveredAt, *o.DeliveredAt())
	})

	t.Run("pickup stamp records the acting partner", func(t *testing.T) {
		o, partnerID := assignedOrder(t, now)
		require.NoError(t, o.Advance(order.PickedUp, partnerID, now))

		tracking := o.Tracking()
		require.NotNil(t, tracking.PickedUpBy())
		assert.True(t, tracking.PickedUpBy().IsEqual(partnerID))
	})
}

func TestOrder_RecordLocation(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("stores the latest position", func(t *testing.T) {
		o, _ := assignedOrder(t, now)

		err := o.RecordLocation(12.9, 77.6, now)

		require.NoError(t, err)
		tracking := o.Tracking()
		require.NotNil(t, tracking.Position())
		assert.InDelta(t, 12.9, tracking.Position().Lat(), 0.000001)
		assert.InDelta(t, 77.6, tracking.Position().Lng(), 0.000001)
		require.NotNil(t, tracking.LastUpdatedAt())
		assert.Equal(t, now, *tracking.LastUpdatedAt())
	})

	t.Run("rejects out-of-range latitude", func(t *testing.T) {
		o, _ := assignedOrder(t, now)

		err := o.RecordLocation(95, 77.6, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("discards stale reports silently", func(t *testing.T) {
		o, _ := assignedOrder(t, now)
		require.NoError(t, o.RecordLocation(12.9, 77.6, now))

		err := o.RecordLocation(13.1, 77.9, now.Add(-time.Second))

		require.NoError(t, err)
		tracking := o.Tracking()
		assert.InDelta(t, 12.9, tracking.Position().Lat(), 0.000001)
		assert.Equal(t, now, *tracking.LastUpdatedAt())
	})

	t.Run("does not append to status history", func(t *testing.T) {
		o, _ := assignedOrder(t, now)

		require.NoError(t, o.RecordLocation(12.9, 77.6, now))

		assert.Len(t, o.History(), 1)
	})

	t.Run("rejected after delivery", func(t *testing.T) {
		o, partnerID := assignedOrder(t, now)
		for _, target := range []order.Status{
			order.PickedUp, order.EnRoute, order.OutForDelivery, order.Delivered,
		} {
			require.NoError(t, o.Advance(target, partnerID, now))
		}

		err := o.RecordLocation(12.9, 77.6, now)

		require.ErrorIs(t, err, order.ErrTerminalState)
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("round-trips an advanced order", func(t *testing.T) {
		o, partnerID := assignedOrder(t, now)
		require.NoError(t, o.Advance(order.PickedUp, partnerID, now.Add(time.Minute)))
		require.NoError(t, o.RecordLocation(12.95, 77.61, now.Add(2*time.Minute)))

		restored, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:            o.ID(),
			CustomerID:    o.CustomerID(),
			PharmacyID:    o.PharmacyID(),
			PharmacyName:  o.PharmacyName(),
			PartnerID:     o.PartnerID(),
			PartnerName:   o.PartnerName(),
			PartnerPhone:  o.PartnerPhone(),
			Items:         o.Items(),
			Total:         o.Total(),
			PaymentMethod: o.PaymentMethod(),
			PaymentStatus: o.PaymentStatus(),
			Address:       o.Address(),
			Destination:   o.Destination(),
			Status:        o.Status(),
			History:       o.History(),
			Tracking:      o.Tracking(),
			CreatedAt:     o.CreatedAt(),
			UpdatedAt:     o.UpdatedAt(),
			Version:       o.Version(),
		})

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(o))
		assert.Equal(t, order.PickedUp, restored.Status())
		assert.True(t, restored.PickedUp())
		require.NotNil(t, restored.Tracking().Position())
	})

	t.Run("rejects history disagreeing with status", func(t *testing.T) {
		o, _ := assignedOrder(t, now)

		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:            o.ID(),
			CustomerID:    o.CustomerID(),
			PartnerID:     o.PartnerID(),
			Items:         o.Items(),
			Total:         o.Total(),
			PaymentMethod: o.PaymentMethod(),
			PaymentStatus: o.PaymentStatus(),
			Address:       o.Address(),
			Destination:   o.Destination(),
			Status:        order.PickedUp,
			History:       []order.StatusChange{{Status: order.Assigned, At: now}},
			CreatedAt:     o.CreatedAt(),
			UpdatedAt:     o.UpdatedAt(),
			Version:       1,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects non-positive version", func(t *testing.T) {
		o, _ := assignedOrder(t, now)

		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:            o.ID(),
			CustomerID:    o.CustomerID(),
			PartnerID:     o.PartnerID(),
			Items:         o.Items(),
			Total:         o.Total(),
			PaymentMethod: o.PaymentMethod(),
			PaymentStatus: o.PaymentStatus(),
			Address:       o.Address(),
			Destination:   o.Destination(),
			Status:        o.Status(),
			History:       o.History(),
			CreatedAt:     o.CreatedAt(),
			UpdatedAt:     o.UpdatedAt(),
			Version:       0,
		})

		require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})

	t.Run("rejects picked up order without partner", func(t *testing.T) {
		o, partnerID := assignedOrder(t, now)
		require.NoError(t, o.Advance(order.PickedUp, partnerID, now))

		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:            o.ID(),
			CustomerID:    o.CustomerID(),
			PartnerID:     nil,
			Items:         o.Items(),
			Total:         o.Total(),
			PaymentMethod: o.PaymentMethod(),
			PaymentStatus: o.PaymentStatus(),
			Address:       o.Address(),
			Destination:   o.Destination(),
			Status:        o.Status(),
			History:       o.History(),
			CreatedAt:     o.CreatedAt(),
			UpdatedAt:     o.UpdatedAt(),
			Version:       o.Version(),
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewItem(t *testing.T) {
	price, _ := kernel.NewMoneyFromString("35.00")

	t.Run("computes line total", func(t *testing.T) {
		item, err := order.NewItem("Paracetamol 500mg", 3, price)

		require.NoError(t, err)
		expected, _ := kernel.NewMoneyFromString("105.00")
		assert.True(t, item.LineTotal().IsEqual(expected))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := order.NewItem("", 1, price)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem("Paracetamol 500mg", 0, price)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
