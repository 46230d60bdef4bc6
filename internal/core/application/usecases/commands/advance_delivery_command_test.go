package commands_test

import (
	"testing"
	"time"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/application/usecases/commands"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/order"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceDeliveryCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actor := kernel.NewUUID()
	occurredAt := time.Now().UTC()

	cmd, err := commands.NewAdvanceDeliveryCommand(orderID, order.PickedUp, actor, occurredAt)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, order.PickedUp, cmd.Target())
	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, occurredAt, cmd.OccurredAt())
}

func TestNewAdvanceDeliveryCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewAdvanceDeliveryCommand(kernel.NewUUID(), order.Unknown, kernel.NewUUID(), time.Now().UTC())
	require.Error(t, err)
}

func TestNewAdvanceDeliveryCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewAdvanceDeliveryCommand(kernel.UUID{}, order.PickedUp, kernel.NewUUID(), time.Now().UTC())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewAdvanceDeliveryCommand(kernel.NewUUID(), order.PickedUp, kernel.UUID{}, time.Now().UTC())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAdvanceDeliveryCommand_ZeroOccurredAt(t *testing.T) {
	_, err := commands.NewAdvanceDeliveryCommand(kernel.NewUUID(), order.PickedUp, kernel.NewUUID(), time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAdvanceDeliveryCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AdvanceDeliveryCommand // zero value, not constructed via constructor

	err := cmd.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAdvanceDeliveryCommandIsNotConstructed)
}
