package commands_test

import (
	"testing"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/application/usecases/commands"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/order"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	pharmacyID := kernel.NewUUID()
	destination, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	items := []order.Item{mustItem(t, "Paracetamol 500mg", 2, "35.00")}

	cmd, err := commands.NewCreateOrderCommand(
		customerID, &pharmacyID, "MedPlus Koramangala", items, "221B Baker Street", destination, "cod",
	)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, &pharmacyID, cmd.PharmacyID())
	assert.Equal(t, "MedPlus Koramangala", cmd.PharmacyName())
	assert.Equal(t, items, cmd.Items())
	assert.Equal(t, "221B Baker Street", cmd.Address())
	equal, err := destination.IsEqual(cmd.Destination())
	require.NoError(t, err)
	assert.True(t, equal)
	assert.Equal(t, "cod", cmd.PaymentMethod())
}

func TestNewCreateOrderCommand_EmptyItemsAllowed(t *testing.T) {
	destination, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), nil, "", nil, "221B Baker Street", destination, "online",
	)
	require.NoError(t, err)
	assert.Empty(t, cmd.Items())
	assert.Nil(t, cmd.PharmacyID())
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	destination, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	_, err = commands.NewCreateOrderCommand(
		kernel.UUID{}, nil, "", nil, "221B Baker Street", destination, "cod",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_EmptyAddress(t *testing.T) {
	destination, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	_, err = commands.NewCreateOrderCommand(
		kernel.NewUUID(), nil, "", nil, "", destination, "cod",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_EmptyPaymentMethod(t *testing.T) {
	destination, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	_, err = commands.NewCreateOrderCommand(
		kernel.NewUUID(), nil, "", nil, "221B Baker Street", destination, "",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateOrderCommand // zero value, not constructed via constructor

	err := cmd.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
