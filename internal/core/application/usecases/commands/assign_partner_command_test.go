package commands_test

import (
	"testing"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/application/usecases/commands"
	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignPartnerCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	partnerID := kernel.NewUUID()

	cmd, err := commands.NewAssignPartnerCommand(orderID, partnerID, "Ravi Kumar", "+91-98450-12345")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, partnerID, cmd.PartnerID())
	assert.Equal(t, "Ravi Kumar", cmd.PartnerName())
	assert.Equal(t, "+91-98450-12345", cmd.PartnerPhone())
}

func TestNewAssignPartnerCommand_EmptyPhoneAllowed(t *testing.T) {
	cmd, err := commands.NewAssignPartnerCommand(kernel.NewUUID(), kernel.NewUUID(), "Ravi Kumar", "")
	require.NoError(t, err)
	assert.Empty(t, cmd.PartnerPhone())
}

func TestNewAssignPartnerCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewAssignPartnerCommand(kernel.UUID{}, kernel.NewUUID(), "Ravi Kumar", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewAssignPartnerCommand(kernel.NewUUID(), kernel.UUID{}, "Ravi Kumar", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAssignPartnerCommand_EmptyName(t *testing.T) {
	_, err := commands.NewAssignPartnerCommand(kernel.NewUUID(), kernel.NewUUID(), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAssignPartnerCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.AssignPartnerCommand // zero value, not constructed via constructor

	err := cmd.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignPartnerCommandIsNotConstructed)
}
