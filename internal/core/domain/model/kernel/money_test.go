package kernel_test

import (
	"testing"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/domain/model/kernel"
	"github.com/TenZ001/cure-cart25-sub001/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative amount", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(149.50))

		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(149.50)))
	})

	t.Run("zero amount is valid", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses decimal string", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("99.99")

		require.NoError(t, err)
		assert.Equal(t, "Money(99.99)", m.String())
	})

	t.Run("rejects malformed string", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("ninety-nine")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative string", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-5.00")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add sums amounts", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("10.50")
		b, _ := kernel.NewMoneyFromString("4.25")

		sum := a.Add(b)

		expected, _ := kernel.NewMoneyFromString("14.75")
		assert.True(t, sum.IsEqual(expected))
	})

	t.Run("MulInt computes line totals", func(t *testing.T) {
		unitPrice, _ := kernel.NewMoneyFromString("12.30")

		total := unitPrice.MulInt(3)

		expected, _ := kernel.NewMoneyFromString("36.90")
		assert.True(t, total.IsEqual(expected))
	})

	t.Run("zero value behaves as zero amount", func(t *testing.T) {
		var m kernel.Money
		one, _ := kernel.NewMoneyFromString("1")

		assert.True(t, m.IsZero())
		assert.True(t, m.Add(one).IsEqual(one))
	})
}
