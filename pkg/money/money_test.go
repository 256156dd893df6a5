package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	t.Run("Success - Avoids float accumulation error", func(t *testing.T) {
		// 0.1 + 0.2 in raw float64 is 0.30000000000000004
		assert.Equal(t, 0.3, Add(0.1, 0.2))
	})

	t.Run("Success - Repeated small credits", func(t *testing.T) {
		total := 0.0
		for i := 0; i < 100; i++ {
			total = Add(total, 0.01)
		}
		assert.Equal(t, 1.0, total)
	})
}

func TestSub(t *testing.T) {
	t.Run("Success - Exact result", func(t *testing.T) {
		assert.Equal(t, 40.0, Sub(100.0, 60.0))
	})

	t.Run("Success - Debit to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Sub(26.55, 26.55))
	})
}

func TestRound2(t *testing.T) {
	t.Run("Success - Half away from zero", func(t *testing.T) {
		assert.Equal(t, 2.68, ToFloat(decimal.NewFromFloat(2.675)))
		assert.Equal(t, 1.23, ToFloat(decimal.NewFromFloat(1.234)))
	})
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(0.1+0.2, 0.3))
	assert.False(t, Equal(0.31, 0.3))
}

func TestLess(t *testing.T) {
	assert.True(t, Less(59.99, 60.0))
	assert.False(t, Less(60.0, 60.0))
	assert.False(t, Less(60.01, 60.0))
}
