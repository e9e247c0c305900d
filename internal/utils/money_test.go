package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "₱1,500.00", Money("₱", 1500))
	assert.Equal(t, "-₱3,000.50", Money("₱", -3000.5))
	assert.Equal(t, "$0.00", Money("$", 0))
	assert.Equal(t, "42.50%", Percent(42.5))
}
