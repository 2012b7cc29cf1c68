package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$0.00", Currency(0))
	assert.Equal(t, "$6.66", Currency(666))
	assert.Equal(t, "$0.05", Currency(5))
	assert.Equal(t, "$1,234.56", Currency(123456))
	assert.Equal(t, "$1,000,000.00", Currency(100000000))
	assert.Equal(t, "-$12.50", Currency(-1250))
}
