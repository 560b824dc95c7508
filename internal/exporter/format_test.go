package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatProportion(t *testing.T) {
	assert.Equal(t, "0.5000", formatProportion(0.5))
	assert.Equal(t, "0.3333", formatProportion(1.0/3.0))
	assert.Equal(t, "1.0000", formatProportion(1))
	assert.Equal(t, "0.0001", formatProportion(0.0001))
}

func TestFormatMean(t *testing.T) {
	assert.Equal(t, "2.000", formatMean(2))
	assert.Equal(t, "0.625", formatMean(0.625))
	assert.Equal(t, "1.667", formatMean(5.0/3.0))
}

func TestFormatInt(t *testing.T) {
	assert.Equal(t, "0", formatInt(0))
	assert.Equal(t, "42", formatInt(42))
}
