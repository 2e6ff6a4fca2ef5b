package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeightOptions(t *testing.T) {
	labels, err := ParseWeightOptions("500G,1KG, 2 kg ,3KG")
	require.NoError(t, err)
	assert.Equal(t, []string{"500G", "1KG", "2KG", "3KG"}, labels)
}

func TestParseWeightOptionsReportsEveryInvalidToken(t *testing.T) {
	labels, err := ParseWeightOptions("500G,1LB,2KG,heavy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1LB")
	assert.Contains(t, err.Error(), "heavy")
	// Valid tokens survive; invalid ones are reported, not dropped silently.
	assert.Equal(t, []string{"500G", "2KG"}, labels)
}

func TestWeightAllowed(t *testing.T) {
	options := []string{"500G", "1KG", "2KG"}

	assert.True(t, WeightAllowed("1KG", options))
	assert.True(t, WeightAllowed("1 kg", options))
	assert.True(t, WeightAllowed(" 500g ", options))
	assert.False(t, WeightAllowed("5KG", options))
	assert.False(t, WeightAllowed("", options))
}
