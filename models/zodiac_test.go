package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatibilityTableShape(t *testing.T) {
	signs := []string{
		ZodiacAries, ZodiacTaurus, ZodiacGemini, ZodiacCancer, ZodiacLeo,
		ZodiacVirgo, ZodiacLibra, ZodiacScorpio, ZodiacSagittarius,
		ZodiacCapricorn, ZodiacAquarius, ZodiacPisces,
	}

	for _, sign := range signs {
		compatible := CompatibleZodiacs(sign)
		require.Len(t, compatible, 4, "sign %s must map to exactly 4 signs", sign)
		assert.NotContains(t, compatible, sign, "sign %s must not be compatible with itself", sign)
	}
}

func TestCompatibilityTableEntries(t *testing.T) {
	tests := []struct {
		sign string
		want []string
	}{
		{ZodiacAries, []string{ZodiacLeo, ZodiacSagittarius, ZodiacGemini, ZodiacAquarius}},
		{ZodiacTaurus, []string{ZodiacVirgo, ZodiacCapricorn, ZodiacCancer, ZodiacPisces}},
		{ZodiacGemini, []string{ZodiacLibra, ZodiacAquarius, ZodiacAries, ZodiacLeo}},
		{ZodiacCancer, []string{ZodiacScorpio, ZodiacPisces, ZodiacTaurus, ZodiacVirgo}},
		{ZodiacLeo, []string{ZodiacAries, ZodiacSagittarius, ZodiacGemini, ZodiacLibra}},
		{ZodiacVirgo, []string{ZodiacTaurus, ZodiacCapricorn, ZodiacCancer, ZodiacScorpio}},
		{ZodiacLibra, []string{ZodiacGemini, ZodiacAquarius, ZodiacLeo, ZodiacSagittarius}},
		{ZodiacScorpio, []string{ZodiacCancer, ZodiacPisces, ZodiacVirgo, ZodiacCapricorn}},
		{ZodiacSagittarius, []string{ZodiacAries, ZodiacLeo, ZodiacLibra, ZodiacAquarius}},
		{ZodiacCapricorn, []string{ZodiacTaurus, ZodiacVirgo, ZodiacScorpio, ZodiacPisces}},
		{ZodiacAquarius, []string{ZodiacGemini, ZodiacLibra, ZodiacAries, ZodiacSagittarius}},
		{ZodiacPisces, []string{ZodiacCancer, ZodiacScorpio, ZodiacTaurus, ZodiacCapricorn}},
	}

	for _, tt := range tests {
		t.Run(tt.sign, func(t *testing.T) {
			assert.Equal(t, tt.want, CompatibleZodiacs(tt.sign))
		})
	}
}

func TestZodiacCompatible(t *testing.T) {
	assert.True(t, ZodiacCompatible(ZodiacAries, ZodiacLeo))
	assert.False(t, ZodiacCompatible(ZodiacAries, ZodiacCancer))
	assert.False(t, ZodiacCompatible(ZodiacAries, ZodiacAries))

	// Lookup is case-insensitive on both sides
	assert.True(t, ZodiacCompatible("Aries", "LEO"))

	// Unknown signs compare to nothing
	assert.False(t, ZodiacCompatible("ophiuchus", ZodiacLeo))
	assert.False(t, ZodiacCompatible(ZodiacAries, ""))
}
