package gamedata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesLoaded(t *testing.T) {
	assert.NotEmpty(t, PowerGradient)
	assert.Greater(t, PowerAtOrigin, 0.0)
	require.NotEmpty(t, PartStatValues)

	for name, tiers := range PartStatValues {
		_, ok := PowerGradient[name]
		assert.True(t, ok, "particle stat %s has no gradient", name)
		require.Contains(t, tiers, "Legendary", "stat %s", name)
		for rarity, levels := range tiers {
			assert.Len(t, levels, 5, "stat %s rarity %s", name, rarity)
		}
	}
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "constants")
	require.NoError(t, Export(dir))

	for name := range Registry() {
		data, err := os.ReadFile(filepath.Join(dir, name+".json"))
		require.NoError(t, err, "table %s", name)
		assert.True(t, json.Valid(data), "table %s", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "POWER_GRADIENT.json"))
	require.NoError(t, err)
	var gradient map[string]float64
	require.NoError(t, json.Unmarshal(data, &gradient))
	assert.Equal(t, PowerGradient, gradient)
}
