package gamedata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed power_gradient.json
var powerGradientJSON []byte

//go:embed power_at_origin.json
var powerAtOriginJSON []byte

//go:embed part_stat_values.json
var partStatValuesJSON []byte

// TierValues maps a particle rarity to the stat value at each level,
// level 1 first.
type TierValues map[string][]float64

var (
	// PowerGradient is the per-stat coefficient of the power model.
	PowerGradient map[string]float64

	// PowerAtOrigin is the power of a character whose stats are all zero.
	PowerAtOrigin float64

	// PartStatValues lists, per stat, the value a particle grants at
	// each rarity and level.
	PartStatValues map[string]TierValues
)

func init() {
	mustLoad("power_gradient.json", powerGradientJSON, &PowerGradient)
	mustLoad("power_at_origin.json", powerAtOriginJSON, &PowerAtOrigin)
	mustLoad("part_stat_values.json", partStatValuesJSON, &PartStatValues)
}

func mustLoad(name string, data []byte, v any) {
	if err := json.Unmarshal(data, v); err != nil {
		panic(fmt.Sprintf("gamedata: %s: %v", name, err))
	}
}

// Registry is the full set of exported tables, keyed by the names the
// exported files carry. Fixed and enumerated on purpose: the exported
// set is a contract, not whatever happens to be in the package.
func Registry() map[string]any {
	return map[string]any{
		"POWER_GRADIENT":   PowerGradient,
		"POWER_AT_ORIGIN":  PowerAtOrigin,
		"PART_STAT_VALUES": PartStatValues,
	}
}

// Export writes every registry table to dir as an indented JSON file,
// creating dir if needed.
func Export(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for name, table := range Registry() {
		data, err := json.MarshalIndent(table, "", "    ")
		if err != nil {
			return fmt.Errorf("marshal %s: %w", name, err)
		}
		out := filepath.Join(dir, name+".json")
		if err := os.WriteFile(out, append(data, '\n'), 0644); err != nil {
			return err
		}
	}
	return nil
}
