package power

import (
	"fmt"

	"stlsave/gamedata"
)

// MaxStat is the highest value a particle can grant for one stat and
// the power that value is worth.
type MaxStat struct {
	MaxValue float64 `json:"maxValue"`
	Power    float64 `json:"power"`
}

// UnknownStatError reports a stat name missing from the gradient
// table. Unknown stats are never treated as zero-weight.
type UnknownStatError struct {
	Stat string
}

func (e *UnknownStatError) Error() string {
	return fmt.Sprintf("unknown stat %q", e.Stat)
}

// Delta computes the change in power caused by changing each stat in
// stats by the given amount. The model is linear: a fixed per-stat
// gradient times the stat delta, summed.
func Delta(stats map[string]float64) (float64, error) {
	var delta float64
	for name, val := range stats {
		g, ok := gamedata.PowerGradient[name]
		if !ok {
			return 0, &UnknownStatError{Stat: name}
		}
		delta += g * val
	}
	return delta, nil
}

// Power computes the power of a character with the given stat values.
func Power(stats map[string]float64) (float64, error) {
	d, err := Delta(stats)
	if err != nil {
		return 0, err
	}
	return gamedata.PowerAtOrigin + d, nil
}

// MaxParticleStats computes, for every stat a particle can carry, the
// maximum possible value (highest rarity at its top level) and the
// power granted by that value.
func MaxParticleStats() (map[string]MaxStat, error) {
	out := make(map[string]MaxStat, len(gamedata.PartStatValues))
	for name, tiers := range gamedata.PartStatValues {
		levels := tiers["Legendary"]
		if len(levels) == 0 {
			return nil, fmt.Errorf("stat %q has no Legendary tier", name)
		}
		maxValue := levels[len(levels)-1]
		d, err := Delta(map[string]float64{name: maxValue})
		if err != nil {
			return nil, err
		}
		out[name] = MaxStat{MaxValue: maxValue, Power: d}
	}
	return out, nil
}
