package lottery

import (
	"errors"
	"fmt"

	"github.com/trickcord/trickcord/internal/models"
	"github.com/trickcord/trickcord/internal/rng"
)

// Define errors
var (
	ErrInvalidWeights = errors.New("rarity weights must be non-negative with a positive total")
	ErrNoItems        = errors.New("no items to pick from")
)

// Weights maps each rarity tier to its probability weight. The weights do
// not have to sum to 1; they are normalized by the draw.
type Weights struct {
	Common   float64
	Uncommon float64
	Rare     float64
}

// DefaultWeights are the stock drop rates
var DefaultWeights = Weights{
	Common:   0.65,
	Uncommon: 0.25,
	Rare:     0.10,
}

func (w Weights) weight(r models.Rarity) float64 {
	switch r {
	case models.RarityCommon:
		return w.Common
	case models.RarityUncommon:
		return w.Uncommon
	case models.RarityRare:
		return w.Rare
	}
	return 0
}

// Lottery draws rarities by cumulative-weight sampling over the fixed tier
// order Common, Uncommon, Rare. Immutable after New and safe for concurrent
// use.
type Lottery struct {
	weights Weights
	cum     []float64
	total   float64
}

// New validates the weights and precomputes the cumulative sums. A
// non-positive total or any negative weight is a configuration error and
// must abort startup.
func New(weights Weights) (*Lottery, error) {
	cum := make([]float64, len(models.Rarities))

	total := 0.0
	for i, rarity := range models.Rarities {
		w := weights.weight(rarity)
		if w < 0 {
			return nil, fmt.Errorf("%w: %s is negative", ErrInvalidWeights, rarity)
		}

		total += w
		cum[i] = total
	}

	if total <= 0 {
		return nil, ErrInvalidWeights
	}

	return &Lottery{
		weights: weights,
		cum:     cum,
		total:   total,
	}, nil
}

// Weights returns the configured weights
func (l *Lottery) Weights() Weights {
	return l.weights
}

// Draw picks a rarity. A draw equal to a cumulative boundary belongs to the
// tier whose cumulative sum it is strictly less than, never the lower tier,
// so a zero-weight tier can never win.
func (l *Lottery) Draw(src rng.Source) models.Rarity {
	v := src.Float64() * l.total

	for i, rarity := range models.Rarities {
		if v < l.cum[i] {
			return rarity
		}
	}

	// src.Float64 is < 1.0, so v < total and the loop always returns; this
	// guards against a misbehaving Source.
	return models.Rarities[len(models.Rarities)-1]
}

// PickItem picks one item from the slice, weighting each by its rarity.
// This drives which monster knocks: drawing over the whole catalog and
// taking the item's parent biases spawns the same way drops are biased.
func (l *Lottery) PickItem(items []models.Item, src rng.Source) (models.Item, error) {
	if len(items) == 0 {
		return models.Item{}, ErrNoItems
	}

	cum := make([]float64, len(items))

	total := 0.0
	for i, item := range items {
		total += l.weights.weight(item.Rarity)
		cum[i] = total
	}

	if total <= 0 {
		return models.Item{}, ErrInvalidWeights
	}

	v := src.Float64() * total
	for i := range items {
		if v < cum[i] {
			return items[i], nil
		}
	}

	return items[len(items)-1], nil
}
