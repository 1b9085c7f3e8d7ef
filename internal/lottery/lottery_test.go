package lottery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickcord/trickcord/internal/models"
	"github.com/trickcord/trickcord/internal/rng"
)

// stubSource returns a fixed sequence of values.
type stubSource struct {
	values []float64
	index  int
}

func (s *stubSource) Float64() float64 {
	v := s.values[s.index%len(s.values)]
	s.index++
	return v
}

func (s *stubSource) Intn(n int) int {
	return 0
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr error
	}{
		{
			name:    "default weights",
			weights: DefaultWeights,
		},
		{
			name:    "unnormalized weights",
			weights: Weights{Common: 65, Uncommon: 25, Rare: 10},
		},
		{
			name:    "single tier",
			weights: Weights{Rare: 1},
		},
		{
			name:    "all zero",
			weights: Weights{},
			wantErr: ErrInvalidWeights,
		},
		{
			name:    "negative weight",
			weights: Weights{Common: 0.5, Uncommon: -0.1, Rare: 0.6},
			wantErr: ErrInvalidWeights,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.weights)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.weights, l.Weights())
		})
	}
}

func TestDraw_BoundaryBelongsToHigherTier(t *testing.T) {
	l, err := New(DefaultWeights)
	require.NoError(t, err)

	// Total weight is 1.0, so the draw value equals the raw Float64. A draw
	// landing exactly on a cumulative boundary must go to the tier above it.
	tests := []struct {
		name string
		draw float64
		want models.Rarity
	}{
		{name: "zero", draw: 0, want: models.RarityCommon},
		{name: "just below common boundary", draw: 0.65 - 1e-9, want: models.RarityCommon},
		{name: "common boundary", draw: 0.65, want: models.RarityUncommon},
		{name: "uncommon boundary", draw: 0.90, want: models.RarityRare},
		{name: "top of range", draw: 1 - 1e-9, want: models.RarityRare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Draw(&stubSource{values: []float64{tt.draw}})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDraw_ZeroWeightTierNeverWins(t *testing.T) {
	l, err := New(Weights{Common: 1})
	require.NoError(t, err)

	src := rng.New(&rng.Config{Seed: 42})
	for i := 0; i < 1000; i++ {
		assert.Equal(t, models.RarityCommon, l.Draw(src))
	}
}

func TestDraw_SingleNonzeroTier(t *testing.T) {
	l, err := New(Weights{Uncommon: 3})
	require.NoError(t, err)

	src := rng.New(&rng.Config{Seed: 42})
	for i := 0; i < 1000; i++ {
		assert.Equal(t, models.RarityUncommon, l.Draw(src))
	}
}

func TestDraw_FrequencyConvergence(t *testing.T) {
	l, err := New(DefaultWeights)
	require.NoError(t, err)

	const draws = 200000

	src := rng.New(&rng.Config{Seed: 1337})
	counts := make(map[models.Rarity]int)
	for i := 0; i < draws; i++ {
		counts[l.Draw(src)]++
	}

	expected := map[models.Rarity]float64{
		models.RarityCommon:   0.65,
		models.RarityUncommon: 0.25,
		models.RarityRare:     0.10,
	}

	// Pearson chi-squared against the configured distribution. The 0.999
	// quantile for 2 degrees of freedom is 13.82; a correct sampler fails
	// this roughly once in a thousand seeds, and the seed is fixed.
	chi2 := 0.0
	for rarity, p := range expected {
		e := p * draws
		d := float64(counts[rarity]) - e
		chi2 += d * d / e
	}

	assert.Less(t, chi2, 13.82, "chi-squared statistic too large: %v (counts %v)", chi2, counts)

	for rarity, p := range expected {
		got := float64(counts[rarity]) / draws
		assert.InDeltaf(t, p, got, 0.01, "rarity %s frequency off", rarity)
	}
}

func TestPickItem(t *testing.T) {
	l, err := New(DefaultWeights)
	require.NoError(t, err)

	items := []models.Item{
		{ID: 1, Rarity: models.RarityCommon},
		{ID: 2, Rarity: models.RarityUncommon},
		{ID: 3, Rarity: models.RarityRare},
	}

	// Cumulative sums are 0.65, 0.90, 1.0 in slice order.
	item, err := l.PickItem(items, &stubSource{values: []float64{0.5}})
	require.NoError(t, err)
	assert.Equal(t, 1, item.ID)

	item, err = l.PickItem(items, &stubSource{values: []float64{0.89}})
	require.NoError(t, err)
	assert.Equal(t, 2, item.ID)

	item, err = l.PickItem(items, &stubSource{values: []float64{0.95}})
	require.NoError(t, err)
	assert.Equal(t, 3, item.ID)
}

func TestPickItem_Empty(t *testing.T) {
	l, err := New(DefaultWeights)
	require.NoError(t, err)

	_, err = l.PickItem(nil, &stubSource{values: []float64{0.5}})
	assert.ErrorIs(t, err, ErrNoItems)
}
