package stirling_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstirling/stirling"
)

// keys renders perms into a set of strings.
func keys(perms []stirling.Permutation) map[string]struct{} {
	out := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		out[p.String()] = struct{}{}
	}

	return out
}

// TestDescents covers no, one and several descents.
func TestDescents(t *testing.T) {
	assert.Empty(t, stirling.Descents(stirling.Permutation{}))
	assert.Empty(t, stirling.Descents(stirling.Permutation{1, 1, 2, 2}))
	assert.Equal(t, []int{2}, stirling.Descents(stirling.Permutation{1, 2, 2, 1}))
	assert.Equal(t, []int{3}, stirling.Descents(stirling.Permutation{1, 1, 3, 3, 2, 2}))
	assert.Equal(t, []int{2, 4}, stirling.Descents(stirling.Permutation{1, 3, 3, 2, 2, 1}))
}

// TestInsertionPoints checks every flattened permutation on [3]_2.
func TestInsertionPoints(t *testing.T) {
	cases := []struct {
		perm stirling.Permutation
		want []int
	}{
		{stirling.Permutation{1, 2, 2, 3, 3, 1}, []int{4, 5}},
		{stirling.Permutation{1, 2, 2, 1, 3, 3}, []int{2, 3, 4, 5}},
		{stirling.Permutation{1, 3, 3, 1, 2, 2}, []int{2, 3, 4, 5}},
		{stirling.Permutation{1, 1, 3, 3, 2, 2}, []int{0, 3, 4, 5}},
		{stirling.Permutation{1, 1, 2, 3, 3, 2}, []int{0, 1, 4, 5}},
		{stirling.Permutation{1, 1, 2, 2, 3, 3}, []int{0, 1, 2, 3, 4, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.perm.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, stirling.InsertionPoints(tc.perm))
		})
	}

	assert.Empty(t, stirling.InsertionPoints(stirling.Permutation{}))
}

// TestFlat_Two is the smallest non-trivial level.
func TestFlat_Two(t *testing.T) {
	perms, err := stirling.Flat(2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []stirling.Permutation{{1, 1, 2, 2}, {1, 2, 2, 1}}, perms)
}

// TestFlat_Three pins the generation order of level 3.
func TestFlat_Three(t *testing.T) {
	perms, err := stirling.Flat(3)
	require.NoError(t, err)
	assert.Equal(t, []stirling.Permutation{
		{1, 2, 2, 3, 3, 1},
		{1, 2, 2, 1, 3, 3},
		{1, 3, 3, 1, 2, 2},
		{1, 1, 3, 3, 2, 2},
		{1, 1, 2, 3, 3, 2},
		{1, 1, 2, 2, 3, 3},
	}, perms)
}

// TestFlat_Base covers n = 0 and n = 1.
func TestFlat_Base(t *testing.T) {
	zero, err := stirling.Flat(0)
	require.NoError(t, err)
	require.Len(t, zero, 1)
	assert.Empty(t, zero[0])

	one, err := stirling.Flat(1, stirling.WithMultiplicity(3))
	require.NoError(t, err)
	assert.Equal(t, []stirling.Permutation{{1, 1, 1}}, one)

	_, err = stirling.Flat(-1)
	assert.ErrorIs(t, err, stirling.ErrNegativeOrder)
}

// TestFlat_Counts checks the count table over n and k, and that every
// output is a distinct flattened k-Stirling permutation.
func TestFlat_Counts(t *testing.T) {
	table := map[int][]int{ // k -> counts for n = 1..5
		1: {1, 1, 2, 5, 15},
		2: {1, 2, 6, 24, 116},
		3: {1, 3, 12, 63, 405},
		4: {1, 4, 20, 128, 1008},
	}
	for k, counts := range table {
		for i, want := range counts {
			n := i + 1
			perms, err := stirling.Flat(n, stirling.WithMultiplicity(k))
			require.NoError(t, err)
			require.Len(t, perms, want, "n=%d k=%d", n, k)
			for _, p := range perms {
				require.Len(t, p, n*k)
				assert.True(t, p.IsFlattened(), "%s not flattened", p)
				assert.True(t, stirling.IsStirling(p, k), "%s not %d-Stirling", p, k)
			}
			assert.Len(t, keys(perms), want, "duplicates at n=%d k=%d", n, k)
		}
	}
}

// TestFlat_MatchesBrute is the generator equivalence: the insertion method
// and the filtered parenthesis method produce the same set.
func TestFlat_MatchesBrute(t *testing.T) {
	for n := 0; n <= 5; n++ {
		fast, err := stirling.Flat(n)
		require.NoError(t, err)
		brute, err := stirling.FlatBrute(n)
		require.NoError(t, err)

		fk, bk := keys(fast), keys(brute)
		require.Len(t, fast, len(fk), "Flat(%d) has duplicates", n)
		assert.Equal(t, bk, fk, "n=%d\nfast: %s\nbrute: %s", n, spew.Sdump(fast), spew.Sdump(brute))
		assert.Equal(t, stirling.Digest(brute), stirling.Digest(fast))
	}
}

// TestFlatLevels_EarlyStop consumes two levels and stops.
func TestFlatLevels_EarlyStop(t *testing.T) {
	levels, err := stirling.FlatLevels(50)
	require.NoError(t, err)

	var seen []int
	for i, level := range levels {
		seen = append(seen, len(level))
		if i == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 1, 2, 6}, seen)

	_, err = stirling.FlatLevels(-3)
	assert.ErrorIs(t, err, stirling.ErrNegativeOrder)
}

// TestWithMultiplicity_Panics guards the option constructor.
func TestWithMultiplicity_Panics(t *testing.T) {
	assert.Panics(t, func() { stirling.WithMultiplicity(0) })
	assert.Equal(t, 2, stirling.DefaultOptions().Multiplicity)
}
