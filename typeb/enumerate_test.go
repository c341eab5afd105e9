package typeb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstirling/typeb"
)

// TestEnumerate_Zero is the base case {0}.
func TestEnumerate_Zero(t *testing.T) {
	parts, err := typeb.Enumerate(0)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, typeb.Partition{typeb.ZeroBlock(0)}, parts[0])
}

// TestEnumerate_One yields the fresh pair and the grown zero block.
func TestEnumerate_One(t *testing.T) {
	parts, err := typeb.Enumerate(1)
	require.NoError(t, err)
	assert.Equal(t, []typeb.Partition{
		{typeb.ZeroBlock(0), typeb.PairBlock(1)},
		{typeb.ZeroBlock(0, 1, -1)},
	}, parts)
}

// TestEnumerate_Two pins the rule order R4, then R1 or R2/R3 per block.
func TestEnumerate_Two(t *testing.T) {
	parts, err := typeb.Enumerate(2)
	require.NoError(t, err)
	assert.Equal(t, []typeb.Partition{
		{typeb.ZeroBlock(0), typeb.PairBlock(1), typeb.PairBlock(2)},
		{typeb.ZeroBlock(0, 2, -2), typeb.PairBlock(1)},
		{typeb.ZeroBlock(0), typeb.PairBlock(1, 2)},
		{typeb.ZeroBlock(0), typeb.PairBlock(1, -2)},
		{typeb.ZeroBlock(0, 1, -1), typeb.PairBlock(2)},
		{typeb.ZeroBlock(0, 1, -1, 2, -2)},
	}, parts)
}

// TestEnumerate_Counts checks the Type-B Bell numbers and that every
// partition is well formed.
func TestEnumerate_Counts(t *testing.T) {
	for n, want := range []int{1, 2, 6, 24, 116, 648} {
		parts, err := typeb.Enumerate(n)
		require.NoError(t, err)
		require.Len(t, parts, want, "n=%d", n)

		distinct := make(map[string]struct{}, len(parts))
		for _, p := range parts {
			require.NoError(t, typeb.Validate(p, n), "%s", p)
			distinct[typeb.Reduce(p).String()] = struct{}{}
		}
		assert.Len(t, distinct, want, "reduced forms collide at n=%d", n)
	}

	_, err := typeb.Enumerate(-1)
	assert.ErrorIs(t, err, typeb.ErrNegativeOrder)
}

// TestEnumerate_WellFormed spells out the pair and zero-block invariants.
func TestEnumerate_WellFormed(t *testing.T) {
	parts, err := typeb.Enumerate(4)
	require.NoError(t, err)
	for _, p := range parts {
		zeros := 0
		for _, b := range p {
			if b.IsZero() {
				zeros++
				assert.Contains(t, b.Elems, 0)
				for _, x := range b.Elems {
					assert.Contains(t, b.Elems, -x)
				}

				continue
			}
			require.Len(t, b.Mirror, len(b.Elems))
			for i, x := range b.Elems {
				assert.Equal(t, -x, b.Mirror[i])
			}
		}
		assert.Equal(t, 1, zeros, "%s", p)
	}
}

// TestEnumerate_NoAliasing mutates one partition and checks its siblings.
func TestEnumerate_NoAliasing(t *testing.T) {
	parts, err := typeb.Enumerate(2)
	require.NoError(t, err)

	parts[0][0].Elems[0] = 99
	parts[2][1].Elems[0] = 99
	assert.Equal(t, 0, parts[3][0].Elems[0])
	assert.Equal(t, 1, parts[3][1].Elems[0])
	assert.Equal(t, []int{1, -2}, parts[3][1].Elems)
}

// TestLevels_EarlyStop stops after level 2 of a large request.
func TestLevels_EarlyStop(t *testing.T) {
	levels, err := typeb.Levels(40)
	require.NoError(t, err)

	var sizes []int
	for i, level := range levels {
		sizes = append(sizes, len(level))
		if i == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 6}, sizes)
}

// TestValidate_Rejects covers each broken invariant.
func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name string
		p    typeb.Partition
		n    int
	}{
		{"no zero block", typeb.Partition{typeb.PairBlock(1)}, 1},
		{"two zero blocks", typeb.Partition{typeb.ZeroBlock(0), typeb.ZeroBlock(1, -1)}, 1},
		{"zero block without 0", typeb.Partition{typeb.ZeroBlock(1, -1), typeb.PairBlock(0)}, 1},
		{"zero block not symmetric", typeb.Partition{typeb.ZeroBlock(0, 1), typeb.PairBlock(-1)}, 1},
		{"bad mirror", typeb.Partition{typeb.ZeroBlock(0), {Elems: []int{1}, Mirror: []int{1}}}, 1},
		{"missing element", typeb.Partition{typeb.ZeroBlock(0), typeb.PairBlock(1)}, 2},
		{"out of range", typeb.Partition{typeb.ZeroBlock(0), typeb.PairBlock(3)}, 1},
		{"duplicate", typeb.Partition{typeb.ZeroBlock(0, 1, -1), typeb.PairBlock(1)}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, typeb.Validate(tc.p, tc.n), typeb.ErrMalformedPartition)
		})
	}

	assert.ErrorIs(t, typeb.Validate(nil, -1), typeb.ErrNegativeOrder)
}
