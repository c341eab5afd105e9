package typeb_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvstirling/typeb"
)

// TestCompareMagnitude sorts into 0, -1, 1, -2, 2.
func TestCompareMagnitude(t *testing.T) {
	xs := []int{2, -1, 0, 1, -2}
	slices.SortFunc(xs, typeb.CompareMagnitude)
	assert.Equal(t, []int{0, -1, 1, -2, 2}, xs)
	assert.Equal(t, 0, typeb.CompareMagnitude(-3, -3))
}

// TestReduce covers pair selection, zero-block stripping and ordering.
func TestReduce(t *testing.T) {
	cases := []struct {
		name string
		p    typeb.Partition
		want typeb.ReducedBlocks
	}{
		{
			name: "two singletons",
			p:    typeb.Partition{typeb.ZeroBlock(0), typeb.PairBlock(1)},
			want: typeb.ReducedBlocks{{0}, {1}},
		},
		{
			name: "signed pair",
			p:    typeb.Partition{typeb.ZeroBlock(0), typeb.PairBlock(1, -2)},
			want: typeb.ReducedBlocks{{0}, {-2, 1}},
		},
		{
			name: "signed pair given by its mirror",
			p:    typeb.Partition{typeb.ZeroBlock(0), typeb.PairBlock(-1, 2)},
			want: typeb.ReducedBlocks{{0}, {-2, 1}},
		},
		{
			name: "full zero block",
			p:    typeb.Partition{typeb.ZeroBlock(0, 2, -2, 1, -1)},
			want: typeb.ReducedBlocks{{0, 1, 2}},
		},
		{
			name: "blocks reordered",
			p:    typeb.Partition{typeb.PairBlock(2), typeb.ZeroBlock(0, 3, -3), typeb.PairBlock(-4, 1)},
			want: typeb.ReducedBlocks{{0, 3}, {-4, 1}, {2}},
		},
		{
			name: "several negatives",
			p:    typeb.Partition{typeb.ZeroBlock(0), typeb.PairBlock(1, -3, -2, 4)},
			want: typeb.ReducedBlocks{{0}, {-2, -3, 1, 4}},
		},
		{
			name: "empty pair block",
			p:    typeb.Partition{typeb.ZeroBlock(0), typeb.PairBlock()},
			want: typeb.ReducedBlocks{{0}, {}},
		},
		{
			name: "empty block sorts last",
			p:    typeb.Partition{typeb.PairBlock(), typeb.PairBlock(2), typeb.ZeroBlock(0, 1, -1)},
			want: typeb.ReducedBlocks{{0, 1}, {2}, {}},
		},
		{
			name: "empty zero block",
			p:    typeb.Partition{typeb.ZeroBlock()},
			want: typeb.ReducedBlocks{{}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, typeb.Reduce(tc.p))
		})
	}

	assert.Empty(t, typeb.Reduce(nil))
}

// TestReduce_DoesNotMutate leaves the input partition intact.
func TestReduce_DoesNotMutate(t *testing.T) {
	p := typeb.Partition{typeb.ZeroBlock(0, 2, -2), typeb.PairBlock(-1, 3)}
	before := p.Clone()
	_ = typeb.Reduce(p)
	assert.Equal(t, before, p)
}

// TestRendering covers the textual forms.
func TestRendering(t *testing.T) {
	assert.Equal(t, "0|(-2)1", typeb.ReducedBlocks{{0}, {-2, 1}}.String())
	assert.Equal(t, "0(12)", typeb.ReducedBlocks{{0, 12}}.String())
	assert.Equal(t, "{0,1,-1} {2}/{-2}",
		typeb.Partition{typeb.ZeroBlock(0, 1, -1), typeb.PairBlock(2)}.String())
}

// TestDigest ignores partition and block order.
func TestDigest(t *testing.T) {
	a := []typeb.Partition{
		{typeb.ZeroBlock(0), typeb.PairBlock(1)},
		{typeb.ZeroBlock(0, 1, -1)},
	}
	b := []typeb.Partition{
		{typeb.ZeroBlock(0, -1, 1)},
		{typeb.PairBlock(-1), typeb.ZeroBlock(0)},
	}
	assert.Equal(t, typeb.Digest(a), typeb.Digest(b))
	assert.NotEqual(t, typeb.Digest(a), typeb.Digest(a[:1]))
}
