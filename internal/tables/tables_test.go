package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/betnumbers/betnumber"
)

func TestBuiltinRowCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		game     string
		category string
		rows     int
		size     int
	}{
		{game: "roulette", category: "straight-up", rows: 37, size: 1},
		{game: "roulette", category: "corner", rows: 23, size: 4},
		{game: "roulette", category: "line", rows: 11, size: 6},
		{game: "roulette", category: "column", rows: 3, size: 12},
		{game: "roulette", category: "dozen", rows: 3, size: 12},
		{game: "roulette", category: "odd-even", rows: 2, size: 18},
		{game: "sicbo", category: "total-4-17", rows: 2},
		{game: "sicbo", category: "total-6-15", rows: 2},
		{game: "sicbo", category: "total-7-14", rows: 2},
	}

	for _, tt := range tests {
		t.Run(tt.game+"/"+tt.category, func(t *testing.T) {
			t.Parallel()
			g, err := Lookup(tt.game)
			require.NoError(t, err)
			c, err := g.Category(tt.category)
			require.NoError(t, err)

			require.Len(t, c.Rows, tt.rows)
			for _, row := range c.Rows {
				assert.Len(t, row.Positions, tt.size, row.Label)
			}
		})
	}
}

func TestEncodeCategoryMatchesScripts(t *testing.T) {
	t.Parallel()

	g := Roulette()
	entries, err := g.EncodeCategory("column")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "2713877091499598330239944961141122840311015265600950719674787125205098112146", entries[0].ID.Dec())
	assert.Equal(t, "2713877091499598330239944961141122840311015265600950719674787125264000520776", entries[2].ID.Dec())
	assert.Equal(t, "roulette/column/1st", entries[0].Label())

	oddEven, err := g.EncodeCategory("odd-even")
	require.NoError(t, err)
	assert.Equal(t, "4070815637249397495359917441711684260466522898401426079512180687824008948394", oddEven[0].ID.Dec())
	assert.Equal(t, "4070815637249397495359917441711684260466522898401426079512180687869821932884", oddEven[1].ID.Dec())

	sicbo := Sicbo()
	totals, err := sicbo.EncodeCategory("total-4-17")
	require.NoError(t, err)
	assert.Equal(t, "2720944479758711867558278151144094514374325201188453195507273549990634455040", totals[0].ID.Dec())
	assert.Equal(t, "2743913491600830863842861018653752455080082491847836241962854430607438512128", totals[1].ID.Dec())
}

func TestStraightUpRows(t *testing.T) {
	t.Parallel()

	entries, err := Roulette().EncodeCategory("straight-up")
	require.NoError(t, err)

	for n, e := range entries {
		tag, set := betnumber.Decode(e.ID)
		assert.Equal(t, betnumber.Tag(RouletteStraightUp), tag)
		assert.Equal(t, []int{n}, set.Positions())
	}
}

func TestCornerLabels(t *testing.T) {
	t.Parallel()

	c, err := Roulette().Category("corner")
	require.NoError(t, err)
	assert.Equal(t, "0-1-2-3", c.Rows[0].Label)
	assert.Equal(t, "32-33-35-36", c.Rows[len(c.Rows)-1].Label)
}

func TestLookupErrors(t *testing.T) {
	t.Parallel()

	_, err := Lookup("baccarat")
	assert.EqualError(t, err, `unknown game "baccarat" (available: roulette, sicbo)`)

	g, err := Lookup("ROULETTE")
	require.NoError(t, err)
	_, err = g.Category("split")
	assert.ErrorContains(t, err, `unknown category "split"`)
}

func TestEncodeRejectsOutOfRangeRows(t *testing.T) {
	t.Parallel()

	g := Roulette()
	require.NoError(t, g.AddCategory(Category{
		Name: "broken",
		Tag:  2,
		Rows: []Row{{Label: "bad", Positions: []int{35, 37}}},
	}))

	_, err := g.EncodeCategory("broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, betnumber.ErrInvalidPosition)
	assert.ErrorContains(t, err, "roulette/broken/bad")

	_, err = g.EncodeAll()
	assert.ErrorIs(t, err, betnumber.ErrInvalidPosition)
}

func TestEncodeRejectsEmptyRows(t *testing.T) {
	t.Parallel()

	g := Roulette()
	require.NoError(t, g.AddCategory(Category{Name: "hollow", Tag: 2, Rows: []Row{{Label: "none"}}}))

	_, err := g.EncodeCategory("hollow")
	assert.ErrorIs(t, err, betnumber.ErrEmptyPositionSet)
}

func TestEncodeRejectsOutOfRangeTotals(t *testing.T) {
	t.Parallel()

	g := Sicbo()
	require.NoError(t, g.AddCategory(Category{
		Name:   "total-2",
		Tag:    7,
		Layout: LayoutTotal,
		Rows:   []Row{{Label: "2", Total: 2}},
	}))

	_, err := g.EncodeCategory("total-2")
	assert.ErrorIs(t, err, betnumber.ErrInvalidTotal)
}

func TestAddCategoryRejectsDuplicates(t *testing.T) {
	t.Parallel()

	err := Roulette().AddCategory(Category{Name: "Dozen", Tag: 7})
	assert.ErrorContains(t, err, "already defined")
}

func TestParseLayout(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]Layout{"": LayoutMask, "mask": LayoutMask, " Total ": LayoutTotal} {
		got, err := ParseLayout(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseLayout("bitmap")
	assert.Error(t, err)
	assert.Equal(t, "total", LayoutTotal.String())
}

func TestGamesAreIndependentCopies(t *testing.T) {
	t.Parallel()

	first := Games()
	first[0].Categories[0].Rows[0].Positions[0] = 99

	second := Games()
	assert.Equal(t, 0, second[0].Categories[0].Rows[0].Positions[0])
}
