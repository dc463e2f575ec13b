package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/niksmo/recommender/internal/adapter/loader"
	"github.com/niksmo/recommender/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.txt")
	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)
	return path
}

func TestFileLoader(t *testing.T) {
	t.Run("SectionedSource", func(t *testing.T) {
		path := writeSource(t, `
# demo catalog

[PREFERENCES]
AgeRange,Gender,Category,Weight
25-34,M,ELECTRONICS,1.0
18-24,F,CLOTHING,1.1

[PRODUCTS]
ID,Name,Category,Price,Rating,Tags
P1, iPhone 15 Pro , Electronics, 999.00, 4.8, smartphone, apple
P2,Galaxy S24,Electronics,899.00,4.7,smartphone,android
P3,Yoga Mat,Sports,35.00,4.3
`)

		catalog, err := loader.NewFileLoader(path).Load()
		require.NoError(t, err)

		require.Equal(t, 3, catalog.Len())
		require.Len(t, catalog.Preferences(), 2)

		p, ok := catalog.ProductByID("P1")
		require.True(t, ok)
		assert.Equal(t, "iPhone 15 Pro", p.Name)
		assert.Equal(t, "Electronics", p.Category)
		assert.Equal(t, 999.00, p.Price)
		assert.Equal(t, 4.8, p.Rating)
		assert.Equal(t, []string{"smartphone", "apple"}, p.Tags)

		noTags, ok := catalog.ProductByID("P3")
		require.True(t, ok)
		assert.Empty(t, noTags.Tags)

		pref := catalog.Preferences()[0]
		assert.Equal(t, "25-34", pref.AgeRange)
		assert.Equal(t, "M", pref.Gender)
		assert.Equal(t, "ELECTRONICS", pref.Category)
		assert.Equal(t, 1.0, pref.Weight)
	})

	t.Run("MalformedRowsAreDropped", func(t *testing.T) {
		path := writeSource(t, `[PREFERENCES]
AgeRange,Gender,Category,Weight
25-34,M,ELECTRONICS,not-a-number
25-34,M
25-34,F,HOME,0.9

[PRODUCTS]
ID,Name,Category,Price,Rating,Tags
P1,Okay,Electronics,10.00,4.0
P2,TooShort,Electronics
P3,BadRating,Electronics,10.00,five
,NoID,Electronics,10.00,4.0
`)

		catalog, err := loader.NewFileLoader(path).Load()
		require.NoError(t, err)

		require.Len(t, catalog.Preferences(), 1)
		assert.Equal(t, "HOME", catalog.Preferences()[0].Category)

		require.Equal(t, 1, catalog.Len())
		_, ok := catalog.ProductByID("P1")
		assert.True(t, ok)
	})

	t.Run("BadPriceKeepsRowAsZero", func(t *testing.T) {
		path := writeSource(t, `[PRODUCTS]
ID,Name,Category,Price,Rating,Tags
P1,Freebie,Electronics,oops,4.0,gadget
`)

		catalog, err := loader.NewFileLoader(path).Load()
		require.NoError(t, err)

		p, ok := catalog.ProductByID("P1")
		require.True(t, ok)
		assert.Zero(t, p.Price)
		assert.Equal(t, 4.0, p.Rating)
	})

	t.Run("DuplicateIDsFirstWins", func(t *testing.T) {
		path := writeSource(t, `[PRODUCTS]
ID,Name,Category,Price,Rating,Tags
P1,First,Electronics,10.00,4.0
P1,Second,Electronics,20.00,3.0
`)

		catalog, err := loader.NewFileLoader(path).Load()
		require.NoError(t, err)

		require.Equal(t, 1, catalog.Len())
		p, _ := catalog.ProductByID("P1")
		assert.Equal(t, "First", p.Name)
	})

	t.Run("RowsOutsideSectionsAreDropped", func(t *testing.T) {
		path := writeSource(t, `P1,Stray,Electronics,10.00,4.0

[PRODUCTS]
ID,Name,Category,Price,Rating,Tags
P2,Kept,Electronics,10.00,4.0
`)

		catalog, err := loader.NewFileLoader(path).Load()
		require.NoError(t, err)

		require.Equal(t, 1, catalog.Len())
		_, ok := catalog.ProductByID("P2")
		assert.True(t, ok)
	})

	t.Run("EmptySourceIsValid", func(t *testing.T) {
		path := writeSource(t, "")

		catalog, err := loader.NewFileLoader(path).Load()
		require.NoError(t, err)
		assert.Zero(t, catalog.Len())
	})

	t.Run("MissingFileIsNoData", func(t *testing.T) {
		_, err := loader.NewFileLoader(
			filepath.Join(t.TempDir(), "nope.txt"),
		).Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNoData)
	})
}

func TestSample(t *testing.T) {
	catalog := loader.Sample()

	assert.NotZero(t, catalog.Len())
	assert.NotEmpty(t, catalog.Preferences())
	assert.NotEmpty(t, catalog.Categories())
}
