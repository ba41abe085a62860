package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func newTestBeer(t *testing.T) *Beer {
	t.Helper()
	beer, err := NewBeer("Galaxy Cat", StylePaleAle, "12356222", intPtr(392), decimal.NewFromFloat(11.99))
	require.NoError(t, err)
	return beer
}

func TestNewBeer_Success(t *testing.T) {
	beer := newTestBeer(t)

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", beer.ID.String())
	assert.Equal(t, 1, beer.Version)
	assert.Equal(t, "Galaxy Cat", beer.BeerName)
	assert.Equal(t, StylePaleAle, beer.BeerStyle)
	assert.False(t, beer.CreatedAt.IsZero())
	assert.False(t, beer.UpdatedAt.IsZero())
}

func TestNewBeer_BlankName(t *testing.T) {
	_, err := NewBeer("   ", StyleIPA, "12356", nil, decimal.NewFromInt(10))
	assert.Error(t, err)
}

func TestNewBeer_NameTooLong(t *testing.T) {
	name := make([]byte, 51)
	for i := range name {
		name[i] = 'a'
	}
	_, err := NewBeer(string(name), StyleIPA, "12356", nil, decimal.NewFromInt(10))
	assert.Error(t, err)
}

func TestNewBeer_MultibyteNameAtLimit(t *testing.T) {
	// 50 runes but 100 bytes; the limit counts runes
	name := strings.Repeat("ö", 50)
	beer, err := NewBeer(name, StyleIPA, "12356", nil, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, name, beer.BeerName)

	_, err = NewBeer(strings.Repeat("ö", 51), StyleIPA, "12356", nil, decimal.NewFromInt(10))
	assert.Error(t, err)
}

func TestNewBeer_UnknownStyle(t *testing.T) {
	_, err := NewBeer("Mango Bobs", BeerStyle("MALBEC"), "12356", nil, decimal.NewFromInt(10))
	assert.Error(t, err)
}

func TestBeer_Replace(t *testing.T) {
	beer := newTestBeer(t)
	before := beer.UpdatedAt
	time.Sleep(time.Millisecond)

	err := beer.Replace("Crank", StyleIPA, "12356222", intPtr(100), decimal.NewFromFloat(12.99))
	require.NoError(t, err)

	assert.Equal(t, "Crank", beer.BeerName)
	assert.Equal(t, StyleIPA, beer.BeerStyle)
	assert.Equal(t, 2, beer.Version)
	assert.True(t, beer.UpdatedAt.After(before))
}

func TestBeer_Replace_InvalidRollsBack(t *testing.T) {
	beer := newTestBeer(t)

	err := beer.Replace("", StyleIPA, "12356222", nil, decimal.NewFromInt(1))
	assert.Error(t, err)
	assert.Equal(t, "Galaxy Cat", beer.BeerName)
	assert.Equal(t, 1, beer.Version)
}

func TestBeer_ApplyPatch_NameOnly(t *testing.T) {
	beer := newTestBeer(t)
	name := "Sunshine City"

	err := beer.ApplyPatch(BeerPatch{BeerName: &name})
	require.NoError(t, err)

	assert.Equal(t, "Sunshine City", beer.BeerName)
	assert.Equal(t, StylePaleAle, beer.BeerStyle)
	assert.Equal(t, "12356222", beer.UPC)
	assert.Equal(t, 392, *beer.QuantityOnHand)
	assert.Equal(t, 2, beer.Version)
}

func TestBeer_ApplyPatch_BlankStringIgnored(t *testing.T) {
	beer := newTestBeer(t)
	blank := "   "
	qty := 7

	err := beer.ApplyPatch(BeerPatch{BeerName: &blank, QuantityOnHand: &qty})
	require.NoError(t, err)

	assert.Equal(t, "Galaxy Cat", beer.BeerName)
	assert.Equal(t, 7, *beer.QuantityOnHand)
}

func TestBeer_ApplyPatch_Empty(t *testing.T) {
	beer := newTestBeer(t)

	err := beer.ApplyPatch(BeerPatch{})
	require.NoError(t, err)

	assert.Equal(t, "Galaxy Cat", beer.BeerName)
	assert.Equal(t, 2, beer.Version)
}

func TestBeer_RedactInventory(t *testing.T) {
	beer := newTestBeer(t)
	beer.RedactInventory()
	assert.Nil(t, beer.QuantityOnHand)
}

func TestBeer_Categories(t *testing.T) {
	beer := newTestBeer(t)
	cat, err := NewCategory("Pale Ales")
	require.NoError(t, err)

	beer.AddCategory(*cat)
	beer.AddCategory(*cat)
	assert.Len(t, beer.Categories, 1)

	beer.RemoveCategory(*cat)
	assert.Empty(t, beer.Categories)
}

func TestParseBeerStyle(t *testing.T) {
	style, ok := ParseBeerStyle("pale_ale")
	assert.True(t, ok)
	assert.Equal(t, StylePaleAle, style)

	_, ok = ParseBeerStyle("CABERNET")
	assert.False(t, ok)
}
