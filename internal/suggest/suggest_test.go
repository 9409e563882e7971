package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestContainment(t *testing.T) {
	known := []string{"Stack", "BlockStack", "Button"}

	t.Run("unknown contained in known", func(t *testing.T) {
		got, ok := Suggest("Block", known)
		assert.True(t, ok)
		assert.Equal(t, "BlockStack", got)
	})

	t.Run("known contained in unknown", func(t *testing.T) {
		got, ok := Suggest("PrimaryButton", known)
		assert.True(t, ok)
		assert.Equal(t, "Button", got)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got, ok := Suggest("blockstack", known)
		assert.True(t, ok)
		assert.Equal(t, "BlockStack", got)
	})
}

func TestSuggestNearMiss(t *testing.T) {
	t.Run("dropped letter", func(t *testing.T) {
		got, ok := Suggest("Buton", []string{"Button", "Card", "CardHeader"})
		assert.True(t, ok)
		assert.Equal(t, "Button", got)
	})

	t.Run("Stak resolves to Stack", func(t *testing.T) {
		got, ok := Suggest("Stak", []string{"Stack", "BlockStack"})
		assert.True(t, ok)
		assert.Equal(t, "Stack", got)
	})

	t.Run("too short never matches", func(t *testing.T) {
		_, ok := Suggest("Zg", []string{"Tag"})
		assert.False(t, ok)
	})

	t.Run("too much slack never matches", func(t *testing.T) {
		_, ok := Suggest("Tag", []string{"Pagination"})
		assert.False(t, ok)
	})
}

func TestSuggestDeterminism(t *testing.T) {
	known := []string{"Stack", "BlockStack"}
	for i := 0; i < 20; i++ {
		got, ok := Suggest("Stak", known)
		assert.True(t, ok)
		assert.Equal(t, "Stack", got)
	}
}

func TestSuggestSynonymTable(t *testing.T) {
	t.Run("first synonym present wins", func(t *testing.T) {
		got, ok := Suggest("dropdown", []string{"ActionList", "Select"})
		assert.True(t, ok)
		assert.Equal(t, "Select", got)
	})

	t.Run("falls through when none present", func(t *testing.T) {
		_, ok := Suggest("dropdown", []string{"Zebra"})
		assert.False(t, ok)
	})
}

func TestSuggestNoMatch(t *testing.T) {
	_, ok := Suggest("Xyzzy", []string{"Button", "Card"})
	assert.False(t, ok)

	_, ok = Suggest("", []string{"Button"})
	assert.False(t, ok)

	_, ok = Suggest("Button", nil)
	assert.False(t, ok)
}

func TestMap(t *testing.T) {
	known := []string{"Button", "Card"}
	got := Map([]string{"Buton", "Xyzzy"}, known)
	assert.Equal(t, map[string]string{"Buton": "Button"}, got)
}
