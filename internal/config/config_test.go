package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fintrack.yaml")

	cfg := Default()
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.BaseCurrency, loaded.BaseCurrency)
	assert.Equal(t, cfg.Rates.Pivot, loaded.Rates.Pivot)
	assert.Equal(t, cfg.Aliases["Food"], loaded.Aliases["Food"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestRateTable(t *testing.T) {
	rt := Default().RateTable()
	assert.Equal(t, "USD", rt.Pivot)
	assert.False(t, rt.Rate("EUR").IsZero())
	// Unknown codes default to 1 at the engine level.
	assert.True(t, rt.Rate("XXQ").Equal(rt.Rate("USD")))
}

func TestBudgetAliases(t *testing.T) {
	aliases := Default().BudgetAliases()
	assert.True(t, aliases.Matches("Food", "Groceries"))
	assert.False(t, aliases.Matches("Food", "Rent"))
}
