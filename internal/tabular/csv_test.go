package tabular

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylebot-ai/support-engine/internal/config"
	"github.com/stylebot-ai/support-engine/internal/observability"
)

func TestCSVLoadTable(t *testing.T) {
	dir := t.TempDir()
	csv := "id,name,latitude,longitude\n1,New York DC,40.7128,-74.0060\n2,California DC,,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "distribution_centers.csv"), []byte(csv), 0o644))

	src := NewCSVSource(dir)
	table, err := src.loadTable(CollectionDistributionCenters)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	lat, ok := table.Rows[0].Float64("latitude")
	require.True(t, ok)
	assert.InDelta(t, 40.7128, lat, 0.0001)

	assert.True(t, table.Rows[1].Get("latitude").IsNull(), "empty cells load as null")
}

func TestCSVLoadMissingFile(t *testing.T) {
	src := NewCSVSource(t.TempDir())

	_, err := src.Load(context.Background())
	require.Error(t, err)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestOpenFallsBackToFixture(t *testing.T) {
	cfg := config.DataConfig{
		Source: "csv",
		CSV:    config.CSVConfig{Dir: filepath.Join(t.TempDir(), "does-not-exist")},
	}

	store := Open(context.Background(), cfg, observability.NopLogger())
	require.NotNil(t, store)
	assert.True(t, store.Synthetic, "unreadable source must fall back to the synthetic fixture")
	assert.Equal(t, 5, store.Products.Len())
}

func TestOpenUnknownSourceFallsBack(t *testing.T) {
	store := Open(context.Background(), config.DataConfig{Source: "mongodb"}, observability.NopLogger())
	assert.True(t, store.Synthetic)
}
