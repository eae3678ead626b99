package main

import (
	"os"
	"path/filepath"
	"testing"

	"delivery-tracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxonomy.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCSV(t *testing.T) {
	t.Run("reads rows until end of file", func(t *testing.T) {
		path := writeCSV(t, "gate,road,road_side,main_alley,main_alley_side,sub_alley,sub_alley_side\n"+
			"Gate 1,North Rd,,Alley 3\n"+
			"Gate 4\n")

		paths, err := parseCSV(path)
		require.NoError(t, err)
		require.Len(t, paths, 2)
		assert.Equal(t, models.TaxonomyPath{
			Gate: "Gate 1", Road: "North Rd", RoadSide: "-",
			MainAlley: "Alley 3", MainAlleySide: "-", SubAlley: "-", SubAlleySide: "-",
		}, paths[0])
		assert.Equal(t, "Gate 4", paths[1].Gate)
	})

	t.Run("header-only file yields no paths", func(t *testing.T) {
		path := writeCSV(t, "gate,road,road_side,main_alley,main_alley_side,sub_alley,sub_alley_side\n")

		paths, err := parseCSV(path)
		require.NoError(t, err)
		assert.Empty(t, paths)
	})

	t.Run("missing gate reports the line number", func(t *testing.T) {
		path := writeCSV(t, "gate,road\nGate 1,North Rd\n,South Rd\n")

		_, err := parseCSV(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")
	})
}
