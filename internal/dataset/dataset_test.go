package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/silhouette/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const labelled = `0.10,0.20,north
0.20,0.10,north
0.15,0.25,north
9.90,10.10,south
10.20,9.80,south
10.00,10.30,south
`

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blobs.csv")
	require.NoError(t, os.WriteFile(path, []byte(labelled), 0644))

	data, labels, err := LoadCSV(path, false)
	require.NoError(t, err)

	r, c := data.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 2, c)
	assert.InDelta(t, 0.1, data.At(0, 0), 1e-9)
	assert.InDelta(t, 9.8, data.At(4, 1), 1e-9)
	assert.Equal(t, []string{"north", "north", "north", "south", "south", "south"}, labels)
}

func TestLoadCSV_Missing(t *testing.T) {
	_, _, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), false)
	assert.Error(t, err)
}

func TestFromRows(t *testing.T) {
	d, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, 4.0, d.At(1, 1))

	_, err = FromRows([][]float64{{1, 2}, {3}})
	assert.True(t, errors.Is(err, validate.TypeMismatchErr))
}
