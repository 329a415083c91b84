package dataset

import (
	"fmt"
	"os"

	"github.com/drakos74/silhouette/internal/validate"
	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/base"
	"gonum.org/v1/gonum/mat"
)

// LoadCSV reads a labelled data set.
// Every line holds the feature values followed by the cluster label in the last column.
func LoadCSV(path string, headers bool) (*mat.Dense, []string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, fmt.Errorf("could not find data set: %w", err)
	}

	instances, err := base.ParseCSVToInstances(path, headers)
	if err != nil {
		return nil, nil, fmt.Errorf("could not parse data set '%s': %w", path, err)
	}

	features := base.NonClassFloatAttributes(instances)
	if len(features) == 0 {
		return nil, nil, fmt.Errorf("no numeric features in '%s': %w", path, validate.TypeMismatchErr)
	}

	specs := make([]base.AttributeSpec, len(features))
	for i, f := range features {
		spec, err := instances.GetAttribute(f)
		if err != nil {
			return nil, nil, fmt.Errorf("could not resolve attribute '%s': %w", f.GetName(), err)
		}
		specs[i] = spec
	}

	_, rows := instances.Size()
	data := mat.NewDense(rows, len(specs), nil)
	labels := make([]string, rows)
	for r := 0; r < rows; r++ {
		for c, spec := range specs {
			data.Set(r, c, base.UnpackBytesToFloat(instances.Get(spec, r)))
		}
		labels[r] = base.GetClass(instances, r)
	}

	log.Info().
		Str("path", path).
		Int("rows", rows).
		Int("features", len(specs)).
		Msg("loaded data set")
	return data, labels, nil
}

// FromRows converts the given rows into a dense table.
func FromRows(rows [][]float64) (*mat.Dense, error) {
	m, err := validate.Table("rows", rows)
	if err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(m), nil
}
