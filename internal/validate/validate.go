package validate

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// TypeMismatchErr signals an input of the wrong shape or type.
var TypeMismatchErr = errors.New("type mismatch")

// Formats lists the image formats a plot can be saved as, keyed by file extension.
var Formats = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".svg":  {},
	".pdf":  {},
	".eps":  {},
	".tif":  {},
	".tiff": {},
}

// Table checks that v is a two-dimensional numeric table and returns it as a matrix.
// Accepted are any mat.Matrix and rectangular [][]float64 slices.
func Table(name string, v interface{}) (mat.Matrix, error) {
	switch t := v.(type) {
	case nil:
		return nil, fmt.Errorf("'%s' is nil: %w", name, TypeMismatchErr)
	case mat.Matrix:
		// a typed nil matrix panics on Dims
		if rv := reflect.ValueOf(t); rv.Kind() == reflect.Ptr && rv.IsNil() {
			return nil, fmt.Errorf("'%s' is a nil %T: %w", name, v, TypeMismatchErr)
		}
		if r, c := t.Dims(); r == 0 || c == 0 {
			return nil, fmt.Errorf("'%s' is empty: %w", name, TypeMismatchErr)
		}
		return t, nil
	case [][]float64:
		d, err := rows(name, t)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("'%s' must be a numeric table but was %T: %w", name, v, TypeMismatchErr)
	}
}

func rows(name string, rr [][]float64) (*mat.Dense, error) {
	if len(rr) == 0 || len(rr[0]) == 0 {
		return nil, fmt.Errorf("'%s' is empty: %w", name, TypeMismatchErr)
	}
	dim := len(rr[0])
	data := make([]float64, 0, len(rr)*dim)
	for i, r := range rr {
		if len(r) != dim {
			return nil, fmt.Errorf("'%s' row %d has %d columns, expected %d: %w", name, i, len(r), dim, TypeMismatchErr)
		}
		data = append(data, r...)
	}
	return mat.NewDense(len(rr), dim, data), nil
}

// Aligned checks that there is exactly one label per row.
func Aligned(name string, rows, labels int) error {
	if rows != labels {
		return fmt.Errorf("'%s' has %d values for %d rows: %w", name, labels, rows, TypeMismatchErr)
	}
	return nil
}

// Path checks that the given path, if any, points to a supported image format.
func Path(name string, path string) error {
	if path == "" {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := Formats[ext]; !ok {
		return fmt.Errorf("'%s' has unsupported image format '%s': %w", name, ext, TypeMismatchErr)
	}
	return nil
}
