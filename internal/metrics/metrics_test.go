package metrics

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics()
	assert.NoError(t, m.Register(prometheus.NewRegistry()))

	m.Observe("kmeans", 0.7, []float64{0.6, 0.8})
	m.Observe("kmeans", 0.4, []float64{0.4})
	m.Fail("kmeans")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Inspections("kmeans", Success)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Inspections("kmeans", Failure)))
	assert.Equal(t, 0.4, testutil.ToFloat64(m.Mean("kmeans")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Inspections("dbscan", Success)))
}

func TestMetrics_RegisterTwice(t *testing.T) {
	m := NewMetrics()
	r := prometheus.NewRegistry()
	assert.NoError(t, m.Register(r))
	assert.Error(t, m.Register(r))
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()

	wg := new(sync.WaitGroup)
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			m.Observe("concurrent", 0.5, []float64{0.5})
		}()
		go func() {
			defer wg.Done()
			m.Fail("concurrent")
		}()
	}
	wg.Wait()

	assert.Equal(t, 10.0, testutil.ToFloat64(m.Inspections("concurrent", Success)))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.Inspections("concurrent", Failure)))
}
