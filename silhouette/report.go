package silhouette

import (
	"golang.org/x/exp/constraints"
)

// Cluster summarises the silhouette of one cluster.
type Cluster[L constraints.Ordered] struct {
	Label L       `json:"label"`
	Size  int     `json:"cluster_size"`
	Mean  float64 `json:"cluster_s_mean"`
	Min   float64 `json:"cluster_s_min"`
	Max   float64 `json:"cluster_s_max"`
}

// Report holds the mean silhouette and one summary per cluster, in label order.
type Report[L constraints.Ordered] struct {
	Mean     float64      `json:"s_mean"`
	Clusters []Cluster[L] `json:"clusters"`
}

// Size is the number of samples over all clusters.
func (r Report[L]) Size() int {
	n := 0
	for _, c := range r.Clusters {
		n += c.Size
	}
	return n
}

// Cluster returns the summary for the given label.
func (r Report[L]) Cluster(label L) (Cluster[L], bool) {
	for _, c := range r.Clusters {
		if c.Label == label {
			return c, true
		}
	}
	return Cluster[L]{}, false
}

// Quality interprets the mean silhouette.
func (r Report[L]) Quality() string {
	switch {
	case r.Mean >= 0.71:
		return "strong structure"
	case r.Mean >= 0.51:
		return "reasonable structure"
	case r.Mean >= 0.26:
		return "weak structure"
	case r.Mean >= 0:
		return "no substantial structure"
	default:
		return "artificial structure"
	}
}
