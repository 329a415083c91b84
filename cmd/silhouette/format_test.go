package main

import (
	"strings"
	"testing"

	"github.com/drakos74/silhouette/silhouette"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	report := &silhouette.Report[string]{
		Mean: 0.625,
		Clusters: []silhouette.Cluster[string]{
			{Label: "north", Size: 3, Mean: 0.5, Min: 0.25, Max: 0.75},
			{Label: "south", Size: 1, Mean: 1, Min: 1, Max: 1},
		},
	}

	out := new(strings.Builder)
	render(out, report)

	s := out.String()
	assert.Contains(t, s, "north")
	assert.Contains(t, s, "0.250")
	assert.Contains(t, s, "south")
	assert.Contains(t, s, "0.625")
}
