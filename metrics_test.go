package kvdb

import (
	"testing"

	"github.com/davidroman0O/kvdb/store"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, operation, result string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	var family *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "kvdb_operations_total" {
			family = f
		}
	}
	if family == nil {
		return 0
	}

	for _, m := range family.GetMetric() {
		labels := map[string]string{}
		for _, l := range m.GetLabel() {
			labels[l.GetName()] = l.GetValue()
		}
		if labels["operation"] == operation && labels["result"] == result {
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestMetricsLayer(t *testing.T) {
	reg := prometheus.NewRegistry()
	layer, err := WithMetrics(reg)
	require.NoError(t, err)

	db := layer(store.NewKVStore())
	db.Insert("a", 1)
	db.Insert("a", 2)
	GetAs[int](db, "a")
	GetAs[string](db, "a")
	GetAs[int](db, "missing")
	db.Remove("a")
	db.Remove("a")

	assert.Equal(t, 2.0, counterValue(t, reg, "insert", "ok"))
	// A type mismatch is still a found lookup.
	assert.Equal(t, 2.0, counterValue(t, reg, "lookup", "ok"))
	assert.Equal(t, 1.0, counterValue(t, reg, "lookup", "miss"))
	assert.Equal(t, 1.0, counterValue(t, reg, "remove", "ok"))
	assert.Equal(t, 1.0, counterValue(t, reg, "remove", "miss"))
}

func TestMetricsLayerSharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()

	first, err := WithMetrics(reg)
	require.NoError(t, err)
	second, err := WithMetrics(reg)
	require.NoError(t, err)

	first(store.NewKVStore()).Insert("a", 1)
	second(store.NewKVStore()).Insert("b", 2)

	assert.Equal(t, 2.0, counterValue(t, reg, "insert", "ok"))
}

func TestMetricsLayerNilRegisterer(t *testing.T) {
	layer, err := WithMetrics(nil)
	assert.Error(t, err)
	assert.Nil(t, layer)
}
