package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateWorkloadNeverRemovesOrGetsOnEmpty(t *testing.T) {
	cfg := config{Operations: 5000, InsertWeight: 10, GetWeight: 45, RemoveWeight: 45, Seed: 7}
	ops := generateWorkload(cfg)

	size := 0
	for i, o := range ops {
		switch o.kind {
		case 0:
			require.GreaterOrEqual(t, o.idx, 0)
			require.LessOrEqual(t, o.idx, size)
			size++
		case 1, 2:
			require.Greater(t, size, 0, "op %d fired on an empty structure", i)
			require.GreaterOrEqual(t, o.idx, 0)
			require.Less(t, o.idx, size)
			if o.kind == 2 {
				size--
			}
		}
	}
}

func TestGenerateWorkloadIsDeterministic(t *testing.T) {
	cfg := defaultConfig()
	cfg.Operations = 500

	a := generateWorkload(cfg)
	b := generateWorkload(cfg)
	require.Equal(t, a, b)
}

func TestRunArrayMatchesReferenceBehavior(t *testing.T) {
	ops := []op{
		{kind: 0, idx: 0, value: 1},
		{kind: 0, idx: 1, value: 2},
		{kind: 0, idx: 0, value: 0},
		{kind: 1, idx: 2},
		{kind: 2, idx: 1},
	}
	require.NotPanics(t, func() { runArray(ops) })
}

func TestLoadConfigDefaultsWithoutPath(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)
}
