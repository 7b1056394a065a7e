package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pbanos/arbor"
	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/feature"
	"github.com/pbanos/arbor/tree"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	cmd := cliParser()
	b := &bytes.Buffer{}
	cmd.SetOut(b)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "arbor v0.1.0\n", b.String())
}

func flagsCmd() (*cobra.Command, *string, *int) {
	cmd := &cobra.Command{Use: "test"}
	var prune string
	var train int
	cmd.Flags().StringVar(&prune, "prune-input", "", "")
	cmd.Flags().IntVar(&train, "train", 10, "")
	cmd.Flags().String("metric", "entropy", "")
	return cmd, &prune, &train
}

func TestBindFlagsFromEnvironment(t *testing.T) {
	t.Setenv("ARBOR_PRUNE_INPUT", "prune.csv")
	t.Setenv("ARBOR_METRIC", "gini")
	cmd, prune, train := flagsCmd()
	require.NoError(t, cmd.Flags().Set("metric", "entropy"))
	rcc := &rootCmdConfig{configFile: filepath.Join(t.TempDir(), "missing.yaml")}
	assert.Error(t, rcc.bindFlags(cmd), "an explicit configuration file must exist")
	rcc.configFile = ""
	require.NoError(t, rcc.bindFlags(cmd))
	assert.Equal(t, "prune.csv", *prune)
	assert.Equal(t, 10, *train)
	metric, _ := cmd.Flags().GetString("metric")
	assert.Equal(t, "entropy", metric, "flags given on the command line take precedence")
}

func TestBindFlagsFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arbor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("train: 30\nprune-input: validation.csv\n"), 0600))
	cmd, prune, train := flagsCmd()
	rcc := &rootCmdConfig{configFile: path}
	require.NoError(t, rcc.bindFlags(cmd))
	assert.Equal(t, "validation.csv", *prune)
	assert.Equal(t, 30, *train)
}

func TestAccuracyReport(t *testing.T) {
	assert.Equal(t, "accuracy: 3/4 = 0.750000", accuracyReport(4, 1))
	assert.Equal(t, "accuracy: 0/0 = 0.000000", accuracyReport(0, 0))
}

func numberedSet(n int) dataset.Set {
	s := make(dataset.Set, n)
	for i := range s {
		label := "A"
		if i%2 == 1 {
			label = "B"
		}
		s[i] = dataset.Record{float64(i % 2), label}
	}
	return s
}

func TestSplitSet(t *testing.T) {
	s := numberedSet(10)
	parts, err := splitSet(s, []int{3, 4}, true, 7)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Len(t, parts[0], 3)
	assert.Len(t, parts[1], 4)
	assert.Len(t, parts[2], 3)
	var all dataset.Set
	for _, p := range parts {
		all = append(all, p...)
	}
	assert.ElementsMatch(t, s, all)

	again, err := splitSet(s, []int{3, 4}, false, 7)
	require.NoError(t, err)
	assert.Equal(t, parts[:2], again)

	_, err = splitSet(s, []int{8, 4}, false, 7)
	assert.Error(t, err)
}

func TestShowTree(t *testing.T) {
	x := feature.NewInferredFeature("x", 0)
	n := tree.NewInternal(feature.NewContinuousCriterion(x, 1),
		tree.New("B", map[string]int{"B": 2}),
		tree.New("A", map[string]int{"A": 1}),
		"B", map[string]int{"A": 1, "B": 2})
	features := []feature.Feature{x, feature.NewInferredFeature("label", 1)}

	b := &bytes.Buffer{}
	require.NoError(t, showTree(b, n, features, "text"))
	assert.True(t, strings.HasPrefix(b.String(), "B {A: 1, B: 2} err = 1 x >= 1 ?\n"))

	b.Reset()
	require.NoError(t, showTree(b, n, features, "dot"))
	assert.Contains(t, b.String(), "digraph arbor")

	assert.Error(t, showTree(b, nil, features, "dot"))
}

func TestRedisStoreLocation(t *testing.T) {
	assert.True(t, isRedisLocation("redis://localhost:6379/tree"))
	assert.False(t, isRedisLocation("tree.json"))

	store, key, err := redisStore("redis://:secret@localhost:6379/trees/iris", nil)
	require.NoError(t, err)
	assert.Equal(t, "trees/iris", key)
	assert.NoError(t, store.Close(context.Background()))

	_, _, err = redisStore("redis://localhost:6379/", nil)
	assert.Error(t, err)
}

func TestExperimentRun(t *testing.T) {
	ecc := &experimentCmdConfig{
		rootCmdConfig: &rootCmdConfig{},
		trainSize:     8,
		pruneSize:     4,
		testSize:      6,
		pruneStrategy: "minimum-error",
		seed:          1,
	}
	pruner, err := arbor.ParsePruner(ecc.pruneStrategy)
	require.NoError(t, err)
	b := &bytes.Buffer{}
	require.NoError(t, ecc.run(b, numberedSet(20), pruner))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "Experiment 1 (entropy), test accuracy: "))
	assert.True(t, strings.HasPrefix(lines[1], "Experiment 2 (gini), test accuracy: "))
	for _, l := range lines[2:] {
		assert.True(t, strings.HasPrefix(l, "Experiment 3 (minimum-error), "))
	}

	ecc.testSize = 20
	assert.Error(t, ecc.run(b, numberedSet(20), pruner))
}
