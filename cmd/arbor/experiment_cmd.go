package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/pbanos/arbor"
	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/tree"
	"github.com/spf13/cobra"
)

type experimentCmdConfig struct {
	*rootCmdConfig
	setInputConfig
	metadataInput string
	trainSize     int
	pruneSize     int
	testSize      int
	pruneStrategy string
	seed          int64
}

func experimentCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &experimentCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Compare metrics and a pruning strategy on a set",
		Long: `Shuffle a set and run three experiments on it:
  1. grow a tree with entropy on the training and pruning records and test it
  2. grow a tree with gini on the training and pruning records and test it
  3. grow a tree with gini on the training records, prune it and test it
     before and after pruning. Reduced-error pruning is based on the
     pruning records, the other strategies on the training ones`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			pruner, err := arbor.ParsePruner(config.pruneStrategy)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			md, err := config.readMetadata(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			_, s, err := config.readSet(&config.setInputConfig, md, "input")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			err = config.run(cmd.OutOrStdout(), s, pruner)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
		},
	}
	config.setInputConfig.addFlags(cmd, "input", "STDIN, interpreted as CSV")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata declaring the types of the columns on the input set (types are inferred otherwise)")
	cmd.PersistentFlags().IntVar(&(config.trainSize), "train", 15000, "number of records to grow the pruned tree with")
	cmd.PersistentFlags().IntVar(&(config.pruneSize), "prune-size", 15000, "number of records to prune the tree with")
	cmd.PersistentFlags().IntVar(&(config.testSize), "test", 10000, "number of records to test trees with")
	cmd.PersistentFlags().StringVarP(&(config.pruneStrategy), "prune", "p", "reduced-error", "pruning strategy to apply, the following are valid: reduced-error, pessimistic-top-down, pessimistic-bottom-up, minimum-error, none")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 1, "seed for the shuffle of the input set")
	return cmd
}

func (ecc *experimentCmdConfig) Validate() error {
	if ecc.trainSize <= 0 || ecc.pruneSize < 0 || ecc.testSize <= 0 {
		return fmt.Errorf("train and test sizes must be positive and prune size must not be negative")
	}
	if ecc.pruneStrategy == "reduced-error" && ecc.pruneSize == 0 {
		return fmt.Errorf("reduced-error pruning requires a positive prune size")
	}
	return ecc.setInputConfig.Validate()
}

/*
run takes a writer, a set and a pruner and runs the experiments on the set
with the configured sizes, writing their results on the writer.
*/
func (ecc *experimentCmdConfig) run(w io.Writer, s dataset.Set, pruner arbor.Pruner) error {
	shuffled := s.Shuffle(rand.New(rand.NewSource(ecc.seed)))
	parts, err := shuffled.Split(ecc.trainSize, ecc.pruneSize, ecc.testSize)
	if err != nil {
		return fmt.Errorf("splitting set: %v", err)
	}
	trainSet, pruneSet, testSet := parts[0], parts[1], parts[2]
	fullTrainSet := shuffled[:ecc.trainSize+ecc.pruneSize]

	for i, m := range []arbor.Metric{arbor.Entropy, arbor.Gini} {
		ecc.Logf("Growing tree with %s on %d records...", m, len(fullTrainSet))
		t := (&arbor.Grower{Metric: m, Logger: ecc}).Grow(fullTrainSet)
		_, errCount := tree.EvaluateCopy(t, testSet)
		fmt.Fprintf(w, "Experiment %d (%s), test %s\n", i+1, m, accuracyReport(len(testSet), errCount))
	}

	ecc.Logf("Growing tree with gini on %d records...", len(trainSet))
	t := (&arbor.Grower{Metric: arbor.Gini, Logger: ecc}).Grow(trainSet)
	_, testErrors := tree.EvaluateCopy(t, testSet)
	fmt.Fprintf(w, "Experiment 3 (%s), %d leaves before pruning\n", ecc.pruneStrategy, tree.CountLeaves(t))
	if len(pruneSet) > 0 {
		_, pruneErrors := tree.EvaluateCopy(t, pruneSet)
		fmt.Fprintf(w, "Experiment 3 (%s), pruning %s\n", ecc.pruneStrategy, accuracyReport(len(pruneSet), pruneErrors))
	}
	fmt.Fprintf(w, "Experiment 3 (%s), test %s\n", ecc.pruneStrategy, accuracyReport(len(testSet), testErrors))
	if ecc.pruneStrategy == "reduced-error" {
		tree.Evaluate(t, pruneSet)
	}
	err = pruner.Prune(t)
	if err != nil {
		return fmt.Errorf("pruning the tree: %v", err)
	}
	fmt.Fprintf(w, "Experiment 3 (%s), %d leaves after pruning\n", ecc.pruneStrategy, tree.CountLeaves(t))
	if len(pruneSet) > 0 {
		_, pruneErrors := tree.EvaluateCopy(t, pruneSet)
		fmt.Fprintf(w, "Experiment 3 (%s), pruning %s\n", ecc.pruneStrategy, accuracyReport(len(pruneSet), pruneErrors))
	}
	_, testErrors = tree.EvaluateCopy(t, testSet)
	fmt.Fprintf(w, "Experiment 3 (%s), test %s\n", ecc.pruneStrategy, accuracyReport(len(testSet), testErrors))
	return nil
}
