package main

import (
	"fmt"
	"os"

	"github.com/pbanos/arbor"
	"github.com/pbanos/arbor/tree"
	"github.com/spf13/cobra"
)

type growCmdConfig struct {
	*rootCmdConfig
	setInputConfig
	metadataInput string
	output        string
	metric        string
	pruneStrategy string
	pruneInput    string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long: `Grow a tree from a set of labelled data, the label being the last column,
and optionally prune it afterwards.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			metric, err := arbor.ParseMetric(config.metric)
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
			features, trainingSet, err := config.readSet(&config.setInputConfig, md, "training")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Growing tree from a set with %d records and %d features with %s...", trainingSet.Count(), trainingSet.FeatureCount(), metric)
			grower := &arbor.Grower{Metric: metric, Features: features[:len(features)-1], Logger: config}
			t := grower.Grow(trainingSet)
			config.Logf("Done")
			if config.pruneInput != "" {
				_, pruneSet, err := config.readSet(&setInputConfig{location: config.pruneInput, table: config.table, columns: config.columns, maxDBConns: config.maxDBConns}, md, "pruning")
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
				errCount := tree.Evaluate(t, pruneSet)
				config.Logf("Tree misclassifies %d of %d records of the pruning set", errCount, pruneSet.Count())
			}
			config.Logf("Pruning tree with %s strategy...", config.pruneStrategy)
			leaves := tree.CountLeaves(t)
			err = pruner.Prune(t)
			if err != nil {
				fmt.Fprintf(os.Stderr, "pruning the tree: %v\n", err)
				os.Exit(5)
			}
			config.Logf("Done: %d leaves before, %d after", leaves, tree.CountLeaves(t))
			config.Logf("%s", tree.Render(t, nil))
			err = config.writeTree(config.output, t, features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
		},
	}
	config.setInputConfig.addFlags(cmd, "training", "STDIN, interpreted as CSV")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata declaring the types of the columns on the input set (types are inferred otherwise)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the generated tree will be written in JSON format or redis://host:port/key URL to store it in redis (defaults to STDOUT)")
	cmd.PersistentFlags().StringVar(&(config.metric), "metric", "entropy", "impurity metric to choose splits with: entropy or gini")
	cmd.PersistentFlags().StringVarP(&(config.pruneStrategy), "prune", "p", "none", "pruning strategy to apply, the following are valid: reduced-error, pessimistic-top-down, pessimistic-bottom-up, minimum-error, none")
	cmd.PersistentFlags().StringVar(&(config.pruneInput), "prune-input", "", "path to a set (in the same format as the input) to evaluate the tree on before pruning it (required for reduced-error pruning)")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.pruneStrategy == "reduced-error" && gcc.pruneInput == "" {
		return fmt.Errorf("reduced-error pruning requires the prune-input flag to be set")
	}
	return gcc.setInputConfig.Validate()
}
