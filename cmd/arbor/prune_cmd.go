package main

import (
	"fmt"
	"os"

	"github.com/pbanos/arbor"
	"github.com/pbanos/arbor/tree"
	"github.com/spf13/cobra"
)

type pruneCmdConfig struct {
	*rootCmdConfig
	setInputConfig
	treeInput     string
	metadataInput string
	output        string
	pruneStrategy string
}

func pruneCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &pruneCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Prune a tree",
		Long: `Prune a tree with a strategy, after evaluating it on a pruning set if one is
given. Otherwise the tree is pruned with the counts it was stored with.`,
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
			t, features, err := config.readTree(config.treeInput, md)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			if config.location != "" {
				_, pruneSet, err := config.readSet(&config.setInputConfig, md, "pruning")
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
			err = config.writeTree(config.output, t, features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(6)
			}
		},
	}
	config.setInputConfig.addFlags(cmd, "pruning", "none: the tree is pruned with the counts it was stored with")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata declaring the types of the columns of the tree and the input set (types are inferred otherwise)")
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree to prune will be read and parsed as JSON, or redis://host:port/key URL to load it from redis (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the pruned tree will be written in JSON format or redis://host:port/key URL to store it in redis (defaults to STDOUT)")
	cmd.PersistentFlags().StringVarP(&(config.pruneStrategy), "prune", "p", "", "pruning strategy to apply, the following are valid: reduced-error, pessimistic-top-down, pessimistic-bottom-up, minimum-error, none (required)")
	return cmd
}

func (pcc *pruneCmdConfig) Validate() error {
	if pcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if pcc.pruneStrategy == "" {
		return fmt.Errorf("required prune flag was not set")
	}
	if pcc.pruneStrategy == "reduced-error" && pcc.location == "" {
		return fmt.Errorf("reduced-error pruning requires the input flag to be set")
	}
	return pcc.setInputConfig.Validate()
}
