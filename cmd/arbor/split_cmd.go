package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/dataset/csv"
	"github.com/spf13/cobra"
)

type splitCmdConfig struct {
	*rootCmdConfig
	setInputConfig
	metadataInput string
	outputs       []string
	sizes         []int
	seed          int64
}

func splitCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &splitCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a set into several sets",
		Long: `Shuffle a set and split it into consecutive sets with the given sizes, such as
training, pruning and testing sets. An output can be given beyond the sizes
to take the records left over.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := config.Validate()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			md, err := config.readMetadata(config.metadataInput)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			features, s, err := config.readSet(&config.setInputConfig, md, "input")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			config.Logf("Splitting set with %d records using seed %d...", s.Count(), config.seed)
			parts, err := splitSet(s, config.sizes, len(config.outputs) > len(config.sizes), config.seed)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			for i, part := range parts {
				config.Logf("Creating %s to dump split set...", config.outputs[i])
				f, err := os.Create(config.outputs[i])
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(5)
				}
				w, err := csv.NewWriter(f, features)
				if err == nil {
					_, err = w.Write(part)
				}
				if err == nil {
					err = w.Flush()
				}
				f.Close()
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(6)
				}
				config.Logf("Wrote %d records to %s", w.Count(), config.outputs[i])
			}
			config.Logf("Done")
		},
	}
	config.setInputConfig.addFlags(cmd, "input", "STDIN, interpreted as CSV")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata declaring the types of the columns on the input set (types are inferred otherwise)")
	cmd.PersistentFlags().StringSliceVarP(&(config.outputs), "outputs", "o", nil, "paths to the CSV files to dump the split sets on, one per size plus an optional one for the remaining records (required)")
	cmd.PersistentFlags().IntSliceVarP(&(config.sizes), "sizes", "s", nil, "number of records of each split set (required)")
	cmd.PersistentFlags().Int64Var(&(config.seed), "seed", 0, "seed for the shuffle of the input set (defaults to 0: seeded with the current time)")
	return cmd
}

func (scc *splitCmdConfig) Validate() error {
	if len(scc.sizes) == 0 {
		return fmt.Errorf("required sizes flag was not set")
	}
	if len(scc.outputs) != len(scc.sizes) && len(scc.outputs) != len(scc.sizes)+1 {
		return fmt.Errorf("expected %d or %d outputs for %d sizes, got %d", len(scc.sizes), len(scc.sizes)+1, len(scc.sizes), len(scc.outputs))
	}
	if scc.seed == 0 {
		scc.seed = time.Now().UnixNano()
	}
	return scc.setInputConfig.Validate()
}

/*
splitSet takes a set, a list of sizes, whether to keep the remaining records
and a seed and returns the shuffled set split into consecutive sets with the
given sizes, followed by a set with the remaining records if asked to.
*/
func splitSet(s dataset.Set, sizes []int, remainder bool, seed int64) ([]dataset.Set, error) {
	shuffled := s.Shuffle(rand.New(rand.NewSource(seed)))
	parts, err := shuffled.Split(sizes...)
	if err != nil {
		return nil, err
	}
	if remainder {
		var taken int
		for _, size := range sizes {
			taken += size
		}
		parts = append(parts, shuffled[taken:])
	}
	return parts, nil
}
