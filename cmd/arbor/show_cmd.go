package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pbanos/arbor/feature"
	"github.com/pbanos/arbor/tree"
	"github.com/pbanos/arbor/tree/dot"
	"github.com/spf13/cobra"
)

type showCmdConfig struct {
	*rootCmdConfig
	treeInput     string
	metadataInput string
	format        string
	output        string
}

func showCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &showCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a tree",
		Long:  `Show a tree as indented text or as a graph in the DOT language of Graphviz`,
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
			t, features, err := config.readTree(config.treeInput, md)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			w := cmd.OutOrStdout()
			if config.output != "" {
				f, err := os.Create(config.output)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
				defer f.Close()
				w = f
			}
			err = showTree(w, t, features, config.format)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
		},
	}
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree to show will be read and parsed as JSON, or redis://host:port/key URL to load it from redis (defaults to STDIN)")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata declaring the types of the columns of the tree (types are inferred otherwise)")
	cmd.PersistentFlags().StringVarP(&(config.format), "format", "f", "text", "format to show the tree in: text or dot")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a file to write the tree on (defaults to STDOUT)")
	return cmd
}

func (scc *showCmdConfig) Validate() error {
	if scc.format != "text" && scc.format != "dot" {
		return fmt.Errorf("unknown format %q, valid formats are text and dot", scc.format)
	}
	return nil
}

/*
showTree writes the tree on the writer in the given format, naming columns
after the given features.
*/
func showTree(w io.Writer, t *tree.Node, features []feature.Feature, format string) error {
	headings := feature.Names(features)
	if format == "dot" {
		graph, err := dot.Render(t, headings)
		if err != nil {
			return fmt.Errorf("rendering tree as DOT: %v", err)
		}
		_, err = io.WriteString(w, graph)
		return err
	}
	_, err := fmt.Fprintln(w, tree.Render(t, headings))
	return err
}
