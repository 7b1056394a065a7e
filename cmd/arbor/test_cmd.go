package main

import (
	"fmt"
	"os"

	"github.com/pbanos/arbor/tree"
	"github.com/spf13/cobra"
)

type testCmdConfig struct {
	*rootCmdConfig
	setInputConfig
	treeInput     string
	metadataInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Test the performance of a tree against a test data set`,
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
			t, _, err := config.readTree(config.treeInput, md)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(3)
			}
			_, testingSet, err := config.readSet(&config.setInputConfig, md, "testing")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Testing tree against testset with %d records...", testingSet.Count())
			_, errCount := tree.EvaluateCopy(t, testingSet)
			config.Logf("Done")
			fmt.Fprintln(cmd.OutOrStdout(), accuracyReport(testingSet.Count(), errCount))
		},
	}
	config.setInputConfig.addFlags(cmd, "testing", "STDIN, interpreted as CSV")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata declaring the types of the columns on the input set (types are inferred otherwise)")
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree to test will be read and parsed as JSON, or redis://host:port/key URL to load it from redis (required)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return tcc.setInputConfig.Validate()
}

/*
accuracyReport takes a number of records and how many of them were
misclassified and returns a line reporting the accuracy.
*/
func accuracyReport(count, errCount int) string {
	accuracy := 0.0
	if count > 0 {
		accuracy = float64(count-errCount) / float64(count)
	}
	return fmt.Sprintf("accuracy: %d/%d = %f", count-errCount, count, accuracy)
}
