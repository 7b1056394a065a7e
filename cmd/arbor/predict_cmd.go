package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pbanos/arbor/dataset"
	"github.com/pbanos/arbor/dataset/inputsample"
	"github.com/pbanos/arbor/feature"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	setInputConfig
	treeInput     string
	metadataInput string
	output        string
	interactive   bool
}

type featureValueRequester struct {
	w io.Writer
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the labels of a set of records",
		Long: `Use a tree to predict the label of every record of a set. The set must have
the columns the tree was grown with, its last column being replaced with the
predicted label on the output.`,
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
			if config.interactive {
				sample := inputsample.New(cmd.InOrStdin(), &featureValueRequester{cmd.OutOrStdout()})
				label, err := t.Ask(sample.ValueFor)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(4)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Predicted label is %s\n", label)
				return
			}
			features, s, err := config.readSet(&config.setInputConfig, md, "input")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(4)
			}
			config.Logf("Predicting labels for %d records...", s.Count())
			predicted := make(dataset.Set, len(s))
			for i, r := range s {
				pr := make(dataset.Record, len(r))
				copy(pr, r)
				pr[len(pr)-1] = t.Predict(r)
				predicted[i] = pr
			}
			err = config.writeSet(config.output, predicted, features)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(5)
			}
			config.Logf("Done")
		},
	}
	config.setInputConfig.addFlags(cmd, "input", "STDIN, interpreted as CSV")
	cmd.PersistentFlags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata declaring the types of the columns on the input set (types are inferred otherwise)")
	cmd.PersistentFlags().StringVarP(&(config.treeInput), "tree", "t", "", "path to a file from which the tree will be read and parsed as JSON, or redis://host:port/key URL to load it from redis (required)")
	cmd.PersistentFlags().StringVarP(&(config.output), "output", "o", "", "path to a CSV file to write the records with their predicted labels on (defaults to STDOUT)")
	cmd.PersistentFlags().BoolVar(&(config.interactive), "interactive", false, "predict the label of a single record answering on STDIN the questions of the tree instead of reading a set")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if pcc.interactive && pcc.location != "" {
		return fmt.Errorf("cannot set both the input and interactive flags")
	}
	return pcc.setInputConfig.Validate()
}

func (fvr *featureValueRequester) RequestValueFor(f feature.Feature) error {
	var err error
	switch f := f.(type) {
	case *feature.DiscreteFeature:
		if len(f.AvailableValues()) > 0 {
			_, err = fmt.Fprintf(fvr.w, "Please provide the record's %s:\n(valid values are %v)\n", f.Name(), f.AvailableValues())
		} else {
			_, err = fmt.Fprintf(fvr.w, "Please provide the record's %s:\n", f.Name())
		}
	case *feature.ContinuousFeature:
		_, err = fmt.Fprintf(fvr.w, "Please provide the record's %s:\n(valid values are real numbers)\n", f.Name())
	default:
		_, err = fmt.Fprintf(fvr.w, "Please provide the record's %s:\n", f.Name())
	}
	return err
}

func (fvr *featureValueRequester) RejectValueFor(f feature.Feature, value string, reason error) error {
	_, err := fmt.Fprintf(fvr.w, "%q is not a valid value for the record's %s: %v. Please provide another one.\n", value, f.Name(), reason)
	return err
}
