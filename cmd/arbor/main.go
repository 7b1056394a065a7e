package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type rootCmdConfig struct {
	verbose    bool
	configFile string
	ctx        context.Context
	cancelFunc context.CancelFunc
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "arbor",
		Short: "arbor is a tool to grow and prune decision trees",
		Long: `A tool to grow binary decision trees from labelled data, prune them,
test them and use them to make predictions`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.bindFlags(cmd)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress on STDERR")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a configuration file with default values for flags (defaults to arbor.yaml on the working directory, if present)")
	rootCmd.AddCommand(
		versionCmd(),
		growCmd(config),
		testCmd(config),
		pruneCmd(config),
		showCmd(config),
		predictCmd(config),
		splitCmd(config),
		experimentCmd(config),
	)
	return rootCmd
}

/*
bindFlags reads the configuration file and ARBOR_ environment variables and
sets every flag of the command not given on the command line to the value
found for it there, if any. Environment variables are named after the flags,
uppercased and with dashes replaced by underscores.
*/
func (rcc *rootCmdConfig) bindFlags(cmd *cobra.Command) error {
	v := viper.New()
	if rcc.configFile != "" {
		v.SetConfigFile(rcc.configFile)
	} else {
		v.SetConfigName("arbor")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("arbor")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("reading configuration: %v", err)
		}
	}
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if serr := cmd.Flags().Set(f.Name, v.GetString(f.Name)); serr != nil {
			err = fmt.Errorf("setting %s from configuration: %v", f.Name, serr)
		}
	})
	if err == nil && v.ConfigFileUsed() != "" {
		rcc.Logf("Using configuration from %s", v.ConfigFileUsed())
	}
	return err
}

func (rcc *rootCmdConfig) Context() context.Context {
	rcc.setContextAndCancelFunc()
	return rcc.ctx
}

func (rcc *rootCmdConfig) ContextCancelFunc() context.CancelFunc {
	rcc.setContextAndCancelFunc()
	return rcc.cancelFunc
}

func (rcc *rootCmdConfig) setContextAndCancelFunc() {
	if rcc.ctx == nil {
		rcc.ctx, rcc.cancelFunc = context.WithCancel(context.Background())
	}
}
