package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cayleygraph/skos/clog"
	"github.com/cayleygraph/skos/cmd/skos/command"

	// register clog bridge to glog
	_ "github.com/cayleygraph/skos/clog/glog"
)

func main() {
	var (
		configFile string
		verbosity  int
	)
	rootCmd := &cobra.Command{
		Use:   "skos",
		Short: "skos is a tool to inspect and convert SKOS vocabularies",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			clog.SetV(verbosity)
			if configFile != "" {
				viper.SetConfigFile(configFile)
			} else {
				viper.SetConfigName("skos")
				viper.AddConfigPath(".")
				viper.AddConfigPath("$HOME/.skos")
				viper.AddConfigPath("/etc")
			}
			err := viper.ReadInConfig()
			if _, ok := err.(viper.ConfigFileNotFoundError); err != nil && !ok {
				return err
			} else if err == nil {
				clog.Infof("using config file: %s", viper.ConfigFileUsed())
			}
			return nil
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to an explicit configuration file")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbose", "v", 0, "verbosity level of the log output")

	rootCmd.AddCommand(
		command.NewConvertCmd(),
		command.NewConceptsCmd(),
		command.NewResolveCmd(),
		command.NewVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
