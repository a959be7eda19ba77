package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/osdev-kit/karch/cmd/catalog"
	"github.com/osdev-kit/karch/cmd/encode"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
	logFile string
)

// rootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "karch",
	Short: "Kernel register access toolkit",
	Long: `Karch is a register access library for kernels targeting x86_64, AArch64
and RV64, plus this inspection CLI.

The CLI works against the same descriptor catalogs the library validates at
startup: it dumps and browses them, checks their declaration invariants, and
encodes the packed hardware words (GDT/IDT descriptors, PSCI power states,
PIT divisors) the library builds at run time.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.AddCommand(catalog.CatalogCmd, encode.EncodeCmd, cpuidCmd)
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.karch.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs as JSON to this file")

	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log-file", RootCmd.PersistentFlags().Lookup("log-file"))
}

// setupLogging installs the default slog logger: a text handler on stderr,
// fanned out to a JSON file handler when --log-file is given.
func setupLogging() error {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	}

	if path := viper.GetString("log-file"); path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	return nil
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".karch" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".karch")
	}

	viper.SetEnvPrefix("KARCH")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
