package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mcl",
	Short: "A command line companion for Minecraft launchers, for using offline skins",
}

// Execute starts the root command for mcl
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Add adds a new command as a subcommand to mcl
func Add(newCommand *cobra.Command) {
	rootCmd.AddCommand(newCommand)
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("game-dir", "", "The Minecraft game directory (default is the official launcher's .minecraft folder)")
	bindFlag(flags, "game-dir")
	flags.String("staging-dir", "", "The folder skin packs are assembled in before being compressed (default is in the mcl cache)")
	bindFlag(flags, "staging-dir")
	flags.Bool("non-interactive", false, "Never prompt; use defaults and assume yes")
	bindFlag(flags, "non-interactive")
	flags.BoolP("verbose", "V", false, "Print debug logs")
	bindFlag(flags, "verbose")

	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mcl.toml)")
}

func bindFlag(flags *pflag.FlagSet, name string) {
	_ = viper.BindPFlag(name, flags.Lookup(name))
}

func setupLogging(verbose bool) {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.WarnLevel)
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".mcl" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".mcl")
	}

	// MCL_GAME_DIR sets game-dir, etc.
	viper.SetEnvPrefix("mcl")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	configErr := viper.ReadInConfig()
	setupLogging(viper.GetBool("verbose"))
	if configErr == nil {
		logrus.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}
