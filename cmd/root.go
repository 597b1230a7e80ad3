package cmd

import (
	"errors"
	"fmt"
	"strings"

	devicecmd "github.com/iotcore-tools/iotctl/cmd/device"
	registrycmd "github.com/iotcore-tools/iotctl/cmd/registry"
	"github.com/iotcore-tools/iotctl/pkg/cmdutil"
	"github.com/iotcore-tools/iotctl/pkg/configuration"
	"github.com/iotcore-tools/iotctl/pkg/factory"
	"github.com/iotcore-tools/iotctl/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version   string = "dev"
	commit    string
	buildDate string
)

func versionOutput() string {
	return fmt.Sprintf(`%s
commit: %s
build date: %s`, version, commit, buildDate)
}

// initConfig reads the optional config file and binds every configuration
// key to its environment variable. Flags bound to v take precedence.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(configuration.EnvPrefix)
	v.AutomaticEnv()
	v.BindEnv("project", configuration.ProjectEnv)
	for _, key := range []string{"credentials", "endpoint", "debug", "log_level", "log_file"} {
		v.BindEnv(key)
	}
	v.SetDefault("log_level", configuration.DefaultLogLevel)

	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(configuration.ConfigDir())
		v.SetConfigName(configuration.ConfigFileName)
		v.SetConfigType(configuration.ConfigFileType)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Its OK if we cant find the file, fallback to arguments and/or environment variables
			return nil
		}
		return fmt.Errorf("can't read config %s: %w", v.ConfigFileUsed(), err)
	}
	log.WithField("file", v.ConfigFileUsed()).Debug("loaded config file")
	return nil
}

func NewCmdRoot() *cobra.Command {
	var cfgFile string
	v := viper.New()
	cfg := &configuration.Config{}
	f := factory.New(version, cfg)

	var rootCmd = &cobra.Command{
		Use:           "iotctl [command] [arguments]",
		Short:         "iotctl manages Cloud IoT Core device registries and devices",
		Version:       versionOutput(),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		// unknown commands print the usage text, whatever flags follow them
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				log.WithField("command", args[0]).Debug("unknown command")
			}
			fmt.Fprint(cmd.OutOrStdout(), usage(cmd))
			return nil
		},
	}

	pflags := rootCmd.PersistentFlags()
	pflags.StringVarP(&cfgFile, "config", "c", "", "config file")
	pflags.String("project", "", "Google Cloud project ID, overrides "+configuration.ProjectEnv)
	pflags.Bool("debug", false, "Enable debug logging and dump HTTP requests")
	v.BindPFlag("project", pflags.Lookup("project"))
	v.BindPFlag("debug", pflags.Lookup("debug"))

	rootCmd.AddGroup(registrycmd.Group(), devicecmd.Group())
	rootCmd.AddCommand(registrycmd.NewRegistryCmds(f)...)
	rootCmd.AddCommand(devicecmd.NewDeviceCmds(f)...)
	rootCmd.AddCommand(NewOpenCmd(f))
	rootCmd.AddCommand(NewCmdCompletion())
	rootCmd.AddCommand(NewGenerateCmd())

	rootCmd.InitDefaultHelpCmd()
	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			c.AddCommand(NewHelpCmd())
		}
	}

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return cmdutil.FlagErrorWrap(err)
	})
	rootCmd.PersistentPreRunE = rootPersistentPreRunEFunc(f, v, &cfgFile)

	return rootCmd
}

func rootPersistentPreRunEFunc(f *factory.Factory, v *viper.Viper, cfgFile *string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := initConfig(v, *cfgFile); err != nil {
			return err
		}
		if err := v.Unmarshal(f.Config); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		setupLogging(f)
		return nil
	}
}

func setupLogging(f *factory.Factory) {
	cfg := f.Config
	level, err := log.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = log.ErrorLevel
	}
	if cfg.Debug {
		level = log.DebugLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		PadLevelText:    true,
	})
	log.SetOutput(f.StdErr)

	if len(cfg.LogFile) > 0 {
		log.AddHook(util.NewFileHook(cfg.LogFile, log.AllLevels))
	}
}
