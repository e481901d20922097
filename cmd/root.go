package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Geet-manik/LearnTreeEdu/internal/config"
	"github.com/Geet-manik/LearnTreeEdu/internal/logging"
)

var cfgFile string
var appConfig config.Config
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "learntree",
	Short: "LearnTree - data-driven site for the LearnTree books and workshops",
	Long: `learntree renders the LearnTree marketing page from a single content
document (JSON, YAML or Markdown front matter). It can write a static
snapshot or serve live pages whose carousels, modals and flipbook run on
the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()

	d := config.Defaults()
	v.SetDefault("siteTitle", d.SiteTitle)
	v.SetDefault("outputDir", d.OutputDir)
	v.SetDefault("baseURL", d.BaseURL)
	v.SetDefault("lang", d.Lang)
	v.SetDefault("content", d.Content)
	v.SetDefault("layoutsDir", d.LayoutsDir)
	v.SetDefault("staticDir", d.StaticDir)
	v.SetDefault("heroBookId", d.HeroBookID)
	v.SetDefault("viewportWidth", d.ViewportWidth)
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("sessionTTL", d.SessionTTL)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("LEARNTREE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	configFound := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		configFound = false
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	log, err := logging.New(appConfig.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	logger = log

	if configFound {
		logger.Info("using config file", zap.String("path", v.ConfigFileUsed()))
	} else {
		logger.Info("no config file found, using defaults and environment")
	}
	return nil
}
