package main

import (
	"fmt"
	"os"

	"github.com/noobaa/blocks-tree-migrate/cmd/blocks-tree-migrate/config"
	"github.com/noobaa/blocks-tree-migrate/cmd/internal/cmderr"
	"github.com/noobaa/blocks-tree-migrate/misc"
	"github.com/noobaa/blocks-tree-migrate/pkg/agent_storage/migrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Conventional agent storage location, used when neither the config file
// nor the positional argument provides one.
const defaultRootPath = "/usr/local/noobaa/agent_storage/"

var command = &cobra.Command{
	Use:   "blocks-tree-migrate [--wet] [--verbose|-v] [--config FILE] [path]",
	Short: "Agent storage blocks tree migration",
	Long: `Blocks Tree Migrate restructures the flat per-node blocks directories of
agent storage into sharded blocks trees. Without --wet it only reports the
intended actions.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          entryPoint,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func entryPoint(cmd *cobra.Command, args []string) error {
	printVersion, _ := cmd.Flags().GetBool("version")
	if printVersion {
		cmd.Print(misc.BuildInfo("Blocks Tree Migrate"))

		return nil
	}

	cfgPath, _ := cmd.Flags().GetString("config")

	var cfgOpts []config.Option
	if cfgPath != "" {
		cfgOpts = append(cfgOpts, config.WithConfigFile(cfgPath))
	}

	appCfg, err := config.New(cfgOpts...)
	if err != nil {
		return err
	}

	wet, _ := cmd.Flags().GetBool("wet")
	verbose, _ := cmd.Flags().GetBool("verbose")

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	defer func() {
		_ = log.Sync()
	}()

	m := migrate.New(
		migrate.WithRootPath(resolveRootPath(cmd, appCfg, args)),
		migrate.WithWet(wet),
		migrate.WithVerbose(verbose),
		migrate.WithProgressInterval(config.Uint64Safe(appCfg.Sub("migrate"), "progress_interval")),
		migrate.WithLogger(log),
	)

	return m.Run()
}

// resolveRootPath picks the storage root: an existing directory passed as
// the positional argument wins, then the config file value, then the
// conventional default. A positional argument that is not an existing
// directory is reported and ignored.
func resolveRootPath(cmd *cobra.Command, appCfg *config.Config, args []string) string {
	if len(args) > 0 {
		fi, err := os.Stat(args[0])
		if err == nil && fi.IsDir() {
			return args[0]
		}

		cmd.PrintErrf("ignoring %q: not an existing directory\n", args[0])
	}

	p := config.StringSafe(appCfg.Sub("storage"), "root")
	if p == "" {
		p = defaultRootPath
	}

	return p
}

// newLogger builds a logger writing line-oriented progress text to stdout.
func newLogger() (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	c.Encoding = "console"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.OutputPaths = []string{"stdout"}

	return c.Build(
		zap.AddStacktrace(zap.NewAtomicLevelAt(zap.FatalLevel)),
	)
}

func init() {
	// use stdout as default output for cmd.Print()
	command.SetOut(os.Stdout)
	command.Flags().Bool("version", false, "Application version")
	command.Flags().Bool("wet", false, "Perform actual filesystem mutations instead of a dry run")
	command.Flags().BoolP("verbose", "v", false, "Report every single block move")
	command.Flags().String("config", "", "Path to YAML configuration file")
}

func main() {
	err := command.Execute()
	cmderr.ExitOnErr(err)
}
