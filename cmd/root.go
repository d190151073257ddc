package cmd

import (
	"fmt"
	"os"

	"common-utils/core/config"
	"common-utils/core/files"
	"common-utils/core/logger"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = NewRootCmd()

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "common-utils",
		Short: "Formatting, base64 and file helpers",
		Long: `common-utils exposes the shared helper library from the shell:
human-readable sizes, timestamps and prices, base64 encoding,
and whole-file or recursive file operations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSizeCmd(),
		newTimeCmd(),
		newMoneyCmd(),
		newCapitalizeCmd(),
		newBase64Cmd(),
		newFilesCmd(),
	)
	return root
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Errors are reported with the console logger regardless of configuration,
		// since configuration loading itself may be what failed.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err), zap.String("failed_path", files.FailedPath(err)))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// env bundles what every command needs after configuration is loaded.
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	files *files.Service
}

// setup loads configuration from the working directory and builds the logger and
// the OS-backed file service.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logg = logger.WithCommand(logg, cmd)
	zap.ReplaceGlobals(logg)

	return &env{
		cfg:   cfg,
		log:   logg,
		files: files.NewService(afero.NewOsFs(), cfg.Files, logg),
	}, nil
}
