// Command sandbox runs the OpenGL demos.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/toxichemicals/GO/glsandbox/core"
	"github.com/toxichemicals/GO/glsandbox/internal/config"
	"github.com/toxichemicals/GO/glsandbox/internal/demos"
	"github.com/toxichemicals/GO/glsandbox/internal/logging"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg     *config.Config
	logger  *zap.Logger
	cleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "OpenGL sandbox: triangles, lit cubes, arcball and orbital cameras",
	Long: `Runs one demo per subcommand. Every demo closes with Escape and
toggles vsync with V.

Free-fly demos: WASD move, mouse looks, wheel zooms, R resets, arrow keys,
Space and Left Shift move the light.

Arcball demos: left drag rotates, right drag dollies, wheel zooms, R resets,
WASD, Space and Left Shift move the light, B switches Blinn-Phong and Phong.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, cleanup, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available demos",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, d := range demos.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", d.Name, d.Short)
		}
	},
}

var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Write the effective configuration as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Save(args[0]); err != nil {
			return err
		}
		logger.Info("Configuration written", zap.String("path", args[0]))
		return nil
	},
}

func demoCommand(d demos.Demo) *cobra.Command {
	return &cobra.Command{
		Use:   d.Name,
		Short: d.Short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window := cfg.Window
			window.Title = fmt.Sprintf("%s - %s", cfg.Window.Title, d.Name)
			logger.Info("Starting demo", zap.String("demo", d.Name))
			return core.Run(window, logger, d.New(cfg))
		},
	}
}

func init() {
	// GLFW must be driven from the main thread.
	runtime.LockOSThread()

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(listCmd, configCmd)
	for _, d := range demos.All() {
		rootCmd.AddCommand(demoCommand(d))
	}
}

// execute runs the command line and closes the logger afterwards. cobra
// skips post-run hooks when a command fails, so the sinks are flushed here.
func execute(args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil && logger != nil {
		logger.Error("Command failed", zap.Error(err))
	}
	if cleanup != nil {
		cleanup()
		cleanup = nil
	}
	return err
}

func main() {
	if err := execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
