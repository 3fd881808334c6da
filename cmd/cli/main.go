package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/skillflow/internal/app"
	"github.com/vk/skillflow/internal/cli"
	"github.com/vk/skillflow/internal/config"
	"github.com/vk/skillflow/internal/hcl"
	"github.com/vk/skillflow/internal/yaml"
)

// main is the entrypoint for the skillflow binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Result envelopes go to outW, logs and errors to errW.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	skillflowApp, err := app.NewApp(outW, errW, appConfig, newLoader(appConfig))
	if err != nil {
		return err
	}

	return skillflowApp.Run(context.Background(), appConfig)
}

// newLoader selects the concrete workflow loader. In auto mode the choice
// follows the path's extension; directories default to HCL, the native
// definition format.
func newLoader(cfg *app.Config) config.Loader {
	format := cfg.Format
	if format == app.FormatAuto {
		switch strings.ToLower(filepath.Ext(cfg.WorkflowPath)) {
		case ".yaml", ".yml":
			format = app.FormatYAML
		default:
			format = app.FormatHCL
		}
	}

	if format == app.FormatYAML {
		return yaml.NewLoader()
	}
	return hcl.NewLoader()
}
