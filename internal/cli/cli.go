package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/skillflow/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a validated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("skillflow", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
skillflow - Task dependency resolution and workflow planning for skill pipelines.

Usage:
  skillflow [options] [WORKFLOW_PATH]

Arguments:
  WORKFLOW_PATH
    Path to a workflow definition file (.hcl, .yaml, .yml) or a directory
    containing definition files.

Options:
`)
		flagSet.PrintDefaults()
	}

	workflowFlag := flagSet.String("workflow", "", "Path to the workflow definition file or directory.")
	wFlag := flagSet.String("w", "", "Path to the workflow definition file or directory (shorthand).")
	modeFlag := flagSet.String("mode", app.ModePlan, "Resolution mode. Options: 'plan' or 'status'.")
	completedFlag := flagSet.String("completed", "", "Comma-separated step ids already finished (status mode).")
	formatFlag := flagSet.String("format", app.FormatAuto, "Workflow file format. Options: 'auto', 'hcl' or 'yaml'.")
	lessonsFlag := flagSet.String("lessons", "", "Path to a markdown lessons log appended on failures. Empty disables it.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *workflowFlag != "" {
		path = *workflowFlag
	} else if *wFlag != "" {
		path = *wFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		WorkflowPath: path,
		Format:       strings.ToLower(*formatFlag),
		Mode:         strings.ToLower(*modeFlag),
		Completed:    splitCompleted(*completedFlag),
		LessonsPath:  *lessonsFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}

// splitCompleted parses the -completed flag value into step ids, tolerating
// whitespace and empty segments.
func splitCompleted(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
