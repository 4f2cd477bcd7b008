// Package cmd implements the dashed CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (render, preview, config).
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-drift/dashed/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "dashed",
	Short: "dashed - animated dashed borders",
	Long: `dashed draws an animated dashed outline (circle or rounded rectangle)
whose dash pattern rotates around the perimeter while it is visible.

Use "dashed <command> --help" for more information about a command.`,
	Usage: "dashed <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// logOptions are the global logging flags.
type logOptions struct {
	verbose bool
	json    bool
	file    string
}

var logOpts logOptions

// Execute runs the CLI with the arguments from os.Args.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	logOpts = logOptions{}

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Printf("dashed version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			logOpts.verbose = true
		case "--log-json":
			logOpts.json = true
		case "--log-file":
			if i+1 >= len(args) {
				return fmt.Errorf("--log-file requires a file path")
			}
			logOpts.file = args[i+1]
			i++
		default:
			if v, ok := strings.CutPrefix(arg, "--log-file="); ok {
				logOpts.file = v
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// setupLogging installs the process logger and routes reported errors to
// it. When quiet is set and no log file was given, records are dropped;
// the preview owns the terminal and cannot share it with log output.
// The returned func closes the log file, if any.
func setupLogging(quiet bool) (func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case logOpts.file != "":
		f, err := os.OpenFile(logOpts.file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	level := slog.LevelInfo
	if logOpts.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if logOpts.json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: logOpts.verbose})
	return closeFn, nil
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println("  --verbose            Log debug records and stack traces")
	fmt.Println("  --log-json           Write logs as JSON")
	fmt.Println("  --log-file FILE      Append logs to FILE")
	fmt.Println()
	fmt.Println("Attribute files:")
	fmt.Println("  dashed.yaml, dashed.yml, dashed.toml or dashed.hcl in the current")
	fmt.Println("  directory are read when --attrs is not given.")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  dashed render --frames 8 --out frames/   Write 8 PNG frames")
	fmt.Println("  dashed preview --direction cw            Animate in the terminal")
	fmt.Println("  dashed config --attrs border.toml        Print the resolved attributes")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}
