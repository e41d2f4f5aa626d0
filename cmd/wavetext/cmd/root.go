// Package cmd implements the wavetext CLI commands.
//
// A root command dispatches to subcommands (window, term, render, trace).
// Every subcommand reads the optional wavetext.yaml from the config
// directory, which defaults to the working directory.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/wavetext/cmd/wavetext/internal/config"
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
	Name:  "wavetext",
	Short: "wavetext - animated wave text preview",
	Long: `wavetext animates text by resizing each character along a travelling
sine wave. It can open a desktop window, draw a terminal preview, or run
headless to render frames and dump size traces.

Settings are read from wavetext.yaml in the config directory when present.

Use "wavetext <command> --help" for more information about a command.`,
	Usage: "wavetext <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// configDir is where wavetext.yaml is looked up.
var configDir = "."

// stdout is where commands write their normal output.
var stdout io.Writer = os.Stdout

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	configDir = "."

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --config
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
				fmt.Fprintf(stdout, "wavetext version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--config":
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a directory path")
			}
			configDir = args[i+1]
			i++
		default:
			if strings.HasPrefix(arg, "--config=") {
				configDir = strings.TrimPrefix(arg, "--config=")
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

func loadConfig() (*config.Resolved, error) {
	cfg, err := config.Resolve(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func printHelp(cmd *Command) {
	w := stdout
	fmt.Fprintln(w, cmd.Long)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", cmd.Usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(w, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -h, --help           Show help for a command")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  --config DIR         Directory holding wavetext.yaml (default: .)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  wavetext window                       Open a desktop window")
	fmt.Fprintln(w, "  wavetext term                         Preview in the terminal")
	fmt.Fprintln(w, "  wavetext render --ticks 30 --out f.png  Render one frame")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
