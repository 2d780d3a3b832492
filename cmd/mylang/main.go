package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mylang/mylang/lang"
	"github.com/mylang/mylang/parser"
)

// sourcePosition reports the failing Position out of any error this CLI can
// produce, so run can print a code frame alongside the message.
func sourcePosition(err error) (lang.Position, bool) {
	var lexErr *lang.LexerError
	if errors.As(err, &lexErr) {
		return lexErr.Pos, true
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Pos, true
	}
	var runtimeErr *lang.RuntimeError
	if errors.As(err, &runtimeErr) {
		return runtimeErr.Pos, true
	}
	return lang.Position{}, false
}

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "repl":
		return replCommand()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	maxCallDepth := fs.Int("max-call-depth", lang.DefaultLimits().MaxCallDepth, "maximum method call nesting before aborting")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("mylang run: script path required")
	}
	scriptPath := remaining[0]
	absScriptPath, err := filepath.Abs(scriptPath)
	if err != nil {
		return fmt.Errorf("resolve script path: %w", err)
	}
	source, err := os.ReadFile(absScriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	program, err := parser.Parse(string(source))
	if err != nil {
		if pos, ok := sourcePosition(err); ok {
			fmt.Fprintln(os.Stderr, lang.FormatCodeFrame(string(source), pos))
		}
		return fmt.Errorf("compile failed: %w", err)
	}
	ctx := lang.NewContext(os.Stdout, lang.Limits{MaxCallDepth: *maxCallDepth})
	if err := lang.Run(program, ctx); err != nil {
		if pos, ok := sourcePosition(err); ok {
			fmt.Fprintln(os.Stderr, lang.FormatCodeFrame(string(source), pos))
		}
		return fmt.Errorf("execution failed: %w", err)
	}
	return nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s run [flags] <script>\n", prog)
	fmt.Fprintf(os.Stderr, "       %s repl\n", prog)
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -max-call-depth int")
	fmt.Fprintln(os.Stderr, "    maximum method call nesting before aborting (default 512)")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
