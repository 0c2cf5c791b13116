// Copyright (c) 2024-2026 D. Bohdan
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	ansi "github.com/k0kubun/go-ansi"
)

const (
	defaultProgramName = "rsleep"
	exitCodeError      = 1
	exampleSeconds     = "5.5"
	version            = "0.1.0"
)

type cli struct {
	Seconds string           `arg:"" name:"seconds" help:"time to wait (seconds)"`
	Version kong.VersionFlag `short:"V" help:"print version number and exit"`
}

type usageError struct {
	Err error
}

type invalidNumberError struct {
	Text string
}

type negativeDurationError struct {
	Seconds float64
}

func (e *usageError) Error() string {
	return fmt.Sprintf("wrong number of arguments: %v", e.Err)
}

func (e *usageError) Unwrap() error {
	return e.Err
}

func (e *invalidNumberError) Error() string {
	return fmt.Sprintf("'%s' is not a valid number", e.Text)
}

func (e *negativeDurationError) Error() string {
	return fmt.Sprintf("negative duration: %g", e.Seconds)
}

// options holds everything run needs from the outside world.
type options struct {
	stdout io.Writer
	stderr io.Writer
	exit   func(int)
	sleep  func(time.Duration)
	style  barStyle
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return defaultProgramName
	}

	return filepath.Base(args[0])
}

// positionalArgs makes kong treat every argument as a positional value
// unless the only argument asks for help or the version.
// Without it "-3" would be scanned as the short flag "3".
func positionalArgs(args []string) []string {
	if len(args) == 1 {
		switch args[0] {
		case "-h", "--help", "-V", "--version":
			return args
		}
	}

	return append([]string{"--"}, args...)
}

func parseSeconds(s string) (float64, error) {
	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(seconds, 0) || math.IsNaN(seconds) {
		return 0, &invalidNumberError{Text: s}
	}

	if seconds < 0 {
		return 0, &negativeDurationError{Seconds: seconds}
	}

	// The step count has to fit in an int64.
	if math.Ceil(seconds/stepInterval.Seconds()) >= math.MaxInt64 {
		return 0, &invalidNumberError{Text: s}
	}

	return seconds, nil
}

func parseArgs(program string, args []string, opts options) (float64, error) {
	var cliConfig cli

	parser, err := kong.New(&cliConfig,
		kong.Name(program),
		kong.Description("Wait for a number of seconds while showing a progress bar."),
		kong.Writers(opts.stdout, opts.stderr),
		kong.Exit(opts.exit),
		kong.Vars{"version": version},
	)
	if err != nil {
		return 0, err
	}

	if _, err := parser.Parse(positionalArgs(args)); err != nil {
		return 0, &usageError{Err: err}
	}

	return parseSeconds(cliConfig.Seconds)
}

func reportError(logger *log.Logger, program string, err error) {
	var usageErr *usageError
	var invalidErr *invalidNumberError
	var negativeErr *negativeDurationError

	switch {
	case errors.As(err, &usageErr):
		logger.Printf("Usage: %s <seconds>", program)
		logger.Printf("Example: %s %s", program, exampleSeconds)
	case errors.As(err, &invalidErr):
		logger.Printf("Error: '%s' is not a valid number", invalidErr.Text)
	case errors.As(err, &negativeErr):
		logger.Print("Error: Duration must be positive")
	default:
		logger.Printf("Error: %v", err)
	}
}

func run(args []string, opts options) int {
	program := programName(args)
	logger := log.New(opts.stderr, "", 0)

	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	seconds, err := parseArgs(program, rest, opts)
	if err != nil {
		reportError(logger, program, err)
		return exitCodeError
	}

	config := newTimerConfig(seconds)
	bar := newProgressBar(opts.stdout, config.Steps, opts.style)

	if _, err := countdown(config, bar, opts.sleep); err != nil {
		reportError(logger, program, fmt.Errorf("progress display failed: %w", err))
		return exitCodeError
	}

	return 0
}

func main() {
	width, terminal := terminalWidth()

	exitCode := run(os.Args, options{
		stdout: ansi.NewAnsiStdout(),
		stderr: os.Stderr,
		exit:   os.Exit,
		sleep:  time.Sleep,
		style:  newBarStyle(width, terminal),
	})

	os.Exit(exitCode)
}
