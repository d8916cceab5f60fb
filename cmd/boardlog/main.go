// boardlog replays coordinate moves and undo requests against a chess board
// and prints the resulting move log and position.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anmitsu/go-shlex"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/hashing"
	"github.com/lgbarn/chessboard-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	loadArgsFromFileIfSpecified()

	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("boardlog version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, *inlineMoves, flag.Args(), os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run processes the inline moves, then each file, or stdin when neither is
// given, and writes the resulting state(s).
func run(cfg *config.Config, inline string, files []string, stdin io.Reader) error {
	p := NewProcessor(cfg)
	w := output.NewStateWriter(cfg.OutputFile, cfg)

	var detector *hashing.DuplicateDetector
	if cfg.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(false)
	}

	processed := func(name string) error {
		if !cfg.EachSource {
			return nil
		}
		defer p.Reset()

		if detector != nil && detector.CheckAndAdd(p.State()) {
			if cfg.Verbosity > 0 {
				fmt.Fprintf(cfg.LogFile, "%s: final position already written, skipped\n", name)
			}
			return nil
		}
		return w.WriteState(p.State(), name)
	}

	if inline != "" {
		if err := p.ProcessReader(strings.NewReader(inline), "-m"); err != nil {
			return err
		}
		if err := processed("-m"); err != nil {
			return err
		}
	}

	if len(files) == 0 && inline == "" {
		if err := p.ProcessReader(stdin, "stdin"); err != nil {
			return err
		}
		if err := processed("stdin"); err != nil {
			return err
		}
	}

	for _, filename := range files {
		if err := processFile(p, filename); err != nil {
			return err
		}
		if err := processed(filename); err != nil {
			return err
		}
	}

	if !cfg.EachSource {
		if err := w.WriteState(p.State(), ""); err != nil {
			return err
		}
	}

	if cfg.Verbosity > 1 {
		p.reportStatistics()
		if detector != nil {
			fmt.Fprintf(cfg.LogFile, "%d position(s) written, %d duplicate(s) skipped.\n",
				detector.UniqueCount(), detector.DuplicateCount())
		}
	}
	return w.Close()
}

// processFile feeds one input file to the processor.
func processFile(p *Processor, filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return errors.Wrapf(err, "opening %s", filename)
	}
	defer file.Close() //nolint:errcheck // read-only file

	return p.ProcessReader(file, filename)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// loadArgsFromFileIfSpecified expands "-A file" into the arguments it
// holds before the flag package sees the command line.
func loadArgsFromFileIfSpecified() {
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		if args[i] != "-A" || i+1 >= len(args) {
			continue
		}
		fileArgs, err := loadArgsFile(args[i+1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading argument file %s: %v\n", args[i+1], err)
			os.Exit(1)
		}
		expanded := append([]string{}, args[:i]...)
		expanded = append(expanded, fileArgs...)
		expanded = append(expanded, args[i+2:]...)
		os.Args = append(os.Args[:1], expanded...)
		return
	}
}

// loadArgsFile reads arguments from a file, one or more per line. Blank
// lines and lines starting with '#' are skipped; quoting follows the shell.
func loadArgsFile(filename string) ([]string, error) {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // read-only file

	var args []string
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words, err := splitArgsLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", filename, lineNo)
		}
		args = append(args, words...)
	}
	return args, scanner.Err()
}

// splitArgsLine splits a line into arguments the way a POSIX shell would.
func splitArgsLine(line string) ([]string, error) {
	return shlex.Split(line, true)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: boardlog [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays coordinate moves against a chess board and prints the result.\n")
	fmt.Fprintf(os.Stderr, "Moves are not checked for legality.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput tokens:\n")
	fmt.Fprintf(os.Stderr, "  e2e4   move the piece on e2 to e4\n")
	fmt.Fprintf(os.Stderr, "  undo   take back the last move\n")
	fmt.Fprintf(os.Stderr, "  12.    move numbers are skipped\n")
	fmt.Fprintf(os.Stderr, "  #      comment to end of line\n")
}
