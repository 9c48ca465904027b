package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const defaultsNotice = "The default values have been chosen. Call the program with -h for help."

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Interpreter specifications can be made with the following options:")
	fmt.Fprintln(w, "\t-i <infile>\tspecifies the infile name")
	fmt.Fprintf(w, "\t\t\t(by default '%s')\n", defaultInputPath)
	fmt.Fprintln(w, "\t-o <outfile>\tspecifies the outfile name")
	fmt.Fprintf(w, "\t\t\t(by default '%s')\n", defaultOutputPath)
	fmt.Fprintln(w, "\t-c <config>\tYAML config file")
	fmt.Fprintf(w, "\t\t\t(by default '%s' when present)\n", defaultConfigPath)
	fmt.Fprintln(w, "\t-verify\t\tcheck the generated C for syntax errors")
	fmt.Fprintln(w, "\t-q\t\tonly print warnings and errors")
	fmt.Fprintln(w, "\t-h\t\tshows a list of available input parameters")
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "bf2c: ", 0)

	flags := flag.NewFlagSet("bf2c", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { printUsage(flags.Output()) }
	input := flags.String("i", defaultInputPath, "input file")
	output := flags.String("o", defaultOutputPath, "output file")
	configPath := flags.String("c", "", "config file")
	verify := flags.Bool("verify", false, "check generated C")
	quiet := flags.Bool("q", false, "quiet")
	help := flags.Bool("h", false, "show help")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "Invalid arguments!")
		return exitUsage
	}
	if *help {
		printUsage(stdout)
		return exitOK
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "Invalid arguments! unexpected %q\n", flags.Arg(0))
		printUsage(stderr)
		return exitUsage
	}
	cfg, err := resolveConfig(*configPath)
	if err != nil {
		logger.Print(err)
		return exitError
	}
	if len(args) == 0 && cfg.Path == "" && !*quiet {
		fmt.Fprintf(stdout, "%s\n\n", defaultsNotice)
	}
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.Input = *input
		case "o":
			cfg.Output = *output
		case "verify":
			cfg.Verify = *verify
		}
	})
	if err := cfg.validate(); err != nil {
		logger.Print(err)
		return exitError
	}

	if !*quiet {
		fmt.Fprintf(stdout, "Translating file %q\n", cfg.Input)
	}
	report, err := processFile(cfg, logger)
	if err != nil {
		logger.Printf("failed to translate %q: %v", cfg.Input, err)
		return exitError
	}
	if !*quiet {
		fmt.Fprintf(stdout, "Emitted %d statements from %d bytes\n", report.Statements, report.BytesRead)
		fmt.Fprintf(stdout, "Saved as %q\n", cfg.Output)
	}
	return exitOK
}

// resolveConfig loads the named config file, or bf2c.yml when it exists in
// the working directory, or falls back to defaults.
func resolveConfig(path string) (Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	cfg, err := LoadConfig(defaultConfigPath)
	if errors.Is(err, errConfigNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// processFile translates cfg.Input into cfg.Output. The C file is built in a
// temporary file next to the destination and renamed only once complete.
func processFile(cfg Config, logger *log.Logger) (report Report, err error) {
	handle, err := os.Open(cfg.Input)
	if err != nil {
		return report, fmt.Errorf("could not open file %q for reading: %w", cfg.Input, err)
	}
	defer handle.Close()

	dir, base := filepath.Split(cfg.Output)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return report, fmt.Errorf("could not open output file %q for writing: %w", cfg.Output, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	var generated bytes.Buffer
	var sink io.Writer = tmp
	if cfg.Verify {
		sink = io.MultiWriter(tmp, &generated)
	}

	translator := NewTranslator(append(cfg.TranslatorOptions(), WithLogger(logger))...)
	report, err = translator.Translate(handle, sink)
	if err != nil {
		return report, err
	}
	mode := os.FileMode(0644)
	if info, statErr := os.Stat(cfg.Output); statErr == nil {
		mode = info.Mode().Perm()
	}
	if err = tmp.Chmod(mode); err != nil {
		return report, fmt.Errorf("could not set permissions on %q: %w", cfg.Output, err)
	}
	if err = tmp.Close(); err != nil {
		return report, fmt.Errorf("could not close output file %q: %w", cfg.Output, err)
	}
	if err = os.Rename(tmp.Name(), cfg.Output); err != nil {
		return report, fmt.Errorf("could not save output file %q: %w", cfg.Output, err)
	}

	if cfg.Verify {
		if verifyErr := VerifyC(generated.Bytes()); verifyErr != nil {
			logger.Printf("warning: %v", verifyErr)
		}
	}
	return report, nil
}
