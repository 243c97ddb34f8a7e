// qfx-convert converts QFX/OFX statement files to CSV or JSON.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/rockstardevs/qfxconvert"
)

const version = "1.0.0"

// cliConfig holds the parsed command line flags.
type cliConfig struct {
	csvFormat   bool
	jsonFormat  bool
	compact     bool
	quiet       bool
	showVersion bool
	output      string
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: qfx-convert [flags] FILE [FILE...]\n\nconverts QFX/OFX file(s) to CSV or JSON\n\n")
	flag.PrintDefaults()
}

func main() {
	var cfg cliConfig
	flag.BoolVar(&cfg.csvFormat, "csv", false, "output in CSV format (default)")
	flag.BoolVar(&cfg.jsonFormat, "json", false, "output in JSON format")
	flag.BoolVar(&cfg.compact, "compact", false, "compact JSON output (no indentation), only applies to JSON")
	flag.BoolVar(&cfg.showVersion, "version", false, "print version and exit")
	flag.StringVar(&cfg.output, "o", "", "output file path, defaults to the input path with the format's extension")
	flag.StringVar(&cfg.output, "output", "", "output file path, defaults to the input path with the format's extension")
	flag.BoolVar(&cfg.quiet, "q", false, "suppress informational output")
	flag.BoolVar(&cfg.quiet, "quiet", false, "suppress informational output")
	flag.Usage = usage
	flag.Parse()

	code := run(cfg, flag.Args(), os.Stdout, os.Stderr)
	glog.Flush()
	os.Exit(code)
}

// run converts every input file in order and returns the process exit code,
// 0 only when no file failed. A failing file never stops the remaining ones.
func run(cfg cliConfig, inputs []string, stdout, stderr io.Writer) int {
	if cfg.showVersion {
		fmt.Fprintf(stdout, "qfx-convert %s\n", version)
		return 0
	}
	if cfg.csvFormat && cfg.jsonFormat {
		fmt.Fprintln(stderr, "error - --csv and --json are mutually exclusive")
		return 1
	}
	if len(inputs) == 0 {
		fmt.Fprintln(stderr, "error - no input files given")
		usage()
		return 1
	}
	if cfg.output != "" && len(inputs) > 1 {
		fmt.Fprintln(stderr, "error - cannot specify single output file (-o) with multiple input files")
		return 1
	}

	format := qfxconvert.FormatCSV
	if cfg.jsonFormat {
		format = qfxconvert.FormatJSON
	}

	successCount, errorCount := 0, 0
	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			fmt.Fprintf(stderr, "error - file not found: %s\n", input)
			errorCount++
			continue
		}
		if info.IsDir() {
			fmt.Fprintf(stderr, "warning - skipping directory: %s\n", input)
			continue
		}
		if !cfg.quiet {
			fmt.Fprintf(stdout, "processing %s...\n", input)
		}
		written, err := qfxconvert.ConvertFile(input, qfxconvert.Options{
			Format:     format,
			OutputPath: cfg.output,
			Compact:    cfg.compact,
		})
		if err != nil {
			fmt.Fprintf(stderr, "error - processing %s: %s\n", input, err)
			errorCount++
			continue
		}
		if !cfg.quiet {
			for _, path := range written {
				fmt.Fprintf(stdout, "  created: %s\n", path)
			}
		}
		successCount++
	}

	if !cfg.quiet && len(inputs) > 1 {
		fmt.Fprintf(stdout, "\nprocessed %d file(s) successfully, %d error(s)\n", successCount, errorCount)
	}
	if errorCount > 0 {
		return 1
	}
	return 0
}
