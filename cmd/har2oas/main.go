// Command har2oas converts HAR captures and Hoppscotch collection exports
// into OpenAPI 3.0 documents and downgrades OpenAPI 3.0 documents to
// Swagger 2.0.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/erraggy/har2oas"
	"github.com/erraggy/har2oas/converter"
	"github.com/erraggy/har2oas/har"
	"github.com/erraggy/har2oas/hoppscotch"
	"github.com/erraggy/har2oas/internal/cliutil"
	"github.com/erraggy/har2oas/internal/fileutil"
	"github.com/erraggy/har2oas/internal/mcpserver"
	"github.com/erraggy/har2oas/spec"
)

// stdinFilePath is the special file path used to indicate reading from stdin.
const stdinFilePath = "-"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("har2oas v%s\n", har2oas.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := handleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "downgrade":
		if err := handleDowngrade(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := handleMCP(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// stringSlice is a repeatable string flag.
type stringSlice []string

func (s *stringSlice) String() string { return strings.Join(*s, ",") }

func (s *stringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// convertFlags contains flags for the convert command
type convertFlags struct {
	output      string
	format      string
	kind        string
	title       string
	docVersion  string
	description string
	servers     stringSlice
	basePath    string
	maxDepth    int
	quiet       bool
}

func setupConvertFlags() (*flag.FlagSet, *convertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &convertFlags{}

	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.format, "format", "", "output format: json or yaml (default: yaml)")
	fs.StringVar(&flags.kind, "kind", "", "input kind: har or collection (default: detected)")
	fs.StringVar(&flags.title, "title", "", "generated document title")
	fs.StringVar(&flags.docVersion, "doc-version", "", "generated document version")
	fs.StringVar(&flags.description, "description", "", "generated document description")
	fs.Var(&flags.servers, "server", "server URL to emit on the document (repeatable)")
	fs.StringVar(&flags.basePath, "base-path", "", "base path prefix to strip from extracted paths")
	fs.IntVar(&flags.maxDepth, "max-depth", 0, "schema synthesis recursion limit")
	fs.BoolVar(&flags.quiet, "quiet", false, "suppress the conversion summary on stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: har2oas convert [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Convert an HAR capture or Hoppscotch collection export to OpenAPI 3.0.\n")
		_, _ = fmt.Fprintf(output, "Use '-' as the file to read from stdin.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  har2oas convert capture.har -o openapi.yaml\n")
		_, _ = fmt.Fprintf(output, "  har2oas convert -title 'Pet Store' -server https://api.example.com capture.har\n")
		_, _ = fmt.Fprintf(output, "  har2oas convert -kind collection export.json -format json\n")
	}

	return fs, flags
}

func handleConvert(args []string) error {
	fs, flags := setupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one file path")
	}
	inputPath := fs.Arg(0)

	data, err := readInput(inputPath)
	if err != nil {
		return err
	}
	format, err := resolveFormat(flags.format)
	if err != nil {
		return err
	}
	kind, err := resolveKind(flags.kind, inputPath, data)
	if err != nil {
		return err
	}

	var (
		document  *spec.OAS3Document
		issues    []har.ConversionIssue
		summary   string
		succeeded bool
	)
	switch kind {
	case "har":
		result, err := har.Convert(data,
			har.WithTitle(flags.title),
			har.WithVersion(flags.docVersion),
			har.WithDescription(flags.description),
			har.WithServers(flags.servers...),
			har.WithBasePath(flags.basePath),
			har.WithMaxDepth(flags.maxDepth),
		)
		if err != nil {
			return fmt.Errorf("converting capture: %w", err)
		}
		document = result.Document
		issues = result.Issues
		succeeded = result.Success
		summary = fmt.Sprintf("%d entries, %d operations, %d schemas",
			result.EntryCount, result.OperationCount, result.Document.Components.Schemas.Len())
	case "collection":
		result, err := hoppscotch.Convert(data,
			hoppscotch.WithTitle(flags.title),
			hoppscotch.WithVersion(flags.docVersion),
			hoppscotch.WithDescription(flags.description),
			hoppscotch.WithServers(flags.servers...),
			hoppscotch.WithBasePath(flags.basePath),
			hoppscotch.WithMaxDepth(flags.maxDepth),
		)
		if err != nil {
			return fmt.Errorf("converting collection: %w", err)
		}
		document = result.Document
		issues = result.Issues
		succeeded = result.Success
		summary = fmt.Sprintf("%d requests, %d operations, %d schemas",
			result.RequestCount, result.OperationCount, result.Document.Components.Schemas.Len())
	}

	reportIssues(issues, summary, succeeded, flags.quiet)

	if err := writeDocument(document, format, flags.output); err != nil {
		return err
	}
	if !succeeded {
		os.Exit(1)
	}
	return nil
}

// downgradeFlags contains flags for the downgrade command
type downgradeFlags struct {
	output string
	format string
	quiet  bool
}

func setupDowngradeFlags() (*flag.FlagSet, *downgradeFlags) {
	fs := flag.NewFlagSet("downgrade", flag.ContinueOnError)
	flags := &downgradeFlags{}

	fs.StringVar(&flags.output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.format, "format", "", "output format: json or yaml (default: yaml)")
	fs.BoolVar(&flags.quiet, "quiet", false, "suppress the conversion summary on stderr")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: har2oas downgrade [flags] <file>\n\n")
		_, _ = fmt.Fprintf(output, "Downgrade an OpenAPI 3.0 document to Swagger 2.0.\n")
		_, _ = fmt.Fprintf(output, "Use '-' as the file to read from stdin.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  har2oas downgrade openapi.yaml -o swagger.yaml\n")
		_, _ = fmt.Fprintf(output, "  har2oas downgrade openapi.json -format json\n")
	}

	return fs, flags
}

func handleDowngrade(args []string) error {
	fs, flags := setupDowngradeFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("downgrade command requires exactly one file path")
	}
	inputPath := fs.Arg(0)

	data, err := readInput(inputPath)
	if err != nil {
		return err
	}
	format, err := resolveFormat(flags.format)
	if err != nil {
		return err
	}

	doc, err := spec.LoadOAS3(data)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}
	result, err := converter.Downgrade(doc)
	if err != nil {
		return fmt.Errorf("downgrading document: %w", err)
	}

	summary := fmt.Sprintf("%d paths, %d definitions",
		len(result.Document.Paths), result.Document.Definitions.Len())
	reportIssues(result.Issues, summary, result.Success, flags.quiet)

	if err := writeDocument(result.Document, format, flags.output); err != nil {
		return err
	}
	if !result.Success {
		os.Exit(1)
	}
	return nil
}

func handleMCP() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// readInput reads the input file, treating "-" as stdin.
func readInput(path string) ([]byte, error) {
	if path == stdinFilePath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	return data, nil
}

// resolveFormat picks the output serialization format: an explicit flag
// wins, otherwise the output is YAML regardless of the input's format.
func resolveFormat(requested string) (spec.SourceFormat, error) {
	switch requested {
	case "":
		return spec.SourceFormatYAML, nil
	case "json":
		return spec.SourceFormatJSON, nil
	case "yaml":
		return spec.SourceFormatYAML, nil
	default:
		return spec.SourceFormatUnknown, fmt.Errorf("invalid format '%s'. Valid formats: json, yaml", requested)
	}
}

// resolveKind decides whether the convert input is an HAR capture or a
// collection export. The -kind flag wins; otherwise a .har extension or a
// top-level "log" key marks a capture, and anything else is treated as a
// collection export.
func resolveKind(requested, inputPath string, data []byte) (string, error) {
	switch requested {
	case "har", "collection":
		return requested, nil
	case "":
	default:
		return "", fmt.Errorf("invalid kind '%s'. Valid kinds: har, collection", requested)
	}

	if strings.HasSuffix(inputPath, ".har") {
		return "har", nil
	}
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") && strings.Contains(trimmed, `"log"`) {
		return "har", nil
	}
	return "collection", nil
}

// reportIssues prints the conversion summary and issue list to stderr,
// keeping stdout clean for the document itself.
func reportIssues(issues []har.ConversionIssue, summary string, succeeded, quiet bool) {
	if quiet {
		return
	}
	if len(issues) > 0 {
		cliutil.Writef(os.Stderr, "Conversion issues (%d):\n", len(issues))
		for _, issue := range issues {
			cliutil.Writef(os.Stderr, "  %s\n", issue.String())
		}
	}
	if succeeded {
		cliutil.Writef(os.Stderr, "✓ %s\n", summary)
	} else {
		cliutil.Writef(os.Stderr, "✗ conversion completed with critical issues (%s)\n", summary)
	}
}

// writeDocument serializes the document and writes it to the output path,
// or stdout when no path is given.
func writeDocument(doc any, format spec.SourceFormat, outputPath string) error {
	data, err := spec.Encode(doc, format)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, fileutil.OwnerReadWrite); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		cliutil.Writef(os.Stderr, "Output written to: %s\n", outputPath)
		return nil
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return fmt.Errorf("writing document to stdout: %w", err)
	}
	return nil
}

// commands lists every recognised top-level command for typo suggestions.
var commands = []string{"convert", "downgrade", "mcp", "version", "help"}

// suggestCommand returns the closest known command within an edit
// distance of 2, or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range commands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`har2oas - HAR and collection export to OpenAPI converter

Usage:
  har2oas <command> [options]

Commands:
  convert     Convert an HAR capture or Hoppscotch collection export to OpenAPI 3.0
  downgrade   Downgrade an OpenAPI 3.0 document to Swagger 2.0
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  har2oas convert capture.har -o openapi.yaml
  har2oas convert -kind collection export.json
  har2oas downgrade openapi.yaml -o swagger.yaml
  har2oas mcp

Run 'har2oas <command> --help' for more information on a command.`)
}
