package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/wit-bindgen/config"
	"github.com/wippyai/wit-bindgen/witjson"
)

func main() {
	var (
		graphFile   = flag.String("graph", "", "Path to resolved graph JSON document")
		configFile  = flag.String("config", "", "Path to configuration YAML (optional)")
		elementPath = flag.String("path", "", "Show a single element by its path")
		list        = flag.Bool("list", false, "List every element with config and shapes")
		debug       = flag.Bool("debug", false, "Enable debug logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *graphFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: witconfig -graph <graph.json> [-config <bindgen.yaml>] -list")
		fmt.Fprintln(os.Stderr, "       witconfig -graph <graph.json> -path <element-path>")
		fmt.Fprintln(os.Stderr, "       witconfig -graph <graph.json> -i  (interactive mode)")
		os.Exit(1)
	}

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		witjson.SetLogger(logger)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*graphFile, *configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*graphFile, *configFile, *elementPath, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(graphFile, configFile, elementPath string, listAll bool) error {
	report, err := buildReport(graphFile, configFile)
	if err != nil {
		return err
	}

	fmt.Printf("Graph: %s\n", graphFile)
	fmt.Printf("Elements: %d\n", len(report.entries))
	if configFile != "" {
		fmt.Printf("Configured paths: %d\n", report.configured)
	}

	if elementPath != "" {
		entry, ok := report.find(elementPath)
		if !ok {
			return fmt.Errorf("no element with path %q", elementPath)
		}
		fmt.Println()
		printEntry(entry)
		return nil
	}

	if listAll {
		fmt.Println()
		for _, entry := range report.entries {
			printEntry(entry)
		}
	}
	return nil
}

func printEntry(e entry) {
	fmt.Printf("%s\n", e.path)
	fmt.Printf("  kind:   %s\n", e.kind)
	fmt.Printf("  config: %s\n", e.config)
	for _, s := range e.shapes {
		fmt.Printf("  shape:  %s\n", s)
	}
}

func buildReport(graphFile, configFile string) (*report, error) {
	r, err := witjson.Load(graphFile)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}

	cfg := config.New(nil)
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	return newReport(r, cfg), nil
}
