package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ventmap/internal/config"
	"ventmap/internal/geom"
	"ventmap/internal/grid"
	"ventmap/internal/tui"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ventmap: ")
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("ventmap", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "JSON config file")
		dim        = fs.Int("dim", 0, "grid dimension (overrides config)")
		straight   = fs.Bool("straight", false, "ignore diagonal segments")
		sparse     = fs.Bool("sparse", false, "use a map-backed grid")
		workers    = fs.Int("workers", 0, "accumulate with this many goroutines (overrides config)")
		printGrid  = fs.Bool("print", false, "print the grid after the count")
		view       = fs.Bool("tui", false, "open the interactive viewer")
	)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: ventmap [flags] [file]\n\nReads segments \"x1,y1 -> x2,y2\" from file or stdin.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	// explicit flags win over the config file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dim":
			cfg.Dimension = *dim
		case "straight":
			cfg.StraightOnly = *straight
		case "sparse":
			cfg.Sparse = *sparse
		case "workers":
			cfg.Workers = *workers
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	if *view {
		var m tea.Model
		if fs.NArg() > 0 {
			m = tui.NewWithPath(cfg, fs.Arg(0))
		} else {
			m = tui.New(cfg)
		}
		_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
		return err
	}

	lines, err := readInput(fs.Args(), stdin)
	if err != nil {
		return err
	}
	res, err := grid.Compute(context.Background(), lines, cfg.Options())
	if err != nil {
		return err
	}
	if *printGrid {
		d, ok := res.Grid.(*grid.Dense)
		if !ok {
			return errors.New("-print needs a dense grid")
		}
		fmt.Fprint(stdout, d)
	}
	fmt.Fprintf(stdout, "Intersections: %d\n", res.Overlaps)
	return nil
}

func readInput(args []string, stdin io.Reader) ([]geom.Line, error) {
	switch {
	case len(args) == 0, len(args) == 1 && args[0] == "-":
		return geom.ReadSegments(stdin)
	case len(args) == 1:
		return geom.LoadSegments(args[0])
	}
	return nil, fmt.Errorf("expected at most one input file, got %d", len(args))
}
