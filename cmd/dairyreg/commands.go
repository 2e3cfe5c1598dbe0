package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/dairyreg"
	"github.com/poiesic/dairyreg/catalog"
	"github.com/poiesic/dairyreg/importer"
	"github.com/poiesic/dairyreg/index"
	"github.com/poiesic/dairyreg/search"
)

var errNoCatalog = errors.New("no catalog imported; run `dairyreg import` or `dairyreg seed` first")

func importerConfig(c *cli.Context) (*importer.Config, error) {
	cfg := &importer.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
		Force:          c.Bool("force"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openRegistry(c *cli.Context, opts ...dairyreg.RegistryOption) (*dairyreg.Registry, error) {
	reg, err := dairyreg.Open(c.String("db"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return reg, nil
}

func importCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("catalog file is required")
	}
	return runImport(c, func(reg *dairyreg.Registry, opts ...importer.Option) (*importer.Result, error) {
		return reg.ImportFile(c.Context, path, opts...)
	})
}

func seedCommand(c *cli.Context) error {
	return runImport(c, func(reg *dairyreg.Registry, opts ...importer.Option) (*importer.Result, error) {
		return reg.ImportSample(c.Context, opts...)
	})
}

func runImport(c *cli.Context, run func(*dairyreg.Registry, ...importer.Option) (*importer.Result, error)) error {
	cfg, err := importerConfig(c)
	if err != nil {
		return err
	}

	reg, err := openRegistry(c, dairyreg.WithImporterConfig(cfg))
	if err != nil {
		return err
	}
	defer reg.Close()

	fmt.Fprintf(c.App.ErrWriter, "Database: %s\n", c.String("db"))
	result, err := run(reg, importer.WithProgress(c.App.ErrWriter))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if result.Unchanged {
		fmt.Fprintf(c.App.Writer, "Catalog unchanged: %d establishments\n", result.Info.Count)
	} else {
		fmt.Fprintf(c.App.Writer, "Imported %d establishments from %s\n", result.Imported, result.Info.Source)
	}
	return nil
}

// openSearcher builds a searcher over the catalog file given with --catalog,
// the database given with --db, or the embedded sample catalog.
func openSearcher(c *cli.Context) (*search.Searcher, func(), error) {
	opts := []search.Option{
		search.WithConfig(search.NewConfig(
			search.WithThreshold(c.Float64("threshold")),
			search.WithLimit(c.Int("limit")),
		)),
		search.WithMonitor(search.NewLogMonitor(nil)),
	}

	switch {
	case c.String("catalog") != "":
		records, err := catalog.LoadFile(c.String("catalog"))
		if err != nil {
			return nil, nil, err
		}
		return searcherFor(index.Prepare(records))(opts...)

	case c.String("db") != "":
		reg, err := openRegistry(c)
		if err != nil {
			return nil, nil, err
		}
		s, err := reg.NewSearcher(c.Context, opts...)
		if err != nil {
			reg.Close()
			if dairyreg.IsEmpty(err) {
				return nil, nil, errNoCatalog
			}
			return nil, nil, err
		}
		return s, func() {
			s.Close()
			reg.Close()
		}, nil

	default:
		return searcherFor(index.Prepare(catalog.Sample()))(opts...)
	}
}

func searcherFor(idx *index.Index, err error) func(...search.Option) (*search.Searcher, func(), error) {
	return func(opts ...search.Option) (*search.Searcher, func(), error) {
		if err != nil {
			return nil, nil, err
		}
		s, err := search.NewSearcher(idx, opts...)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}

	searcher, closeFn, err := openSearcher(c)
	if err != nil {
		return err
	}
	defer closeFn()

	renderResults(c.App.Writer, searcher.SearchResults(query), c.Bool("explain"))
	return nil
}

func interactiveCommand(c *cli.Context) error {
	searcher, closeFn, err := openSearcher(c)
	if err != nil {
		return err
	}
	defer closeFn()

	out := c.App.Writer
	scanner := bufio.NewScanner(c.App.Reader)
	fmt.Fprintln(out, "Enter reg. number, name, or city (Ctrl-D quits)")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		query := scanner.Text()
		if strings.TrimSpace(query) == "" {
			continue
		}
		renderResults(out, searcher.SearchResults(query), c.Bool("explain"))
	}
}

func infoCommand(c *cli.Context) error {
	reg, err := openRegistry(c)
	if err != nil {
		return err
	}
	defer reg.Close()

	info, err := reg.Info(c.Context)
	if err != nil {
		if dairyreg.IsEmpty(err) {
			return errNoCatalog
		}
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "Source:         %s\n", info.Source)
	fmt.Fprintf(out, "Establishments: %d\n", info.Count)
	fmt.Fprintf(out, "Digest:         %s\n", info.Digest)
	fmt.Fprintf(out, "Imported at:    %s\n", info.ImportedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(out, "Database size:  %d bytes\n", reg.Size())
	return nil
}

func helpRegNoCommand(c *cli.Context) error {
	fmt.Fprint(c.App.Writer, regNoHelp)
	return nil
}
