package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/ogier/pflag"

	"github.com/okdarnoc/addressfmt/internal/columns"
	"github.com/okdarnoc/addressfmt/internal/config"
	"github.com/okdarnoc/addressfmt/internal/csvio"
	"github.com/okdarnoc/addressfmt/internal/typeset"
)

// Options is the full, validated configuration of one run.
type Options struct {
	Input         string
	Output        string
	Header        []string
	CellDelimiter rune
	Column        int
	FontName      string
	FontSize      int
	DPI           float64
	WidthCm       float64
	MaxWidthPx    float64
	Delimiter     string
}

// resolveOptions merges flags, settings-file defaults and interactive
// answers into one Options value. Flags win over the settings file;
// whatever is still missing is asked for.
func resolveOptions(settings config.Settings, p *prompter) (Options, error) {
	var opts Options
	var err error

	opts.Input = *optInput
	if opts.Input == "" && pflag.NArg() > 0 {
		opts.Input = pflag.Arg(0)
	}
	if opts.Input == "" {
		opts.Input, err = p.filePath("Enter the path to the CSV file")
		if err != nil {
			return opts, err
		}
	}

	opts.Header, opts.CellDelimiter, err = csvio.ReadHeader(opts.Input)
	if err != nil {
		return opts, err
	}
	log(LogCatgCSV, "Sniffed cell delimiter %q\n", opts.CellDelimiter)

	columnSpec := *optColumn
	if columnSpec == "" {
		printColumnPreview(opts.Header)
		columnSpec, err = p.str("Enter the column containing the addresses (number or name)", "")
		if err != nil {
			return opts, err
		}
	}
	opts.Column, err = columns.NewResolver(opts.Header).Resolve(columnSpec)
	if err != nil {
		return opts, err
	}

	opts.FontName = *optFont
	if opts.FontName == "" {
		opts.FontName, err = p.str("Enter the font name", settings.Font.Name)
		if err != nil {
			return opts, err
		}
	}

	opts.FontSize = *optSize
	if opts.FontSize == 0 {
		opts.FontSize, err = p.intValue("Enter the font size", settings.Font.Size, func(v int) error {
			if v <= 0 {
				return fmt.Errorf("font size must be positive")
			}
			return nil
		})
		if err != nil {
			return opts, err
		}
	}
	if opts.FontSize <= 0 {
		return opts, fmt.Errorf("font size must be positive, got %d", opts.FontSize)
	}

	opts.WidthCm = *optWidth
	if opts.WidthCm == 0 {
		opts.WidthCm = settings.Split.WidthCm
	}
	if opts.WidthCm == 0 {
		opts.WidthCm, err = p.floatValue("Enter the maximum line width in cm", 0, func(v float64) error {
			if v <= 0 {
				return fmt.Errorf("width must be greater than 0")
			}
			return nil
		})
		if err != nil {
			return opts, err
		}
	}
	if opts.WidthCm <= 0 {
		return opts, fmt.Errorf("maximum width must be positive, got %g", opts.WidthCm)
	}

	opts.DPI = *optDPI
	if opts.DPI == 0 {
		opts.DPI = settings.Font.DPI
	}
	if opts.DPI <= 0 {
		return opts, fmt.Errorf("dpi must be positive, got %g", opts.DPI)
	}

	opts.Delimiter = *optDelimiter
	if opts.Delimiter == "" {
		opts.Delimiter = settings.Split.Delimiter
	}

	opts.Output = *optOutput
	if opts.Output == "" {
		def := defaultOutputPath(opts.Input)
		opts.Output, err = p.str("Enter the output file path", def)
		if err != nil {
			return opts, err
		}
	}

	opts.MaxWidthPx = typeset.CmToPixels(opts.WidthCm, opts.DPI)
	return opts, nil
}

func printColumnPreview(header []string) {
	fmt.Println()
	fmt.Println("CSV columns found:")
	for i, name := range header {
		fmt.Printf("  %2d: %s\n", i, runewidth.Truncate(name, 50, "…"))
	}
	fmt.Println()
}

// defaultOutputPath derives "data_modified.csv" from "data.csv".
func defaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_modified" + ext
}
