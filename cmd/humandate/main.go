package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jessevdk/go-flags"

	humandate "github.com/goliatone/go-humandate"
)

type opts struct {
	Language string   `short:"l" long:"lang" default:"es" description:"Language code used for keywords and unit suffixes (es, en, que or loaded from --languages)."`
	Pattern  string   `short:"p" long:"pattern" default:"dd/MM/yyyy" description:"Output pattern for fixed formatting."`
	Human    bool     `short:"H" long:"human" description:"Print a localized phrase instead of the fixed pattern."`
	Today    string   `long:"today" description:"Reference date as yyyy-MM-dd, defaults to the wall clock."`
	Files    []string `short:"f" long:"languages" description:"Extra language definition files (YAML or JSON)."`

	Args struct {
		Expr []string `positional-arg-name:"EXPR" required:"1" description:"Expressions to parse, e.g. 'hoy', '+2s', '19062024'."`
	} `positional-args:"yes"`
}

func main() {
	var cli opts
	if _, err := flags.Parse(&cli); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "humandate: %v\n", err)
		os.Exit(1)
	}
}

func run(cli opts) error {
	registry := humandate.NewRegistry()
	if len(cli.Files) > 0 {
		if err := humandate.NewFileLoader(cli.Files...).LoadInto(registry); err != nil {
			return err
		}
	}

	converterOpts := []humandate.ConverterOption{
		humandate.WithLanguage(cli.Language),
		humandate.WithConverterPattern(cli.Pattern),
	}
	if cli.Today != "" {
		reference, err := time.Parse("2006-01-02", cli.Today)
		if err != nil {
			return fmt.Errorf("invalid --today value %q: %w", cli.Today, err)
		}
		converterOpts = append(converterOpts, humandate.WithConverterReference(reference))
	}

	converter, err := humandate.NewConverter(registry, converterOpts...)
	if err != nil {
		return err
	}

	for _, expr := range cli.Args.Expr {
		date, ok := converter.Parse(expr)
		if !ok {
			fmt.Printf("%s\t?\n", expr)
			continue
		}
		if cli.Human {
			fmt.Printf("%s\t%s\n", expr, converter.FormatHuman(date))
		} else {
			fmt.Printf("%s\t%s\n", expr, converter.Format(date))
		}
	}
	return nil
}
