// This file is part of gbamap.
//
// gbamap is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbamap is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbamap.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gbamap/curated"
	"github.com/jetsetilly/gbamap/hardware/memory/addresses"
	"github.com/jetsetilly/gbamap/hardware/memory/memorymap"
	"github.com/jetsetilly/gbamap/logger"
	"github.com/jetsetilly/gbamap/paths"
	"github.com/jetsetilly/gbamap/symbols"
	"github.com/jetsetilly/gbamap/version"
	"github.com/urfave/cli/v2"
)

const defaultDB = "gbamap.db"

// error patterns for the command line
const (
	unknownArgument = "unknown symbol or address: %s"
	missingArgument = "%s requires %s"
	noDatabase      = "cannot locate symbols database: %v"
)

func init() {
	// -v is taken by --verbose
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(10)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = version.ApplicationName
	app.Usage = "GBA memory map reference"
	app.Version = version.String()
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"GBAMAP_DB"},
			Usage:   "path to symbols database (default: gbamap.db in the resource path)",
		},
		&cli.StringFlag{
			Name:    "symbols",
			Aliases: []string{"s"},
			EnvVars: []string{"GBAMAP_SYMBOLS"},
			Usage:   "symbols file to add to the canonical symbols",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"GBAMAP_VERBOSE"},
			Usage:   "echo log to stderr",
		},
	}

	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			logger.SetEcho(c.App.ErrWriter)
		}
		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:  "summary",
			Usage: "List the regions of the memory map",
			Action: func(c *cli.Context) error {
				fmt.Fprint(c.App.Writer, memorymap.Summary())
				return nil
			},
		},
		{
			Name:  "symbols",
			Usage: "List all symbols in address order",
			Action: func(c *cli.Context) error {
				tbl, err := table(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				fmt.Fprint(c.App.Writer, tbl)
				return nil
			},
		},
		{
			Name:      "lookup",
			Usage:     "Describe an address or symbol",
			ArgsUsage: "ADDRESS|SYMBOL",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					return cli.NewExitError(curated.Errorf(missingArgument, "lookup", "an address or symbol"), 1)
				}

				tbl, err := table(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := lookup(c.App.Writer, tbl, c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}
				return nil
			},
		},
		{
			Name:        "index",
			Usage:       "Calculate the address of an indexed location",
			Description: indexDescription(),
			ArgsUsage:   "KIND INDEX...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					return cli.NewExitError(curated.Errorf(missingArgument, "index", "a kind"), 1)
				}

				address, err := index(c.Args().First(), c.Args().Tail())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				logger.Logf(logger.Allow, "index", "%s %v: 0x%08x", c.Args().First(), c.Args().Tail(), address)
				fmt.Fprintf(c.App.Writer, "0x%08x\n", address)
				return nil
			},
		},
		{
			Name:  "export",
			Usage: "Write symbols to the database",
			Action: func(c *cli.Context) error {
				tbl, err := table(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				db, err := database(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := tbl.WriteDatabase(db); err != nil {
					return cli.NewExitError(err, 1)
				}

				logger.Logf(logger.Allow, "export", "%d symbols written to %s", tbl.Len(), db)
				return nil
			},
		},
		{
			Name:  "graph",
			Usage: "Output the region table as a graphviz document",
			Action: func(c *cli.Context) error {
				regions := memorymap.Regions()
				memviz.Map(c.App.Writer, &regions)
				return nil
			},
		},
	}

	return app
}

// database returns the path to the symbols database. the default path is
// only resolved when it is needed because resolving it creates the resource
// directory.
func database(c *cli.Context) (string, error) {
	if db := c.String("db"); db != "" {
		return db, nil
	}
	db, err := paths.ResourcePath("", defaultDB)
	if err != nil {
		return "", curated.Errorf(noDatabase, err)
	}
	return db, nil
}

// table returns the canonical symbols and the contents of the symbols file,
// if there is one.
func table(c *cli.Context) (*symbols.Table, error) {
	fn := c.String("symbols")
	if fn == "" {
		return symbols.NewTable(), nil
	}
	logger.Logf(logger.Allow, "symbols", "reading %s", fn)
	return symbols.ReadSymbolsFile(fn)
}

// lookup writes a description of the symbol or address to the io.Writer.
// Symbols take precedence over addresses.
func lookup(w io.Writer, tbl *symbols.Table, arg string) error {
	if sym, ok := tbl.Search(arg); ok {
		describe(w, tbl, sym.Address)
		return nil
	}

	address, err := parseAddress(arg)
	if err != nil {
		return curated.Errorf(unknownArgument, arg)
	}

	describe(w, tbl, address)
	return nil
}

func describe(w io.Writer, tbl *symbols.Table, address uint32) {
	mapped, area := memorymap.MapAddress(address)
	fmt.Fprintf(w, "0x%08x %s\n", address, area)
	if mapped != address {
		fmt.Fprintf(w, "mirror of 0x%08x\n", mapped)
	}

	for _, s := range tbl.ReverseSearch(address) {
		if s.Kind != symbols.Register {
			fmt.Fprintf(w, "%s (%s)\n", s.Name, s.Kind)
		}
	}

	for _, r := range addresses.Lookup(mapped) {
		fmt.Fprintln(w, r)
	}
}
