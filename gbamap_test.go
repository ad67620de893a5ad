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
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gbamap/assert"
	"github.com/jetsetilly/gbamap/curated"
	"github.com/jetsetilly/gbamap/hardware/memory/memorymap"
	"github.com/jetsetilly/gbamap/logger"
	"github.com/jetsetilly/gbamap/symbols"
	"github.com/jetsetilly/gbamap/test"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// run the application with the arguments and return everything written to
// the application's standard output.
func run(t *testing.T, stderr io.Writer, args ...string) (string, error) {
	t.Helper()

	app := newApp()

	out := &test.CompareWriter{}
	app.Writer = out
	app.ErrWriter = stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"gbamap"}, args...))
	return out.String(), err
}

func TestSummary(t *testing.T) {
	out, err := run(t, io.Discard, "summary")
	require.NoError(t, err)
	test.ExpectEquality(t, out, memorymap.Summary())
}

func TestIndex(t *testing.T) {
	var cases = []struct {
		args     []string
		expected string
	}{
		{[]string{"objattr", "1"}, "0x07000008\n"},
		{[]string{"affinepd", "0x1f"}, "0x070003fe\n"},
		{[]string{"bgpal4", "0", "5"}, "0x0500000a\n"},
		{[]string{"bgpal8", "5"}, "0x0500000a\n"},
		{[]string{"objpal4", "15", "15"}, "0x050003fe\n"},
		{[]string{"charblock", "3"}, "0x0600c000\n"},
		{[]string{"tile4", "1", "511"}, "0x06007fe0\n"},
		{[]string{"TILE8", "1", "255"}, "0x06007fc0\n"},
		{[]string{"objtile", "1023"}, "0x06017fe0\n"},
		{[]string{"screenblock", "0"}, "0x06010000\n"},
		{[]string{"screenblock", "31"}, "0x06017c00\n"},
	}

	for _, c := range cases {
		out, err := run(t, io.Discard, append([]string{"index"}, c.args...)...)
		require.NoError(t, err, strings.Join(c.args, " "))
		test.ExpectEquality(t, out, c.expected, c.args)
	}
}

func TestIndexErrors(t *testing.T) {
	_, err := index("tile4", []string{"1", "512"})
	test.ExpectSuccess(t, curated.Has(err, assert.OutOfBounds))

	_, err = index("objattr", []string{"128"})
	test.ExpectSuccess(t, curated.Has(err, assert.OutOfBounds))

	_, err = index("bgpal4", []string{"16", "0"})
	test.ExpectSuccess(t, curated.Has(err, assert.OutOfBounds))

	_, err = index("screenblock", []string{"32"})
	test.ExpectSuccess(t, curated.Has(err, assert.OutOfBounds))

	_, err = index("bgpal4", []string{"1"})
	test.ExpectSuccess(t, curated.Is(err, wrongArgCount))

	_, err = index("objattr", []string{"-1"})
	test.ExpectSuccess(t, curated.Is(err, notAnIndex))

	_, err = index("sprite", []string{"1"})
	test.ExpectSuccess(t, curated.Is(err, unknownKind))

	_, err = run(t, io.Discard, "index", "objtile", "1024")
	require.Error(t, err)

	_, err = run(t, io.Discard, "index")
	require.Error(t, err)
}

func TestLookup(t *testing.T) {
	out, err := run(t, io.Discard, "lookup", "dispcnt")
	require.NoError(t, err)
	test.ExpectEquality(t, out, "0x04000000 IO\nIO (region)\n04000000 DISPCNT (2, read/write)\n")

	out, err = run(t, io.Discard, "lookup", "0x0400_0120")
	require.NoError(t, err)
	test.ExpectEquality(t, out, "0x04000120 IO\n04000120 SIODATA32 (4, read/write)\n04000120 SIOMULTI0 (2, read/write)\n")

	out, err = run(t, io.Discard, "lookup", "03fffffc")
	require.NoError(t, err)
	test.ExpectEquality(t, out, "0x03fffffc IWRAM\nmirror of 0x03007ffc\nIRQ_HANDLER (location)\n")

	_, err = run(t, io.Discard, "lookup", "not_a_symbol")
	require.Error(t, err)

	tbl := symbols.NewTable()
	err = lookup(io.Discard, tbl, "xyzzy")
	test.ExpectSuccess(t, curated.Is(err, unknownArgument))
}

func TestSymbolsFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "game.sym")
	require.NoError(t, os.WriteFile(fn, []byte("main 0x08000000\n"), 0o600))

	out, err := run(t, io.Discard, "--symbols", fn, "symbols")
	require.NoError(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "0x08000000 -> ROM_WAIT0\n0x08000000 -> main\n"))

	_, err = run(t, io.Discard, "--symbols", filepath.Join(t.TempDir(), "missing.sym"), "symbols")
	require.Error(t, err)
}

func TestExport(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "symbols.db")

	_, err := run(t, io.Discard, "--db", fn, "export")
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", fn)
	require.NoError(t, err)
	defer db.Close()

	syms, err := symbols.ReadDatabase(db)
	require.NoError(t, err)
	require.Equal(t, symbols.NewTable().Symbols(), syms)
}

func TestNoResourcePath(t *testing.T) {
	// commands that only compute addresses never touch the resource path
	home := t.TempDir()
	t.Setenv("HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	out, err := run(t, io.Discard, "index", "objattr", "1")
	require.NoError(t, err)
	test.ExpectEquality(t, out, "0x07000008\n")

	t.Setenv("HOME", home)
	for _, cmd := range []string{"summary", "graph", "symbols"} {
		_, err = run(t, io.Discard, cmd)
		require.NoError(t, err, cmd)
	}
	_, err = run(t, io.Discard, "lookup", "DISPCNT")
	require.NoError(t, err)

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestExportDefaultPath(t *testing.T) {
	t.Setenv("GBAMAP_DB", "")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	require.NoError(t, os.Mkdir(".gbamap", 0700))

	_, err = run(t, io.Discard, "export")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(".gbamap", defaultDB))
	require.NoError(t, err)
}

func TestGraph(t *testing.T) {
	out, err := run(t, io.Discard, "graph")
	require.NoError(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "digraph"))
}

func TestVerbose(t *testing.T) {
	logger.Clear()
	defer logger.SetEcho(nil)

	stderr := &test.CompareWriter{}
	_, err := run(t, stderr, "--verbose", "index", "objattr", "1")
	require.NoError(t, err)
	test.ExpectSuccess(t, stderr.Contains("index: objattr [1]: 0x07000008"))
}
