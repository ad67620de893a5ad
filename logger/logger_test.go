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

package logger_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gbamap/logger"
	"github.com/jetsetilly/gbamap/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.CompareWriter{}

	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test.Writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	log.Tail(tw, 100)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	tw.Clear()
	log.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "test2: this is another test\n")

	// and no entries
	tw.Clear()
	log.Tail(tw, 0)
	test.ExpectEquality(t, tw.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.CompareWriter{}

	log.Logf(logger.Allow, "tag", "%08x", 0x0400_0120)
	log.Logf(logger.Allow, "tag", "%08x", 0x0400_0120)
	log.Logf(logger.Allow, "tag", "%08x", 0x0400_0120)
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "tag: 04000120 (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	tw := &test.CompareWriter{}

	for i := 0; i < 5; i++ {
		log.Log(logger.Allow, "tag", fmt.Sprintf("%d", i))
	}
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "tag: 3\ntag: 4\n")

	tw.Clear()
	log.Clear()
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "")
}

type prohibitLogging struct{}

func (_ prohibitLogging) AllowLogging() bool {
	return false
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	tw := &test.CompareWriter{}

	log.Log(prohibitLogging{}, "tag", "prohibited")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	echo := &test.CompareWriter{}

	log.SetEcho(echo)
	log.Log(logger.Allow, "tag", "echoed")
	test.ExpectEquality(t, echo.String(), "tag: echoed\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "not echoed")
	test.ExpectEquality(t, echo.String(), "tag: echoed\n")
}
