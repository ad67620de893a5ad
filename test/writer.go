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

package test

import (
	"strings"
	"sync"
	"testing"
)

// CompareWriter captures everything written to it so that it can be compared
// with an expected string. It is safe to write to from more than one
// goroutine.
type CompareWriter struct {
	crit sync.Mutex
	b    strings.Builder
}

func (w *CompareWriter) Write(p []byte) (int, error) {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.b.Write(p)
}

// Clear empties the captured output.
func (w *CompareWriter) Clear() {
	w.crit.Lock()
	defer w.crit.Unlock()
	w.b.Reset()
}

// Compare returns true if the captured output is exactly s.
func (w *CompareWriter) Compare(s string) bool {
	return w.String() == s
}

// Contains returns true if s appears anywhere in the captured output.
func (w *CompareWriter) Contains(s string) bool {
	return strings.Contains(w.String(), s)
}

// Lines returns the captured output split into lines. A trailing newline does
// not produce an empty final line.
func (w *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(w.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (w *CompareWriter) String() string {
	w.crit.Lock()
	defer w.crit.Unlock()
	return w.b.String()
}

// ExpectOutput tests that the captured output is exactly the expected string.
// The output is shown in full if the test fails.
func ExpectOutput(t *testing.T, w *CompareWriter, expected string, tags ...any) bool {
	t.Helper()
	if !w.Compare(expected) {
		t.Errorf("%soutput does not match\n--- got\n%s--- expected\n%s", id(tags...), w.String(), expected)
		return false
	}
	return true
}
