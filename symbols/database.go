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

package symbols

import (
	"database/sql"

	"github.com/jetsetilly/gbamap/curated"

	// sqlite3 driver is registered with database/sql
	_ "github.com/mattn/go-sqlite3"
)

const createTable = `CREATE TABLE IF NOT EXISTS symbols (
	name TEXT NOT NULL PRIMARY KEY,
	address INTEGER NOT NULL,
	size INTEGER NOT NULL,
	kind TEXT NOT NULL
)`

const createIndex = `CREATE INDEX IF NOT EXISTS symbols_address ON symbols (address)`

// Export writes every symbol in the table to the database. Any symbols
// already in the database are removed first.
func (t *Table) Export(db *sql.DB) error {
	if _, err := db.Exec(createTable); err != nil {
		return curated.Errorf(DatabaseError, err)
	}
	if _, err := db.Exec(createIndex); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	tx, err := db.Begin()
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	if _, err := tx.Exec(`DELETE FROM symbols`); err != nil {
		_ = tx.Rollback()
		return curated.Errorf(DatabaseError, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO symbols (name, address, size, kind) VALUES (?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return curated.Errorf(DatabaseError, err)
	}
	defer stmt.Close()

	for _, e := range t.entries {
		if _, err := stmt.Exec(e.Name, int64(e.Address), int64(e.Size), e.Kind.String()); err != nil {
			_ = tx.Rollback()
			return curated.Errorf(DatabaseError, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return curated.Errorf(DatabaseError, err)
	}

	return nil
}

// WriteDatabase opens (or creates) the SQLite database file and exports the
// table to it.
func (t *Table) WriteDatabase(filename string) error {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return curated.Errorf(DatabaseError, err)
	}
	defer db.Close()

	return t.Export(db)
}

// ReadDatabase returns the symbols in the database, in address order.
func ReadDatabase(db *sql.DB) ([]Symbol, error) {
	rows, err := db.Query(`SELECT name, address, size, kind FROM symbols ORDER BY address, rowid`)
	if err != nil {
		return nil, curated.Errorf(DatabaseError, err)
	}
	defer rows.Close()

	var syms []Symbol
	for rows.Next() {
		var s Symbol
		var address, size int64
		var kind string
		if err := rows.Scan(&s.Name, &address, &size, &kind); err != nil {
			return nil, curated.Errorf(DatabaseError, err)
		}
		s.Address = uint32(address)
		s.Size = uint32(size)
		s.Kind = parseKind(kind)
		syms = append(syms, s)
	}

	if err := rows.Err(); err != nil {
		return nil, curated.Errorf(DatabaseError, err)
	}

	return syms, nil
}

func parseKind(s string) Kind {
	switch s {
	case "register":
		return Register
	case "region":
		return Region
	case "location":
		return Location
	}
	return Label
}
