package query

import (
	"database/sql"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"
)

// Cursor executes a query and gives access to its result set.
type Cursor interface {
	// Execute runs the query and makes its results available for FetchAll and Description.
	Execute(query string) error
	// Description returns result column names in order.
	Description() []string
	// FetchAll returns all result rows. Every row has one value per described column.
	FetchAll() ([][]interface{}, error)
}

// Queryer is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Queryer interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
}

// SQLCursor is a Cursor over database/sql.
type SQLCursor struct {
	db      Queryer
	columns []string
	rows    [][]interface{}
}

// NewSQLCursor returns cursor executing queries with given database handle.
func NewSQLCursor(db Queryer) *SQLCursor {
	return &SQLCursor{db: db}
}

// Execute implements Cursor interface.
func (c *SQLCursor) Execute(query string) error {
	c.columns, c.rows = nil, nil

	rows, err := c.db.Query(query)
	if err != nil {
		return err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	result := [][]interface{}{}
	for rows.Next() {
		cells := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range cells {
			pointers[i] = &cells[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return err
		}
		for i, cell := range cells {
			// Text cells are returned by some drivers as raw bytes owned by the driver.
			if b, ok := cell.([]byte); ok {
				cells[i] = string(b)
			}
		}
		result = append(result, cells)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	c.columns, c.rows = columns, result
	return nil
}

// Description implements Cursor interface.
func (c *SQLCursor) Description() []string {
	return c.columns
}

// FetchAll implements Cursor interface.
func (c *SQLCursor) FetchAll() ([][]interface{}, error) {
	if c.columns == nil {
		return nil, errors.New("no query executed")
	}
	return c.rows, nil
}

// CassandraCursor is a Cursor over a gocql session.
type CassandraCursor struct {
	session *gocql.Session
	columns []string
	rows    [][]interface{}
}

// NewCassandraCursor returns cursor executing CQL queries in given session.
func NewCassandraCursor(session *gocql.Session) *CassandraCursor {
	return &CassandraCursor{session: session}
}

// Execute implements Cursor interface.
func (c *CassandraCursor) Execute(query string) error {
	c.columns, c.rows = nil, nil

	iter := c.session.Query(query).Iter()
	columns := []string{}
	for _, column := range iter.Columns() {
		columns = append(columns, column.Name)
	}

	maps, err := iter.SliceMap()
	if err != nil {
		iter.Close()
		return err
	}
	if err := iter.Close(); err != nil {
		return err
	}

	c.columns, c.rows = columns, orderByColumns(columns, maps)
	return nil
}

// Description implements Cursor interface.
func (c *CassandraCursor) Description() []string {
	return c.columns
}

// FetchAll implements Cursor interface.
func (c *CassandraCursor) FetchAll() ([][]interface{}, error) {
	if c.columns == nil {
		return nil, errors.New("no query executed")
	}
	return c.rows, nil
}

func orderByColumns(columns []string, maps []map[string]interface{}) [][]interface{} {
	rows := make([][]interface{}, 0, len(maps))
	for _, m := range maps {
		row := make([]interface{}, len(columns))
		for i, column := range columns {
			row[i] = m[column]
		}
		rows = append(rows, row)
	}
	return rows
}
