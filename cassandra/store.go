package cassandra

import (
	"context"
	"fmt"

	"github.com/gocql/gocql"

	"github.com/syncstate/syncstate"
)

type store struct{}

// NewStore instantiates a Store over the package's global connection.
// OpenConnection should have been called beforehand.
func NewStore() syncstate.Store {
	return &store{}
}

// Fetch reads the value stored under key from the field values table.
func (s *store) Fetch(ctx context.Context, key string) (bool, []byte, error) {
	if connection == nil {
		return false, nil, fmt.Errorf("Cassandra connection is closed, 'call OpenConnection(config) to open it")
	}
	selectStatement := fmt.Sprintf("SELECT value FROM %s.field_value WHERE key = ?;", connection.Config.Keyspace)
	qry := connection.Session.Query(selectStatement, key).WithContext(ctx)
	if connection.Config.ConsistencyBook.FieldGet > gocql.Any {
		qry.Consistency(connection.Config.ConsistencyBook.FieldGet)
	}
	var ba []byte
	if err := qry.Scan(&ba); err != nil {
		if err == gocql.ErrNotFound {
			return false, nil, nil
		}
		return false, nil, err
	}
	return true, ba, nil
}

// Put upserts the value under key in the field values table.
func (s *store) Put(ctx context.Context, key string, value []byte) error {
	if connection == nil {
		return fmt.Errorf("Cassandra connection is closed, 'call OpenConnection(config) to open it")
	}
	insertStatement := fmt.Sprintf("INSERT INTO %s.field_value (key, value) VALUES(?,?);", connection.Config.Keyspace)
	qry := connection.Session.Query(insertStatement, key, value).WithContext(ctx)
	if connection.Config.ConsistencyBook.FieldPut > gocql.Any {
		qry.Consistency(connection.Config.ConsistencyBook.FieldPut)
	}
	return qry.Exec()
}
