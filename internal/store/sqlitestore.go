package store

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

//SqliteStore store use a single-table sqlite database
type SqliteStore struct {
	DB *sql.DB
}

//NewSqliteStore open (or create) the database at path, ":memory:" for ephemeral
func NewSqliteStore(path string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (k TEXT PRIMARY KEY, v BLOB NOT NULL)`); err != nil {
		db.Close()
		return nil, err
	}
	return &SqliteStore{DB: db}, nil
}

//Put set key/value
func (store *SqliteStore) Put(k []byte, v []byte) error {
	_, err := store.DB.Exec(`INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`, string(k), v)
	return err
}

//Get get value of key, ErrNotFound when absent
func (store *SqliteStore) Get(k []byte) ([]byte, error) {
	var v []byte
	err := store.DB.QueryRow(`SELECT v FROM kv WHERE k = ?`, string(k)).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

//Delete delete key/value, absent key is a no-op
func (store *SqliteStore) Delete(k []byte) error {
	_, err := store.DB.Exec(`DELETE FROM kv WHERE k = ?`, string(k))
	return err
}

//Items get key/value pairs by key's prefix
func (store *SqliteStore) Items(prefix ...string) ([]*KeyValuePair, error) {
	var p string
	if len(prefix) != 0 && prefix[0] != "" {
		p = prefix[0]
	}
	// substr avoids LIKE wildcard escaping for keys holding % or _
	rows, err := store.DB.Query(`SELECT k, v FROM kv WHERE substr(k, 1, ?) = ?`, len(p), p)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*KeyValuePair, 0)
	for rows.Next() {
		var k string
		var v []byte
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out = append(out, &KeyValuePair{
			Key:   []byte(k),
			Value: v,
		})
	}
	return out, rows.Err()
}

//Close close the underlying db
func (store *SqliteStore) Close() error {
	return store.DB.Close()
}
