package store

import "errors"

//ErrNotFound returned by Get when no entry exists under the key
var ErrNotFound = errors.New("store: key not found")

type KeyValuePair struct {
	Key   []byte
	Value []byte
}

//Store backend key/value storage
type Store interface {
	Put([]byte, []byte) error
	Get([]byte) ([]byte, error)
	Delete([]byte) error
	Items(prefix ...string) ([]*KeyValuePair, error)
}
