package storage

import "fmt"

//ParseError stored raw value is not valid JSON
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("storage: parse value of key [%s]: %s", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

//SerializeError value can't be marshaled to JSON
type SerializeError struct {
	Err error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("storage: serialize value: %s", e.Err)
}

func (e *SerializeError) Unwrap() error {
	return e.Err
}
