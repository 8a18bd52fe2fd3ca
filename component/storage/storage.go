package storage

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/Jarnpher553/gostore/internal/store"
)

//Options per-call options, merged over the service defaults
type Options struct {
	Prefix string
}

//Service prefixed facade over a backend store. Physical keys are
//prefix + logical key; listing never touches keys outside the prefix.
//The service holds no mutable state and is safe to share.
type Service struct {
	store    store.Store
	defaults Options
}

func New(st store.Store, defaults Options) *Service {
	return &Service{
		store:    st,
		defaults: defaults,
	}
}

//calcOptions merge per-call options over defaults, per-call wins.
//An empty per-call prefix counts as not supplied.
func (s *Service) calcOptions(opts []Options) Options {
	o := s.defaults
	if len(opts) != 0 && opts[0].Prefix != "" {
		o.Prefix = opts[0].Prefix
	}
	return o
}

//Get get the raw string under key, false when absent
func (s *Service) Get(key string, opts ...Options) (string, bool, error) {
	o := s.calcOptions(opts)
	v, err := s.store.Get([]byte(o.Prefix + key))
	if errors.Is(err, store.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(v), true, nil
}

//GetObject get the value under key and unmarshal it into v, false when absent
func (s *Service) GetObject(key string, v interface{}, opts ...Options) (bool, error) {
	raw, ok, err := s.Get(key, opts...)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, &ParseError{Key: key, Err: err}
	}
	return true, nil
}

//GetAll get every entry under the active prefix, logical key to parsed value.
//A value that isn't valid JSON aborts the whole enumeration.
func (s *Service) GetAll(opts ...Options) (map[string]interface{}, error) {
	o := s.calcOptions(opts)
	pairs, err := s.store.Items(o.Prefix)
	if err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, len(pairs))
	for _, kv := range pairs {
		logical := strings.TrimPrefix(string(kv.Key), o.Prefix)
		var v interface{}
		if err := json.Unmarshal(kv.Value, &v); err != nil {
			return nil, &ParseError{Key: logical, Err: err}
		}
		out[logical] = v
	}
	return out, nil
}

//Put write the raw string value under key
func (s *Service) Put(key string, value string, opts ...Options) error {
	o := s.calcOptions(opts)
	return s.store.Put([]byte(o.Prefix+key), []byte(value))
}

//PutObject marshal v to JSON and write it under key
func (s *Service) PutObject(key string, v interface{}, opts ...Options) error {
	b, err := json.Marshal(v)
	if err != nil {
		return &SerializeError{Err: err}
	}
	return s.Put(key, string(b), opts...)
}

//Remove delete the entry under key, absent key is a no-op
func (s *Service) Remove(key string, opts ...Options) error {
	o := s.calcOptions(opts)
	return s.store.Delete([]byte(o.Prefix + key))
}
