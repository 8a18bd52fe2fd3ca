package store

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewSqliteStore(t *testing.T) {
	t.Run("NewSqliteStore_Mem", func(t *testing.T) {
		s, err := NewSqliteStore(":memory:")
		if err != nil || s.DB == nil {
			t.FailNow()
		}
		s.Close()
	})
}

func TestSqliteStore_PutGet(t *testing.T) {
	type args struct {
		key []byte
		val []byte
	}
	tests := []struct {
		args args
	}{
		{args: args{key: []byte("key1"), val: []byte("value1")}},
		{args: args{key: []byte("key2"), val: []byte("value2")}},
		{args: args{key: []byte("key3"), val: []byte("value3")}},
	}

	s, err := NewSqliteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	for i, v := range tests {
		t.Run(fmt.Sprintf("SqliteStore_PutGet_%d", i), func(t *testing.T) {
			if err := s.Put(v.args.key, v.args.val); err != nil {
				t.FailNow()
			}
			got, err := s.Get(v.args.key)
			if err != nil || string(got) != string(v.args.val) {
				t.FailNow()
			}
		})
	}
	t.Run("SqliteStore_Put_Overwrite", func(t *testing.T) {
		s.Put([]byte("key1"), []byte("value1x"))
		got, _ := s.Get([]byte("key1"))
		if string(got) != "value1x" {
			t.FailNow()
		}
	})
	t.Run("SqliteStore_Get_NoItem", func(t *testing.T) {
		_, err := s.Get([]byte("no_item"))
		if !errors.Is(err, ErrNotFound) {
			t.FailNow()
		}
	})
}

func TestSqliteStore_Delete(t *testing.T) {
	s, err := NewSqliteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	s.Put([]byte("key1"), []byte("value1"))

	t.Run("SqliteStore_Delete", func(t *testing.T) {
		_ = s.Delete([]byte("key1"))
		_, err := s.Get([]byte("key1"))
		if !errors.Is(err, ErrNotFound) {
			t.FailNow()
		}
	})
	t.Run("SqliteStore_Delete_NoItem", func(t *testing.T) {
		if err := s.Delete([]byte("no_item")); err != nil {
			t.FailNow()
		}
	})
}

func TestSqliteStore_Items(t *testing.T) {
	s, err := NewSqliteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	s.Put([]byte("app.key1"), []byte("value1"))
	s.Put([]byte("app.key2"), []byte("value2"))
	s.Put([]byte("tmp.key3"), []byte("value3"))
	s.Put([]byte("app_key4"), []byte("value4"))

	t.Run("SqliteStore_Items_Prefix", func(t *testing.T) {
		pairs, _ := s.Items("app.")
		if len(pairs) != 2 {
			t.FailNow()
		}
		for _, kv := range pairs {
			if !strings.HasPrefix(string(kv.Key), "app.") {
				t.FailNow()
			}
		}
	})
	t.Run("SqliteStore_Items_All", func(t *testing.T) {
		pairs, _ := s.Items()
		if len(pairs) != 4 {
			t.FailNow()
		}
	})
}
