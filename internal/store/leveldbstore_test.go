package store

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewLeveldbStore(t *testing.T) {
	t.Run("NewLeveldbStore_Mem", func(t *testing.T) {
		s, err := NewLeveldbStore(StorageMem, "")
		if err != nil || s.DB == nil {
			t.FailNow()
		}
		s.Close()
	})
}

func TestLeveldbStore_PutGet(t *testing.T) {
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

	s, _ := NewLeveldbStore(StorageMem, "")
	defer s.Close()
	for i, v := range tests {
		t.Run(fmt.Sprintf("LeveldbStore_PutGet_%d", i), func(t *testing.T) {
			if err := s.Put(v.args.key, v.args.val); err != nil {
				t.FailNow()
			}
			got, err := s.Get(v.args.key)
			if err != nil || string(got) != string(v.args.val) {
				t.FailNow()
			}
		})
	}
	t.Run("LeveldbStore_Get_NoItem", func(t *testing.T) {
		_, err := s.Get([]byte("no_item"))
		if !errors.Is(err, ErrNotFound) {
			t.FailNow()
		}
	})
}

func TestLeveldbStore_Delete(t *testing.T) {
	s, _ := NewLeveldbStore(StorageMem, "")
	defer s.Close()
	s.Put([]byte("key1"), []byte("value1"))

	t.Run("LeveldbStore_Delete", func(t *testing.T) {
		_ = s.Delete([]byte("key1"))
		_, err := s.Get([]byte("key1"))
		if !errors.Is(err, ErrNotFound) {
			t.FailNow()
		}
	})
	t.Run("LeveldbStore_Delete_NoItem", func(t *testing.T) {
		if err := s.Delete([]byte("no_item")); err != nil {
			t.FailNow()
		}
	})
}

func TestLeveldbStore_Items(t *testing.T) {
	s, _ := NewLeveldbStore(StorageMem, "")
	defer s.Close()
	s.Put([]byte("app.key1"), []byte("value1"))
	s.Put([]byte("app.key2"), []byte("value2"))
	s.Put([]byte("tmp.key3"), []byte("value3"))

	t.Run("LeveldbStore_Items_Prefix", func(t *testing.T) {
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
	t.Run("LeveldbStore_Items_All", func(t *testing.T) {
		pairs, _ := s.Items()
		if len(pairs) != 3 {
			t.FailNow()
		}
	})
}
