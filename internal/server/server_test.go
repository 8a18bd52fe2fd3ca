package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/lesismal/arpc/extension/pubsub"

	"github.com/Jarnpher553/gostore/internal/server/event"
	"github.com/Jarnpher553/gostore/internal/server/listener"
	"github.com/Jarnpher553/gostore/internal/server/types"
	"github.com/Jarnpher553/gostore/internal/store"
)

func TestNew(t *testing.T) {
	leveldbStore, _ := store.NewLeveldbStore(store.StorageMem, "")

	t.Run("New_Leveldb", func(t *testing.T) {
		server := New(&types.ServerCfg{
			Addr:    ":8888",
			Storage: types.StorageLeveldb,
			Prefix:  "app.",
		}, leveldbStore)
		if server == nil {
			t.FailNow()
		}
		if len(server.routes) != 5 {
			t.FailNow()
		}
	})

	t.Run("New_Map", func(t *testing.T) {
		server := New(&types.ServerCfg{
			Addr:    ":8888",
			Storage: types.StorageMap,
		}, store.NewMapStore())
		if server == nil {
			t.FailNow()
		}
	})
}

func TestServer_Watch(t *testing.T) {
	st := store.NewMapStore()
	server := New(&types.ServerCfg{
		Addr:    ":9219",
		Storage: types.StorageMap,
		Prefix:  "app.",
	}, st)
	server.storage.Put("k", "v0")

	ln, err := listener.NewListener("127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go server.psServer.Serve(ln)
	go server.execEvent()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		server.psServer.Shutdown(ctx)
	}()

	cl, err := pubsub.NewClient(func() (net.Conn, error) {
		return net.Dial("tcp", ln.Addr().String())
	})
	if err != nil {
		t.Fatal(err)
	}
	defer cl.Stop()
	cl.Password = types.PubSubPassword
	if err := cl.Authenticate(); err != nil {
		t.Fatal(err)
	}

	out := make(chan string, 5)
	if err := cl.Subscribe("app.k", func(topic *pubsub.Topic) {
		out <- string(topic.Data)
	}, time.Second*5); err != nil {
		t.Fatal(err)
	}

	t.Run("Watch_Echo", func(t *testing.T) {
		var rsp string
		if err := cl.Call("/echo", &types.WatchMeta{Key: "k", Prefix: "app."}, &rsp, time.Second*5); err != nil {
			t.FailNow()
		}
		if rsp != "v0" {
			t.FailNow()
		}
	})

	t.Run("Watch_Echo_NoPrefixFallback", func(t *testing.T) {
		// an unprefixed key names a different physical key than the topic,
		// so the server replies nothing for it
		var rsp string
		if err := cl.Call("/echo", &types.WatchMeta{Key: "k"}, &rsp, time.Millisecond*500); err == nil {
			t.FailNow()
		}
	})

	t.Run("Watch_PutPublishes", func(t *testing.T) {
		server.trigger.Emit(&event.Event{Type: event.PutEntry, Key: "app.k", Value: "v1"})
		select {
		case v := <-out:
			if v != "v1" {
				t.FailNow()
			}
		case <-time.After(time.Second * 5):
			t.FailNow()
		}
	})

	t.Run("Watch_RemovePublishesMarker", func(t *testing.T) {
		server.trigger.Emit(&event.Event{Type: event.RemoveEntry, Key: "app.k", Value: types.RemovedMarker})
		select {
		case v := <-out:
			if v != types.RemovedMarker {
				t.FailNow()
			}
		case <-time.After(time.Second * 5):
			t.FailNow()
		}
	})
}

func TestServer_EventChange(t *testing.T) {
	server := New(&types.ServerCfg{
		Addr:    ":8888",
		Storage: types.StorageMap,
		Prefix:  "app.",
	}, store.NewMapStore())

	t.Run("Server_EventHandlers", func(t *testing.T) {
		if server.eventHandlers["PutEntry"] == nil || server.eventHandlers["RemoveEntry"] == nil {
			t.FailNow()
		}
	})
}
