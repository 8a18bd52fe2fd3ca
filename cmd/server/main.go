package main

import (
	alog "github.com/lesismal/arpc/log"

	"github.com/Jarnpher553/gostore/internal/logger"
	"github.com/Jarnpher553/gostore/internal/server"
	"github.com/Jarnpher553/gostore/internal/server/cmdflag"
	"github.com/Jarnpher553/gostore/internal/server/types"
	"github.com/Jarnpher553/gostore/internal/store"
)

func main() {
	logx := &logger.XLogger{}
	logx.SetLevel(alog.LevelInfo)

	cfg := cmdflag.Parse(logx)

	var st store.Store
	var err error
	switch cfg.Storage {
	case types.StorageLeveldb:
		st, err = store.NewLeveldbStore(store.StorageFile, cfg.DBPath)
	case types.StorageSqlite:
		st, err = store.NewSqliteStore(cfg.DBPath)
	case types.StorageMap:
		st = store.NewMapStore()
	}
	if err != nil {
		logx.Fatal("Open %s store: %s", cfg.Storage, err)
	}

	server.New(cfg, st).Serve()
}
