package cmdflag

import (
	"flag"
	"net"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/Jarnpher553/gostore/internal/logger"
	"github.com/Jarnpher553/gostore/internal/server/types"
)

var addr = flag.String("addr", "", "listen addr, host:port")
var storage = flag.String("storage", "", "storage backend: leveldb, sqlite or map")
var dbPath = flag.String("db", "", "database path for leveldb/sqlite backends")
var prefix = flag.String("prefix", "", "default key prefix")

//Parse build the server config: environment first, set flags win
func Parse(log *logger.XLogger) *types.ServerCfg {
	c := &types.ServerCfg{}
	if err := env.Parse(c); err != nil {
		log.Fatal("Parse environment: %s", err)
	}

	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			c.Addr = *addr
		case "storage":
			c.Storage = *storage
		case "db":
			c.DBPath = *dbPath
		case "prefix":
			c.Prefix = *prefix
		}
	})

	if !strings.Contains(c.Addr, ":") {
		log.Fatal("Server address format error")
	}
	splitAddr := strings.SplitN(c.Addr, ":", 2)
	if splitAddr[0] != "" {
		if ip := net.ParseIP(splitAddr[0]); ip == nil {
			log.Fatal("Server ip format error")
		}
	}
	if _, err := strconv.Atoi(splitAddr[1]); err != nil {
		log.Fatal("Server port format error")
	}

	switch c.Storage {
	case types.StorageLeveldb, types.StorageSqlite, types.StorageMap:
	default:
		log.Fatal("Storage hasn't be leveldb, sqlite or map")
	}

	if c.Storage != types.StorageMap && c.DBPath == "" {
		log.Fatal("Database path can't be empty")
	}

	return c
}
