package types

import uuid "github.com/satori/go.uuid"

const (
	//PubSubPassword shared secret for the change-notification channel
	PubSubPassword = "U2FsdGVkX18Wi+guhMZL8DvCOqfA6j/MWMdUOv9tOvQ="
	//RemovedMarker published on a key's topic when the entry is deleted
	RemovedMarker = "\x00gostore:removed"
)

//Storage backend selection
const (
	StorageLeveldb = "leveldb"
	StorageSqlite  = "sqlite"
	StorageMap     = "map"
)

//ServerMetadata server instance metadata
type ServerMetadata struct {
	ID    uuid.UUID
	LAddr string
	RAddr string
}

//ServerCfg runtime configuration, from flags merged over environment
type ServerCfg struct {
	Addr    string `env:"GOSTORE_ADDR" envDefault:":9019"`
	Storage string `env:"GOSTORE_STORAGE" envDefault:"leveldb"`
	DBPath  string `env:"GOSTORE_DB" envDefault:"./db"`
	Prefix  string `env:"GOSTORE_PREFIX"`
}
