package types

import (
	"github.com/Jarnpher553/gostore/component/storage"
	"github.com/Jarnpher553/gostore/internal/logger"
	"github.com/Jarnpher553/gostore/internal/server/event"
	"github.com/Jarnpher553/gostore/internal/store"
)

//ServiceCtx dependencies threaded into every handler.
//Store is the raw backend for handlers addressing physical keys directly,
//Storage the prefixed facade over the same backend.
type ServiceCtx struct {
	Meta    *ServerMetadata
	Store   store.Store
	Storage *storage.Service
	Prefix  string
	Trigger event.Trigger
	Logger  *logger.XLogger
}

//CalcPrefix per-request prefix, request value wins over the server default
func (s *ServiceCtx) CalcPrefix(reqPrefix string) string {
	if reqPrefix != "" {
		return reqPrefix
	}
	return s.Prefix
}
