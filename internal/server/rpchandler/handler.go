package rpchandler

import (
	"github.com/lesismal/arpc"

	"github.com/Jarnpher553/gostore/internal/server/types"
)

//RpcHandlerFunc rpc handler function type
type RpcHandlerFunc func(s *types.ServiceCtx) func(c *arpc.Context)

//EchoHandler reply the current value of the key a watcher subscribes to.
//The key is resolved as the raw Prefix + Key, the same string the watcher
//uses as its subscription topic and change events publish on. No default
//prefix fallback here: echo and topic must name the same physical key.
func EchoHandler(ctx *types.ServiceCtx) func(c *arpc.Context) {
	return func(c *arpc.Context) {
		var in types.WatchMeta
		if err := c.Bind(&in); err != nil {
			return
		}

		v, err := ctx.Store.Get([]byte(in.Prefix + in.Key))
		if err != nil {
			return
		}

		c.Client.Set("watch_meta", &in)
		c.Write(v)
	}
}
