package client

import (
	"errors"
	"math"
	"math/rand"
	"net"
	"time"

	"github.com/lesismal/arpc"
	"github.com/lesismal/arpc/extension/pubsub"
	alog "github.com/lesismal/arpc/log"

	"github.com/Jarnpher553/gostore/internal/logger"
	"github.com/Jarnpher553/gostore/internal/server/types"
	"github.com/Jarnpher553/gostore/internal/util/color"
	"github.com/Jarnpher553/gostore/internal/util/retry"
)

//WatchClient subscribes to one key's value stream
type WatchClient struct {
	current   int
	client    *pubsub.Client
	endpoints []string
	meta      *types.WatchMeta
	outbound  chan string
}

//Config watch target. Prefix is the physical key prefix: together with Key
//it forms the subscription topic and the key /echo reads, so a server
//running with a default prefix needs that prefix spelled out here.
type Config struct {
	Key       string
	Prefix    string
	Endpoints []string
}

func New(config *Config) (*WatchClient, error) {
	if len(config.Endpoints) == 0 {
		return nil, errors.New("server's address is empty")
	}
	if config.Key == "" {
		return nil, errors.New("watch key is empty")
	}

	lgx := &logger.XLogger{}
	lgx.SetLevel(alog.LevelInfo)
	alog.SetLogger(lgx)
	arpc.DefaultHandler.SetLogTag("[" + color.Green("Gostore") + "]")

	meta := &types.WatchMeta{Key: config.Key, Prefix: config.Prefix}

	cl, err := pubsub.NewClient(func() (net.Conn, error) {
		return net.Dial("tcp", config.Endpoints[0])
	})
	if err != nil {
		return nil, err
	}
	cl.Handler.SetLogTag("[" + color.Green("Gostore") + "]")

	cl.Password = types.PubSubPassword
	if err := cl.Authenticate(); err != nil {
		return nil, err
	}

	outbound := make(chan string, 5)
	watchClient := &WatchClient{
		client:    cl,
		endpoints: config.Endpoints,
		current:   0,
		meta:      meta,
		outbound:  outbound,
	}

	cl.Handler.HandleConnected(func(client *arpc.Client) {
		var rsp string
		err := client.Call("/echo", meta, &rsp, time.Second*1)
		if err == nil {
			outbound <- rsp
		}
	})
	cl.Handler.HandleDisconnected(watchClient.disconnectedHandler)

	return watchClient, nil
}

//Watch yield the current value then every published change.
//A removed entry yields types.RemovedMarker.
func (c *WatchClient) Watch() chan string {
	var rsp string
	err := c.client.Call("/echo", c.meta, &rsp, time.Second*1)
	if err == nil {
		c.outbound <- rsp
	}

	c.client.Subscribe(c.meta.Prefix+c.meta.Key, c.subHandler, time.Second*30)
	return c.outbound
}

func (c *WatchClient) subHandler(topic *pubsub.Topic) {
	c.outbound <- string(topic.Data)
}

func (c *WatchClient) disconnectedHandler(client *arpc.Client) {
	if len(c.endpoints) == 1 {
		return
	}

	r := rand.New(rand.NewSource(time.Now().Unix()))
	var n int
	for {
		n = r.Intn(len(c.endpoints))
		if c.current == n {
			continue
		}
		break
	}
	c.current = n

	retry.Retry(math.MaxInt32, func() error {
		cl, err := pubsub.NewClient(func() (net.Conn, error) {
			return net.DialTimeout("tcp", c.endpoints[n], time.Second*30)
		})
		if err != nil {
			return err
		}
		cl.Handler.SetLogTag("[" + color.Green("Gostore") + "]")

		cl.Password = types.PubSubPassword
		if err := cl.Authenticate(); err != nil {
			return err
		}

		cl.Handler.HandleConnected(func(client *arpc.Client) {
			var rsp string
			err := client.Call("/echo", c.meta, &rsp, time.Second*1)
			if err == nil {
				c.outbound <- rsp
			}
		})
		cl.Handler.HandleDisconnected(c.disconnectedHandler)
		c.client = cl
		c.client.Subscribe(c.meta.Prefix+c.meta.Key, c.subHandler, time.Second*30)

		return nil
	})
}

func (c *WatchClient) Close() {
	c.client.Handler.HandleDisconnected(nil)
	c.client.Stop()
}
