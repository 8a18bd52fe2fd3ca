package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/lesismal/arpc/extension/pubsub"
	alog "github.com/lesismal/arpc/log"
	uuid "github.com/satori/go.uuid"

	"github.com/Jarnpher553/gostore/component/storage"
	"github.com/Jarnpher553/gostore/internal/logger"
	"github.com/Jarnpher553/gostore/internal/server/event"
	"github.com/Jarnpher553/gostore/internal/server/handler"
	"github.com/Jarnpher553/gostore/internal/server/listener"
	"github.com/Jarnpher553/gostore/internal/server/rpchandler"
	"github.com/Jarnpher553/gostore/internal/server/types"
	"github.com/Jarnpher553/gostore/internal/store"
	"github.com/Jarnpher553/gostore/internal/util/color"
)

type EventHandler func(*event.Event) error

type route struct {
	Method string
	URL    string
}

type Server struct {
	meta          *types.ServerMetadata
	httpServer    *http.Server
	psServer      *pubsub.Server
	store         store.Store
	storage       *storage.Service
	prefix        string
	listener      *listener.Listener
	rpcListener   *listener.Listener
	serverMux     *http.ServeMux
	routes        []*route
	trigger       event.Trigger
	eventHandlers map[string]EventHandler
	logger        *logger.XLogger
}

func New(cfg *types.ServerCfg, st store.Store) *Server {
	logx := &logger.XLogger{}
	logx.SetLevel(alog.LevelInfo)

	start := strings.Index(cfg.Addr, ":")
	s := &Server{
		meta: &types.ServerMetadata{
			ID:    uuid.NewV4(),
			RAddr: cfg.Addr,
			LAddr: cfg.Addr[start:],
		},
		store:   st,
		storage: storage.New(st, storage.Options{Prefix: cfg.Prefix}),
		prefix:  cfg.Prefix,
		trigger: make(chan *event.Event, 5),
		logger:  logx,
	}
	s.eventHandlers = map[string]EventHandler{
		event.PutEntry:    s.eventChangeHandler,
		event.RemoveEntry: s.eventChangeHandler,
	}

	alog.SetLogger(logx)
	psServer := pubsub.NewServer()
	psServer.Password = types.PubSubPassword
	psServer.Handler.SetLogTag("[" + color.Green("PubSub") + "]")
	psServer.Handler.Handle("/echo", rpchandler.EchoHandler(s.serviceCtx()))
	s.psServer = psServer

	serverMux := http.NewServeMux()
	s.httpServer = &http.Server{
		Addr:           s.meta.LAddr,
		Handler:        serverMux,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	s.serverMux = serverMux

	s.route(&route{Method: http.MethodPost, URL: "/get"}, handler.GetEntryHandler)
	s.route(&route{Method: http.MethodPost, URL: "/all"}, handler.AllEntriesHandler)
	s.route(&route{Method: http.MethodPost, URL: "/put"}, handler.PutEntryHandler)
	s.route(&route{Method: http.MethodPost, URL: "/remove"}, handler.RemoveEntryHandler)
	s.route(&route{Method: http.MethodGet, URL: "/health"}, handler.HealthHandler)

	return s
}

func (s *Server) serviceCtx() *types.ServiceCtx {
	return &types.ServiceCtx{
		Meta:    s.meta,
		Store:   s.store,
		Storage: s.storage,
		Prefix:  s.prefix,
		Trigger: s.trigger,
		Logger:  s.logger,
	}
}

func (s *Server) route(r *route, handlerFunc handler.HandlerFunc) {
	s.routes = append(s.routes, r)
	s.serverMux.HandleFunc(r.URL, s.recovery(handlerFunc(s.serviceCtx(), r.Method)))
}

func (s *Server) recovery(f func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Error("Recover: %s", err)
			}
		}()
		f(w, r)
	}
}

func (s *Server) printRoutes() {
	for i, r := range s.routes {
		s.logger.Info("Route [%s] Method [%s] Path [%s]", color.Green(i), color.Green(r.Method), color.Green(r.URL))
	}
}

func (s *Server) Serve() {
	ln, err := listener.NewListener(s.meta.LAddr)
	if err != nil {
		s.logger.Fatal("Create listener: %s", err)
	}
	s.listener = ln

	figure.NewColorFigure("Gostore", "", "green", true).Print()
	s.logger.Info("Server [%s] listening on [%s]", color.Green(s.meta.ID), color.Green(s.meta.LAddr))

	s.printRoutes()

	go func() {
		if err := s.httpServer.Serve(ln); err != nil {
			s.logger.Info("Listen: %s", err)
		}
	}()

	rpcPort, _ := strconv.Atoi(strings.Split(s.meta.LAddr, ":")[1])
	rpcLn, err := listener.NewListener(fmt.Sprintf(":%d", rpcPort+1))
	if err != nil {
		s.logger.Fatal("Create rpc listener: %s", err)
	}
	s.rpcListener = rpcLn
	go func() {
		if err := s.psServer.Serve(rpcLn); err != nil {
			s.logger.Info("PubSub Listen: %s", err)
		}
	}()

	go s.execEvent()

	notify := make(chan os.Signal, 1)
	signal.Notify(notify, syscall.SIGINT, syscall.SIGTERM)

	<-notify

	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Fatal("Server forced to shutdown: %s", err)
	}

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	if err := s.psServer.Shutdown(ctx2); err != nil {
		s.logger.Fatal("PubSub Server forced to shutdown: %s", err)
	}

	s.logger.Info("Server exiting.")
}

func (s *Server) execEvent() {
	for ev := range s.trigger.C() {
		if h, ok := s.eventHandlers[ev.Type]; ok {
			_ = h(ev)
		}
	}
}

//eventChangeHandler publish the new value (or removal marker) on the key's topic
func (s *Server) eventChangeHandler(ev *event.Event) error {
	err := s.psServer.Publish(ev.Key, ev.Value)
	if err != nil {
		s.logger.Info("Publish [%s] failure: %s", ev.Key, err)
		return err
	}

	return nil
}
