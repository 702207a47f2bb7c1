package transport

import (
	"errors"
	"log"
	"net"

	"reqparse/internal/config"
	"reqparse/internal/http/request"
	"reqparse/internal/middleware"

	"golang.org/x/net/netutil"
)

type httpServer struct {
	handler  *httpHandler
	port     string
	maxConns int
}

func NewHTTPServer(conf config.Config) Transport {
	return &httpServer{
		handler: newHTTPHandler(
			request.NewParser(conf.BufferSize()),
			conf.ReadTimeout(),
			conf.MaxRequestSize(),
			middlewares(conf)...,
		),
		port:     conf.HTTPPort(),
		maxConns: conf.MaxConnections(),
	}
}

func middlewares(conf config.Config) []middleware.RequestMiddleware {
	var mws []middleware.RequestMiddleware
	if conf.RequireHost() {
		mws = append(mws, middleware.NewRequireHost())
	}
	if allowed := conf.AllowedMethods(); len(allowed) > 0 {
		methods := make([]request.Method, 0, len(allowed))
		for _, m := range allowed {
			methods = append(methods, request.Method(m))
		}
		mws = append(mws, middleware.NewAllowMethods(methods...))
	}
	return mws
}

func (ht *httpServer) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", ":"+ht.port)
	if err != nil {
		return nil, err
	}
	if ht.maxConns > 0 {
		ln = netutil.LimitListener(ln, ht.maxConns)
	}
	return ln, nil
}

func (ht *httpServer) Serve(listener net.Listener) error {
	log.Printf("HTTP server is starting on %s", listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.Printf("Error accepting connection: %v", err)
			continue
		}

		go ht.handler.handler(conn)
	}
}
