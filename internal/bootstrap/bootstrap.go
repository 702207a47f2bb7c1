package bootstrap

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"reqparse/internal/config"
	"reqparse/internal/transport"
)

type Bootstrap struct {
	Config     config.Config
	ErrChan    chan error
	SignalChan chan os.Signal
}

func New(config config.Config) (*Bootstrap, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}

	return &Bootstrap{
		Config:     config,
		ErrChan:    make(chan error, 5),
		SignalChan: make(chan os.Signal, 1),
	}, nil
}

func startHTTPServer(conf config.Config, errChan chan<- error) {
	httpserver := transport.NewHTTPServer(conf)
	ln, err := httpserver.Listen()
	if err != nil {
		errChan <- fmt.Errorf("failed to start http server: %w", err)
		return
	}
	if err = httpserver.Serve(ln); err != nil {
		errChan <- fmt.Errorf("error when serving http server: %w", err)
	}
}

func startPprof(pprofPort string, errChan chan<- error) {
	pprofAddr := fmt.Sprintf("localhost:%s", pprofPort)
	log.Printf("Starting pprof server on http://%s/debug/pprof/", pprofAddr)
	if err := http.ListenAndServe(pprofAddr, nil); err != nil {
		errChan <- fmt.Errorf("pprof server error: %v", err)
	}
}

func (b *Bootstrap) Run() error {
	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	go startHTTPServer(b.Config, b.ErrChan)

	if b.Config.PprofEnabled() {
		go startPprof(b.Config.PprofPort(), b.ErrChan)
	}

	log.Println("All services started successfully")

	select {
	case err := <-b.ErrChan:
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		log.Printf("Received signal %s, initiating graceful shutdown", sig)
		return nil
	}
}
