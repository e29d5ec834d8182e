package rpc

import (
	"context"
	"errors"
	"fmt"
	"mandelbrot/misc"
	"net"
	"net/http"
	"net/rpc"
	"sync"

	"github.com/BrugadaSyndrome/bslogger"
)

type HttpServer struct {
	address  string
	listener net.Listener
	mux      *http.ServeMux
	object   interface{}
	server   *http.Server

	Logger bslogger.Logger
	Name   string
	WG     *sync.WaitGroup
}

func NewHttpServer(object interface{}, address string, name string, verbose bool) HttpServer {
	return HttpServer{
		address: address,
		mux:     http.NewServeMux(),
		object:  object,
		Logger:  misc.NewLogger(name, verbose),
		Name:    name,
		WG:      &sync.WaitGroup{},
	}
}

func (hs *HttpServer) Address() string {
	if hs.listener != nil {
		return hs.listener.Addr().String()
	}
	return hs.address
}

func (hs *HttpServer) Run() error {
	handler := rpc.NewServer()
	err := handler.Register(hs.object)
	if err != nil {
		hs.Logger.Error("Registering object")
		return err
	}

	// Each server gets its own mux instead of http.DefaultServeMux
	// https://github.com/golang/go/issues/13395
	hs.mux.Handle(rpc.DefaultRPCPath, handler)

	// Make a new listener for this object
	hs.listener, err = net.Listen("tcp", hs.address)
	if err != nil {
		hs.Logger.Error(fmt.Sprintf("Listening at address %s", hs.address))
		return err
	}

	// Start the server until a stop signal is received
	hs.server = &http.Server{Addr: hs.address, Handler: hs.mux}
	hs.WG.Add(1)
	go func() {
		defer hs.WG.Done()
		if err := hs.server.Serve(hs.listener); !errors.Is(err, http.ErrServerClosed) {
			hs.Logger.Error(fmt.Sprintf("Error serving at address %s - %s", hs.Address(), err))
		}
	}()

	hs.Logger.Info(fmt.Sprintf("Running server at address %s", hs.Address()))
	return nil
}

func (hs *HttpServer) Stop() error {
	if hs.server == nil {
		return errors.New("server is not running")
	}
	if err := hs.server.Shutdown(context.Background()); err != nil {
		hs.Logger.Error(fmt.Sprintf("Shutting down server at address %s", hs.Address()))
		return err
	}
	hs.WG.Wait()
	hs.Logger.Info(fmt.Sprintf("Shut down server at address %s", hs.Address()))
	return nil
}
