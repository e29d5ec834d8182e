package rpc

import (
	"errors"
	"fmt"
	"mandelbrot/misc"
	"net"
	"net/rpc"
	"sync"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
)

type TcpServer struct {
	address  string
	listener *net.TCPListener
	object   interface{}
	shutdown chan bool

	Logger bslogger.Logger
	Name   string
	WG     *sync.WaitGroup
}

func NewTcpServer(object interface{}, address string, name string, verbose bool) TcpServer {
	return TcpServer{
		address:  address,
		object:   object,
		shutdown: make(chan bool, 1),
		Logger:   misc.NewLogger(name, verbose),
		Name:     name,
		WG:       &sync.WaitGroup{},
	}
}

// Address is the address the server listens on. Once running, a port of 0
// has been replaced by the port actually chosen.
func (ts *TcpServer) Address() string {
	if ts.listener != nil {
		return ts.listener.Addr().String()
	}
	return ts.address
}

func (ts *TcpServer) Run() error {
	handler := rpc.NewServer()
	err := handler.Register(ts.object)
	if err != nil {
		ts.Logger.Error("Registering object")
		return err
	}

	tcpAddress, err := net.ResolveTCPAddr("tcp", ts.address)
	if err != nil {
		ts.Logger.Error(fmt.Sprintf("Resolving tcp address %s", ts.address))
		return err
	}

	ts.listener, err = net.ListenTCP("tcp", tcpAddress)
	if err != nil {
		ts.Logger.Error(fmt.Sprintf("Listening at address %s", ts.address))
		return err
	}

	ts.WG.Add(1)
	go func() {
		defer ts.WG.Done()
		for {
			select {
			case <-ts.shutdown:
				// Server has been give the signal to shutdown
				err := ts.listener.Close()
				if err != nil {
					ts.Logger.Info(fmt.Sprintf("Server closed connection to client - %s", err))
				}
				return
			default:
				// Poll this connection periodically
				ts.listener.SetDeadline(time.Now().Add(time.Second))
			}

			conn, err := ts.listener.Accept()
			if err != nil {
				var netErr net.Error
				if errors.As(err, &netErr) && netErr.Timeout() {
					// Deadline timeout has occurred
					continue
				}
				// There was actually an error listening
				ts.Logger.Warning(fmt.Sprintf("Accepting connection at address %s - %s", ts.Address(), err))
				continue
			}

			ts.Logger.Debug(fmt.Sprintf("Server opened connection to client at address %s", conn.RemoteAddr()))
			go handler.ServeConn(conn)
		}
	}()

	ts.Logger.Info(fmt.Sprintf("Running server at address %s", ts.Address()))
	return nil
}

func (ts *TcpServer) Stop() error {
	if ts.listener == nil {
		return errors.New("server is not running")
	}
	ts.Logger.Info(fmt.Sprintf("Shutting down server at address %s", ts.Address()))
	close(ts.shutdown)
	ts.WG.Wait()
	return nil
}
