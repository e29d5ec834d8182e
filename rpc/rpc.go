package rpc

import "fmt"

const (
	Tcp  = "tcp"
	Http = "http"
)

// Server exposes the exported methods of an object over net/rpc.
type Server interface {
	Address() string
	Run() error
	Stop() error
}

// Client calls methods on a Server. Call is safe for concurrent use once connected.
type Client interface {
	Call(method string, request interface{}, reply interface{}) error
	Connect() error
	Disconnect() error
}

func NewServer(transport string, object interface{}, address string, name string, verbose bool) (Server, error) {
	switch transport {
	case "", Tcp:
		server := NewTcpServer(object, address, name, verbose)
		return &server, nil
	case Http:
		server := NewHttpServer(object, address, name, verbose)
		return &server, nil
	}
	return nil, fmt.Errorf("unknown transport %q", transport)
}

func NewClient(transport string, serverAddress string, name string, verbose bool) (Client, error) {
	switch transport {
	case "", Tcp:
		client := NewTcpClient(serverAddress, name, verbose)
		return &client, nil
	case Http:
		client := NewHttpClient(serverAddress, name, verbose)
		return &client, nil
	}
	return nil, fmt.Errorf("unknown transport %q", transport)
}
