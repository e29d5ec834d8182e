package rpc

import (
	"errors"
	"fmt"
	"mandelbrot/misc"
	"net/rpc"

	"github.com/BrugadaSyndrome/bslogger"
)

type TcpClient struct {
	client        *rpc.Client
	serverAddress string

	Logger bslogger.Logger
	Name   string
}

func NewTcpClient(serverAddress string, name string, verbose bool) TcpClient {
	return TcpClient{
		serverAddress: serverAddress,
		Name:          name,
		Logger:        misc.NewLogger(name, verbose),
	}
}

func (tc *TcpClient) Connect() error {
	if tc.client != nil {
		tc.Logger.Warning(fmt.Sprintf("Already connected to server at address %s", tc.serverAddress))
		return nil
	}

	var err error
	tc.client, err = rpc.Dial("tcp", tc.serverAddress)
	if err != nil {
		tc.Logger.Error(fmt.Sprintf("Connecting to server at address %s", tc.serverAddress))
		return err
	}
	tc.Logger.Info(fmt.Sprintf("Connected to server at: %s", tc.serverAddress))
	return nil
}

func (tc *TcpClient) Call(method string, request interface{}, reply interface{}) error {
	if tc.client == nil {
		message := fmt.Sprintf("Not connected to server at address %s : method %s", tc.serverAddress, method)
		tc.Logger.Error(message)
		return errors.New(message)
	}

	err := tc.client.Call(method, request, reply)
	if err != nil {
		return fmt.Errorf("calling server at address %s, method %s - %w", tc.serverAddress, method, err)
	}
	tc.Logger.Debug(fmt.Sprintf("Calling server [%s] %s", tc.serverAddress, method))
	return nil
}

func (tc *TcpClient) Disconnect() error {
	if tc.client == nil {
		message := fmt.Sprintf("Already disconnected from server at address %s", tc.serverAddress)
		tc.Logger.Warning(message)
		return errors.New(message)
	}

	err := tc.client.Close()
	tc.client = nil
	if err != nil {
		tc.Logger.Error(fmt.Sprintf("Disconnecting from server at serverAddress %s", tc.serverAddress))
		return err
	}
	tc.Logger.Info(fmt.Sprintf("Disconnected from server at %s", tc.serverAddress))
	return nil
}
