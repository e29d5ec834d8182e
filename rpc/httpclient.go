package rpc

import (
	"errors"
	"fmt"
	"mandelbrot/misc"
	"net/rpc"

	"github.com/BrugadaSyndrome/bslogger"
)

type HttpClient struct {
	serverAddress string
	client        *rpc.Client

	Logger bslogger.Logger
	Name   string
}

func NewHttpClient(serverAddress string, name string, verbose bool) HttpClient {
	return HttpClient{
		serverAddress: serverAddress,
		Logger:        misc.NewLogger(name, verbose),
		Name:          name,
	}
}

func (hc *HttpClient) Connect() error {
	if hc.client != nil {
		hc.Logger.Warning(fmt.Sprintf("Already connected to server at address %s", hc.serverAddress))
		return nil
	}

	var err error
	hc.client, err = rpc.DialHTTP("tcp", hc.serverAddress)
	if err != nil {
		hc.Logger.Error(fmt.Sprintf("Error connecting to server at address %s : %s", hc.serverAddress, err))
		return err
	}
	hc.Logger.Info(fmt.Sprintf("Connected to server at %s", hc.serverAddress))
	return nil
}

func (hc *HttpClient) Call(method string, request interface{}, reply interface{}) error {
	if hc.client == nil {
		message := fmt.Sprintf("Not connected to server at address: %s, method: %s", hc.serverAddress, method)
		hc.Logger.Error(message)
		return errors.New(message)
	}

	err := hc.client.Call(method, request, reply)
	if err != nil {
		return fmt.Errorf("calling server at address %s, method %s - %w", hc.serverAddress, method, err)
	}
	hc.Logger.Debug(fmt.Sprintf("Calling server %s", method))
	return nil
}

func (hc *HttpClient) Disconnect() error {
	if hc.client == nil {
		message := fmt.Sprintf("Already disconnected from server at address %s", hc.serverAddress)
		hc.Logger.Warning(message)
		return errors.New(message)
	}

	err := hc.client.Close()
	hc.client = nil
	if err != nil {
		hc.Logger.Error(fmt.Sprintf("Disconnecting from server at address %s", hc.serverAddress))
		return err
	}
	hc.Logger.Info(fmt.Sprintf("Disconnected from server at %s", hc.serverAddress))
	return nil
}
