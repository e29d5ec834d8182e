package rpc

import (
	"errors"
	"testing"
)

type Arithmetic struct{}

func (a *Arithmetic) Double(n int, reply *int) error {
	*reply = 2 * n
	return nil
}

func (a *Arithmetic) Fail(n int, reply *int) error {
	return errors.New("always fails")
}

func TestTransports(t *testing.T) {
	for _, transport := range []string{Tcp, Http} {
		t.Run(transport, func(t *testing.T) {
			server, err := NewServer(transport, &Arithmetic{}, "127.0.0.1:0", "TestServer", false)
			if err != nil {
				t.Fatalf("NewServer returned an error: %v", err)
			}
			if err := server.Run(); err != nil {
				t.Fatalf("Run returned an error: %v", err)
			}
			defer server.Stop()

			client, err := NewClient(transport, server.Address(), "TestClient", false)
			if err != nil {
				t.Fatalf("NewClient returned an error: %v", err)
			}
			if err := client.Connect(); err != nil {
				t.Fatalf("Connect returned an error: %v", err)
			}

			var reply int
			if err := client.Call("Arithmetic.Double", 21, &reply); err != nil {
				t.Fatalf("Call returned an error: %v", err)
			}
			if reply != 42 {
				t.Errorf("Double(21) = %d, want 42", reply)
			}

			if err := client.Call("Arithmetic.Fail", 1, &reply); err == nil {
				t.Error("expected the server error to reach the client")
			}

			if err := client.Disconnect(); err != nil {
				t.Errorf("Disconnect returned an error: %v", err)
			}
			if err := client.Disconnect(); err == nil {
				t.Error("expected an error disconnecting twice")
			}
			if err := client.Call("Arithmetic.Double", 1, &reply); err == nil {
				t.Error("expected an error calling while disconnected")
			}
		})
	}
}

func TestUnknownTransport(t *testing.T) {
	if _, err := NewServer("udp", &Arithmetic{}, "127.0.0.1:0", "TestServer", false); err == nil {
		t.Error("expected an error for an unknown server transport")
	}
	if _, err := NewClient("udp", "127.0.0.1:1", "TestClient", false); err == nil {
		t.Error("expected an error for an unknown client transport")
	}
}

func TestStopBeforeRun(t *testing.T) {
	server := NewTcpServer(&Arithmetic{}, "127.0.0.1:0", "TestServer", false)
	if err := server.Stop(); err == nil {
		t.Error("expected an error stopping a server that never ran")
	}
}
