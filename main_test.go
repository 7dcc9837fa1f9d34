package main

import (
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"
)

func TestServe_ListenFailure(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to reserve a port: %v", err)
	}
	defer taken.Close()

	srv := &http.Server{Addr: taken.Addr().String(), Handler: http.NotFoundHandler()}

	if err := serve(srv, make(chan os.Signal)); err == nil {
		t.Error("Expected an error when the address is already in use")
	}
}

func TestServe_SignalShutdown(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	shutdown := make(chan os.Signal, 1)

	done := make(chan error, 1)
	go func() { done <- serve(srv, shutdown) }()

	shutdown <- syscall.SIGTERM

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after shutdown signal")
	}
}
