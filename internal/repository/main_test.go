//go:build integration
// +build integration

package repository

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"resource-manager-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupted
		testutils.StopPostgres()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.StopPostgres()
	os.Exit(code)
}
