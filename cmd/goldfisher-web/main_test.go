package main

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTrySendAfterDisconnect(t *testing.T) {
	c := newClient(nil, zap.NewNop())

	c.closeSend()

	assert.NotPanics(t, func() {
		c.trySend(Message{Type: "progress", Current: 1, Total: 10})
	})
}

func TestCloseSendIsIdempotent(t *testing.T) {
	c := newClient(nil, zap.NewNop())

	assert.NotPanics(t, func() {
		c.closeSend()
		c.closeSend()
	})
}

func TestTrySendRacesDisconnect(t *testing.T) {
	c := newClient(nil, zap.NewNop())

	// Drain like writePump so sends before the close go through.
	go func() {
		for range c.send {
		}
	}()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			c.trySend(Message{Type: "progress", Current: i})
		}
	}()
	go func() {
		defer wg.Done()
		c.closeSend()
	}()
	wg.Wait()
}
