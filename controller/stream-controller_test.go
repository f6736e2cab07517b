package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type failingReader struct {
	mu    sync.Mutex
	calls int
}

func (r *failingReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if ctx.Err() != nil {
		return kafka.Message{}, ctx.Err()
	}
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	return kafka.Message{}, errors.New("broker unreachable")
}

func (r *failingReader) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func TestBookingFeedBacksOffOnReadErrors(t *testing.T) {
	e := &StreamController{
		connections: make(map[*websocket.Conn]bool),
		readBackoff: 5 * time.Millisecond,
	}
	reader := &failingReader{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		e.consume(ctx, reader)
		close(done)
	}()

	time.Sleep(60 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consume did not stop after cancel")
	}

	// 5ms doubling backoff between attempts allows only a handful of reads
	// in 60ms; a tight retry loop would rack up thousands.
	assert.Greater(t, reader.callCount(), 0)
	assert.Less(t, reader.callCount(), 15)
}

func TestBookingFeedStopsOnCancel(t *testing.T) {
	e := &StreamController{
		connections: make(map[*websocket.Conn]bool),
		readBackoff: time.Millisecond,
	}
	reader := &failingReader{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		e.consume(ctx, reader)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consume did not return for a cancelled context")
	}
	assert.Zero(t, reader.callCount())
}
