package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCleanup_ShutsDownInReverseOrder(t *testing.T) {
	var callOrder []string

	logger := &fakeComponent{name: "logger", calls: &callOrder}
	tracer := &fakeComponent{name: "tracer", calls: &callOrder}
	meter := &fakeComponent{name: "meter", calls: &callOrder}

	cleanup := newCleanup(time.Second, logger, tracer, meter)
	cleanup()

	require.Equal(t, []string{"meter", "tracer", "logger"}, callOrder)
}

func TestNewCleanup_ContinuesAfterFailure(t *testing.T) {
	var callOrder []string

	first := &fakeComponent{name: "first", calls: &callOrder}
	failing := &fakeComponent{name: "failing", calls: &callOrder, err: errors.New("collector unreachable")}

	newCleanup(time.Second, first, failing)()

	require.Equal(t, []string{"failing", "first"}, callOrder)
}

func TestNewCleanup_SkipsNilAndBoundsEachCall(t *testing.T) {
	var callOrder []string
	c := &fakeComponent{name: "only", calls: &callOrder}

	newCleanup(50*time.Millisecond, nil, c)()

	require.Equal(t, []string{"only"}, callOrder)
	deadline, ok := c.receivedCtx.Deadline()
	require.True(t, ok, "each shutdown gets a deadline")
	assert.WithinDuration(t, time.Now(), deadline, time.Second)
}

type fakeComponent struct {
	name        string
	calls       *[]string
	err         error
	receivedCtx context.Context
}

func (f *fakeComponent) Shutdown(ctx context.Context) error {
	f.receivedCtx = ctx
	*f.calls = append(*f.calls, f.name)
	return f.err
}
