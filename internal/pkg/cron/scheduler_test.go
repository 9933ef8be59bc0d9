package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler(context.Background())

	var order []string
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		order = append(order, "second")
		return errors.New("boom")
	})
	s.AddJob("third", time.Hour, func(ctx context.Context) error {
		order = append(order, "third")
		return nil
	})

	err := s.RunOnce(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "second: boom")
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler(context.Background())

	var runs atomic.Int32
	ran := make(chan struct{}, 1)
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	s.Start()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}

	s.Stop()
	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_Jobs(t *testing.T) {
	s := NewScheduler(context.Background())
	s.AddJob("a", time.Minute, func(ctx context.Context) error { return nil })

	jobs := s.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "a", jobs[0].Name)
	assert.Equal(t, time.Minute, jobs[0].Interval)
}
