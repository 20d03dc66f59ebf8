package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()

	var first, second int
	s.AddJob("first", time.Minute, func(ctx context.Context) error {
		first++
		return nil
	})
	s.AddJob("second", time.Minute, func(ctx context.Context) error {
		second++
		return nil
	})

	s.RunOnce(context.Background())

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestScheduler_RunOnce_FailedJobDoesNotStopOthers(t *testing.T) {
	s := NewScheduler()

	var ran bool
	s.AddJob("failing", time.Minute, func(ctx context.Context) error {
		return errors.New("boom")
	})
	s.AddJob("after", time.Minute, func(ctx context.Context) error {
		ran = true
		return nil
	})

	s.RunOnce(context.Background())

	assert.True(t, ran)
}
