package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	sched, err := Parse("10:00")
	require.NoError(t, err)
	require.Equal(t, "10:00", sched.String())
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "banana", "25:00", "10:61", "10", "10:00:00"} {
		_, err := Parse(input)
		require.ErrorIs(t, err, ErrInvalidTime, "input %q", input)
	}
}

func TestSchedule_Next_BeforeTrigger(t *testing.T) {
	t.Parallel()

	sched, err := Parse("10:00")
	require.NoError(t, err)

	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local)
	next := sched.Next(now)
	require.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local), next)
}

func TestSchedule_Next_AfterTrigger(t *testing.T) {
	t.Parallel()

	sched, err := Parse("10:00")
	require.NoError(t, err)

	now := time.Date(2024, 5, 1, 11, 0, 0, 0, time.Local)
	next := sched.Next(now)
	require.Equal(t, time.Date(2024, 5, 2, 10, 0, 0, 0, time.Local), next)
}

func TestSchedule_Next_AtTrigger(t *testing.T) {
	t.Parallel()

	sched, err := Parse("10:00")
	require.NoError(t, err)

	// The trigger is strictly after now, so an exact hit schedules tomorrow.
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)
	next := sched.Next(now)
	require.Equal(t, time.Date(2024, 5, 2, 10, 0, 0, 0, time.Local), next)
}

func TestScheduler_Run_SurvivesFailedRun(t *testing.T) {
	t.Parallel()

	sched, err := Parse("10:00")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Fire the first two waits immediately, then block so the loop can only
	// exit through context cancellation.
	fired := make(chan time.Time)
	close(fired)
	var waits int

	calls := 0
	s := New(sched, nil)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.Local) }
	s.after = func(d time.Duration) <-chan time.Time {
		waits++
		if waits > 2 {
			return make(chan time.Time)
		}
		return fired
	}

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, func(ctx context.Context) error {
			calls++
			if calls == 1 {
				return errors.New("provider unavailable")
			}
			cancel()
			return nil
		})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not keep running after a failed job")
	}
	require.Equal(t, 2, calls, "second trigger must fire after a failed run")
}

func TestScheduler_Run_StopsOnCancel(t *testing.T) {
	t.Parallel()

	sched, err := Parse("10:00")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- New(sched, nil).Run(ctx, func(ctx context.Context) error { return nil })
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancellation")
	}
}
