package sigsched_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	ss "github.com/Andrej220/go-utils/sigsched"
)

// driveMain runs s on its own goroutine and returns a stop function
// that detaches the driver and reports Run's error.
func driveMain(ctx context.Context, s *ss.MainScheduler) (stop func() error) {
	ctx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Run(ctx)
	}()
	return func() error {
		cancel()
		return <-errCh
	}
}

func TestMainFIFOWithCancellation(t *testing.T) {
	t.Parallel()

	m := &ss.AtomicMetrics{}
	s := ss.NewMainFromOptions(ss.Options{
		Name:    "main-test",
		Metrics: m,
	})
	rec := &recorder{}

	// no driver is running yet, so B is cancelled strictly before any
	// dequeue can happen
	s.Schedule(rec.action("A"))
	cancelB := s.Schedule(rec.action("B"))
	s.Schedule(rec.action("C"))
	cancelB.Dispose()

	require.Equal(t, 3, s.QueueLength())

	stop := driveMain(context.Background(), s)

	waitUntil(t, testTimeout, func() bool { return m.Executed() == 2 })

	require.Equal(t, []string{"A", "C"}, rec.got())
	require.EqualValues(t, 1, m.Skipped())
	require.Zero(t, s.QueueLength())

	require.ErrorIs(t, stop(), context.Canceled)
}

func TestMainWakesOnScheduleAfterIdle(t *testing.T) {
	t.Parallel()

	s := ss.NewMainFromOptions(ss.Options{Name: "main-wake"})
	rec := &recorder{}

	// attach the driver on an empty queue; it must suspend, not spin,
	// and wake when work arrives
	attached := make(chan struct{})
	s.Schedule(func() error {
		close(attached)
		return nil
	})

	stop := driveMain(context.Background(), s)
	defer func() { _ = stop() }()

	<-attached

	s.Schedule(rec.action("late"))
	waitUntil(t, testTimeout, func() bool { return rec.len() == 1 })

	require.Equal(t, []string{"late"}, rec.got())
}

func TestMainSingleDriver(t *testing.T) {
	t.Parallel()

	s := ss.NewMainFromOptions(ss.Options{Name: "main-owner"})

	attached := make(chan struct{})
	s.Schedule(func() error {
		close(attached)
		return nil
	})

	stop := driveMain(context.Background(), s)
	<-attached

	// the first driver holds the instance
	err := s.Run(context.Background())
	require.ErrorIs(t, err, ss.ErrDriverAttached)

	// once it detaches the instance can be claimed again
	require.ErrorIs(t, stop(), context.Canceled)

	stop2 := driveMain(context.Background(), s)
	rec := &recorder{}
	s.Schedule(rec.action("second-owner"))
	waitUntil(t, testTimeout, func() bool { return rec.len() == 1 })
	require.ErrorIs(t, stop2(), context.Canceled)
}

func TestMainNeverSpawns(t *testing.T) {
	t.Parallel()

	m := &ss.AtomicMetrics{}
	s := ss.NewMainFromOptions(ss.Options{
		Name:    "main-no-spawn",
		Metrics: m,
	})
	rec := &recorder{}

	s.Schedule(rec.action("A"))
	s.Schedule(rec.action("B"))

	// nothing drives the queue, so nothing may run
	require.Equal(t, 2, s.QueueLength())
	require.Zero(t, m.Executed())
	require.Zero(t, m.WorkerSpawns())

	stop := driveMain(context.Background(), s)
	waitUntil(t, testTimeout, func() bool { return m.Executed() == 2 })
	require.Equal(t, []string{"A", "B"}, rec.got())
	require.Zero(t, m.WorkerSpawns())
	require.ErrorIs(t, stop(), context.Canceled)
}

func TestMainNilAction(t *testing.T) {
	t.Parallel()

	errs := &errCollector{}
	s := ss.NewMainFromOptions(ss.Options{
		Name:            "main-nil",
		OnInternalError: errs.handler(),
	})

	d := s.Schedule(nil)

	require.True(t, d.Disposed())
	require.Zero(t, s.QueueLength())

	got := errs.got()
	require.Len(t, got, 1)
	require.ErrorIs(t, got[0], ss.ErrNilAction)
}
