package sigsched_test

//go:generate mockgen -package mock -destination ./mock/mock_gen.go . Scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	ss "github.com/Andrej220/go-utils/sigsched"
	"github.com/Andrej220/go-utils/sigsched/mock"
)

// Generic-caller tests: the signal layer holds a Scheduler and must not
// care which variant is behind it.

func TestScheduleAllForwardsInOrder(t *testing.T) {
	t.Parallel()

	mc := gomock.NewController(t)
	m := mock.NewMockScheduler(mc)

	var disposed []int
	d0 := ss.NewDisposable(func() { disposed = append(disposed, 0) })
	d1 := ss.NewDisposable(func() { disposed = append(disposed, 1) })
	d2 := ss.NewDisposable(func() { disposed = append(disposed, 2) })

	gomock.InOrder(
		m.EXPECT().Schedule(gomock.Any()).Return(d0),
		m.EXPECT().Schedule(gomock.Any()).Return(d1),
		m.EXPECT().Schedule(gomock.Any()).Return(d2),
	)

	noop := func() error { return nil }
	combined := ss.ScheduleAll(m, noop, noop, noop)

	require.Empty(t, disposed)

	combined.Dispose()
	combined.Dispose() // idempotent through the composite

	require.Equal(t, []int{0, 1, 2}, disposed)
}

func TestScheduleAllEmpty(t *testing.T) {
	t.Parallel()

	mc := gomock.NewController(t)
	m := mock.NewMockScheduler(mc)

	combined := ss.ScheduleAll(m)
	combined.Dispose()
	require.True(t, combined.Disposed())
}

func TestScheduleAllOnBackground(t *testing.T) {
	t.Parallel()

	m := &ss.AtomicMetrics{}
	s := ss.NewBackgroundFromOptions(ss.Options{
		Name:    "sched-all",
		Metrics: m,
	})
	rec := &recorder{}

	ss.ScheduleAll(s, rec.action("A"), rec.action("B"), rec.action("C"))

	waitUntil(t, testTimeout, func() bool { return rec.len() == 3 })
	waitUntil(t, testTimeout, func() bool { return s.ActiveWorkers() == 0 })

	require.Equal(t, []string{"A", "B", "C"}, rec.got())
	require.EqualValues(t, 3, m.Scheduled())
}

func TestSchedulerInterfaceCompliance(t *testing.T) {
	t.Parallel()

	// both variants must be usable through the capability interface
	for _, s := range []ss.Scheduler{ss.NewBackground(), ss.NewMain()} {
		d := s.Schedule(func() error { return nil })
		require.NotNil(t, d)
		d.Dispose()
	}
}
