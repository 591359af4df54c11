package refresh

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJobName = "test-job"

func TestScheduler_New(t *testing.T) {
	t.Parallel()

	t.Run("default scheduler", func(t *testing.T) {
		t.Parallel()

		s := New()

		require.NotNil(t, s)

		assert.NotNil(t, s.logger)
		assert.Equal(t, time.Second, s.queryInterval)
		assert.Equal(t, time.Second*10, s.retryDelay)
	})

	t.Run("query interval", func(t *testing.T) {
		t.Parallel()

		s := New(WithQueryInterval(time.Minute))

		require.NotNil(t, s)
		assert.Equal(t, time.Minute, s.queryInterval)
	})

	t.Run("retry delay", func(t *testing.T) {
		t.Parallel()

		s := New(WithRetryDelay(time.Minute))

		require.NotNil(t, s)
		assert.Equal(t, time.Minute, s.retryDelay)
	})
}

func TestScheduler_Register(t *testing.T) {
	t.Parallel()

	t.Run("nil job", func(t *testing.T) {
		t.Parallel()

		s := New()

		assert.ErrorIs(t, s.Register(nil), errInvalidJob)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		var (
			s = New()

			job = &mockJob{
				nameFn: func() string {
					return ""
				},
				intervalFn: func() time.Duration {
					return time.Hour
				},
			}
		)

		assert.ErrorIs(t, s.Register(job), errInvalidJob)
	})

	t.Run("zero interval", func(t *testing.T) {
		t.Parallel()

		var (
			s = New()

			job = &mockJob{
				nameFn: func() string {
					return testJobName
				},
				intervalFn: func() time.Duration {
					return 0
				},
			}
		)

		assert.ErrorIs(t, s.Register(job), errInvalidInterval)
	})

	t.Run("negative interval", func(t *testing.T) {
		t.Parallel()

		var (
			s = New()

			job = &mockJob{
				nameFn: func() string {
					return testJobName
				},
				intervalFn: func() time.Duration {
					return -time.Hour
				},
			}
		)

		assert.ErrorIs(t, s.Register(job), errInvalidInterval)
	})

	t.Run("valid job", func(t *testing.T) {
		t.Parallel()

		var (
			s = New()

			job = &mockJob{
				nameFn: func() string {
					return testJobName
				},
				intervalFn: func() time.Duration {
					return time.Hour
				},
			}
		)

		require.NoError(t, s.Register(job))

		// Verify the job was registered
		var count int

		s.registeredJobs.Range(
			func(_, _ any) bool {
				count++

				return true
			},
		)

		assert.Equal(t, 1, count)
	})

	t.Run("schedule job", func(t *testing.T) {
		t.Parallel()

		var (
			s = New()

			job = &mockJob{
				nameFn: func() string {
					return testJobName
				},
				intervalFn: func() time.Duration {
					return time.Hour
				},
			}
		)

		require.NoError(t, s.Register(job))
		assert.Equal(t, 1, s.q.Len())

		// The scheduled time should be in the past or now (immediate)
		scheduled := s.q.Index(0)
		assert.True(t, scheduled.at.Before(time.Now().Add(time.Second)))
	})
}

func TestScheduler_Start(t *testing.T) {
	t.Parallel()

	t.Run("ctx canceled", func(t *testing.T) {
		t.Parallel()

		var (
			s     = New(WithQueryInterval(time.Millisecond * 10))
			errCh = make(chan error, 1)
		)

		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			errCh <- s.Start(ctx)
		}()

		cancel()

		select {
		case err := <-errCh:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("scheduler did not shut down in time")
		}
	})

	t.Run("job executed", func(t *testing.T) {
		t.Parallel()

		var (
			runDone = make(chan struct{})
			errCh   = make(chan error, 1)

			job = &mockJob{
				nameFn: func() string {
					return testJobName
				},
				intervalFn: func() time.Duration {
					return time.Hour
				},
				runFn: func(_ context.Context) error {
					close(runDone)

					return nil
				},
			}

			s = New(WithQueryInterval(time.Millisecond * 10))
		)

		require.NoError(t, s.Register(job))

		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			errCh <- s.Start(ctx)
		}()

		select {
		case <-runDone:
			// Success
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for job run")
		}

		cancel()
		require.NoError(t, <-errCh)
	})

	t.Run("reschedule job (success)", func(t *testing.T) {
		t.Parallel()

		var (
			runCount atomic.Int32
			runsDone = make(chan struct{})
			errCh    = make(chan error, 1)

			job = &mockJob{
				nameFn: func() string {
					return testJobName
				},
				intervalFn: func() time.Duration {
					return time.Millisecond * 50
				},
				runFn: func(_ context.Context) error {
					if runCount.Add(1) == 2 {
						close(runsDone)
					}

					return nil
				},
			}

			s = New(WithQueryInterval(time.Millisecond * 10))
		)

		require.NoError(t, s.Register(job))

		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			errCh <- s.Start(ctx)
		}()

		select {
		case <-runsDone:
			// Success
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for reschedule")
		}

		cancel()
		require.NoError(t, <-errCh)

		assert.GreaterOrEqual(t, runCount.Load(), int32(2))
	})

	t.Run("retries on run error", func(t *testing.T) {
		t.Parallel()

		var (
			runCount  atomic.Int32
			retryDone = make(chan struct{})
			errCh     = make(chan error, 1)

			job = &mockJob{
				nameFn: func() string {
					return testJobName
				},
				intervalFn: func() time.Duration {
					return time.Hour
				},
				runFn: func(_ context.Context) error {
					if runCount.Add(1) == 2 {
						close(retryDone)
					}

					return errors.New("run error")
				},
			}

			s = New(
				WithQueryInterval(time.Millisecond*10),
				WithRetryDelay(time.Millisecond*50),
			)
		)

		require.NoError(t, s.Register(job))

		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			errCh <- s.Start(ctx)
		}()

		select {
		case <-retryDone:
			// Success
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for retry")
		}

		cancel()
		require.NoError(t, <-errCh)

		assert.GreaterOrEqual(t, runCount.Load(), int32(2))
	})

	t.Run("multiple jobs", func(t *testing.T) {
		t.Parallel()

		var (
			runCount atomic.Int32
			allRun   = make(chan struct{})
			errCh    = make(chan error, 1)

			jobs = []*mockJob{
				{
					nameFn: func() string {
						return "job-1"
					},
					intervalFn: func() time.Duration {
						return time.Hour
					},
					runFn: func(_ context.Context) error {
						if runCount.Add(1) == 2 {
							close(allRun)
						}

						return nil
					},
				},
				{
					nameFn: func() string {
						return "job-2"
					},
					intervalFn: func() time.Duration {
						return time.Hour
					},
					runFn: func(_ context.Context) error {
						if runCount.Add(1) == 2 {
							close(allRun)
						}

						return nil
					},
				},
			}

			s = New(WithQueryInterval(time.Millisecond * 10))
		)

		for _, job := range jobs {
			require.NoError(t, s.Register(job))
		}

		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			errCh <- s.Start(ctx)
		}()

		select {
		case <-allRun:
			// Success
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for jobs")
		}

		cancel()
		require.NoError(t, <-errCh)
	})
}
