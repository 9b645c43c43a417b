package syncstate_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/syncstate/syncstate"
)

func TestTaskRunnerRunsAllTasks(t *testing.T) {
	tr := syncstate.NewTaskRunner(context.Background(), 4)
	var ran int32
	for i := 0; i < 20; i++ {
		tr.Go(func() error {
			atomic.AddInt32(&ran, 1)
			return nil
		})
	}
	if err := tr.Wait(); err != nil {
		t.Fatalf("Wait() failed, got = %v, want = nil", err)
	}
	if ran != 20 {
		t.Errorf("task count failed, got = %d, want = 20", ran)
	}
}

func TestTaskRunnerPropagatesError(t *testing.T) {
	tr := syncstate.NewTaskRunner(context.Background(), 2)
	boom := errors.New("task failed")
	tr.Go(func() error { return nil })
	tr.Go(func() error { return boom })
	if err := tr.Wait(); !errors.Is(err, boom) {
		t.Errorf("Wait() failed, got = %v, want = %v", err, boom)
	}
}
