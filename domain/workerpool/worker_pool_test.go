package workerpool_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	. "github.com/osmosis-labs/sqs-verifier/domain/workerpool"
)

func TestDispatcherRun(t *testing.T) {
	dispatcher := NewDispatcher[int](1)

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		dispatcher.Run()
	}()

	job := Job[int]{Task: func() (int, error) { return 99, nil }}

	dispatcher.JobQueue <- job

	select {
	case result := <-dispatcher.ResultQueue:
		if result.Result != 99 {
			t.Errorf("expected 99, got %d", result.Result)
		}
		if result.Err != nil {
			t.Errorf("expected no error, got %v", result.Err)
		}
	case <-time.After(60 * time.Second):
		t.Fatal("job result was not received in time")
	}

	close(dispatcher.JobQueue)
	wg.Wait()
}

func TestDispatcherRun_Error(t *testing.T) {
	dispatcher := NewDispatcher[int](2)

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		dispatcher.Run()
	}()

	job := Job[int]{Task: func() (int, error) { return 0, errors.New("test error") }}

	dispatcher.JobQueue <- job

	select {
	case result := <-dispatcher.ResultQueue:
		if result.Err == nil {
			t.Fatal("expected error, got nil")
		}
		if result.Err.Error() != "test error" {
			t.Errorf("expected 'test error', got %v", result.Err)
		}
	case <-time.After(60 * time.Second):
		t.Fatal("job result was not received in time")
	}

	close(dispatcher.JobQueue)
	wg.Wait()

	// All workers exited; the result queue must be closed.
	if _, ok := <-dispatcher.ResultQueue; ok {
		t.Fatal("expected result queue to be closed")
	}
}
