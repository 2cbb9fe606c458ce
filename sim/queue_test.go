package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with processes [1, 2]
	a, b := &Process{PID: 1}, &Process{PID: 2}
	q := queueOf(StateReady, a, b)

	// WHEN Peek() is called
	got := q.Peek()

	// THEN it returns the front element without removing it
	if got != a {
		t.Errorf("Peek: got pid %d, want 1", got.PID)
	}
	if q.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", q.Len())
	}
}

func TestStateQueue_Peek_Empty_ReturnsNil(t *testing.T) {
	q := NewStateQueue(StateReady)
	if got := q.Peek(); got != nil {
		t.Errorf("Peek on empty queue: got %v, want nil", got)
	}
}

func TestStateQueue_Enqueue_AdoptsQueueState(t *testing.T) {
	// GIVEN a NEW process
	p := &Process{PID: 7, State: StateNew}

	// WHEN it is enqueued on READY
	q := NewStateQueue(StateReady)
	q.Enqueue(p)

	// THEN the record carries the READY state
	assert.Equal(t, StateReady, p.State)
}

func TestStateQueue_ScratchQueue_LeavesStateUntouched(t *testing.T) {
	p := &Process{PID: 7, State: StateNew}
	q := NewStateQueue("")
	q.Enqueue(p)
	assert.Equal(t, StateNew, p.State)
}

func TestStateQueue_PopFront_LengthInvariant(t *testing.T) {
	// GIVEN a queue of three processes
	q := queueOf(StateReady, &Process{PID: 1}, &Process{PID: 2}, &Process{PID: 3})

	// WHEN the head is popped twice, once handed back and once destroyed
	got := q.PopFront(false)
	destroyed := q.PopFront(true)

	// THEN each pop shrinks the queue by one and FIFO order holds
	require.NotNil(t, got)
	assert.Equal(t, 1, got.PID)
	assert.Nil(t, destroyed)
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, 3, q.Peek().PID)
}

func TestStateQueue_PopFront_Empty_Panics(t *testing.T) {
	// GIVEN an empty WAITING queue
	q := NewStateQueue(StateWaiting)

	// WHEN PopFront is called
	defer func() {
		r := recover()
		// THEN it panics with an EmptyQueueError naming the queue
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %v", r)
		}
		if !errors.Is(err, ErrEmptyQueue) {
			t.Errorf("expected ErrEmptyQueue, got %v", err)
		}
		var eq *EmptyQueueError
		if !errors.As(err, &eq) || eq.State != StateWaiting {
			t.Errorf("expected EmptyQueueError for WAITING, got %v", err)
		}
	}()
	q.PopFront(false)
}

func TestStateQueue_InsertBefore_SplicesAtTarget(t *testing.T) {
	// GIVEN a queue [1, 3]
	a, c := &Process{PID: 1}, &Process{PID: 3}
	q := queueOf(StateReady, a, c)

	// WHEN 2 is inserted before 3
	q.InsertBefore(c, &Process{PID: 2})

	// THEN the queue is [1, 2, 3]
	assert.Equal(t, []int{1, 2, 3}, pids(q))
}

func TestStateQueue_InsertBefore_Head(t *testing.T) {
	a := &Process{PID: 1}
	q := queueOf(StateReady, a)
	q.InsertBefore(a, &Process{PID: 9})
	assert.Equal(t, []int{9, 1}, pids(q))
}

func TestStateQueue_InsertBefore_MissingTarget_Panics(t *testing.T) {
	q := queueOf(StateReady, &Process{PID: 1})
	assert.Panics(t, func() {
		q.InsertBefore(&Process{PID: 5}, &Process{PID: 2})
	})
}

func TestStateQueue_RemoveAt_Middle(t *testing.T) {
	// GIVEN a NEW queue [1, 2, 3]
	q := queueOf(StateNew, &Process{PID: 1}, &Process{PID: 2}, &Process{PID: 3})

	// WHEN the middle process is removed
	got := q.RemoveAt(1)

	// THEN it is returned and the rest keep their order
	assert.Equal(t, 2, got.PID)
	assert.Equal(t, []int{1, 3}, pids(q))
}

func TestStateQueue_RemoveAt_OutOfRange_Panics(t *testing.T) {
	q := queueOf(StateNew, &Process{PID: 1})
	assert.Panics(t, func() { q.RemoveAt(1) })
	assert.Panics(t, func() { q.RemoveAt(-1) })
}

func TestStateQueue_String(t *testing.T) {
	q := queueOf(StateReady, &Process{PID: 4}, &Process{PID: 2})
	assert.Equal(t, "[4 2]", q.String())
	assert.Equal(t, "[]", NewStateQueue(StateReady).String())
}
