package cpu

import "io"

// Input supplies values to IN instructions.
// Next returns io.EOF when no value is available.
type Input interface {
	Next() (int64, error)
}

// Queue is a FIFO Input. The zero value is an empty queue.
type Queue struct {
	values []int64
}

// NewQueue creates a queue holding the given values.
func NewQueue(values ...int64) *Queue {
	q := &Queue{values: make([]int64, len(values))}
	copy(q.values, values)
	return q
}

// Push appends v to the end of the queue.
func (q *Queue) Push(v int64) {
	q.values = append(q.values, v)
}

// Next removes and returns the value at the front of the queue.
func (q *Queue) Next() (int64, error) {
	if len(q.values) == 0 {
		return 0, io.EOF
	}
	v := q.values[0]
	q.values = q.values[1:]
	return v, nil
}

// Len returns the number of queued values.
func (q *Queue) Len() int {
	return len(q.values)
}
