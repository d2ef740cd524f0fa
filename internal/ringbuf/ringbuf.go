// Package ringbuf implements a growable FIFO of float64 samples. Sequence
// transforms use it as a delay line holding the original amplitudes of the
// last few time-steps while the graph is modified in place.
package ringbuf

// Buffer is a circular FIFO. It is not safe for concurrent use.
type Buffer struct {
	data     []float64
	size     int
	readPos  int
	writePos int
}

// New creates a buffer with room for capacity samples before it grows.
func New(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}

	return &Buffer{
		data: make([]float64, capacity),
	}
}

// Write appends samples, growing the buffer when full.
func (b *Buffer) Write(samples []float64) {
	if b.size+len(samples) > len(b.data) {
		b.grow(b.size + len(samples))
	}

	for _, sample := range samples {
		b.data[b.writePos] = sample
		b.writePos = (b.writePos + 1) % len(b.data)
		b.size++
	}
}

// ReadInto removes up to len(dst) of the oldest samples into dst and returns
// how many were read.
func (b *Buffer) ReadInto(dst []float64) int {
	n := min(len(dst), b.size)
	for i := range n {
		dst[i] = b.data[b.readPos]
		b.readPos = (b.readPos + 1) % len(b.data)
	}
	b.size -= n
	return n
}

// Available returns the number of samples waiting to be read.
func (b *Buffer) Available() int {
	return b.size
}

// Capacity returns the current capacity.
func (b *Buffer) Capacity() int {
	return len(b.data)
}

// Reset discards all samples.
func (b *Buffer) Reset() {
	b.size = 0
	b.readPos = 0
	b.writePos = 0
}

// grow doubles the capacity until it holds at least minCapacity samples,
// keeping the stored samples in order.
func (b *Buffer) grow(minCapacity int) {
	newCapacity := len(b.data)
	for newCapacity < minCapacity {
		newCapacity *= 2
	}

	newData := make([]float64, newCapacity)
	if b.size > 0 {
		if b.readPos < b.writePos {
			copy(newData, b.data[b.readPos:b.writePos])
		} else {
			n := copy(newData, b.data[b.readPos:])
			copy(newData[n:], b.data[:b.writePos])
		}
	}

	b.data = newData
	b.readPos = 0
	b.writePos = b.size % newCapacity
}
