package model

import "sync"

// StateBuffer is a rows x cols staging area for next-generation states.
type StateBuffer struct {
	states [][]State
}

func newStateBuffer(rows, cols int) *StateBuffer {
	b := &StateBuffer{}
	b.reset(rows, cols)
	return b
}

// reset resizes the buffer if needed and clears it to Dead.
func (b *StateBuffer) reset(rows, cols int) {
	if len(b.states) != rows {
		b.states = make([][]State, rows)
	}
	for i := range b.states {
		if len(b.states[i]) != cols {
			b.states[i] = make([]State, cols)
		} else {
			clear(b.states[i])
		}
	}
}

// bufferToPool returns a buffer to the pool for reuse
func bufferToPool(b *StateBuffer, pool *StatePool) {
	if pool == nil {
		return
	}

	pool.Put(b)
}

// StatePool recycles staging buffers between steps.
type StatePool struct {
	pool sync.Pool
}

func NewStatePool() *StatePool {
	return &StatePool{
		pool: sync.Pool{
			New: func() interface{} {
				return &StateBuffer{}
			},
		},
	}
}

// Get retrieves a buffer from the pool, resized and cleared to the given dimensions
func (p *StatePool) Get(rows, cols int) *StateBuffer {
	b := p.pool.Get().(*StateBuffer)
	b.reset(rows, cols)
	return b
}

// Put returns a buffer to the pool
func (p *StatePool) Put(b *StateBuffer) {
	p.pool.Put(b)
}
