//go:build windows

package webgpu

import (
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
)

// maxPooled bounds the number of idle buffers kept for reuse.
const maxPooled = 8

// pooledBuffer wraps a GPU buffer with metadata.
type pooledBuffer struct {
	buffer *wgpu.Buffer
	size   uint64
	usage  wgpu.BufferUsage
}

// poolStats reports buffer pool usage.
type poolStats struct {
	Allocated uint64
	Released  uint64
	Hits      uint64
	Misses    uint64
	Idle      int
}

// BufferPool reuses buffers that carry no initial data, such as the
// readback staging buffers. Acquire returns the smallest idle buffer that
// is large enough and has the requested usage.
type BufferPool struct {
	device *wgpu.Device
	idle   []*pooledBuffer
	stats  poolStats
	mu     sync.Mutex
}

// NewBufferPool creates a new buffer pool for the given device.
func NewBufferPool(device *wgpu.Device) *BufferPool {
	return &BufferPool{
		device: device,
		idle:   make([]*pooledBuffer, 0, maxPooled),
	}
}

// Acquire gets a buffer of at least size bytes with usage, reusing an idle
// one when possible.
func (p *BufferPool) Acquire(size uint64, usage wgpu.BufferUsage) *wgpu.Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	best := -1
	for i, pb := range p.idle {
		if pb.size >= size && pb.usage == usage && (best < 0 || pb.size < p.idle[best].size) {
			best = i
		}
	}
	if best >= 0 {
		buffer := p.idle[best].buffer
		p.idle = append(p.idle[:best], p.idle[best+1:]...)
		p.stats.Hits++
		return buffer
	}

	p.stats.Misses++
	p.stats.Allocated++
	return p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: usage,
		Size:  size,
	})
}

// Release returns a buffer to the pool. When the pool is full the buffer
// is released immediately.
func (p *BufferPool) Release(buffer *wgpu.Buffer, size uint64, usage wgpu.BufferUsage) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stats.Released++
	if len(p.idle) >= maxPooled {
		buffer.Release()
		return
	}
	p.idle = append(p.idle, &pooledBuffer{buffer: buffer, size: size, usage: usage})
}

// Clear releases all idle buffers.
func (p *BufferPool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, pb := range p.idle {
		pb.buffer.Release()
	}
	p.idle = p.idle[:0]
}

// snapshot returns the current pool usage.
func (p *BufferPool) snapshot() poolStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.stats
	s.Idle = len(p.idle)
	return s
}
