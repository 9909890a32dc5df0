//go:build windows

package webgpu

import (
	"encoding/binary"
	"fmt"
	"sync"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
)

// Accelerator runs the butterfly on a WebGPU device.
// It is safe for concurrent use; submissions are serialized.
type Accelerator struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	pipeline *wgpu.ComputePipeline
	staging  *BufferPool

	// Device info
	adapterInfo *wgpu.AdapterInfo

	mu sync.Mutex
}

// New creates an accelerator on the high-performance adapter.
// Returns an error wrapping ErrUnavailable if WebGPU cannot be initialized.
func New() (acc *Accelerator, err error) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			acc = nil
			err = fmt.Errorf("%w: native library: %v", ErrUnavailable, r)
		}
	}()

	instance := wgpu.CreateInstance(nil)
	adapter, adapterErr := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference: wgpu.PowerPreferenceHighPerformance,
	})
	if adapterErr != nil {
		instance.Release()
		return nil, fmt.Errorf("%w: request adapter: %w", ErrUnavailable, adapterErr)
	}

	adapterInfo := adapter.GetInfo()

	device, deviceErr := adapter.RequestDevice(nil)
	if deviceErr != nil {
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: request device: %w", ErrUnavailable, deviceErr)
	}

	queue := device.GetQueue()
	if queue == nil {
		device.Release()
		adapter.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: no queue", ErrUnavailable)
	}

	shader := device.CreateShaderModuleWGSL(butterflyShader)
	pipeline := device.CreateComputePipelineSimple(nil, shader, "main")

	return &Accelerator{
		instance:    instance,
		adapter:     adapter,
		device:      device,
		queue:       queue,
		pipeline:    pipeline,
		staging:     NewBufferPool(device),
		adapterInfo: &adapterInfo,
	}, nil
}

// Name returns the accelerator name, including the adapter when known.
func (a *Accelerator) Name() string {
	if a.adapterInfo != nil {
		return fmt.Sprintf("%s (%s %s)", Name, a.adapterInfo.Name, a.adapterInfo.VendorName)
	}
	return Name
}

// ButterflyFloat32 replaces every row of length n in data with its
// unnormalized Walsh-Hadamard transform. Each of the log2(n) stages is one
// compute pass over the whole buffer.
func (a *Accelerator) ButterflyFloat32(data []float32, n int) (err error) {
	if err := validateLayout(len(data), n); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Device loss surfaces as a panic in the bindings.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("webgpu: butterfly: %v", r)
		}
	}()

	//nolint:gosec // unsafe.Slice for zero-copy view of the float32 data
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*4)
	size := uint64(len(raw))

	buffer := a.createBuffer(raw, wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc|wgpu.BufferUsageCopyDst)
	defer buffer.Release()

	pairs := len(data) / 2
	groups := (pairs + workgroupSize - 1) / workgroupSize
	groupsX := min(groups, maxWorkgroupsPerDim)
	groupsY := (groups + groupsX - 1) / groupsX
	width := groupsX * workgroupSize

	layout := a.pipeline.GetBindGroupLayout(0)
	encoder := a.device.CreateCommandEncoder(nil)

	var uniforms []*wgpu.Buffer
	var groupsBound []*wgpu.BindGroup
	defer func() {
		for _, bg := range groupsBound {
			bg.Release()
		}
		for _, u := range uniforms {
			u.Release()
		}
	}()

	for s := 1; s < n; s <<= 1 {
		params := make([]byte, 16)
		binary.LittleEndian.PutUint32(params[0:4], uint32(s))      //nolint:gosec // G115: bounded by the buffer length
		binary.LittleEndian.PutUint32(params[4:8], uint32(pairs))  //nolint:gosec // G115: bounded by the buffer length
		binary.LittleEndian.PutUint32(params[8:12], uint32(width)) //nolint:gosec // G115: bounded by the dispatch limit
		uniform := a.createUniformBuffer(params)
		uniforms = append(uniforms, uniform)

		bindGroup := a.device.CreateBindGroupSimple(layout, []wgpu.BindGroupEntry{
			wgpu.BufferBindingEntry(0, buffer, 0, size),
			wgpu.BufferBindingEntry(1, uniform, 0, 16),
		})
		groupsBound = append(groupsBound, bindGroup)

		pass := encoder.BeginComputePass(nil)
		pass.SetPipeline(a.pipeline)
		pass.SetBindGroup(0, bindGroup, nil)
		//nolint:gosec // G115: workgroup counts are within dispatch limits
		pass.DispatchWorkgroups(uint32(groupsX), uint32(groupsY), 1)
		pass.End()
	}

	a.queue.Submit(encoder.Finish(nil))

	out, err := a.readBuffer(buffer, size)
	if err != nil {
		return err
	}
	copy(raw, out)
	return nil
}

// Release releases all WebGPU resources.
func (a *Accelerator) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.staging != nil {
		a.staging.Clear()
		a.staging = nil
	}
	if a.pipeline != nil {
		a.pipeline.Release()
		a.pipeline = nil
	}
	if a.queue != nil {
		a.queue.Release()
		a.queue = nil
	}
	if a.device != nil {
		a.device.Release()
		a.device = nil
	}
	if a.adapter != nil {
		a.adapter.Release()
		a.adapter = nil
	}
	if a.instance != nil {
		a.instance.Release()
		a.instance = nil
	}
}

// createBuffer creates a GPU buffer holding data.
func (a *Accelerator) createBuffer(data []byte, usage wgpu.BufferUsage) *wgpu.Buffer {
	size := uint64(len(data))

	buffer := a.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            usage,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(unsafe.Slice((*byte)(mappedPtr), size), data)
	buffer.Unmap()

	return buffer
}

// createUniformBuffer creates a uniform buffer rounded up to 16 bytes.
func (a *Accelerator) createUniformBuffer(data []byte) *wgpu.Buffer {
	alignedSize := (uint64(len(data)) + 15) &^ 15

	buffer := a.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:             alignedSize,
		MappedAtCreation: wgpu.True,
	})

	mappedPtr := buffer.GetMappedRange(0, alignedSize)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	copy(unsafe.Slice((*byte)(mappedPtr), alignedSize), data)
	buffer.Unmap()

	return buffer
}

// readBuffer copies a storage buffer back to CPU memory through a pooled
// staging buffer, since storage buffers can't be mapped directly.
func (a *Accelerator) readBuffer(src *wgpu.Buffer, size uint64) ([]byte, error) {
	usage := wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst
	staging := a.staging.Acquire(size, usage)
	defer a.staging.Release(staging, size, usage)

	encoder := a.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(src, 0, staging, 0, size)
	a.queue.Submit(encoder.Finish(nil))

	if err := staging.MapAsync(a.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, fmt.Errorf("webgpu: map staging buffer: %w", err)
	}

	mappedPtr := staging.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mapped := unsafe.Slice((*byte)(mappedPtr), size)
	result := make([]byte, size)
	copy(result, mapped)
	staging.Unmap()

	return result, nil
}

// IsAvailable reports whether a WebGPU adapter can be obtained.
func IsAvailable() (available bool) {
	// Recover from panic if wgpu_native library is not found.
	defer func() {
		if r := recover(); r != nil {
			available = false
		}
	}()

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	adapter, err := instance.RequestAdapter(nil)
	if err != nil {
		return false
	}
	adapter.Release()

	return true
}
