package camera

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// UniformWriter uploads a camera's GPUCameraUniform to a WebGPU buffer.
// Hosts call Write whenever the camera controls report a change, so the GPU
// copy is refreshed only on frames where the pose actually moved.
type UniformWriter struct {
	queue  *wgpu.Queue
	buffer *wgpu.Buffer
	cam    Camera
}

// NewUniformBuffer allocates a uniform buffer sized for GPUCameraUniform.
//
// Parameters:
//   - device: the WebGPU device
//   - label: debug label for the buffer
//
// Returns:
//   - *wgpu.Buffer: the created buffer
//   - error: error if buffer creation fails
func NewUniformBuffer(device *wgpu.Device, label string) (*wgpu.Buffer, error) {
	var g GPUCameraUniform
	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            label + " Camera Uniform",
		Size:             uint64(g.Size()),
		Usage:            wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create camera uniform buffer: %w", err)
	}
	return buf, nil
}

// NewUniformWriter creates a writer that copies cam into buffer through queue.
//
// Parameters:
//   - queue: the device queue used for writes
//   - buffer: destination uniform buffer (see NewUniformBuffer)
//   - cam: the camera to upload
//
// Returns:
//   - *UniformWriter: the writer
func NewUniformWriter(queue *wgpu.Queue, buffer *wgpu.Buffer, cam Camera) *UniformWriter {
	return &UniformWriter{
		queue:  queue,
		buffer: buffer,
		cam:    cam,
	}
}

// Write snapshots the camera and queues the upload.
func (u *UniformWriter) Write() {
	if u.queue == nil || u.buffer == nil {
		return
	}
	g := NewGPUCameraUniform(u.cam)
	u.queue.WriteBuffer(u.buffer, 0, g.Marshal())
}
