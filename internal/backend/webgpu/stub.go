//go:build !windows

package webgpu

// Accelerator is unavailable on this platform.
type Accelerator struct{}

// New always returns ErrUnavailable on this platform.
func New() (*Accelerator, error) {
	return nil, ErrUnavailable
}

// Name returns the accelerator name.
func (a *Accelerator) Name() string {
	return Name
}

// ButterflyFloat32 validates the layout and returns ErrUnavailable.
func (a *Accelerator) ButterflyFloat32(data []float32, n int) error {
	if err := validateLayout(len(data), n); err != nil {
		return err
	}
	return ErrUnavailable
}

// Release is a no-op.
func (a *Accelerator) Release() {}

// IsAvailable reports false on this platform.
func IsAvailable() bool {
	return false
}
