package tensor

// Backend defines the array operations a compute backend provides.
//
// Every operation returns a new tensor and leaves its input untouched.
// Invalid arguments (element-count mismatch, bad axes) are programmer errors
// and cause a panic; callers validate before reaching the backend.
//
// Implementations:
//   - CPU: Pure Go (internal/backend/cpu)
type Backend interface {
	// Name returns the backend name.
	Name() string

	// Device returns the compute device.
	Device() Device

	// Reshape returns a tensor with the same row-major data and a new shape.
	Reshape(t *RawTensor, newShape Shape) *RawTensor

	// Transpose permutes the dimensions. With no axes it reverses them.
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// SwapAxes exchanges dimensions i and j.
	SwapAxes(t *RawTensor, i, j int) *RawTensor

	// Cast converts the tensor to a different data type.
	Cast(t *RawTensor, dtype DataType) *RawTensor
}
