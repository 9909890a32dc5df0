package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"sort"

	"github.com/born-ml/fht/internal/tensor"
)

// SafeTensorsWriter writes tensors in SafeTensors format.
type SafeTensorsWriter struct {
	w      io.Writer
	file   *os.File // nil when writing to a caller's io.Writer
	closed bool
}

// NewSafeTensorsWriter creates a new SafeTensors file writer.
func NewSafeTensorsWriter(path string) (*SafeTensorsWriter, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for tensor saving
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return &SafeTensorsWriter{w: file, file: file}, nil
}

// NewStreamWriter creates a writer on top of w. Close does not close w.
func NewStreamWriter(w io.Writer) *SafeTensorsWriter {
	return &SafeTensorsWriter{w: w}
}

// WriteSafeTensors writes tensors to a SafeTensors file.
//
// Tensors are written in alphabetical order by name. The SHA-256 of the data
// section is added to the metadata under ChecksumKey.
func WriteSafeTensors(path string, tensors map[string]*tensor.RawTensor, metadata map[string]string) error {
	writer, err := NewSafeTensorsWriter(path)
	if err != nil {
		return err
	}

	if err := writer.WriteTensors(tensors, metadata); err != nil {
		_ = writer.Close() // Best effort close
		return err
	}
	return writer.Close()
}

// WriteTensors writes the header and the data of every tensor.
func (w *SafeTensorsWriter) WriteTensors(tensors map[string]*tensor.RawTensor, metadata map[string]string) error {
	if w.closed {
		return ErrWriterClosed
	}

	names := make([]string, 0, len(tensors))
	for name := range tensors {
		if err := ValidateTensorName(name); err != nil {
			return err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := SafeTensorsHeader{
		Metadata: make(map[string]string, len(metadata)+1),
		Tensors:  make(map[string]SafeTensorInfo, len(tensors)),
	}
	maps.Copy(header.Metadata, metadata)

	var offset int64
	sections := make([]io.Reader, 0, len(names))
	for _, name := range names {
		raw := tensors[name]
		if raw == nil {
			return fmt.Errorf("tensor %s is nil", name)
		}
		dtype, err := dataTypeToSafeTensors(raw.DType())
		if err != nil {
			return fmt.Errorf("tensor %s: %w", name, err)
		}

		size := int64(raw.ByteSize())
		header.Tensors[name] = SafeTensorInfo{
			DType:       dtype,
			Shape:       raw.Shape().Clone(),
			DataOffsets: [2]int64{offset, offset + size},
		}
		offset += size
		sections = append(sections, bytes.NewReader(raw.Data()))
	}

	sum, err := ComputeChecksumReader(io.MultiReader(sections...))
	if err != nil {
		return fmt.Errorf("failed to hash tensor data: %w", err)
	}
	header.Metadata[ChecksumKey] = hex.EncodeToString(sum[:])

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	// Pad the header with spaces so the data section is 8-byte aligned.
	if pad := (8 - len(headerJSON)%8) % 8; pad > 0 {
		headerJSON = append(headerJSON, bytes.Repeat([]byte{' '}, pad)...)
	}

	if err := binary.Write(w.w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, name := range names {
		if _, err := w.w.Write(tensors[name].Data()); err != nil {
			return fmt.Errorf("failed to write tensor %s: %w", name, err)
		}
	}

	return nil
}

// Close closes the writer and the underlying file, if any.
func (w *SafeTensorsWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}
