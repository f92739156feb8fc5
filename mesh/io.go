package mesh

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Read decodes a mesh document from r and validates it.
func Read(r io.Reader) (*Mesh, error) {
	m := new(Mesh)
	if err := json.NewDecoder(r).Decode(m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Write encodes the mesh document to w.
func (m *Mesh) Write(w io.Writer) error {
	return json.NewEncoder(w).Encode(m)
}

// ReadFile reads a mesh document from the file at path.
func ReadFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// WriteFile writes the mesh document to the file at path, replacing any
// existing file.
func (m *Mesh) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
