// Package store provides the document storage backends used by the editor.
package store

import "errors"

var (
	ErrNotFound    = errors.New("file not found")
	ErrInvalidName = errors.New("invalid file name")
)

// Memory keeps documents in a map. List returns names in insertion order.
type Memory struct {
	files map[string]string
	order []string
}

func NewMemory() *Memory {
	return &Memory{files: map[string]string{}}
}

func (m *Memory) Put(name, content string) error {
	if name == "" {
		return ErrInvalidName
	}
	if _, ok := m.files[name]; !ok {
		m.order = append(m.order, name)
	}
	m.files[name] = content
	return nil
}

func (m *Memory) Get(name string) (string, error) {
	c, ok := m.files[name]
	if !ok {
		return "", ErrNotFound
	}
	return c, nil
}

func (m *Memory) List() ([]string, error) {
	return append([]string(nil), m.order...), nil
}
