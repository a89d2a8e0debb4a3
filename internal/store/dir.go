package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Suffix is the extension of files Dir lists.
const Suffix = ".txt"

// Dir stores each document as a file inside Directory.
type Dir struct {
	Directory string
}

// NewDir expands ~ in dir and creates it when missing.
func NewDir(dir string) (*Dir, error) {
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", dir, err)
	}
	finfo, err := os.Stat(expanded)
	if err != nil || !finfo.IsDir() {
		if err := os.MkdirAll(expanded, 0o700); err != nil {
			return nil, fmt.Errorf("error creating %s: %w", expanded, err)
		}
	}
	return &Dir{Directory: expanded}, nil
}

func (d *Dir) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return filepath.Join(d.Directory, name), nil
}

func (d *Dir) Put(name, content string) error {
	p, err := d.path(name)
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(content), 0o600)
}

func (d *Dir) Get(name string) (string, error) {
	p, err := d.path(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the names of regular files ending in Suffix, sorted.
func (d *Dir) List() ([]string, error) {
	entries, err := os.ReadDir(d.Directory)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", d.Directory, err)
	}
	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !strings.HasSuffix(e.Name(), Suffix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
