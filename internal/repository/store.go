// Package repository provides the durable whole-collection store used
// for every entity kind. One Store instance owns one JSON file holding
// a single array of records. The full collection is loaded into memory
// at construction and lives there for the store's lifetime; reads are
// served from memory and SaveChanges rewrites the entire file.
package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/iliyamo/art-gallery/internal/model"
)

// Store is a JSON-file-backed collection of one entity kind. It keeps
// records in insertion order and maintains a per-ID index alongside so
// lookups do not scan. Mutations touch memory only; nothing reaches
// the file until SaveChanges.
type Store[T model.Entity] struct {
	path  string
	items []T
	index map[string]int
}

// NewStore loads the collection from path. A missing or empty file
// yields an empty collection, never an error; any other read or decode
// failure is returned.
func NewStore[T model.Entity](path string) (*Store[T], error) {
	s := &Store[T]{path: path, index: make(map[string]int)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store[T]) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		return fmt.Errorf("decode %s: %w", s.path, err)
	}
	for i, item := range s.items {
		s.index[item.EntityID()] = i
	}
	return nil
}

// GetAll returns a snapshot of the collection in insertion order. The
// returned slice is a copy; the records themselves are shared.
func (s *Store[T]) GetAll() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// GetByID returns the record with the given ID. Absence is reported
// through the second return value, not as an error.
func (s *Store[T]) GetByID(id string) (T, bool) {
	if i, ok := s.index[id]; ok {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Add appends the record to the in-memory collection. It does not
// persist; call SaveChanges to write the file.
func (s *Store[T]) Add(item T) {
	s.index[item.EntityID()] = len(s.items)
	s.items = append(s.items, item)
}

// Update replaces the in-memory record with a matching ID. An unknown
// ID is silently ignored; callers must not rely on an error.
func (s *Store[T]) Update(item T) {
	if i, ok := s.index[item.EntityID()]; ok {
		s.items[i] = item
	}
}

// Delete removes the record with the given ID if present.
func (s *Store[T]) Delete(id string) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j].EntityID()] = j
	}
}

// SaveChanges serializes the whole collection and atomically replaces
// the backing file: the JSON is written to a temp file in the same
// directory and renamed over the target, so a crash mid-write leaves
// the previous file intact rather than a truncated one.
func (s *Store[T]) SaveChanges() error {
	data, err := json.MarshalIndent(s.items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", s.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
