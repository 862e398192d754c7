package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	configFile  = "config.json"
	libraryFile = "library.json"
)

// StorageError reports a failure to read, parse or write a document.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store reads and writes whole JSON documents in a root directory.
type Store struct {
	root string
}

// NewStore returns a store rooted at root. A leading ~ is expanded to the
// home directory. The directory is created on the first save.
func NewStore(root string) *Store {
	return &Store{root: expandPath(root)}
}

// Root is the directory holding the documents.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) path(name string) string {
	return filepath.Join(s.root, name)
}

// Load decodes the document name into v. A missing or blank document
// leaves v untouched and Load returns false.
func (s *Store) Load(name string, v any) (bool, error) {
	path := s.path(name)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		slog.Debug("document not found", "path", path)
		return false, nil
	}
	if err != nil {
		return false, &StorageError{"read", path, err}
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		slog.Debug("document empty", "path", path)
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, &StorageError{"parse", path, err}
	}
	slog.Debug("document loaded", "path", path, "bytes", len(data))
	return true, nil
}

// Save encodes v as indented JSON and replaces the document name with it.
// The new content is written to a temporary file which is renamed over
// the old document.
func (s *Store) Save(name string, v any) error {
	path := s.path(name)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return &StorageError{"encode", path, err}
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return &StorageError{"mkdir", s.root, err}
	}

	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return &StorageError{"write", path, err}
	}
	slog.Debug("document saved", "path", path, "bytes", buf.Len())
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// loadLibrary reads library.json. A missing library is empty.
func loadLibrary(s *Store) (Library, error) {
	lib := make(Library)
	if _, err := s.Load(libraryFile, &lib); err != nil {
		return nil, fmt.Errorf("cannot load library: %w", err)
	}
	if lib == nil {
		// the document was a JSON null
		lib = make(Library)
	}
	return lib, nil
}

func saveLibrary(s *Store, lib Library) error {
	if err := s.Save(libraryFile, lib); err != nil {
		return fmt.Errorf("cannot save library: %w", err)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
