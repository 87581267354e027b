// Package filestore stores blobs as flat files under a single root
// directory.
package filestore

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/iamanderson-dev/thoughts-app/internal/storage"
)

type FileStore struct {
	Root string
}

func New(root string) (storage.Storage, error) {
	store := &FileStore{
		Root: root,
	}

	info, err := os.Stat(root)
	if err == nil {
		if !info.IsDir() {
			log.Error().Str("root", root).Msg("storage root is not a directory")
			return store, storage.ErrNotDir
		}
		return store, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(root, os.ModePerm)
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to set up storage root")
		return store, storage.ErrInternal
	}

	return store, nil
}

func (s *FileStore) Open(path string) ([]byte, error) {
	path = filepath.Join(s.Root, path)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, storage.ErrNotExist
		}
		log.Error().Err(err).Str("path", path).Msg("failed to open file")
		return nil, storage.ErrInternal
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to read file")
		return nil, storage.ErrInternal
	}
	return content, nil
}

func (s *FileStore) Delete(path string) error {
	path = filepath.Join(s.Root, path)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.ErrNotExist
		}
		log.Error().Err(err).Str("path", path).Msg("file deletion error")
		return storage.ErrInternal
	}
	return nil
}

func (s *FileStore) Create(content io.Reader, path string) error {
	path = filepath.Join(s.Root, path)
	_, err := os.Stat(path)
	if err == nil {
		return storage.ErrAlreadyExists
	}
	if !os.IsNotExist(err) {
		log.Error().Err(err).Str("path", path).Msg("unknown filesystem error")
		return storage.ErrInternal
	}

	file, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to create file")
		return storage.ErrCreate
	}
	defer file.Close()

	if _, err = io.Copy(file, content); err != nil {
		log.Error().Err(err).Str("path", path).Msg("failed to copy from reader")
		return storage.ErrInternal
	}
	return nil
}
