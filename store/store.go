// SPDX-License-Identifier: MIT

// Package store persists named matrices in an embedded BadgerDB database.
//
// Values are stored in the sparse text format under the key "matrix/<name>",
// so anything implementing encoding.TextMarshaler (sparse.Matrix, graph.Graph)
// can be put, and anything implementing encoding.TextUnmarshaler can be
// filled back.
//
// A Store is safe for concurrent use.
package store

import (
	"context"
	"encoding"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/dgraph-io/badger/v4"
)

// keyPrefix namespaces matrix entries inside the database.
const keyPrefix = "matrix/"

var (
	// ErrEmptyName is returned for an empty matrix name.
	ErrEmptyName = errors.New("store: empty matrix name")

	// ErrNotFound is returned when no matrix is stored under the name.
	ErrNotFound = errors.New("store: matrix not found")

	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("store: closed")
)

// Config holds configuration for a Store.
type Config struct {
	// Path is the directory for database files. Required unless InMemory.
	Path string

	// InMemory keeps everything in RAM (no disk persistence). Useful for tests.
	InMemory bool

	// SyncWrites enables synchronous writes for durability.
	SyncWrites bool

	// Logger receives BadgerDB's internal log lines. If nil, they are dropped.
	Logger *slog.Logger
}

// DefaultConfig returns a durable on-disk configuration; Path must be set.
func DefaultConfig() Config {
	return Config{SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Store is a catalog of named matrices.
type Store struct {
	db     *badger.DB
	closed atomic.Bool
}

// Open opens (creating if needed) the database described by cfg.
// The caller must Close the returned Store.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("store: path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger database: %w", err)
	}

	return &Store{db: db}, nil
}

// check validates the store state, the context and the name.
func (s *Store) check(ctx context.Context, name string) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" {
		return ErrEmptyName
	}

	return nil
}

// Put stores m under name, replacing any previous value.
func (s *Store) Put(ctx context.Context, name string, m encoding.TextMarshaler) error {
	if err := s.check(ctx, name); err != nil {
		return err
	}
	val, err := m.MarshalText()
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", name, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+name), val)
	})
	if err != nil {
		return fmt.Errorf("store: put %q: %w", name, err)
	}

	return nil
}

// Get decodes the matrix stored under name into dst.
// Errors: ErrNotFound, or the decoding error of dst (dst is then unchanged
// when it decodes atomically, as sparse.Matrix does).
func (s *Store) Get(ctx context.Context, name string, dst encoding.TextUnmarshaler) error {
	if err := s.check(ctx, name); err != nil {
		return err
	}
	var val []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + name))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("store: get %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("store: get %q: %w", name, err)
	}
	if err = dst.UnmarshalText(val); err != nil {
		return fmt.Errorf("store: decode %q: %w", name, err)
	}

	return nil
}

// Delete removes the matrix stored under name.
// Errors: ErrNotFound when nothing is stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.check(ctx, name); err != nil {
		return err
	}
	key := []byte(keyPrefix + name)
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}

		return txn.Delete(key)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("store: delete %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", name, err)
	}

	return nil
}

// List returns the stored names in ascending byte order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(keyPrefix)})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), keyPrefix))
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	return names, nil
}

// Close releases the database. Subsequent calls return ErrClosed.
func (s *Store) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("store: close: %w", err)
	}

	return nil
}
