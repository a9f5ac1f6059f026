package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/rumanw99/Hussam-Awa-sub000/internal/model"
)

// contentKey is the KV key the full document is mirrored under.
const contentKey = "content"

// Durability reports how far a write made it down the persistence chain.
type Durability string

const (
	// Persisted means at least one durable layer (snapshot file or
	// external KV) accepted the write.
	Persisted Durability = "persisted"
	// CachedOnly means every durable layer failed; the write survives
	// only in process memory.
	CachedOnly Durability = "cached_only"
)

// WriteResult describes the outcome of a document write. Persistence
// failures never fail the request, but callers and tests can observe
// the durability state here instead of scraping logs.
type WriteResult struct {
	Durability Durability
	FileErr    error
	MirrorErr  error
}

// Store is the layered data store over the site content document:
// in-memory copy, local snapshot file, optional external KV mirror.
// It is constructed explicitly and handed to services; the single-writer
// discipline (last write wins, whole document) is part of its contract.
type Store struct {
	mu   sync.Mutex
	doc  *model.Content
	path string
	kv   KV // nil when no external store is configured
}

// New creates a Store persisting to the given snapshot path. kv may be
// nil to run without an external mirror.
func New(path string, kv KV) *Store {
	return &Store{path: path, kv: kv}
}

// Read returns a deep copy of the current document. The first call loads
// the snapshot file, falling back to the KV mirror and finally to the
// built-in defaults; subsequent calls serve the in-memory copy.
func (s *Store) Read(ctx context.Context) (*model.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		s.doc = s.load(ctx)
	}
	return s.doc.Clone()
}

// Write replaces the in-memory document and persists it best-effort to
// the snapshot file and the KV mirror. It never returns an error: a
// request whose in-memory update succeeded reports success, and the
// durability outcome is carried in the result.
func (s *Store) Write(ctx context.Context, doc *model.Content) WriteResult {
	copied, err := doc.Clone()
	if err != nil {
		// A document that cannot round-trip JSON cannot be served
		// either; keep the previous state.
		slog.Error("content document not serializable, write dropped", "error", err)
		return WriteResult{Durability: CachedOnly, FileErr: err, MirrorErr: err}
	}

	s.mu.Lock()
	s.doc = copied
	s.mu.Unlock()

	data, _ := json.MarshalIndent(copied, "", "  ")

	res := WriteResult{Durability: CachedOnly}
	if err := s.writeSnapshot(data); err != nil {
		res.FileErr = err
		slog.Warn("content snapshot write failed", "path", s.path, "error", err)
	} else {
		res.Durability = Persisted
	}

	if s.kv != nil {
		if err := s.kv.Set(ctx, contentKey, data); err != nil {
			res.MirrorErr = err
			slog.Warn("content mirror write failed", "error", err)
		} else {
			res.Durability = Persisted
		}
	}

	return res
}

// load resolves the initial document: snapshot file, then KV mirror,
// then defaults. Every failure downgrades to the next layer.
func (s *Store) load(ctx context.Context) *model.Content {
	if data, err := os.ReadFile(s.path); err == nil {
		// Unmarshal over the defaults so sections a partial snapshot
		// omits keep their well-defined shape.
		doc := model.Default()
		if err := json.Unmarshal(data, doc); err == nil {
			return doc
		}
		slog.Warn("content snapshot unreadable, trying mirror", "path", s.path, "error", err)
	}

	if s.kv != nil {
		if data, err := s.kv.Get(ctx, contentKey); err == nil {
			doc := model.Default()
			if err := json.Unmarshal(data, doc); err == nil {
				// Restore the local snapshot for the next cold start.
				if err := s.writeSnapshot(data); err != nil {
					slog.Warn("content snapshot restore failed", "path", s.path, "error", err)
				}
				return doc
			}
		} else if !errors.Is(err, ErrKVNotFound) {
			slog.Warn("content mirror read failed", "error", err)
		}
	}

	return model.Default()
}

// writeSnapshot writes the snapshot atomically so a crash mid-write
// cannot leave a truncated document behind.
func (s *Store) writeSnapshot(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
