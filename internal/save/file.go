package save

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"github.com/ulikunitz/xz"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/embercrypt/internal/telemetry"
)

var (
	// ErrNoSave is returned by Load when no snapshot exists.
	ErrNoSave = errors.New("no saved game")
	// ErrVersion is returned for snapshots written by an incompatible build.
	ErrVersion = errors.New("unsupported save version")
)

var encMode = mustEncMode()

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

// Encode serializes and compresses a snapshot.
func Encode(s *State) ([]byte, error) {
	raw, err := encMode.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reverses Encode and checks the format version.
func Decode(data []byte) (*State, error) {
	r, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot: %w", err)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot: %w", err)
	}

	var s State
	if err := cbor.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, s.Version)
	}
	return &s, nil
}

// Write stores the snapshot at path. The file is replaced atomically so a
// crash never leaves a half-written save behind.
func Write(ctx context.Context, path string, s *State) error {
	tracer := telemetry.Tracer("save")
	_, span := tracer.Start(ctx, "save.write")
	defer span.End()

	data, err := Encode(s)
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(
		attribute.Int("save.bytes", len(data)),
		attribute.Int("save.floor", s.Floor),
		attribute.Int("save.entities", len(s.Entities)),
	)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close save: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}

// Load reads the snapshot at path. A missing file yields ErrNoSave.
func Load(ctx context.Context, path string) (*State, error) {
	tracer := telemetry.Tracer("save")
	_, span := tracer.Start(ctx, "save.load")
	defer span.End()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSave
	}
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("read save: %w", err)
	}
	span.SetAttributes(attribute.Int("save.bytes", len(data)))

	s, err := Decode(data)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return s, nil
}

// Delete removes the snapshot. A missing file is not an error.
func Delete(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete save: %w", err)
	}
	return nil
}

// Exists reports whether a snapshot file is present.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
