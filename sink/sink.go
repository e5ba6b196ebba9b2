// Package sink writes encoded texture containers to a directory.
package sink

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/woozymasta/texdump"
)

// Compression selects how files are stored.
type Compression int

// Supported compressions.
const (
	CompressNone Compression = iota
	CompressLZ4
	CompressZstd
)

var (
	// ErrUnknownCompression indicates an unsupported compression name.
	ErrUnknownCompression = errors.New("unknown compression")
	// ErrEmptyName indicates an output without a file name.
	ErrEmptyName = errors.New("empty output name")
	// ErrCreateDir indicates the output directory could not be created.
	ErrCreateDir = errors.New("create directory failed")
	// ErrCompress indicates compression of an output failed.
	ErrCompress = errors.New("compress output failed")
	// ErrWriteFile indicates writing an output file failed.
	ErrWriteFile = errors.New("write file failed")
	// ErrExists indicates the output file already exists and Overwrite is off.
	ErrExists = errors.New("file already exists")
	// ErrOutsideRoot indicates an output name resolving outside the sink root.
	ErrOutsideRoot = errors.New("path outside output directory")
)

// ParseCompression maps "none", "lz4" or "zstd" to a Compression.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompressNone, nil
	case "lz4":
		return CompressLZ4, nil
	case "zstd", "zst":
		return CompressZstd, nil
	default:
		return CompressNone, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

// Suffix returns the extra file extension added by the compression.
func (c Compression) Suffix() string {
	switch c {
	case CompressLZ4:
		return ".lz4"
	case CompressZstd:
		return ".zst"
	default:
		return ""
	}
}

func (c Compression) String() string {
	switch c {
	case CompressLZ4:
		return "lz4"
	case CompressZstd:
		return "zstd"
	default:
		return "none"
	}
}

// Options configures a Dir.
type Options struct {
	Compression Compression
	// Overwrite replaces existing files. Without it Write fails with
	// ErrExists and the existing file is kept.
	Overwrite bool
}

// Dir is a directory sink. It is safe for concurrent use.
type Dir struct {
	root string
	opts Options
	zenc *zstd.Encoder
}

// New creates the directory if needed and returns a sink writing into it.
func New(root string, opts Options) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrCreateDir, root, err)
	}

	d := &Dir{root: filepath.Clean(root), opts: opts}
	if opts.Compression == CompressZstd {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCompress, err)
		}
		d.zenc = enc
	}

	return d, nil
}

// Close releases compression resources.
func (d *Dir) Close() error {
	if d.zenc != nil {
		return d.zenc.Close()
	}

	return nil
}

// Path returns the path an output is written to. Names that resolve to the
// root itself or outside it are rejected.
func (d *Dir) Path(out texdump.Output) (string, error) {
	if out.Name == "" {
		return "", ErrEmptyName
	}

	path := filepath.Join(d.root, out.FileName()+d.opts.Compression.Suffix())
	rel, err := filepath.Rel(d.root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, out.FileName())
	}

	return path, nil
}

// Write stores one output and returns its path.
func (d *Dir) Write(out texdump.Output) (string, error) {
	path, err := d.Path(out)
	if err != nil {
		return "", err
	}

	data, err := d.compress(out.Data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCompress, out.FileName(), err)
	}

	if err := writeFileAtomic(path, data, d.opts.Overwrite); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %q", ErrExists, path)
		}
		return "", fmt.Errorf("%w: %q: %v", ErrWriteFile, path, err)
	}

	return path, nil
}

// WriteAll stores the outputs of one texture. Every path is resolved before
// anything is written, and when a write fails the files already written by
// this call are removed, so a texture is either stored whole or not at all.
func (d *Dir) WriteAll(outs []texdump.Output) ([]string, error) {
	for _, out := range outs {
		if _, err := d.Path(out); err != nil {
			return nil, err
		}
	}

	paths := make([]string, 0, len(outs))
	for _, out := range outs {
		path, err := d.Write(out)
		if err != nil {
			for _, p := range paths {
				_ = os.Remove(p)
			}
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func (d *Dir) compress(data []byte) ([]byte, error) {
	switch d.opts.Compression {
	case CompressLZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if err := zw.Apply(lz4.CompressionLevelOption(lz4.Level9)); err != nil {
			return nil, err
		}
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompressZstd:
		return d.zenc.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
	default:
		return data, nil
	}
}

// writeFileAtomic writes data through a uniquely named temp file in the
// target directory and renames it into place. Without overwrite the target
// name is reserved with O_EXCL first, so only one writer can claim it.
func writeFileAtomic(path string, data []byte, overwrite bool) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if !overwrite {
		f, openErr := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if openErr != nil {
			return openErr
		}
		if closeErr := f.Close(); closeErr != nil {
			_ = os.Remove(path)
			return closeErr
		}
		defer func() {
			if err != nil {
				_ = os.Remove(path)
			}
		}()
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, fs.FileMode(0o644)); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
