// Package manifest loads texture resources described by a TOML file.
//
// Each [[texture]] table names a raw payload file and the metadata needed to
// wrap it into a container:
//
//	base_dir = "raw"
//
//	[[texture]]
//	name = "grass"
//	width = 256
//	height = 256
//	format = "DXT1"
//	mipmap = true
//	data = "grass.bin"
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/woozymasta/texdump"
)

var (
	// ErrOpenManifest indicates the manifest file could not be opened.
	ErrOpenManifest = errors.New("open manifest failed")
	// ErrDecodeManifest indicates the manifest is not valid TOML.
	ErrDecodeManifest = errors.New("decode manifest failed")
	// ErrMissingField indicates a texture entry without a required field.
	ErrMissingField = errors.New("missing field")
	// ErrReadPayload indicates a payload file could not be read.
	ErrReadPayload = errors.New("read payload failed")
)

// Manifest is a list of texture entries.
type Manifest struct {
	BaseDir  string  `toml:"base_dir"`
	Textures []Entry `toml:"texture"`

	dir string
}

// Entry describes one texture resource.
type Entry struct {
	Name   string `toml:"name"`
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
	Format string `toml:"format"`
	MipMap bool   `toml:"mipmap"`
	Data   string `toml:"data"`

	dir string
}

// Load reads a manifest file. Relative payload paths resolve against the
// manifest directory joined with base_dir.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenManifest, path, err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f, filepath.Dir(path))
}

// Parse decodes a manifest from r. dir is the directory relative paths
// resolve against.
func Parse(r io.Reader, dir string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeManifest, err)
	}

	m.dir = dir
	if m.BaseDir != "" {
		if filepath.IsAbs(m.BaseDir) {
			m.dir = m.BaseDir
		} else {
			m.dir = filepath.Join(dir, m.BaseDir)
		}
	}

	for i := range m.Textures {
		e := &m.Textures[i]
		if e.Name == "" {
			return nil, fmt.Errorf("%w: texture %d: name", ErrMissingField, i)
		}
		if e.Data == "" {
			return nil, fmt.Errorf("%w: texture %q: data", ErrMissingField, e.Name)
		}
		e.dir = m.dir
	}

	return &m, nil
}

// PayloadPath returns the resolved payload file path.
func (e *Entry) PayloadPath() string {
	if filepath.IsAbs(e.Data) {
		return e.Data
	}

	return filepath.Join(e.dir, e.Data)
}

// Encoding parses the format field. Unknown names map to
// texdump.EncodingUnknown, which the encoder reports as a skip.
func (e *Entry) Encoding() texdump.PixelEncoding {
	enc, err := texdump.ParsePixelEncoding(e.Format)
	if err != nil {
		return texdump.EncodingUnknown
	}

	return enc
}

// Texture reads the payload and returns the texture resource.
func (e *Entry) Texture() (*texdump.Texture, error) {
	path := e.PayloadPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrReadPayload, path, err)
	}

	return &texdump.Texture{
		Name:     e.Name,
		Width:    e.Width,
		Height:   e.Height,
		Encoding: e.Encoding(),
		MipMap:   e.MipMap,
		Data:     data,
	}, nil
}
