// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package theme

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat = errors.New("unknown style file format")
)

type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatTOML, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func FormatFromPath(p string) (Format, error) {
	return ParseFormat(filepath.Ext(p))
}

func Decode(r io.Reader, f Format) (*Config, error) {
	var c Config
	switch f {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml style: %w", err)
		}
	default:
		if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
			return nil, fmt.Errorf("decode toml style: %w", err)
		}
	}
	return &c, nil
}

func Encode(w io.Writer, c *Config, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	default:
	}
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	return enc.Encode(c)
}

// Load reads a style file, picking the decoder from its extension.
func Load(p string) (*Config, error) {
	f, err := FormatFromPath(p)
	if err != nil {
		return nil, err
	}
	fd, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer fd.Close() // nolint
	c, err := Decode(fd, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return c, nil
}
