// Copyright (c) Ultraviolet
// SPDX-License-Identifier: Apache-2.0

package quote

import (
	"fmt"
	"os"
	"path/filepath"
)

// Naming selects how the output file name is chosen.
type Naming string

const (
	// NamingFixed always writes to the same file, overwriting earlier runs.
	NamingFixed Naming = "fixed"
	// NamingInput wraps the raw input between a prefix and a suffix. The
	// input is not sanitized, so path separators in it are honored.
	NamingInput Naming = "input"
)

const quoteFileMode = 0o644

// ParseNaming validates a naming policy. The empty string selects NamingFixed.
func ParseNaming(s string) (Naming, error) {
	switch n := Naming(s); n {
	case "":
		return NamingFixed, nil
	case NamingFixed, NamingInput:
		return n, nil
	default:
		return "", fmt.Errorf("unknown output naming %q", s)
	}
}

// PersisterConfig holds the output location settings.
type PersisterConfig struct {
	Naming   Naming
	Dir      string
	FileName string
	Prefix   string
	Suffix   string
}

// Persister writes quotes to the local file system.
type Persister struct {
	cfg PersisterConfig
}

// NewPersister returns a Persister for cfg. Prefix and Suffix are used as
// given, so empty values name the file after the input alone.
func NewPersister(cfg PersisterConfig) *Persister {
	if cfg.Naming == "" {
		cfg.Naming = NamingFixed
	}
	if cfg.FileName == "" {
		cfg.FileName = DefaultQuoteFileName
	}

	return &Persister{cfg: cfg}
}

// Path returns the file the quote for rawInput is written to.
func (p *Persister) Path(rawInput string) string {
	name := p.cfg.FileName
	if p.cfg.Naming == NamingInput {
		name = p.cfg.Prefix + rawInput + p.cfg.Suffix
	}

	if p.cfg.Dir == "" {
		return name
	}

	return filepath.Join(p.cfg.Dir, name)
}

// Write stores quote verbatim and returns the path it was written to.
func (p *Persister) Write(rawInput string, quote []byte) (string, error) {
	path := p.Path(rawInput)
	if err := os.WriteFile(path, quote, quoteFileMode); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	return path, nil
}
