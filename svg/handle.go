// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg provides vector-asset handles, a parser for a useful
// subset of SVG documents, and a software rasterizer for them.
package svg

import (
	"hash/fnv"
	"os"
)

// Handle identifies a vector asset by its source: either a file path
// or an in-memory byte slice. The content id is stable across frames
// and is used as the render cache key for the asset.
type Handle struct {
	path string
	data []byte
	id   uint64
}

// NewHandle returns a [Handle] for the vector document at the given
// file path. The content id is derived from the path string.
func NewHandle(path string) Handle {
	h := fnv.New64a()
	h.Write([]byte(path))
	return Handle{path: path, id: h.Sum64()}
}

// NewHandleBytes returns a [Handle] for the given in-memory vector
// document. The content id is derived from the bytes themselves.
func NewHandleBytes(data []byte) Handle {
	h := fnv.New64a()
	h.Write(data)
	return Handle{data: data, id: h.Sum64()}
}

// ID returns the stable content id of the asset.
func (h Handle) ID() uint64 {
	return h.id
}

// Path returns the file path of the asset, if it is file-based.
func (h Handle) Path() string {
	return h.path
}

// Load returns the raw bytes of the document, reading the file
// for a path-based handle.
func (h Handle) Load() ([]byte, error) {
	if h.data != nil {
		return h.data, nil
	}
	return os.ReadFile(h.path)
}
