// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"log/slog"

	"cogentcore.org/glint/math32"
	"cogentcore.org/glint/svg"
)

// Key identifies one rasterization of a vector asset: the asset's
// content id plus the exact pixel dimensions it was rasterized at.
type Key struct {
	ID     uint64
	Width  int
	Height int
}

// Cache is the two-level render cache for vector assets.
//
// The first level holds parsed documents keyed by content id, shared
// by all rasterized sizes of the same asset; a failed parse is cached
// as a nil sentinel so it is not retried until evicted. The second
// level holds rasterized [Bitmap]s keyed by [Key].
//
// Every access records its keys in per-frame touched sets; [Cache.Trim]
// evicts everything not touched since the previous trim. Cache methods
// must all be called from the render loop goroutine.
type Cache struct {
	backend Backend

	docs    map[uint64]*svg.Document
	bitmaps map[Key]Bitmap

	docHits    map[uint64]bool
	bitmapHits map[Key]bool
}

// NewCache returns a new [Cache] creating bitmaps with the given backend.
func NewCache(backend Backend) *Cache {
	return &Cache{
		backend:    backend,
		docs:       map[uint64]*svg.Document{},
		bitmaps:    map[Key]Bitmap{},
		docHits:    map[uint64]bool{},
		bitmapHits: map[Key]bool{},
	}
}

// Load returns the parsed document for the given handle, parsing it
// on the first request for its content id. A document that fails to
// parse is recorded as nil and returns nil on every subsequent call;
// the failure is logged once, and rasterization of the asset simply
// yields no output.
func (c *Cache) Load(h svg.Handle) *svg.Document {
	if doc, ok := c.docs[h.ID()]; ok {
		return doc
	}
	doc, err := svg.ParseHandle(h)
	if err != nil {
		slog.Error("raster: loading vector document", "path", h.Path(), "err", err)
		doc = nil
	}
	c.docs[h.ID()] = doc
	return doc
}

// Upload returns the bitmap for the given handle rasterized at
// round(scale * size) pixels, rasterizing and uploading it through
// the backend only if no bitmap for that exact (id, width, height)
// already exists. Both cache levels are marked as touched for the
// current frame. It returns (nil, false) if either target dimension
// rounds to zero, the document failed to load, or the backend could
// not create the bitmap; a backend failure is not cached, so the next
// frame's request tries again.
func (c *Cache) Upload(h svg.Handle, size math32.Vector2, scale float32) (Bitmap, bool) {
	px := size.MulScalar(scale).Round().ToPoint()
	key := Key{ID: h.ID(), Width: px.X, Height: px.Y}

	if bm, ok := c.bitmaps[key]; ok {
		c.docHits[key.ID] = true
		c.bitmapHits[key] = true
		return bm, true
	}

	doc := c.Load(h)
	if doc == nil {
		return nil, false
	}
	if px.X == 0 || px.Y == 0 {
		return nil, false
	}

	img := doc.Rasterize(px.X, px.Y)
	if img == nil {
		return nil, false
	}
	bm, err := c.backend.NewBitmap(img)
	if err != nil {
		slog.Error("raster: creating bitmap", "path", h.Path(), "size", px, "err", err)
		return nil, false
	}

	c.bitmaps[key] = bm
	c.docHits[key.ID] = true
	c.bitmapHits[key] = true
	return bm, true
}

// Trim retains only the entries in both cache levels whose keys were
// touched since the last trim, releasing the cache's reference on each
// evicted bitmap, and clears the touched sets.
//
// Call Trim exactly once per rendered frame, after the frame's draw
// output has been submitted and before the next frame's Upload calls.
// Trimming mid-frame can evict an entry the frame still needs; never
// trimming leaks every size ever requested.
func (c *Cache) Trim() {
	for id := range c.docs {
		if !c.docHits[id] {
			delete(c.docs, id)
		}
	}
	for key, bm := range c.bitmaps {
		if !c.bitmapHits[key] {
			bm.Release()
			delete(c.bitmaps, key)
		}
	}
	clear(c.docHits)
	clear(c.bitmapHits)
}

// NumDocuments returns the number of parsed documents currently cached.
func (c *Cache) NumDocuments() int {
	return len(c.docs)
}

// NumBitmaps returns the number of rasterized bitmaps currently cached.
func (c *Cache) NumBitmaps() int {
	return len(c.bitmaps)
}
