// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"errors"
	"image"
	"testing"

	"cogentcore.org/glint/math32"
	"cogentcore.org/glint/svg"
	"github.com/stretchr/testify/assert"
)

const testDoc = `<svg viewBox="0 0 10 10"><rect width="10" height="10" fill="#f00"/></svg>`

func testHandle() svg.Handle {
	return svg.NewHandleBytes([]byte(testDoc))
}

func TestUploadDedup(t *testing.T) {
	c := NewCache(ImageBackend{})
	h := testHandle()

	a, ok := c.Upload(h, math32.Vec2(20, 20), 1)
	assert.True(t, ok)
	b, ok := c.Upload(h, math32.Vec2(20, 20), 1)
	assert.True(t, ok)
	// same (id, width, height) is the same bitmap, not a rerender
	assert.Same(t, a, b)
	assert.Equal(t, 1, c.NumBitmaps())

	// a different size is a second bitmap sharing the one document
	d, ok := c.Upload(h, math32.Vec2(40, 40), 1)
	assert.True(t, ok)
	assert.NotSame(t, a, d)
	assert.Equal(t, 2, c.NumBitmaps())
	assert.Equal(t, 1, c.NumDocuments())
}

func TestUploadScale(t *testing.T) {
	c := NewCache(ImageBackend{})

	// logical size times scale, rounded, sets the pixel dimensions
	bm, ok := c.Upload(testHandle(), math32.Vec2(50, 50), 2)
	assert.True(t, ok)
	assert.Equal(t, image.Pt(100, 100), bm.Size())

	bm, ok = c.Upload(testHandle(), math32.Vec2(10.2, 10.2), 1.5)
	assert.True(t, ok)
	assert.Equal(t, image.Pt(15, 15), bm.Size())
}

func TestUploadZeroSize(t *testing.T) {
	c := NewCache(ImageBackend{})

	_, ok := c.Upload(testHandle(), math32.Vector2{}, 1)
	assert.False(t, ok)
	_, ok = c.Upload(testHandle(), math32.Vec2(0.2, 10), 1)
	assert.False(t, ok)
	assert.Equal(t, 0, c.NumBitmaps())
}

func TestLoadFailureSentinel(t *testing.T) {
	c := NewCache(ImageBackend{})
	bad := svg.NewHandleBytes([]byte("not an svg"))

	assert.Nil(t, c.Load(bad))
	// the failure is cached: the second load is the sentinel, not a reparse
	assert.Nil(t, c.Load(bad))
	assert.Equal(t, 1, c.NumDocuments())

	_, ok := c.Upload(bad, math32.Vec2(10, 10), 1)
	assert.False(t, ok)
}

func TestTrim(t *testing.T) {
	c := NewCache(ImageBackend{})
	h := testHandle()
	other := svg.NewHandleBytes([]byte(`<svg viewBox="0 0 4 4"><circle cx="2" cy="2" r="2"/></svg>`))

	c.Upload(h, math32.Vec2(20, 20), 1)
	c.Upload(h, math32.Vec2(40, 40), 1)
	c.Upload(other, math32.Vec2(8, 8), 1)
	assert.Equal(t, 3, c.NumBitmaps())
	assert.Equal(t, 2, c.NumDocuments())

	// next frame touches only one size of one asset
	c.Trim()
	kept, ok := c.Upload(h, math32.Vec2(20, 20), 1)
	assert.True(t, ok)
	c.Trim()

	assert.Equal(t, 1, c.NumBitmaps())
	assert.Equal(t, 1, c.NumDocuments())
	again, ok := c.Upload(h, math32.Vec2(20, 20), 1)
	assert.True(t, ok)
	assert.Same(t, kept, again)

	// evicted bitmaps had their cache reference released
	// (the kept one is still alive)
	assert.NotNil(t, kept.(*ImageBitmap).Image())

	// a frame touching nothing empties the cache
	c.Trim()
	c.Trim()
	assert.Equal(t, 0, c.NumBitmaps())
	assert.Equal(t, 0, c.NumDocuments())
}

func TestTrimReleasesEvicted(t *testing.T) {
	c := NewCache(ImageBackend{})
	bm, ok := c.Upload(testHandle(), math32.Vec2(20, 20), 1)
	assert.True(t, ok)

	c.Trim() // touched this frame: survives
	assert.NotNil(t, bm.(*ImageBitmap).Image())
	c.Trim() // untouched: evicted, last reference released
	assert.Nil(t, bm.(*ImageBitmap).Image())
}

func TestRetainOutlivesTrim(t *testing.T) {
	c := NewCache(ImageBackend{})
	bm, ok := c.Upload(testHandle(), math32.Vec2(20, 20), 1)
	assert.True(t, ok)

	bm.Retain()
	c.Trim()
	c.Trim()
	assert.Equal(t, 0, c.NumBitmaps())
	// the draw code's reference keeps the pixels alive past eviction
	assert.NotNil(t, bm.(*ImageBitmap).Image())
	bm.Release()
	assert.Nil(t, bm.(*ImageBitmap).Image())
}

type failBackend struct {
	calls int
}

func (b *failBackend) NewBitmap(img *image.RGBA) (Bitmap, error) {
	b.calls++
	return nil, errors.New("out of device memory")
}

func TestBackendFailureNotCached(t *testing.T) {
	be := &failBackend{}
	c := NewCache(be)
	h := testHandle()

	_, ok := c.Upload(h, math32.Vec2(20, 20), 1)
	assert.False(t, ok)
	_, ok = c.Upload(h, math32.Vec2(20, 20), 1)
	assert.False(t, ok)
	// the failure was retried, not cached
	assert.Equal(t, 2, be.calls)
	assert.Equal(t, 0, c.NumBitmaps())
}
