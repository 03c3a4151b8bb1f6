// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides the render cache for vector assets: parsed
// documents are cached per content id, and rasterized bitmaps are
// cached per (content id, width, height). Entries not touched between
// calls to [Cache.Trim] are evicted, bounding memory to the working set
// of the current frame.
package raster

import (
	"image"
	"sync/atomic"
)

// Bitmap is a rasterized vector asset resident in a rendering backend.
// Bitmaps are reference counted: the cache holds one reference, and
// draw code that needs the bitmap to outlive a possible [Cache.Trim]
// must pair [Bitmap.Retain] with [Bitmap.Release]. The backing
// resource is freed when the last reference is released.
type Bitmap interface {

	// Size returns the pixel dimensions of the bitmap.
	Size() image.Point

	// Retain adds a reference.
	Retain()

	// Release removes a reference, freeing the backing resource
	// when none remain.
	Release()
}

// Backend creates device-resident bitmaps from rasterized pixels.
// The GPU backend uploads to a texture; [ImageBackend] keeps the
// pixels as-is for software rendering and tests.
type Backend interface {

	// NewBitmap returns a new [Bitmap] holding the given pixels,
	// with one reference held by the caller.
	NewBitmap(img *image.RGBA) (Bitmap, error)
}

// ImageBackend is the software [Backend]: bitmaps are plain RGBA
// images in host memory.
type ImageBackend struct{}

// NewBitmap implements [Backend].
func (ImageBackend) NewBitmap(img *image.RGBA) (Bitmap, error) {
	bm := &ImageBitmap{img: img}
	bm.refs.Store(1)
	return bm, nil
}

// ImageBitmap is a software [Bitmap] backed by an [image.RGBA].
type ImageBitmap struct {
	refs atomic.Int32
	img  *image.RGBA
}

// Image returns the backing image, or nil if released.
func (bm *ImageBitmap) Image() *image.RGBA {
	return bm.img
}

func (bm *ImageBitmap) Size() image.Point {
	if bm.img == nil {
		return image.Point{}
	}
	return bm.img.Bounds().Size()
}

func (bm *ImageBitmap) Retain() {
	bm.refs.Add(1)
}

func (bm *ImageBitmap) Release() {
	if bm.refs.Add(-1) == 0 {
		bm.img = nil
	}
}
