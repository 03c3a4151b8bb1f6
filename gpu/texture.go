// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"sync/atomic"

	"cogentcore.org/glint/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Texture represents a WebGPU Texture with an associated TextureView.
// The WebGPU Texture is in device memory, in an optimized format.
// Textures are reference counted through [Texture.Retain] and
// [Texture.Release], implementing [raster.Bitmap].
type Texture struct {

	// Name of the texture, e.g., the asset path it was rasterized from.
	// This is helpful for debugging.
	Name string

	// size of the texture in pixels.
	size image.Point

	// refs is the reference count.
	refs atomic.Int32

	// WebGPU texture handle, in device memory
	texture *wgpu.Texture

	// WebGPU texture view
	view *wgpu.TextureView

	// keep track of device for creating and destroying
	device *Device
}

// NewTexture returns a new [Texture] on the given device,
// with one reference.
func NewTexture(dev *Device) *Texture {
	tx := &Texture{device: dev}
	tx.refs.Store(1)
	return tx
}

// SetFromGoImage sets texture data from a standard Go RGBA image.
// This starts the full WriteTexture call to upload to device.
func (tx *Texture) SetFromGoImage(img *image.RGBA) error {
	sz := img.Bounds().Size()
	tx.size = sz

	err := tx.CreateTexture(wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst)
	if err != nil { // already logged
		return err
	}

	// https://www.w3.org/TR/webgpu/#gpuimagecopytexture
	tx.device.Queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Aspect:   wgpu.TextureAspectAll,
			Texture:  tx.texture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{X: 0, Y: 0, Z: 0},
		},
		img.Pix,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  4 * uint32(sz.X),
			RowsPerImage: uint32(sz.Y),
		},
		&wgpu.Extent3D{
			Width:              uint32(sz.X),
			Height:             uint32(sz.Y),
			DepthOrArrayLayers: 1,
		},
	)
	return nil
}

// CreateTexture creates the texture based on current settings,
// and a view of that texture. Calls releaseTexture first.
func (tx *Texture) CreateTexture(usage wgpu.TextureUsage) error {
	tx.releaseTexture()

	t, err := tx.device.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: tx.Name,
		Size: wgpu.Extent3D{
			Width:              uint32(tx.size.X),
			Height:             uint32(tx.size.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8UnormSrgb,
		Usage:         usage,
	})
	if errors.Log(err) != nil {
		return err
	}
	tx.texture = t
	vw, err := t.CreateView(nil)
	if errors.Log(err) != nil {
		return err
	}
	tx.view = vw
	return nil
}

// View returns the sampleable texture view, for binding in draw encoding.
func (tx *Texture) View() *wgpu.TextureView {
	return tx.view
}

// Size returns the pixel dimensions of the texture.
func (tx *Texture) Size() image.Point {
	return tx.size
}

// Retain adds a reference to the texture.
func (tx *Texture) Retain() {
	tx.refs.Add(1)
}

// Release removes a reference, destroying the device texture and view
// when no references remain.
func (tx *Texture) Release() {
	if tx.refs.Add(-1) == 0 {
		tx.releaseTexture()
	}
}

// releaseView destroys any existing view.
func (tx *Texture) releaseView() {
	if tx.view == nil {
		return
	}
	tx.view.Release()
	tx.view = nil
}

// releaseTexture frees the device memory version of the texture.
func (tx *Texture) releaseTexture() {
	tx.releaseView()
	if tx.texture == nil {
		return
	}
	tx.texture.Release()
	tx.texture = nil
}
