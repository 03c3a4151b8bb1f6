// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides the WebGPU rendering backend for the glint
// render cache: rasterized vector assets are uploaded to device
// textures that draw encoding can sample from.
package gpu

import (
	"image"

	"cogentcore.org/glint/raster"
	"github.com/cogentcore/webgpu/wgpu"
)

// Device wraps a WebGPU device and its queue, and implements
// [raster.Backend] by uploading pixels into device textures.
type Device struct {

	// Device is the WebGPU device handle.
	Device *wgpu.Device

	// Queue is the default queue of the device, used for uploads.
	Queue *wgpu.Queue
}

var _ raster.Backend = (*Device)(nil)

// NewDevice returns a new [Device] wrapping the given WebGPU device.
func NewDevice(dev *wgpu.Device) *Device {
	return &Device{Device: dev, Queue: dev.GetQueue()}
}

// NewBitmap implements [raster.Backend]: it creates a device texture
// of the image's size, uploads the pixels, and returns the texture
// with one reference held by the caller.
func (d *Device) NewBitmap(img *image.RGBA) (raster.Bitmap, error) {
	tx := NewTexture(d)
	if err := tx.SetFromGoImage(img); err != nil {
		return nil, err
	}
	return tx, nil
}
