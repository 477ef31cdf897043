// Package limage bridges LUM datasets and the standard image package.
package limage

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	"lum-reader/lum"
	"lum-reader/lum/lband"
	"lum-reader/lum/lbytes"
)

// Image decodes the whole first band of dataset into an image.Gray or
// image.Gray16, depending on the band's sample type.
//
// Note that decoding an entire raster at once may use considerable
// amounts of memory; for line-wise processing use Band.ReadLine.
func Image(dataset *lum.Dataset) (image.Image, error) {
	band, err := dataset.RasterBand(1)
	if err != nil {
		return nil, err
	}
	width, height := dataset.RasterSize()
	rect := image.Rect(0, 0, width, height)

	all, err := band.ReadAll()
	if err != nil {
		return nil, err
	}

	switch band.SampleType() {
	case lband.SampleUint8:
		return &image.Gray{
			Pix:    all,
			Stride: width,
			Rect:   rect,
		}, nil
	case lband.SampleUint16:
		// image.Gray16 stores its Pix big-endian regardless of host.
		pix := make([]byte, len(all))
		for x := 0; x < width*height; x++ {
			sample := lbytes.NativeOrder().Uint16(all[x*2:])
			pix[x*2] = byte(sample >> 8)
			pix[x*2+1] = byte(sample)
		}
		return &image.Gray16{
			Pix:    pix,
			Stride: width * 2,
			Rect:   rect,
		}, nil
	}
	return nil, errors.Errorf("no image representation for sample type %s", band.SampleType())
}

// Draw writes img into the first band of dataset, converting every
// pixel through the grayscale color model matching the band's sample
// type. The image bounds must equal the raster size.
func Draw(dataset *lum.Dataset, img image.Image) error {
	band, err := dataset.RasterBand(1)
	if err != nil {
		return err
	}
	width, height := dataset.RasterSize()
	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		return errors.Errorf("image size %dx%d does not match raster size %dx%d",
			bounds.Dx(), bounds.Dy(), width, height)
	}

	size := band.SampleType().Size()
	line := make([]byte, band.LineSize())
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixel := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			if size == 1 {
				line[x] = color.GrayModel.Convert(pixel).(color.Gray).Y
			} else {
				sample := color.Gray16Model.Convert(pixel).(color.Gray16).Y
				lbytes.NativeOrder().PutUint16(line[x*2:], sample)
			}
		}
		if err := band.WriteLine(y, line); err != nil {
			return err
		}
	}
	return nil
}
