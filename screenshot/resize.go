package screenshot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// DefaultMaxDimension bounds the longest side of a returned capture.
const DefaultMaxDimension = 640

// Fit downscales a PNG so that neither side exceeds maxDimension, preserving
// the aspect ratio. Images already within bounds, or a non-positive
// maxDimension, return data unchanged with resized == false.
func Fit(data []byte, maxDimension int) (result []byte, resized bool, err error) {
	if maxDimension <= 0 {
		return data, false, nil
	}
	config, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("invalid png: %w", err)
	}
	if config.Width <= maxDimension && config.Height <= maxDimension {
		return data, false, nil
	}
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("invalid png: %w", err)
	}
	width, height := scale(config.Width, config.Height, maxDimension)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	buf := &bytes.Buffer{}
	if err = png.Encode(buf, dst); err != nil {
		return nil, false, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), true, nil
}

func scale(width, height, maxDimension int) (int, int) {
	if width >= height {
		return maxDimension, max(1, height*maxDimension/width)
	}
	return max(1, width*maxDimension/height), maxDimension
}
