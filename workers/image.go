package workers

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	_ "image/png"
	"strings"
)

var ErrInvalidDataURL = errors.New("invalid image data URL")

// JPEGQuality matches what browsers use for canvas.toDataURL("image/jpeg").
const JPEGQuality = 92

// TintImage paints tint over the image at half opacity and returns the
// result as a JPEG data URL.
func TintImage(dataURL string, tint RGB) (string, error) {

	src, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	draw.Draw(dst, bounds, image.NewUniform(color.NRGBA{R: tint.R, G: tint.G, B: tint.B, A: 128}), image.Point{}, draw.Over)

	return EncodeJPEGDataURL(dst)
}

func DecodeDataURL(dataURL string) (image.Image, error) {

	header, data, found := strings.Cut(dataURL, ",")
	if !found || !strings.HasPrefix(header, "data:image/") || !strings.HasSuffix(header, ";base64") {
		return nil, ErrInvalidDataURL
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataURL, err)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	return img, nil
}

func EncodeJPEGDataURL(img image.Image) (string, error) {
	buf := &bytes.Buffer{}
	err := jpeg.Encode(buf, img, &jpeg.Options{Quality: JPEGQuality})
	if err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
