package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	// Reference photos come straight off a phone camera; cap the long edge
	// so the bucket doesn't fill with 12MP originals.
	maxEdge = 1600

	webpQuality = 80
)

// PrepareImage re-encodes decodable images (JPEG/PNG) to webp, downscaled to
// the edge cap. Anything it cannot decode is passed through untouched with
// its original extension.
func PrepareImage(originalName string, data []byte) (body []byte, ext string, contentType string) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, Ext(originalName), "application/octet-stream"
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return data, Ext(originalName), "application/octet-stream"
	}

	return buf.Bytes(), "webp", "image/webp"
}

func downscale(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	long := w
	if h > long {
		long = h
	}
	if long <= maxEdge {
		return img
	}

	scale := float64(maxEdge) / float64(long)
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
