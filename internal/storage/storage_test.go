package storage

import (
	"bytes"
	"image"
	"image/png"
	"testing"
	"time"
)

func TestObjectName(t *testing.T) {
	now := time.UnixMilli(1709610000123)

	if got := ObjectName(now, "webp"); got != "1709610000123.webp" {
		t.Errorf("ObjectName = %s, want 1709610000123.webp", got)
	}
	if got := ObjectName(now, ".jpg"); got != "1709610000123.jpg" {
		t.Errorf("ObjectName with dotted ext = %s, want 1709610000123.jpg", got)
	}
	if got := ObjectName(now, ""); got != "1709610000123.bin" {
		t.Errorf("ObjectName without ext = %s, want 1709610000123.bin", got)
	}
}

func TestExt(t *testing.T) {
	cases := map[string]string{
		"design.JPG":     "jpg",
		"photo.png":      "png",
		"archive.tar.gz": "gz",
		"noext":          "",
	}
	for name, want := range cases {
		if got := Ext(name); got != want {
			t.Errorf("Ext(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestPrepareImageReencodesToWebp(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 20, 20))); err != nil {
		t.Fatal(err)
	}

	body, ext, contentType := PrepareImage("nails.png", buf.Bytes())
	if ext != "webp" || contentType != "image/webp" {
		t.Errorf("ext=%s type=%s, want webp/image/webp", ext, contentType)
	}
	if len(body) == 0 {
		t.Error("empty body")
	}
}

func TestPrepareImagePassesThroughUndecodable(t *testing.T) {
	data := []byte("not an image at all")

	body, ext, contentType := PrepareImage("notes.PDF", data)
	if !bytes.Equal(body, data) {
		t.Error("undecodable data must pass through unchanged")
	}
	if ext != "pdf" {
		t.Errorf("ext = %s, want pdf", ext)
	}
	if contentType != "application/octet-stream" {
		t.Errorf("content type = %s", contentType)
	}
}

func TestDownscaleCapsLongEdge(t *testing.T) {
	big := image.NewRGBA(image.Rect(0, 0, 4000, 3000))
	out := downscale(big)

	b := out.Bounds()
	if b.Dx() != 1600 {
		t.Errorf("long edge = %d, want 1600", b.Dx())
	}
	if b.Dy() != 1200 {
		t.Errorf("short edge = %d, want 1200", b.Dy())
	}

	small := image.NewRGBA(image.Rect(0, 0, 800, 600))
	if downscale(small) != small {
		t.Error("images inside the cap must not be rescaled")
	}
}
