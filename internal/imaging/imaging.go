// Package imaging normalises report photos before upload: large images are
// downscaled and everything decodable is re-encoded as WebP.
package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"path"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/merseybathrooms/jobtracker/internal/config"
	"github.com/merseybathrooms/jobtracker/internal/storage"
)

type Normalizer struct {
	maxDimension int
	quality      float32
}

func NewNormalizer(cfg config.PhotoConfig) *Normalizer {
	q := cfg.WebPQuality
	if q <= 0 || q > 100 {
		q = 80
	}
	return &Normalizer{maxDimension: cfg.MaxDimension, quality: q}
}

// Process returns p re-encoded as WebP. Formats the standard decoders do
// not understand (HEIC, RAW) are passed through untouched.
func (n *Normalizer) Process(p storage.Photo) (storage.Photo, error) {
	img, _, err := image.Decode(bytes.NewReader(p.Content))
	if err != nil {
		return p, nil
	}

	img = n.fit(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: n.quality}); err != nil {
		return storage.Photo{}, err
	}

	return storage.Photo{
		Content:     buf.Bytes(),
		ContentType: "image/webp",
		Filename:    strings.TrimSuffix(p.Filename, path.Ext(p.Filename)) + ".webp",
	}, nil
}

// fit scales img down so its longest side is at most maxDimension.
func (n *Normalizer) fit(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	longest := max(w, h)
	if n.maxDimension <= 0 || longest <= n.maxDimension {
		return img
	}

	nw := w * n.maxDimension / longest
	nh := h * n.maxDimension / longest
	dst := image.NewRGBA(image.Rect(0, 0, max(nw, 1), max(nh, 1)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
