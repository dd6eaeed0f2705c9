package quote

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// logoHeightPx is the raster height the logo is resampled to before it is
// embedded; it is printed at LogoHeightMM.
const (
	logoHeightPx = 160
	LogoHeightMM = 16.0
)

type Logo struct {
	png    []byte
	width  int
	height int
}

func LoadLogo(path string) (*Logo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("quote: open logo: %w", err)
	}
	defer f.Close()

	return DecodeLogo(f, filepath.Ext(path))
}

// DecodeLogo accepts PNG, JPEG or WebP and re-encodes it as a PNG scaled to
// a fixed height.
func DecodeLogo(r io.Reader, ext string) (*Logo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("quote: read logo: %w", err)
	}

	var src image.Image
	if strings.EqualFold(ext, ".webp") || isWebP(data) {
		src, err = webp.Decode(bytes.NewReader(data))
	} else {
		src, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("quote: decode logo: %w", err)
	}

	scaled := scaleToHeight(src, logoHeightPx)

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("quote: encode logo: %w", err)
	}

	b := scaled.Bounds()
	return &Logo{png: buf.Bytes(), width: b.Dx(), height: b.Dy()}, nil
}

func isWebP(data []byte) bool {
	return len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP"
}

func scaleToHeight(src image.Image, height int) image.Image {
	b := src.Bounds()
	if b.Dy() == 0 || b.Dy() == height {
		return src
	}

	width := b.Dx() * height / b.Dy()
	if width < 1 {
		width = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// sizeMM is the printed size: LogoHeightMM tall, shrunk to maxWidth when
// the logo is wider than that.
func (l *Logo) sizeMM(maxWidth float64) (float64, float64) {
	if l.height == 0 {
		return 0, LogoHeightMM
	}
	w := LogoHeightMM * float64(l.width) / float64(l.height)
	if w <= maxWidth {
		return w, LogoHeightMM
	}
	return maxWidth, LogoHeightMM * maxWidth / w
}
