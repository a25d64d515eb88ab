package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

type WebPOptions struct {
	MaxW    int
	MaxH    int
	Quality float32
}

func DefaultWebPOptions() WebPOptions {
	return WebPOptions{MaxW: 1600, MaxH: 1600, Quality: 80}
}

const maxUploadSize = 5 * 1024 * 1024

// ReadImageFile loads a multipart image into memory with a size guard.
func ReadImageFile(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxUploadSize {
		return nil, fmt.Errorf("image larger than %dMB", maxUploadSize/(1024*1024))
	}
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return buf.Bytes(), nil
}

// ConvertToWebP decodes png/jpeg/webp bytes, downsizes to fit opt.MaxW/MaxH
// keeping aspect, and re-encodes as lossy webp.
func ConvertToWebP(raw []byte, opt WebPOptions) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		if img2, werr := webp.Decode(bytes.NewReader(raw)); werr == nil {
			img, format = img2, "webp"
		} else {
			return nil, fmt.Errorf("decode image: %w", err)
		}
	}
	_ = format

	b := img.Bounds()
	if opt.MaxW > 0 && opt.MaxH > 0 && (b.Dx() > opt.MaxW || b.Dy() > opt.MaxH) {
		img = imaging.Fit(img, opt.MaxW, opt.MaxH, imaging.Lanczos)
	}

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: opt.Quality}); err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return out.Bytes(), nil
}

// IsImageContentType accepts the content types the branding uploader handles.
func IsImageContentType(ct string) bool {
	ct = strings.ToLower(strings.TrimSpace(ct))
	switch ct {
	case "image/png", "image/jpeg", "image/jpg", "image/webp":
		return true
	}
	return false
}
