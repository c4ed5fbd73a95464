package imagecache

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Decode turns a loaded state into pixels. SVG payloads are not raster
// images and report an error; callers draw them as vector icons instead.
func Decode(st State) (image.Image, error) {
	if st.Kind != Loaded {
		return nil, fmt.Errorf("image not loaded: %s", st.Kind)
	}
	img, _, err := image.Decode(bytes.NewReader(st.Data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", st.MIME, err)
	}
	return img, nil
}
