package misc

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encoder writes an image in one file format.
type Encoder func(w io.Writer, m image.Image) error

var encoders = map[string]Encoder{
	".bmp": bmp.Encode,
	".jpeg": func(w io.Writer, m image.Image) error {
		return jpeg.Encode(w, m, &jpeg.Options{Quality: 95})
	},
	".jpg": func(w io.Writer, m image.Image) error {
		return jpeg.Encode(w, m, &jpeg.Options{Quality: 95})
	},
	".png": png.Encode,
	".tif": func(w io.Writer, m image.Image) error {
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	},
	".tiff": func(w io.Writer, m image.Image) error {
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	},
}

// EncoderFor picks the encoder matching the extension of fileName. Names
// without an extension are written as png.
func EncoderFor(fileName string) (Encoder, error) {
	extension := strings.ToLower(filepath.Ext(fileName))
	if extension == "" {
		return png.Encode, nil
	}
	encoder, ok := encoders[extension]
	if !ok {
		return nil, fmt.Errorf("unsupported image format %q", extension)
	}
	return encoder, nil
}

// WriteImage encodes m into fileName using the format named by its extension.
func WriteImage(fileName string, m image.Image) error {
	encoder, err := EncoderFor(fileName)
	if err != nil {
		return err
	}
	return CreateFile(fileName, func(w io.Writer) error {
		return encoder(w, m)
	})
}
