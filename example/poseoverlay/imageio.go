package main

import (
	"fmt"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// readImage decodes the image file using the registered standard library and
// x/image codecs
func readImage(path string) (image.Image, error) {

	f, err := os.Open(path)

	if err != nil {
		return nil, fmt.Errorf("error opening image: %w", err)
	}

	defer f.Close()

	img, _, err := image.Decode(f)

	if err != nil {
		return nil, fmt.Errorf("error decoding image %s: %w", path, err)
	}

	return img, nil
}

// writeImage encodes the image in the format given by the file extension
func writeImage(path string, img image.Image) error {

	f, err := os.Create(path)

	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = fmt.Errorf("unsupported output format %q", ext)
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return fmt.Errorf("error writing image %s: %w", path, err)
	}

	return nil
}
