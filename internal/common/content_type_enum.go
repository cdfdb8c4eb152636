package common

import (
	"mime"
	"path/filepath"
	"strings"
)

// ImageMimeType is one of the picture formats the images service stores.
type ImageMimeType string

const (
	ImageMimeJPEG ImageMimeType = "image/jpeg"
	ImageMimeJPG  ImageMimeType = "image/jpg"
	ImageMimePNG  ImageMimeType = "image/png"
	ImageMimeGIF  ImageMimeType = "image/gif"
	ImageMimeWEBP ImageMimeType = "image/webp"
)

var allowedImageMimeTypes = map[ImageMimeType]bool{
	ImageMimeJPEG: true,
	ImageMimeJPG:  true,
	ImageMimePNG:  true,
	ImageMimeGIF:  true,
	ImageMimeWEBP: true,
}

func (m ImageMimeType) String() string {
	return string(m)
}

func (m ImageMimeType) IsValid() bool {
	return allowedImageMimeTypes[m]
}

// ParseImageMimeType lowercases the media type and drops any parameters,
// so "Image/PNG; charset=binary" becomes "image/png".
func ParseImageMimeType(contentType string) ImageMimeType {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	}
	return ImageMimeType(strings.ToLower(mediaType))
}

// DetectImageMimeType falls back to the file extension when the client sent
// no usable Content-Type for the part.
func DetectImageMimeType(contentType, filename string) ImageMimeType {
	if m := ParseImageMimeType(contentType); m != "" && m != "application/octet-stream" {
		return m
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return ImageMimeJPEG
	case ".png":
		return ImageMimePNG
	case ".gif":
		return ImageMimeGIF
	case ".webp":
		return ImageMimeWEBP
	default:
		return ImageMimeType("application/octet-stream")
	}
}
