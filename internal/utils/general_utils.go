package utils

import (
	"encoding/base64"
	"strings"

	"socketBoard/internal/errs"
)

// DecodeDataURI splits a "data:<content-type>;base64,<data>" string into its
// content type and raw bytes. Canvas exports arrive in exactly this form.
func DecodeDataURI(dataURI string) (string, []byte, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return "", nil, errs.ErrInvalidImageData
	}
	meta, encoded, found := strings.Cut(dataURI[len("data:"):], ",")
	if !found {
		return "", nil, errs.ErrInvalidImageData
	}
	contentType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, errs.ErrInvalidImageData
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, errs.ErrInvalidImageData
	}
	return contentType, data, nil
}
