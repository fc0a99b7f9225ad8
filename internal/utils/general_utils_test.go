package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURI(t *testing.T) {
	raw := []byte{0x89, 0x50, 0x4e, 0x47}
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	contentType, data, err := DecodeDataURI(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, raw, data)
}

func TestDecodeDataURIRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"not-a-data-uri",
		"data:image/png;base64",
		"data:image/png,plain",
		"data:image/png;base64,%%%",
	}
	for _, uri := range cases {
		if _, _, err := DecodeDataURI(uri); err == nil {
			t.Fatalf("expected error for %q", uri)
		}
	}
}
