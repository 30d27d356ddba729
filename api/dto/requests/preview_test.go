package requests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "linkpreview-api/core/errors"
)

func TestPreviewRequest_Validate_EmptyURL(t *testing.T) {
	req := &PreviewRequest{URL: ""}

	err := req.Validate()

	require.Error(t, err)
	var ve *coreerrors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "URL is required", ve.Message)
}

func TestPreviewRequest_Validate_InvalidURLs(t *testing.T) {
	cases := []string{
		"not a url",
		"example.com/no-scheme",
		"ftp://example.com/file",
		"http://",
		"://missing-scheme",
		"javascript:alert(1)",
		"/relative/path",
	}

	for _, raw := range cases {
		req := &PreviewRequest{URL: raw}

		err := req.Validate()

		require.Error(t, err, "URL %q should be rejected", raw)
		var ve *coreerrors.ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, "Invalid URL", ve.Message, "URL %q", raw)
	}
}

func TestPreviewRequest_Validate_ValidURLs(t *testing.T) {
	cases := []string{
		"http://example.com",
		"https://example.com/article?id=42",
		"https://sub.example.com:8443/path#fragment",
	}

	for _, raw := range cases {
		req := &PreviewRequest{URL: raw}

		assert.NoError(t, req.Validate(), "URL %q should be accepted", raw)
	}
}

func TestBatchPreviewRequest_Validate(t *testing.T) {
	assert.Error(t, (&BatchPreviewRequest{}).Validate())
	assert.Error(t, (&BatchPreviewRequest{URLs: []string{}}).Validate())
	assert.NoError(t, (&BatchPreviewRequest{URLs: []string{"https://example.com"}}).Validate())
}

func TestIsResolvable(t *testing.T) {
	assert.True(t, IsResolvable("https://example.com"))
	assert.False(t, IsResolvable(""))
	assert.False(t, IsResolvable("not a url"))
	assert.False(t, IsResolvable("ftp://example.com"))
}
