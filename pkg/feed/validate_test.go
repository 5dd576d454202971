package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Validate_Success(t *testing.T) {
	rssContent := `<?xml version="1.0"?>
<rss version="2.0"><channel>
	<title>Valid Feed</title>
	<description>A feed that works</description>
	<link>http://example.com</link>
	<language>en</language>
	<item>
		<title>Article</title>
		<link>http://example.com/a</link>
		<description>text</description>
	</item>
</channel></rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rssContent))
	}))
	defer server.Close()

	parser := newTestParser()
	result, err := parser.Validate(context.Background(), server.URL)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Empty(t, result.Warning)
	assert.Equal(t, "Valid Feed", result.Title)
	assert.Equal(t, "A feed that works", result.Description)
	assert.Equal(t, "http://example.com", result.Link)
	assert.Equal(t, "en", result.Language)
}

func TestParser_Validate_TransientFailure(t *testing.T) {
	// rate limiting is treated as temporary, the feed registers anyway
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	parser := newTestParser()
	result, err := parser.Validate(context.Background(), server.URL)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.NotEmpty(t, result.Warning)
	assert.Contains(t, result.Warning, "429")
	assert.Equal(t, placeholderMeta, result.Title)
	assert.Equal(t, placeholderMeta, result.Description)
}

func TestParser_Validate_HardFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	parser := newTestParser()
	result, err := parser.Validate(context.Background(), server.URL)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "404")
}

func TestParser_IsTransient(t *testing.T) {
	parser := newTestParser()

	tests := []struct {
		msg  string
		want bool
	}{
		{"unexpected status code: 403", true},
		{"fetch URL: dial tcp: lookup nohost.invalid: no such host", true},
		{"parse feed: XML syntax error on line 3", true},
		{"context deadline exceeded", true},
		{"unexpected status code: 404", false},
		{"something entirely different", false},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, parser.isTransient(tt.msg))
		})
	}
}
