package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForURLSelectsByExtension(t *testing.T) {
	tests := []struct {
		url  string
		want Parser
	}{
		{"skybox.dds", parsers[".dds"]},
		{"albedo.KTX", parsers[".ktx"]},
		{"env.hdr", parsers[".hdr"]},
		{"photo.png", imgFallback},
		{"photo.jpg", imgFallback},
		{"noextension", imgFallback},
		{"archive.zip", imgFallback},
	}
	for _, tt := range tests {
		assert.Same(t, tt.want, ForURL(tt.url), tt.url)
	}
}

func TestForURLStripsQueryParameters(t *testing.T) {
	assert.Same(t, parsers[".dds"], ForURL("textures/skybox.dds?v=3&cache=false"))
	assert.Same(t, imgFallback, ForURL("textures/photo.png?token=abc.dds"))
}

func TestExtension(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"a/b/c.DDS", ".dds"},
		{"c.ktx?x=1", ".ktx"},
		{"noext", ""},
		{"trailingdot.", "."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Extension(tt.url), tt.url)
	}
}

func TestLoadDeliversFetchedBytesOnce(t *testing.T) {
	want := []byte{1, 2, 3}
	calls := 0

	ForURL("a.dds").Load("a.dds", func(url string) ([]byte, error) {
		return want, nil
	}, func(err error, data []byte) {
		calls++
		require.NoError(t, err)
		assert.Equal(t, want, data)
	})

	assert.Equal(t, 1, calls)
}

func TestLoadReportsFetchFailureOnce(t *testing.T) {
	fetchErr := errors.New("network down")
	calls := 0

	ForURL("a.ktx").Load("a.ktx", func(url string) ([]byte, error) {
		return nil, fetchErr
	}, func(err error, data []byte) {
		calls++
		require.ErrorIs(t, err, fetchErr)
		assert.Nil(t, data)
	})

	assert.Equal(t, 1, calls)
}

func TestLoadRejectsEmptyData(t *testing.T) {
	calls := 0
	ForURL("a.hdr").Load("a.hdr", func(url string) ([]byte, error) {
		return []byte{}, nil
	}, func(err error, data []byte) {
		calls++
		assert.Error(t, err)
	})
	assert.Equal(t, 1, calls)
}
