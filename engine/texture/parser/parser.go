// Package parser provides format-specific texture parsers selected by file
// extension. Specialized container formats (DDS, KTX, HDR) get dedicated
// binary parsers; everything else falls through to the generic image-codec
// parser.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/lumen-go/engine/texture"
)

// FetchFunc retrieves the raw bytes behind a URL. The default implementation
// reads from the local filesystem.
type FetchFunc func(url string) ([]byte, error)

// LoadCallback receives the result of an asynchronous byte retrieval. It is
// invoked exactly once per Load call, with either an error or the data.
type LoadCallback func(err error, data []byte)

// Parser decodes one texture container format.
type Parser interface {
	// Load retrieves the raw bytes for the given URL via fetch and reports the
	// result through done exactly once.
	//
	// Parameters:
	//   - url: the resource URL
	//   - fetch: the byte retrieval function (nil selects filesystem reads)
	//   - done: the completion callback, invoked exactly once
	Load(url string, fetch FetchFunc, done LoadCallback)

	// Open decodes raw bytes into a texture object.
	//
	// Parameters:
	//   - url: the resource URL, used for naming and extension hints
	//   - data: the raw bytes to decode
	//
	// Returns:
	//   - texture.Texture: the decoded texture
	//   - error: error if the data cannot be interpreted
	Open(url string, data []byte) (texture.Texture, error)
}

var parsers = map[string]Parser{
	".dds": &ddsParser{},
	".ktx": &ktxParser{},
	".hdr": &hdrParser{},
}

// imgFallback decodes anything the registered image codecs understand.
var imgFallback Parser = &imgParser{}

// ForURL selects the parser for a URL. Query parameters are stripped before
// the lowercase extension is looked up; unrecognized or absent extensions
// select the generic image-codec parser.
//
// Parameters:
//   - url: the resource URL
//
// Returns:
//   - Parser: the parser responsible for the URL's format
func ForURL(url string) Parser {
	if p, ok := parsers[Extension(url)]; ok {
		return p
	}
	return imgFallback
}

// Extension returns the lowercase file extension of a URL with any query
// parameters stripped.
//
// Parameters:
//   - url: the resource URL
//
// Returns:
//   - string: the extension including the leading dot, or "" if absent
func Extension(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	return strings.ToLower(filepath.Ext(url))
}

// fetchBytes runs the shared Load path: retrieve, validate non-empty, report once.
func fetchBytes(url string, fetch FetchFunc, done LoadCallback) {
	if fetch == nil {
		fetch = func(url string) ([]byte, error) {
			return os.ReadFile(url)
		}
	}
	data, err := fetch(url)
	if err != nil {
		done(fmt.Errorf("failed to fetch %s: %w", url, err), nil)
		return
	}
	if len(data) == 0 {
		done(fmt.Errorf("empty resource: %s", url), nil)
		return
	}
	done(nil, data)
}

// baseName derives a texture name from a URL, dropping query and directory parts.
func baseName(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	return filepath.Base(url)
}
