package loader

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/robbyt/go-polyshell/internal/helpers"
)

// FromString serves a script held in memory.
type FromString struct {
	content   string
	sourceURL *url.URL
}

// NewFromString creates a loader for content. Blank content is rejected.
func NewFromString(content string) (*FromString, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is empty", ErrScriptNotAvailable)
	}

	return &FromString{
		content:   content,
		sourceURL: &url.URL{Scheme: "string", Host: "inline", Path: "/" + helpers.ShortChecksum(content)},
	}, nil
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Chars: %d}", len(l.content))
}

// GetReader returns a reader over the content.
func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(l.content)), nil
}

// GetSourceURL returns a string://inline URL derived from the content.
func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
