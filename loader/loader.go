package loader

import (
	"io"
	"net/url"
)

// Loader provides the content of a script evaluated outside the interactive
// loop, such as a startup file.
type Loader interface {
	GetReader() (io.ReadCloser, error)
	GetSourceURL() *url.URL
}

// SourceID returns the identifier a loader's content is evaluated under. Files
// use their path, so diagnostics point at the file rather than at interactive
// input.
func SourceID(l Loader) string {
	u := l.GetSourceURL()
	if u == nil {
		return ""
	}
	if u.Scheme == "file" {
		return u.Path
	}
	return u.String()
}
