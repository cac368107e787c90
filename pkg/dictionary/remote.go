package dictionary

import (
	"bytes"
	"compress/bzip2"
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
)

// openLocalPossiblyCompressed opens a local file and wraps it in a bzip2
// decompressor when the path ends with ".bz2". The returned ReadCloser
// always closes the underlying file.
func openLocalPossiblyCompressed(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(strings.ToLower(path), ".bz2") {
		return struct {
			io.Reader
			io.Closer
		}{Reader: bzip2.NewReader(f), Closer: f}, nil
	}
	return f, nil
}

// isHTTPURL returns true if src looks like an HTTP or HTTPS URL.
func isHTTPURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// hasBZ2SuffixURL reports whether a URL string should be treated as a
// .bz2 resource, ignoring query or fragment parts.
func hasBZ2SuffixURL(raw string) bool {
	lower := strings.ToLower(raw)
	if idx := strings.IndexAny(lower, "?#"); idx >= 0 {
		lower = lower[:idx]
	}
	return strings.HasSuffix(lower, ".bz2")
}

// openHTTPPossiblyCompressed performs an HTTP GET and returns a
// streaming reader, wrapping the response body in a bzip2 decompressor
// when the URL indicates a .bz2 payload. No temporary file is created:
// callers read directly from the HTTP response stream. ctx bounds the
// request, the only place in this repository that observes a
// cancellation signal.
func openHTTPPossiblyCompressed(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}
	if hasBZ2SuffixURL(url) {
		return struct {
			io.Reader
			io.Closer
		}{Reader: bzip2.NewReader(resp.Body), Closer: resp.Body}, nil
	}
	return resp.Body, nil
}

// openSource opens either a local file or an HTTP/HTTPS URL, transparently
// decompressing a .bz2 payload either way.
func openSource(ctx context.Context, pathOrURL string) (io.ReadCloser, error) {
	if isHTTPURL(pathOrURL) {
		return openHTTPPossiblyCompressed(ctx, pathOrURL)
	}
	return openLocalPossiblyCompressed(pathOrURL)
}

// LoadRemote streams a CMU-format dictionary (optionally .bz2-compressed)
// from a local path or an HTTP/HTTPS URL, merging it into rep under mode.
// This lets a deployment ship a small built-in CMUdict and supplement it
// from a larger, separately-hosted pronunciation list without bundling
// the whole thing in the binary. ctx is only consulted for the HTTP
// path; a local path ignores it.
func LoadRemote(ctx context.Context, pathOrURL string, mode MergeMode, rep *Representation) error {
	if rep == nil {
		rep = NewRepresentation()
	}
	r, err := openSource(ctx, pathOrURL)
	if err != nil {
		return fmt.Errorf("open %q: %w", pathOrURL, err)
	}
	defer r.Close()

	buf := make([]byte, sniffLen)
	n, readErr := io.ReadFull(r, buf)
	if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
		return fmt.Errorf("sniff %q: %w", pathOrURL, readErr)
	}
	buf = buf[:n]
	isEOF := readErr == io.EOF || readErr == io.ErrUnexpectedEOF || n == 0

	l := selectLoader(buf, isEOF)
	if l == nil {
		return fmt.Errorf("no loader matched for %q", pathOrURL)
	}

	return runLoader(l, mode, io.MultiReader(bytes.NewReader(buf), r), rep)
}

var _ fs.FS = (*osFS)(nil)

// osFS adapts the host filesystem to fs.FS for LoadPaths callers that
// want to point directly at disk paths without constructing their own
// fs.FS.
type osFS struct{ root string }

// OSRoot returns an fs.FS rooted at dir, for use with LoadPaths.
func OSRoot(dir string) fs.FS { return &osFS{root: dir} }

func (o *osFS) Open(name string) (fs.File, error) {
	return os.Open(strings.TrimSuffix(o.root, "/") + "/" + name)
}
