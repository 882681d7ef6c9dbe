package sandbox

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

const (
	// IndexFile is served for the root URL path
	IndexFile = "index.html"

	// CGIPrefix marks requests dispatched to the CGI executor
	CGIPrefix = "/cgi-bin/"
)

// Canonicalize returns the absolute, cleaned form of root with symlinks
// evaluated. A root that does not exist yet is returned in lexical form.
func Canonicalize(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize root %q: %w", root, err)
	}

	evaluated, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return abs, nil
		}
		return "", fmt.Errorf("failed to canonicalize root %q: %w", root, err)
	}
	return evaluated, nil
}

// StaticRelative maps a URL path to a document-root relative path.
// "/" maps to index.html; otherwise a single leading slash is stripped.
func StaticRelative(urlPath string) string {
	if urlPath == "/" {
		return IndexFile
	}
	return filepath.FromSlash(strings.TrimPrefix(urlPath, "/"))
}

// CGIRelative maps a /cgi-bin/ URL path to a CGI-root relative path.
func CGIRelative(urlPath string) string {
	return filepath.FromSlash(strings.TrimPrefix(urlPath, CGIPrefix))
}

// IsCGI reports whether urlPath addresses the CGI root
func IsCGI(urlPath string) bool {
	return strings.HasPrefix(urlPath, CGIPrefix)
}

// Resolve joins rel onto root and returns the canonical result. The result is
// strictly inside root; root itself and anything outside it yield a
// *ViolationError.
//
// The check runs twice: lexically on the joined path, then on the path with
// symlinks evaluated, so a link inside root cannot point out of it. A path
// that cannot be evaluated (usually because it does not exist) is returned
// in lexical form and fails later when opened.
func Resolve(root, rel string) (string, error) {
	candidate, err := filepath.Abs(filepath.Join(root, rel))
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", rel, err)
	}

	if !Contains(root, candidate) {
		return "", &ViolationError{Root: root, Requested: rel, Resolved: candidate}
	}

	evaluated, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		return candidate, nil
	}

	realRoot := root
	if r, err := filepath.EvalSymlinks(root); err == nil {
		realRoot = r
	}
	if !Contains(realRoot, evaluated) {
		return "", &ViolationError{Root: root, Requested: rel, Resolved: evaluated}
	}
	return evaluated, nil
}

// Contains reports whether path lies strictly below root. Both must be
// absolute and clean.
func Contains(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if rel == "." || filepath.IsAbs(rel) {
		return false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return true
}
