// Package sandbox confines request paths to a root directory.
//
// A request path is first turned into a root-relative path (StaticRelative or
// CGIRelative), then joined onto the root and cleaned by Resolve. Containment
// is checked per path segment rather than by string prefix, so a sibling such
// as /srv/www-evil is never mistaken for a child of /srv/www.
//
// Symlinks are evaluated before the containment check is repeated, so a link
// inside the root that points outside it is a violation. Roots are passed
// through Canonicalize once at startup.
package sandbox
