// Package files locates complaint export files on disk. When the operator
// does not name an input explicitly, discovery picks the newest export in
// the data directory.
package files
