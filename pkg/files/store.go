package files

import (
	"context"
	"net/url"
	"os"
)

// Store lists directories of some file hierarchy. The explorer never
// writes through a store: browsing is strictly read-only.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
}
