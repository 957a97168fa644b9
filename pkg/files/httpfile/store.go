package httpfile

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/datatug/direx/pkg/files"
)

type StoreOption func(*Store)

func WithHttpClient(client *http.Client) StoreOption {
	return func(store *Store) {
		store.client = client
	}
}

var _ files.Store = (*Store)(nil)

// Store lists directories exposed as HTML index pages
// (e.g. nginx autoindex, Apache mod_autoindex).
type Store struct {
	root   url.URL
	client *http.Client
}

func NewStore(root url.URL, o ...StoreOption) *Store {
	store := &Store{
		root: root,
	}
	for _, opt := range o {
		opt(store)
	}
	return store
}

func (s Store) RootURL() url.URL {
	return s.root
}

func (s Store) RootTitle() string {
	root := s.root
	root.User = nil
	return root.String()
}

var hrefRegexp = regexp.MustCompile(`<a href="([^"]+)">`)

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	u := s.root
	u.Path = name
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	client := s.client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch directory listing: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var entries []os.DirEntry
	for _, match := range hrefRegexp.FindAllStringSubmatch(string(body), -1) {
		href := match[1]
		if href == "../" || href == "/" {
			continue
		}
		isDir := strings.HasSuffix(href, "/")
		entryName := strings.TrimPrefix(strings.TrimSuffix(href, "/"), "/")
		if entryName == "" || strings.Contains(entryName, "/") {
			// Absolute or nested links are not children of this directory.
			continue
		}
		entries = append(entries, files.NewDirEntry(entryName, isDir))
	}

	return entries, nil
}
