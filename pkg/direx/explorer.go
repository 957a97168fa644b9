package direx

import (
	"context"
	"os"
	"path"
	"strings"

	"github.com/datatug/direx/pkg/files"
	"github.com/datatug/direx/pkg/files/osfile"
	"github.com/datatug/direx/pkg/fsutils"
)

const defaultViewportHeight = 12

var osGetwd = os.Getwd

// Explorer owns the navigation state of one file-explorer widget: the
// current directory, its listing, the selection cursor and the scroll
// window. It is single threaded and cooperates with the host event loop:
// the host feeds it one Command at a time and asks for a render afterwards.
type Explorer struct {
	store    files.Store
	theme    Theme
	bindings Bindings

	cwd        string
	snap       *Snapshot
	selected   int
	scroll     int
	viewport   int
	showHidden bool
}

type explorerOptions struct {
	store      files.Store
	startDir   string
	theme      *Theme
	bindings   Bindings
	showHidden bool
	viewport   int
}

type Option func(*explorerOptions)

// WithStore replaces the local-filesystem store, e.g. with an HTTP or FTP
// backed one.
func WithStore(store files.Store) Option {
	return func(o *explorerOptions) { o.store = store }
}

// WithStartDir sets the starting directory; a leading ~ is expanded.
func WithStartDir(dir string) Option {
	return func(o *explorerOptions) { o.startDir = dir }
}

func WithTheme(theme Theme) Option {
	return func(o *explorerOptions) { o.theme = &theme }
}

func WithBindings(bindings Bindings) Option {
	return func(o *explorerOptions) { o.bindings = bindings }
}

func WithShowHidden(show bool) Option {
	return func(o *explorerOptions) { o.showHidden = show }
}

// WithViewportHeight sets the paging size used before the widget reports
// its real geometry.
func WithViewportHeight(height int) Option {
	return func(o *explorerOptions) { o.viewport = height }
}

// New creates an explorer and reads its starting directory. Defaults:
// local filesystem store, the process working directory, DefaultTheme and
// DefaultBindings, hidden files not shown.
func New(options ...Option) (*Explorer, error) {
	var o explorerOptions
	for _, option := range options {
		option(&o)
	}

	if o.store == nil {
		o.store = osfile.NewStore("/")
	}
	if o.bindings == nil {
		o.bindings = DefaultBindings()
	}
	if o.viewport <= 0 {
		o.viewport = defaultViewportHeight
	}

	startDir := o.startDir
	if startDir == "" {
		cwd, err := osGetwd()
		if err != nil {
			return nil, newError(ErrCodeInvalidStartDir, "", err)
		}
		startDir = cwd
	}
	startDir = cleanDir(fsutils.ExpandHome(startDir))

	e := &Explorer{
		store:      o.store,
		theme:      DefaultTheme(),
		bindings:   o.bindings,
		viewport:   o.viewport,
		showHidden: o.showHidden,
	}
	if o.theme != nil {
		e.theme = *o.theme
	}

	snap, err := e.readSnapshot(startDir)
	if err != nil {
		return nil, newError(ErrCodeInvalidStartDir, startDir, err)
	}
	e.cwd = startDir
	e.snap = snap
	return e, nil
}

// Handle applies one abstract command. Commands that trigger a directory
// read may fail; on failure the state is left untouched.
func (e *Explorer) Handle(cmd Command) error {
	switch cmd {
	case CommandMoveUp:
		e.MoveSelection(-1)
	case CommandMoveDown:
		e.MoveSelection(+1)
	case CommandSelectFirst:
		e.SelectFirst()
	case CommandSelectLast:
		e.SelectLast()
	case CommandPageUp:
		e.MoveSelection(-e.viewport)
	case CommandPageDown:
		e.MoveSelection(+e.viewport)
	case CommandLeave:
		return e.Leave()
	case CommandEnter:
		return e.Enter()
	case CommandToggleHidden:
		e.ToggleHidden()
	case CommandNone:
		// Unrecognized input, nothing to do.
	}
	return nil
}

// HandleKey resolves a normalized key through the binding table and
// applies the resulting command.
func (e *Explorer) HandleKey(key Key) error {
	return e.Handle(e.bindings.Command(key))
}

// MoveSelection moves the cursor by delta, clamped into the visible range.
// No-op on an empty listing.
func (e *Explorer) MoveSelection(delta int) {
	n := len(e.snap.visible)
	if n == 0 {
		e.selected, e.scroll = 0, 0
		return
	}
	e.selected = clamp(e.selected+delta, 0, n-1)
	e.ensureSelectionVisible()
}

func (e *Explorer) SelectFirst() {
	e.MoveSelection(-len(e.snap.visible))
}

func (e *Explorer) SelectLast() {
	e.MoveSelection(+len(e.snap.visible))
}

// Enter descends into the selected directory. Entering a file is a no-op:
// the host observes the selection and decides what to do with files.
func (e *Explorer) Enter() error {
	cur := e.Current()
	if cur == nil || !cur.IsDir() {
		return nil
	}
	snap, err := e.readSnapshot(cur.Path())
	if err != nil {
		return err
	}
	e.cwd = cur.Path()
	e.snap = snap
	e.selected = 0
	e.scroll = 0
	return nil
}

// Leave ascends to the parent directory and restores the selection to the
// directory just left. At the store root it is a no-op.
func (e *Explorer) Leave() error {
	parent := parentDir(e.cwd)
	if parent == e.cwd {
		return nil
	}
	snap, err := e.readSnapshot(parent)
	if err != nil {
		return err
	}
	left := e.cwd
	e.cwd = parent
	e.snap = snap
	e.selected = 0
	if idx := indexOfPath(snap.visible, left); idx >= 0 {
		e.selected = idx
	}
	e.scroll = 0
	e.ensureSelectionVisible()
	return nil
}

// ToggleHidden flips the hidden-files filter without re-reading the
// directory. The selection keeps pointing at the same logical entry when
// it is still visible, otherwise it clamps to the nearest valid index.
func (e *Explorer) ToggleHidden() {
	var before *File
	if cur := e.Current(); cur != nil {
		f := *cur
		before = &f
	}

	e.showHidden = !e.showHidden
	e.snap.filter(e.showHidden)

	n := len(e.snap.visible)
	if n == 0 {
		e.selected, e.scroll = 0, 0
		return
	}
	if before != nil {
		if idx := indexOfPath(e.snap.visible, before.Path()); idx >= 0 {
			e.selected = idx
			e.ensureSelectionVisible()
			return
		}
	}
	e.selected = clamp(e.selected, 0, n-1)
	e.ensureSelectionVisible()
}

// SetCwd navigates to an arbitrary directory, resetting selection and
// scroll. The state is unchanged when the directory can not be listed.
func (e *Explorer) SetCwd(dir string) error {
	dir = cleanDir(fsutils.ExpandHome(dir))
	snap, err := e.readSnapshot(dir)
	if err != nil {
		return err
	}
	e.cwd = dir
	e.snap = snap
	e.selected = 0
	e.scroll = 0
	return nil
}

// SetShowHidden forces the hidden filter to a value; see ToggleHidden.
func (e *Explorer) SetShowHidden(show bool) {
	if show != e.showHidden {
		e.ToggleHidden()
	}
}

// SetSelectedIndex moves the cursor to an index of the visible listing;
// out-of-range values are clamped.
func (e *Explorer) SetSelectedIndex(index int) {
	n := len(e.snap.visible)
	if n == 0 {
		e.selected, e.scroll = 0, 0
		return
	}
	e.selected = clamp(index, 0, n-1)
	e.ensureSelectionVisible()
}

func (e *Explorer) SetTheme(theme Theme) {
	e.theme = theme
}

// SetViewportHeight updates the paging size; the widget calls it with the
// real inner height on every draw so scrolling tracks actual geometry.
func (e *Explorer) SetViewportHeight(height int) {
	if height <= 0 || height == e.viewport {
		return
	}
	e.viewport = height
	e.ensureSelectionVisible()
}

// Cwd returns the current directory path.
func (e *Explorer) Cwd() string { return e.cwd }

// Files returns the visible entries of the current listing.
func (e *Explorer) Files() []File { return e.snap.visible }

// AllFiles returns every entry of the current listing, hidden included.
func (e *Explorer) AllFiles() []File { return e.snap.all }

// Current returns the selected entry, or nil for an empty listing.
func (e *Explorer) Current() *File {
	if len(e.snap.visible) == 0 {
		return nil
	}
	f := e.snap.visible[clamp(e.selected, 0, len(e.snap.visible)-1)]
	return &f
}

func (e *Explorer) SelectedIndex() int  { return e.selected }
func (e *Explorer) ScrollOffset() int   { return e.scroll }
func (e *Explorer) ShowHidden() bool    { return e.showHidden }
func (e *Explorer) Theme() Theme        { return e.theme }
func (e *Explorer) Bindings() Bindings  { return e.bindings }
func (e *Explorer) Store() files.Store  { return e.store }
func (e *Explorer) ViewportHeight() int { return e.viewport }

// StateView captures the current state for the style resolver and title
// generators.
func (e *Explorer) StateView() StateView {
	return StateView{
		Dir:        e.cwd,
		Files:      e.snap.visible,
		Selected:   e.selected,
		Scroll:     e.scroll,
		TotalCount: len(e.snap.all),
		ShowHidden: e.showHidden,
	}
}

func (e *Explorer) readSnapshot(dir string) (*Snapshot, error) {
	children, err := e.store.ReadDir(context.Background(), dir)
	if err != nil {
		return nil, newError(ErrCodeReadDir, dir, err)
	}
	return newSnapshot(dir, children, e.showHidden), nil
}

func (e *Explorer) ensureSelectionVisible() {
	h := e.viewport
	if h < 1 {
		h = 1
	}
	if e.selected < e.scroll {
		e.scroll = e.selected
	}
	if e.selected >= e.scroll+h {
		e.scroll = e.selected - h + 1
	}
	maxScroll := len(e.snap.visible) - h
	if maxScroll < 0 {
		maxScroll = 0
	}
	e.scroll = clamp(e.scroll, 0, maxScroll)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func cleanDir(dir string) string {
	if dir == "" {
		return dir
	}
	cleaned := path.Clean(dir)
	if cleaned != "/" {
		cleaned = strings.TrimSuffix(cleaned, "/")
	}
	return cleaned
}

func parentDir(dir string) string {
	if dir == "/" || dir == "" {
		return dir
	}
	return path.Dir(strings.TrimSuffix(dir, "/"))
}

func indexOfPath(visible []File, fullPath string) int {
	for i, f := range visible {
		if f.path == fullPath {
			return i
		}
	}
	return -1
}
