// Package home is the welcome page: a static heading over one paragraph
// filled from the API server's hello endpoint.
//
// The page is a Bubble Tea model. Init mounts it and issues the single fetch,
// the fetch result arrives in Update as a message, and View renders. Each
// page owns a mount scope; results that arrive after Unmount, or that belong
// to a different mount, are dropped.
package home

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idilsaglam/finetune/internal/backend"
	"github.com/idilsaglam/finetune/internal/ui"
)

// Heading is the static page title.
const Heading = "Welcome to Fine-Tuning Chatbot!"

// Fetcher is the one call the page makes.
type Fetcher interface {
	Hello(ctx context.Context) (backend.Payload, error)
}

// mount is shared by every copy of a Page value.
type mount struct {
	id     string
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// fetchedMsg carries either a payload or an error back to Update.
type fetchedMsg struct {
	mountID string
	payload backend.Payload
	err     error
}

// Page implements tea.Model.
type Page struct {
	fetcher Fetcher
	logger  *zap.Logger
	theme   ui.Theme
	keys    keyMap
	help    help.Model
	parent  context.Context

	quitAfterFetch bool

	mount *mount

	display string // what the paragraph shows
	fetched bool
	status  int
	err     error
}

// Option configures a Page.
type Option func(*Page)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option { return func(p *Page) { p.logger = l } }

// WithTheme sets the render theme.
func WithTheme(t ui.Theme) Option { return func(p *Page) { p.theme = t } }

// WithContext sets the parent of the mount scope.
func WithContext(ctx context.Context) Option { return func(p *Page) { p.parent = ctx } }

// QuitAfterFetch makes the page quit the program once the fetch settles,
// whichever way it settles.
func QuitAfterFetch() Option { return func(p *Page) { p.quitAfterFetch = true } }

// New returns an unmounted page. The paragraph starts empty.
func New(f Fetcher, opts ...Option) Page {
	p := Page{
		fetcher: f,
		logger:  zap.NewNop(),
		theme:   ui.ThemeByName(""),
		keys:    defaultKeys(),
		help:    help.New(),
		parent:  context.Background(),
	}
	for _, opt := range opts {
		opt(&p)
	}
	ctx, cancel := context.WithCancel(p.parent)
	p.mount = &mount{id: uuid.NewString(), ctx: ctx, cancel: cancel}
	p.logger = p.logger.With(zap.String("mount", p.mount.id))
	return p
}

// Init mounts the page. Only the first call returns a command.
func (p Page) Init() tea.Cmd {
	var cmd tea.Cmd
	p.mount.once.Do(func() { cmd = p.fetch() })
	return cmd
}

func (p Page) fetch() tea.Cmd {
	f, m, log := p.fetcher, p.mount, p.logger
	log.Debug("fetch started")
	return func() tea.Msg {
		payload, err := f.Hello(m.ctx)
		return fetchedMsg{mountID: m.id, payload: payload, err: err}
	}
}

// Update handles the fetch result and the quit keys. Nothing here fetches.
func (p Page) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchedMsg:
		return p.settle(msg)
	case tea.WindowSizeMsg:
		p.help.Width = msg.Width
	case tea.KeyMsg:
		if key.Matches(msg, p.keys.Quit) {
			p.Unmount()
			return p, tea.Quit
		}
	}
	return p, nil
}

func (p Page) settle(msg fetchedMsg) (tea.Model, tea.Cmd) {
	if msg.mountID != p.mount.id || !p.Mounted() {
		p.logger.Debug("dropping result for stale mount", zap.String("result_mount", msg.mountID))
		return p, nil
	}
	if p.fetched || p.err != nil {
		return p, nil
	}
	var next tea.Cmd
	if p.quitAfterFetch {
		next = tea.Quit
	}
	if msg.err != nil {
		p.err = msg.err
		p.status = msg.payload.Status
		p.logger.Warn("fetch failed", zap.Error(msg.err), zap.Int("status", msg.payload.Status))
		return p, next
	}
	p.fetched = true
	p.status = msg.payload.Status
	p.display = backend.Display(msg.payload.Value)
	if p.status < 200 || p.status > 299 {
		p.logger.Warn("displaying body of non-2xx response", zap.Int("status", p.status))
	} else {
		p.logger.Info("fetched", zap.Int("status", p.status), zap.ByteString("body", msg.payload.Raw))
	}
	return p, next
}

// Unmount cancels the mount scope. An in-flight request is aborted and its
// result is ignored. Safe to call more than once.
func (p Page) Unmount() { p.mount.cancel() }

// Mounted reports whether Unmount has not been called yet.
func (p Page) Mounted() bool { return p.mount.ctx.Err() == nil }

// Paragraph is the current display state.
func (p Page) Paragraph() string { return p.display }

// Fetched reports whether a response has been displayed.
func (p Page) Fetched() bool { return p.fetched }

// Status is the HTTP status of the settled fetch, or 0.
func (p Page) Status() int { return p.status }

// Err is the fetch error, if the fetch failed. It is never rendered.
func (p Page) Err() error { return p.err }
