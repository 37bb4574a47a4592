// Package query drives a search surface: the query text, suggestions, the
// structured filters and the outcome of the last request.
//
// A Controller is safe for concurrent use. Requests run on their own
// goroutine; every request is numbered and only the newest may publish its
// outcome, so a slow early request never overwrites a faster later one.
package query

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mrisafe/internal/domain/entity"
	"mrisafe/internal/errors"
	"mrisafe/internal/search"
)

// DefaultTimeout bounds a single search or load.
const DefaultTimeout = 10 * time.Second

// Searcher runs a free-text search.
type Searcher interface {
	SearchDevices(ctx context.Context, query string) ([]*entity.Device, error)
}

// Loader fetches the full device snapshot for the listing surface.
type Loader interface {
	ListDevices(ctx context.Context, filters *entity.SearchFilters) ([]*entity.Device, error)
}

type operation int

const (
	opNone operation = iota
	opSearch
	opLoad
)

// Option configures a Controller.
type Option func(*Controller)

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger used for request outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLoader sets the snapshot source used by Load.
func WithLoader(loader Loader) Option {
	return func(c *Controller) {
		c.loader = loader
	}
}

// Controller is the query state machine behind one search surface.
type Controller struct {
	searcher Searcher
	loader   Loader
	timeout  time.Duration
	logger   *slog.Logger

	mu    sync.Mutex
	state State
	seq   Ticket
	// base is what structured filters are applied to: the listing snapshot
	// or the raw results of the last search.
	base      []*entity.Device
	loaded    bool
	lastOp    operation
	lastQuery string
	cancel    context.CancelFunc
	closed    bool

	updates  chan State
	wg       sync.WaitGroup
	life     context.Context
	shutdown context.CancelFunc
}

// New returns an idle controller for surface.
func New(surface Surface, searcher Searcher, opts ...Option) *Controller {
	life, shutdown := context.WithCancel(context.Background())
	c := &Controller{
		searcher: searcher,
		timeout:  DefaultTimeout,
		logger:   slog.Default(),
		state:    State{Surface: surface, Phase: PhaseIdle},
		updates:  make(chan State, 1),
		life:     life,
		shutdown: shutdown,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(slog.String("surface", surface.String()))

	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.clone()
}

// Updates delivers the latest state after every change. Intermediate states
// may be coalesced when the receiver is slow. The channel is closed by Close.
func (c *Controller) Updates() <-chan State {
	return c.updates
}

// SetQuery updates the edited text and its suggestions without searching.
// On the listing surface the displayed set follows the text immediately.
// Clearing the text elsewhere returns the controller to idle.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	if c.state.Surface != SurfaceListing && search.IsBlank(text) {
		c.clearLocked()
		c.state.Query = text
		c.publishLocked()

		return
	}

	c.state.Query = text
	c.state.Suggestions = nil
	if c.state.Surface != SurfaceListing {
		c.state.Suggestions = Suggest(text)
	}
	if c.state.Surface == SurfaceListing {
		c.rederiveLocked()
	}
	c.publishLocked()
}

// Submit searches for the current query. A blank query is a no-op and returns
// a zero ticket. On the listing surface the snapshot is filtered in place.
func (c *Controller) Submit(ctx context.Context) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0
	}

	if c.state.Surface == SurfaceListing {
		c.rederiveLocked()
		c.publishLocked()

		return 0
	}
	if search.IsBlank(c.state.Query) {
		return 0
	}

	return c.startSearchLocked(ctx, c.state.Query)
}

// Focus re-runs the search for text already in the box, reopening the panel.
func (c *Controller) Focus(ctx context.Context) Ticket {
	return c.Submit(ctx)
}

// SelectPopular searches for one of PopularTerms, or any shortcut term.
func (c *Controller) SelectPopular(ctx context.Context, term string) Ticket {
	return c.submitText(ctx, term)
}

// SelectSuggestion replaces the query with the suggestion and searches for it verbatim.
func (c *Controller) SelectSuggestion(ctx context.Context, suggestion string) Ticket {
	return c.submitText(ctx, suggestion)
}

func (c *Controller) submitText(ctx context.Context, text string) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0
	}

	c.state.Query = text
	c.state.Suggestions = nil
	if c.state.Surface == SurfaceListing {
		c.rederiveLocked()
		c.publishLocked()

		return 0
	}
	if search.IsBlank(text) {
		return 0
	}

	return c.startSearchLocked(ctx, text)
}

// Clear empties the query and discards results. Any in-flight search is
// cancelled and its outcome ignored. The listing snapshot survives.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.clearLocked()
	c.publishLocked()
}

func (c *Controller) clearLocked() {
	c.state.Query = ""
	c.state.Suggestions = nil
	if c.state.Surface == SurfaceListing {
		c.rederiveLocked()

		return
	}

	c.invalidateLocked()
	c.base = nil
	c.state.Phase = PhaseIdle
	c.state.SubmittedQuery = ""
	c.state.Loading = false
	c.state.Error = ""
	c.state.Results = nil
	c.state.Total = 0
	c.state.PanelOpen = false
	c.lastOp = opNone
}

// Reset returns the controller to its initial state, as when the surface is
// left. Filters and the listing snapshot are dropped too.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	c.invalidateLocked()
	c.base = nil
	c.loaded = false
	c.lastOp = opNone
	c.lastQuery = ""
	c.state = State{Surface: c.state.Surface, Phase: PhaseIdle, Ticket: c.seq}
	c.publishLocked()
}

// ClosePanel hides the inline result panel. An in-flight search keeps running
// and its outcome is stored, but nothing is visible until the panel reopens.
func (c *Controller) ClosePanel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.state.PanelOpen {
		return
	}

	c.state.PanelOpen = false
	c.state.Suggestions = nil
	c.publishLocked()
}

// Load fetches the device snapshot once. Later calls are no-ops until Reset;
// a failed load can be re-issued with Retry.
func (c *Controller) Load(ctx context.Context) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.loader == nil {
		return 0
	}
	if c.loaded || c.state.Phase == PhaseSearching {
		return 0
	}

	return c.startLoadLocked(ctx)
}

// Retry re-issues the operation that failed. It is a no-op unless errored.
func (c *Controller) Retry(ctx context.Context) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state.Phase != PhaseErrored {
		return 0
	}

	c.state.Phase = PhaseIdle
	c.state.Error = ""
	switch c.lastOp {
	case opSearch:
		return c.startSearchLocked(ctx, c.lastQuery)
	case opLoad:
		return c.startLoadLocked(ctx)
	default:
		c.publishLocked()

		return 0
	}
}

// SetCategory filters by category; nil removes the filter.
func (c *Controller) SetCategory(id *int64) {
	c.updateFilters(func(s *State) { s.CategoryID = clonePtr(id) })
}

// SetManufacturer filters by manufacturer; nil removes the filter.
func (c *Controller) SetManufacturer(id *int64) {
	c.updateFilters(func(s *State) { s.ManufacturerID = clonePtr(id) })
}

// SetSafetyStatus filters by classification; nil removes the filter.
func (c *Controller) SetSafetyStatus(status *entity.SafetyStatus) {
	c.updateFilters(func(s *State) { s.SafetyStatus = clonePtr(status) })
}

// ToggleSafetyStatus selects status, or clears the filter when status is
// already the active one.
func (c *Controller) ToggleSafetyStatus(status entity.SafetyStatus) {
	c.updateFilters(func(s *State) {
		if s.SafetyStatus != nil && *s.SafetyStatus == status {
			s.SafetyStatus = nil

			return
		}
		s.SafetyStatus = &status
	})
}

// ResetFilters removes every structured filter.
func (c *Controller) ResetFilters() {
	c.updateFilters(func(s *State) {
		s.CategoryID = nil
		s.ManufacturerID = nil
		s.SafetyStatus = nil
	})
}

func (c *Controller) updateFilters(mutate func(*State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	mutate(&c.state)
	c.rederiveLocked()
	c.publishLocked()
}

// Wait blocks until every request issued so far has finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Close cancels in-flight requests, waits for them and closes Updates.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()

		return
	}
	c.closed = true
	c.mu.Unlock()

	c.shutdown()
	c.wg.Wait()
	close(c.updates)
}

func (c *Controller) startSearchLocked(ctx context.Context, text string) Ticket {
	ticket := c.beginLocked(opSearch)
	c.lastQuery = text
	c.base = nil
	c.state.SubmittedQuery = text
	c.state.Suggestions = nil
	c.state.PanelOpen = true
	c.publishLocked()

	runCtx := c.requestContextLocked(ctx)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		devices, err := c.searcher.SearchDevices(runCtx, text)
		c.complete(ticket, opSearch, devices, err)
	}()

	return ticket
}

func (c *Controller) startLoadLocked(ctx context.Context) Ticket {
	ticket := c.beginLocked(opLoad)
	c.publishLocked()

	runCtx := c.requestContextLocked(ctx)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		devices, err := c.loader.ListDevices(runCtx, nil)
		c.complete(ticket, opLoad, devices, err)
	}()

	return ticket
}

func (c *Controller) beginLocked(op operation) Ticket {
	c.invalidateLocked()
	c.lastOp = op
	c.state.Ticket = c.seq
	c.state.Phase = PhaseSearching
	c.state.Loading = true
	c.state.Error = ""
	c.state.Results = nil
	c.state.Total = 0

	return c.seq
}

// invalidateLocked cancels the superseded request and makes its ticket stale.
func (c *Controller) invalidateLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.seq++
	c.state.Ticket = c.seq
}

func (c *Controller) requestContextLocked(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancel := context.WithTimeout(ctx, c.timeout)
	stop := context.AfterFunc(c.life, cancel)
	c.cancel = func() {
		stop()
		cancel()
	}

	return runCtx
}

func (c *Controller) complete(ticket Ticket, op operation, devices []*entity.Device, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	logger := c.logger.With(slog.Uint64("ticket", uint64(ticket)))
	if ticket != c.seq || c.closed {
		logger.Debug("Discarding stale query outcome", slog.Uint64("current", uint64(c.seq)))

		return
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	c.state.Loading = false
	if err != nil {
		c.state.Phase = PhaseErrored
		c.state.Results = nil
		c.state.Total = 0
		c.state.Error = SearchErrorMessage
		if op == opLoad {
			c.state.Error = LoadErrorMessage
		}
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("Query timed out", slog.Duration("timeout", c.timeout))
		} else {
			logger.Warn("Query failed", slog.Any("error", err))
		}
		c.publishLocked()

		return
	}

	if devices == nil {
		devices = make([]*entity.Device, 0)
	}
	c.base = devices
	if op == opLoad {
		c.loaded = true
	}
	c.state.Phase = PhaseResults
	c.rederiveLocked()
	logger.Debug("Query completed", slog.Int("results", len(c.state.Results)))
	c.publishLocked()
}

// rederiveLocked recomputes the displayed set from base without fetching.
func (c *Controller) rederiveLocked() {
	if c.state.Phase != PhaseResults {
		return
	}

	filters := c.state.Filters()
	if c.state.Surface == SurfaceListing {
		c.state.Results = search.Apply(c.base, filters)
	} else {
		c.state.Results = search.Filter(c.base, filters)
	}
	c.state.Total = len(c.base)
}

// publishLocked replaces any unread update with the current state.
func (c *Controller) publishLocked() {
	if c.closed {
		return
	}
	select {
	case <-c.updates:
	default:
	}
	c.updates <- c.state.clone()
}
