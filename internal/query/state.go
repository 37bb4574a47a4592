package query

import (
	"fmt"
	"slices"

	"mrisafe/internal/domain/entity"
)

// Surface identifies the kind of search surface a controller drives.
type Surface int

const (
	// SurfaceInline is the landing-page search box with a collapsible result panel.
	SurfaceInline Surface = iota
	// SurfaceListing is the device listing page: one snapshot, filtered locally.
	SurfaceListing
	// SurfaceResults is the dedicated search results page.
	SurfaceResults
)

func (s Surface) String() string {
	switch s {
	case SurfaceInline:
		return "inline"
	case SurfaceListing:
		return "listing"
	case SurfaceResults:
		return "results"
	default:
		return fmt.Sprintf("surface(%d)", int(s))
	}
}

// Phase is the state of the search state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSearching
	PhaseResults
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSearching:
		return "searching"
	case PhaseResults:
		return "results"
	case PhaseErrored:
		return "errored"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// User-facing failure messages.
const (
	SearchErrorMessage = "Failed to search devices. Please try again."
	LoadErrorMessage   = "Failed to load devices. Please try again later."
)

// Ticket numbers a request issued by a controller. Only the newest ticket may
// publish its outcome. Zero means no request was issued.
type Ticket uint64

// State is an immutable snapshot of a controller.
type State struct {
	Surface Surface
	Phase   Phase

	// Query is the text being edited; SubmittedQuery is the one last executed.
	Query          string
	SubmittedQuery string
	Suggestions    []string

	CategoryID     *int64
	ManufacturerID *int64
	SafetyStatus   *entity.SafetyStatus

	Loading bool
	Error   string

	// Results is the displayed set after structured filters.
	Results []*entity.Device
	// Total is the size of the set the filters were applied to.
	Total int

	// PanelOpen is only meaningful for SurfaceInline.
	PanelOpen bool

	Ticket Ticket
}

// Empty reports a completed request that matched nothing, as opposed to an error.
func (s State) Empty() bool {
	return s.Phase == PhaseResults && len(s.Results) == 0
}

// Visible returns the devices to render. A closed inline panel renders nothing
// even when a completed request stored results.
func (s State) Visible() []*entity.Device {
	if s.Surface == SurfaceInline && !s.PanelOpen {
		return nil
	}
	if s.Phase != PhaseResults {
		return nil
	}

	return s.Results
}

// Filters returns the active structured filters.
func (s State) Filters() entity.SearchFilters {
	filters := entity.SearchFilters{
		CategoryID:     s.CategoryID,
		ManufacturerID: s.ManufacturerID,
		SafetyStatus:   s.SafetyStatus,
	}
	if s.Surface == SurfaceListing && s.Query != "" {
		q := s.Query
		filters.Query = &q
	}

	return filters
}

// Summary is the one-line result count shown above the results.
func (s State) Summary() string {
	switch s.Phase {
	case PhaseSearching:
		return "Searching..."
	case PhaseErrored:
		return s.Error
	case PhaseResults:
	default:
		return ""
	}

	if s.Surface == SurfaceListing {
		return fmt.Sprintf("Showing %d of %d devices", len(s.Results), s.Total)
	}

	return ResultSummary(len(s.Results), s.SubmittedQuery)
}

// ResultSummary is the count line shown above search results.
func ResultSummary(count int, query string) string {
	if count == 0 {
		return `No results found for "` + query + `"`
	}
	noun := "results"
	if count == 1 {
		noun = "result"
	}

	return fmt.Sprintf(`Found %d %s for "%s"`, count, noun, query)
}

// EmptyMessage is shown in place of results when a search matched nothing.
func EmptyMessage(query string) string {
	return `No devices found matching "` + query + `". Try different keywords.`
}

func (s State) clone() State {
	out := s
	out.Suggestions = slices.Clone(s.Suggestions)
	out.Results = slices.Clone(s.Results)
	out.CategoryID = clonePtr(s.CategoryID)
	out.ManufacturerID = clonePtr(s.ManufacturerID)
	out.SafetyStatus = clonePtr(s.SafetyStatus)

	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
