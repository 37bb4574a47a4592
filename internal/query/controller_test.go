package query

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"mrisafe/internal/domain/entity"
	"mrisafe/internal/errors"
	"mrisafe/internal/infra/dataservice/fixture"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type reply struct {
	devices []*entity.Device
	err     error
}

type pendingCall struct {
	query string
	reply chan reply
}

// scriptedSearcher blocks every search until the test answers it.
type scriptedSearcher struct {
	calls chan pendingCall
}

func newScriptedSearcher() *scriptedSearcher {
	return &scriptedSearcher{calls: make(chan pendingCall, 16)}
}

func (s *scriptedSearcher) SearchDevices(ctx context.Context, query string) ([]*entity.Device, error) {
	call := pendingCall{query: query, reply: make(chan reply, 1)}
	s.calls <- call
	select {
	case r := <-call.reply:
		return r.devices, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *scriptedSearcher) next(t *testing.T) pendingCall {
	t.Helper()
	select {
	case call := <-s.calls:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("expected a search call")

		return pendingCall{}
	}
}

type countingLoader struct {
	calls atomic.Int32
	fail  atomic.Bool
}

func (l *countingLoader) ListDevices(_ context.Context, _ *entity.SearchFilters) ([]*entity.Device, error) {
	l.calls.Add(1)
	if l.fail.Load() {
		return nil, errors.New("connection refused")
	}

	return fixture.Devices(), nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ids(devices []*entity.Device) []int64 {
	out := make([]int64, 0, len(devices))
	for _, d := range devices {
		out = append(out, d.ID)
	}

	return out
}

func devicesByID(idList ...int64) []*entity.Device {
	all := fixture.Devices()
	out := make([]*entity.Device, 0, len(idList))
	for _, id := range idList {
		for _, d := range all {
			if d.ID == id {
				out = append(out, d)
			}
		}
	}

	return out
}

func TestSuggest(t *testing.T) {
	assert.Nil(t, Suggest(""))
	assert.Nil(t, Suggest("a"))
	assert.Equal(t, []string{
		"Pace - Medtronic",
		"Pace - Boston Scientific",
		"Pace - Abbott",
		"Pace - Philips",
	}, Suggest("Pace"))
}

func TestSuggest_CountsCharactersNotBytes(t *testing.T) {
	assert.Nil(t, Suggest("é"))
	assert.Nil(t, Suggest("心"))
	assert.Equal(t, []string{
		"ép - Medtronic",
		"ép - Boston Scientific",
		"ép - Abbott",
		"ép - Philips",
	}, Suggest("ép"))
}

func TestController_SetQueryDoesNotSearch(t *testing.T) {
	searcher := newScriptedSearcher()
	c := New(SurfaceInline, searcher, WithLogger(quietLogger()))
	defer c.Close()

	c.SetQuery("pace")

	state := c.Snapshot()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Equal(t, "pace", state.Query)
	assert.Len(t, state.Suggestions, 4)
	assert.Empty(t, searcher.calls)
}

func TestController_BlankSubmitIsNoOp(t *testing.T) {
	searcher := newScriptedSearcher()
	c := New(SurfaceInline, searcher, WithLogger(quietLogger()))
	defer c.Close()

	c.SetQuery("   ")
	assert.Zero(t, c.Submit(context.Background()))
	assert.Zero(t, c.SelectPopular(context.Background(), ""))

	state := c.Snapshot()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Nil(t, state.Results)
	assert.Empty(t, searcher.calls)
}

func TestController_SubmitPublishesResults(t *testing.T) {
	repo := fixture.NewRepository(quietLogger(), fixture.WithSearchLatency(0))
	c := New(SurfaceInline, repo, WithLogger(quietLogger()))
	defer c.Close()

	c.SetQuery("pacemaker")
	ticket := c.Submit(context.Background())
	require.NotZero(t, ticket)
	c.Wait()

	state := c.Snapshot()
	assert.Equal(t, PhaseResults, state.Phase)
	assert.Equal(t, ticket, state.Ticket)
	assert.False(t, state.Loading)
	assert.True(t, state.PanelOpen)
	assert.Equal(t, "pacemaker", state.SubmittedQuery)
	assert.Equal(t, []int64{3}, ids(state.Visible()))
	assert.Equal(t, `Found 1 result for "pacemaker"`, state.Summary())
}

func TestController_EmptyResultIsNotAnError(t *testing.T) {
	repo := fixture.NewRepository(quietLogger(), fixture.WithSearchLatency(0))
	c := New(SurfaceInline, repo, WithLogger(quietLogger()))
	defer c.Close()

	c.SelectPopular(context.Background(), "zzzz")
	c.Wait()

	state := c.Snapshot()
	assert.True(t, state.Empty())
	assert.Empty(t, state.Error)
	assert.NotNil(t, state.Results)
	assert.Equal(t, `No results found for "zzzz"`, state.Summary())
}

func TestController_StaleOutcomeIsDiscarded(t *testing.T) {
	searcher := newScriptedSearcher()
	c := New(SurfaceResults, searcher, WithLogger(quietLogger()))
	defer c.Close()

	first := c.SelectPopular(context.Background(), "neuro")
	firstCall := searcher.next(t)
	second := c.SelectPopular(context.Background(), "pump")
	secondCall := searcher.next(t)
	require.Greater(t, second, first)

	secondCall.reply <- reply{devices: devicesByID(4)}
	firstCall.reply <- reply{devices: devicesByID(1, 2)}
	c.Wait()

	state := c.Snapshot()
	assert.Equal(t, second, state.Ticket)
	assert.Equal(t, "pump", state.SubmittedQuery)
	assert.Equal(t, []int64{4}, ids(state.Results))
}

func TestController_StaleOutcomeArrivingLastIsDiscarded(t *testing.T) {
	searcher := newScriptedSearcher()
	c := New(SurfaceResults, searcher, WithLogger(quietLogger()))
	defer c.Close()

	c.SelectPopular(context.Background(), "neuro")
	firstCall := searcher.next(t)
	c.SelectPopular(context.Background(), "pump")
	secondCall := searcher.next(t)

	// The superseded request is cancelled; whatever it returns is ignored.
	firstCall.reply <- reply{devices: devicesByID(1, 2)}
	secondCall.reply <- reply{devices: devicesByID(4)}
	c.Wait()

	assert.Equal(t, []int64{4}, ids(c.Snapshot().Results))
}

func TestController_TimeoutThenRetry(t *testing.T) {
	searcher := newScriptedSearcher()
	c := New(SurfaceInline, searcher, WithLogger(quietLogger()), WithTimeout(250*time.Millisecond))
	defer c.Close()

	c.SelectPopular(context.Background(), "Pacemaker")
	searcher.next(t)
	c.Wait()

	state := c.Snapshot()
	assert.Equal(t, PhaseErrored, state.Phase)
	assert.Equal(t, SearchErrorMessage, state.Error)
	assert.False(t, state.Loading)
	assert.Nil(t, state.Visible())

	retried := c.Retry(context.Background())
	require.NotZero(t, retried)
	call := searcher.next(t)
	assert.Equal(t, "Pacemaker", call.query)
	call.reply <- reply{devices: devicesByID(3)}
	c.Wait()

	state = c.Snapshot()
	assert.Equal(t, PhaseResults, state.Phase)
	assert.Empty(t, state.Error)
	assert.Equal(t, []int64{3}, ids(state.Results))
}

func TestController_RetryOnlyWhenErrored(t *testing.T) {
	c := New(SurfaceInline, newScriptedSearcher(), WithLogger(quietLogger()))
	defer c.Close()

	assert.Zero(t, c.Retry(context.Background()))
	assert.Equal(t, PhaseIdle, c.Snapshot().Phase)
}

func TestController_SearchFailure(t *testing.T) {
	searcher := newScriptedSearcher()
	c := New(SurfaceInline, searcher, WithLogger(quietLogger()))
	defer c.Close()

	c.SelectPopular(context.Background(), "pump")
	searcher.next(t).reply <- reply{err: errors.New("boom")}
	c.Wait()

	state := c.Snapshot()
	assert.Equal(t, PhaseErrored, state.Phase)
	assert.False(t, state.Empty())
	assert.Equal(t, SearchErrorMessage, state.Summary())
}

func TestController_ClosePanelKeepsOutcomeHidden(t *testing.T) {
	searcher := newScriptedSearcher()
	c := New(SurfaceInline, searcher, WithLogger(quietLogger()))
	defer c.Close()

	c.SelectPopular(context.Background(), "pump")
	call := searcher.next(t)
	c.ClosePanel()
	call.reply <- reply{devices: devicesByID(4)}
	c.Wait()

	state := c.Snapshot()
	assert.Equal(t, PhaseResults, state.Phase)
	assert.False(t, state.PanelOpen)
	assert.Equal(t, []int64{4}, ids(state.Results))
	assert.Nil(t, state.Visible())

	c.Focus(context.Background())
	searcher.next(t).reply <- reply{devices: devicesByID(4)}
	c.Wait()
	assert.Equal(t, []int64{4}, ids(c.Snapshot().Visible()))
}

func TestController_ClearDiscardsInFlight(t *testing.T) {
	searcher := newScriptedSearcher()
	c := New(SurfaceInline, searcher, WithLogger(quietLogger()))
	defer c.Close()

	c.SelectPopular(context.Background(), "pump")
	call := searcher.next(t)
	c.Clear()
	call.reply <- reply{devices: devicesByID(4)}
	c.Wait()

	state := c.Snapshot()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Empty(t, state.Query)
	assert.Nil(t, state.Results)
	assert.False(t, state.PanelOpen)
}

func TestController_ClearingTextReturnsToIdle(t *testing.T) {
	repo := fixture.NewRepository(quietLogger(), fixture.WithSearchLatency(0))
	c := New(SurfaceInline, repo, WithLogger(quietLogger()))
	defer c.Close()

	c.SelectPopular(context.Background(), "pump")
	c.Wait()
	require.Equal(t, PhaseResults, c.Snapshot().Phase)

	c.SetQuery("")
	state := c.Snapshot()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Nil(t, state.Results)
	assert.Nil(t, state.Suggestions)
}

func TestController_SelectSuggestionSearchesVerbatim(t *testing.T) {
	searcher := newScriptedSearcher()
	c := New(SurfaceInline, searcher, WithLogger(quietLogger()))
	defer c.Close()

	c.SetQuery("Pace")
	suggestion := c.Snapshot().Suggestions[0]
	c.SelectSuggestion(context.Background(), suggestion)

	call := searcher.next(t)
	assert.Equal(t, "Pace - Medtronic", call.query)
	call.reply <- reply{devices: []*entity.Device{}}
	c.Wait()

	state := c.Snapshot()
	assert.Equal(t, "Pace - Medtronic", state.Query)
	assert.Nil(t, state.Suggestions)
	assert.True(t, state.Empty())
}

func TestController_ResultsSurfaceFiltersWithoutRefetch(t *testing.T) {
	searcher := newScriptedSearcher()
	c := New(SurfaceResults, searcher, WithLogger(quietLogger()))
	defer c.Close()

	c.SelectPopular(context.Background(), "3t")
	searcher.next(t).reply <- reply{devices: devicesByID(1, 2)}
	c.Wait()

	manufacturer := int64(2)
	c.SetManufacturer(&manufacturer)
	assert.Equal(t, []int64{2}, ids(c.Snapshot().Results))

	c.ResetFilters()
	assert.Equal(t, []int64{1, 2}, ids(c.Snapshot().Results))
	assert.Empty(t, searcher.calls)
}

func TestController_ListingLoadsOnceAndFiltersLocally(t *testing.T) {
	loader := &countingLoader{}
	c := New(SurfaceListing, nil, WithLogger(quietLogger()), WithLoader(loader))
	defer c.Close()

	require.NotZero(t, c.Load(context.Background()))
	c.Wait()
	assert.Zero(t, c.Load(context.Background()))

	state := c.Snapshot()
	assert.Equal(t, PhaseResults, state.Phase)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(state.Results))
	assert.Equal(t, "Showing 5 of 5 devices", state.Summary())

	c.SetQuery("neuro")
	assert.Equal(t, []int64{1, 2}, ids(c.Snapshot().Results))

	c.ToggleSafetyStatus(entity.SafetyStatusConditional)
	assert.Equal(t, []int64{1, 2}, ids(c.Snapshot().Results))

	category := int64(2)
	c.SetQuery("")
	c.SetCategory(&category)
	assert.Equal(t, []int64{3}, ids(c.Snapshot().Results))

	c.SetCategory(nil)
	c.ToggleSafetyStatus(entity.SafetyStatusUnsafe)
	assert.Equal(t, []int64{4}, ids(c.Snapshot().Results))

	c.ToggleSafetyStatus(entity.SafetyStatusUnsafe)
	state = c.Snapshot()
	assert.Nil(t, state.SafetyStatus)
	assert.Len(t, state.Results, 5)

	safe := entity.SafetyStatusSafe
	c.SetSafetyStatus(&safe)
	state = c.Snapshot()
	assert.True(t, state.Empty())
	assert.Equal(t, "Showing 0 of 5 devices", state.Summary())

	assert.Equal(t, int32(1), loader.calls.Load())
}

func TestController_ListingLoadFailureThenRetry(t *testing.T) {
	loader := &countingLoader{}
	loader.fail.Store(true)
	c := New(SurfaceListing, nil, WithLogger(quietLogger()), WithLoader(loader))
	defer c.Close()

	c.Load(context.Background())
	c.Wait()

	state := c.Snapshot()
	assert.Equal(t, PhaseErrored, state.Phase)
	assert.Equal(t, LoadErrorMessage, state.Error)

	loader.fail.Store(false)
	c.Retry(context.Background())
	c.Wait()

	state = c.Snapshot()
	assert.Equal(t, PhaseResults, state.Phase)
	assert.Len(t, state.Results, 5)
	assert.Equal(t, int32(2), loader.calls.Load())
}

func TestController_ResetDropsEverything(t *testing.T) {
	loader := &countingLoader{}
	c := New(SurfaceListing, nil, WithLogger(quietLogger()), WithLoader(loader))
	defer c.Close()

	c.Load(context.Background())
	c.Wait()
	c.SetQuery("pump")
	c.ToggleSafetyStatus(entity.SafetyStatusUnsafe)

	c.Reset()
	state := c.Snapshot()
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Empty(t, state.Query)
	assert.Nil(t, state.SafetyStatus)
	assert.Nil(t, state.Results)

	c.Load(context.Background())
	c.Wait()
	assert.Equal(t, int32(2), loader.calls.Load())
}

func TestController_SnapshotIsACopy(t *testing.T) {
	c := New(SurfaceListing, nil, WithLogger(quietLogger()), WithLoader(&countingLoader{}))
	defer c.Close()

	c.Load(context.Background())
	c.Wait()
	status := entity.SafetyStatusConditional
	c.SetSafetyStatus(&status)

	state := c.Snapshot()
	state.Results[0] = nil
	*state.SafetyStatus = entity.SafetyStatusSafe

	fresh := c.Snapshot()
	assert.NotNil(t, fresh.Results[0])
	assert.Equal(t, entity.SafetyStatusConditional, *fresh.SafetyStatus)
}

func TestController_UpdatesCarryLatestStateAndCloseEndsThem(t *testing.T) {
	repo := fixture.NewRepository(quietLogger(), fixture.WithSearchLatency(0))
	c := New(SurfaceInline, repo, WithLogger(quietLogger()))

	c.SelectPopular(context.Background(), "Cochlear Implant")
	c.Wait()

	latest := <-c.Updates()
	assert.Equal(t, PhaseResults, latest.Phase)
	assert.Equal(t, []int64{5}, ids(latest.Results))

	c.Close()
	_, open := <-c.Updates()
	assert.False(t, open)

	// Operations after Close are ignored.
	assert.Zero(t, c.SelectPopular(context.Background(), "pump"))
	c.Close()
}

func TestController_CloseCancelsInFlight(t *testing.T) {
	searcher := newScriptedSearcher()
	c := New(SurfaceInline, searcher, WithLogger(quietLogger()))

	c.SelectPopular(context.Background(), "pump")
	searcher.next(t)

	done := make(chan struct{})
	go func() {
		c.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close did not cancel the in-flight search")
	}
}

func TestState_Summary(t *testing.T) {
	assert.Equal(t, "", State{Phase: PhaseIdle}.Summary())
	assert.Equal(t, "Searching...", State{Phase: PhaseSearching}.Summary())
	assert.Equal(t, `Found 2 results for "3t"`, State{
		Phase:          PhaseResults,
		SubmittedQuery: "3t",
		Results:        devicesByID(1, 2),
	}.Summary())
}
