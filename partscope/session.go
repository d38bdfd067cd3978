package partscope

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Transition names reported to a Recorder.
const (
	TransitionActivate = "activate"
	TransitionConfirm  = "confirm"
	TransitionReset    = "reset"
	TransitionSync     = "sync"
)

// Recorder observes session activity. Implementations must be cheap; they run inline.
type Recorder interface {
	ObserveFilter(total, matched int, duration time.Duration)
	ObserveTransition(transition string)
	ObserveSelection(size int)
}

// NopRecorder discards observations.
type NopRecorder struct{}

func (NopRecorder) ObserveFilter(int, int, time.Duration) {}
func (NopRecorder) ObserveTransition(string)              {}
func (NopRecorder) ObserveSelection(int)                  {}

// SessionOption configures a Session.
type SessionOption func(*Session)

func WithLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithRecorder(r Recorder) SessionOption {
	return func(s *Session) {
		if r != nil {
			s.recorder = r
		}
	}
}

func WithPlotConfig(p PlotConfig) SessionOption {
	return func(s *Session) {
		s.plot = p
	}
}

func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// Session holds one user's pending and committed criteria, selection and plot
// settings over a shared catalog. A Session has a single writer and does no locking.
type Session struct {
	id        string
	catalog   *Catalog
	pending   Criteria
	committed Criteria
	defaulted bool
	state     State
	selection *Selection
	plot      PlotConfig

	logger   *zap.Logger
	recorder Recorder
	now      func() time.Time
}

func NewSession(catalog *Catalog, opts ...SessionOption) *Session {
	s := &Session{
		id:        uuid.NewString(),
		catalog:   catalog,
		state:     StateUninitialized,
		selection: NewSelection(),
		plot:      DefaultPlotConfig(),
		logger:    zap.NewNop(),
		recorder:  NopRecorder{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("session", s.id))
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Catalog() *Catalog {
	return s.catalog
}

func (s *Session) State() State {
	return s.state
}

// Defaulted reports whether the one-shot default has been consumed.
func (s *Session) Defaulted() bool {
	return s.defaulted
}

// Pending returns a copy of the pending criteria.
func (s *Session) Pending() Criteria {
	return s.pending.Clone()
}

// Committed returns a copy of the committed criteria.
func (s *Session) Committed() Criteria {
	return s.committed.Clone()
}

// Activate runs the one-shot default: on the first call, when nothing is committed,
// pending accepts every option of every facet. Later calls do nothing. Reports
// whether the default was applied.
func (s *Session) Activate() bool {
	if s.defaulted {
		return false
	}
	s.defaulted = true
	s.recorder.ObserveTransition(TransitionActivate)
	if !s.committed.IsEmpty() {
		if s.state == StateUninitialized {
			s.state = StateCommitted
		}
		s.logger.Debug("activate skipped, criteria already committed",
			zap.Int("active", s.committed.ActiveCount()))
		return false
	}
	for _, d := range Dimensions() {
		s.pending.SetValues(d, s.catalog.FacetOptions(d))
	}
	s.state = StateDefaulted
	s.logger.Debug("activated with all options selected",
		zap.Int("active", s.pending.ActiveCount()))
	return true
}

func (s *Session) edited() {
	s.state = StateEditing
}

func (s *Session) SetPendingValues(d Dimension, values []string) {
	s.pending.SetValues(d, values)
	s.edited()
}

func (s *Session) TogglePendingOption(d Dimension, value string) {
	s.pending.Toggle(d, value)
	s.edited()
}

// TogglePendingAll clears d if every option is pending, otherwise selects all of them.
func (s *Session) TogglePendingAll(d Dimension) {
	s.pending.ToggleAll(d, s.catalog.FacetOptions(d))
	s.edited()
}

func (s *Session) SetPendingBound(d RangeDimension, side BoundSide, v *float64) {
	s.pending.SetBound(d, side, v)
	s.edited()
}

func (s *Session) SetPendingRange(d RangeDimension, r Range) {
	s.pending.SetRange(d, r)
	s.edited()
}

func (s *Session) SetPendingSearchTerm(term string) {
	s.pending.SetSearchTerm(term)
	s.edited()
}

// SetPendingCriteria replaces the pending criteria wholesale.
func (s *Session) SetPendingCriteria(c Criteria) {
	s.pending = c.Clone()
	s.edited()
}

// Confirm copies every pending field into committed in one step.
func (s *Session) Confirm() {
	s.committed = s.pending.Clone()
	s.state = StateCommitted
	s.recorder.ObserveTransition(TransitionConfirm)
	s.logger.Debug("criteria confirmed", zap.Int("active", s.committed.ActiveCount()))
}

// Reset empties committed and pending. The one-shot default stays consumed.
func (s *Session) Reset() {
	s.committed = Criteria{}
	s.pending = Criteria{}
	s.defaulted = true
	s.state = StateEditing
	s.recorder.ObserveTransition(TransitionReset)
	s.logger.Debug("criteria reset")
}

// SetCommitted replaces the committed criteria from outside the confirm flow.
// Pending is overwritten with a copy so both mirror each other.
func (s *Session) SetCommitted(c Criteria) {
	s.committed = c.Clone()
	s.pending = c.Clone()
	s.state = StateCommitted
	s.recorder.ObserveTransition(TransitionSync)
	s.logger.Debug("committed criteria synchronized", zap.Int("active", s.committed.ActiveCount()))
}

// FacetOptions returns the sorted options of d over the whole catalog.
func (s *Session) FacetOptions(d Dimension) []string {
	return s.catalog.FacetOptions(d)
}

// FilteredRecords applies the committed criteria to the catalog.
func (s *Session) FilteredRecords() []Record {
	start := s.now()
	out := s.catalog.Filter(s.committed)
	elapsed := s.now().Sub(start)
	s.recorder.ObserveFilter(s.catalog.Len(), len(out), elapsed)
	s.logger.Debug("filtered",
		zap.Int("total", s.catalog.Len()),
		zap.Int("matched", len(out)),
		zap.Duration("elapsed", elapsed))
	return out
}

// FacetCounts counts the values of d over the filtered records.
func (s *Session) FacetCounts(d Dimension, top int) []ValueCount {
	return FacetCounts(s.FilteredRecords(), d, top)
}

// Stats aggregates f over the filtered records.
func (s *Session) Stats(f NumericField) StatsResult {
	return Stats(s.FilteredRecords(), f)
}

func (s *Session) FacetSummary(d Dimension) FacetSummary {
	return FacetSummary{
		Dimension: d,
		Options:   len(s.catalog.FacetOptions(d)),
		Pending:   len(s.pending.Values(d)),
		Committed: len(s.committed.Values(d)),
	}
}

// ToggleSelection flips id in the selection and reports whether it is now selected.
func (s *Session) ToggleSelection(id RecordID) bool {
	selected := s.selection.Toggle(id)
	s.recorder.ObserveSelection(s.selection.Len())
	return selected
}

// SelectAll adds ids to the selection without removing any. Returns how many were added.
func (s *Session) SelectAll(ids []RecordID) int {
	added := s.selection.SelectAll(ids)
	s.recorder.ObserveSelection(s.selection.Len())
	return added
}

func (s *Session) ClearSelection() {
	s.selection.Clear()
	s.recorder.ObserveSelection(0)
}

func (s *Session) IsSelected(id RecordID) bool {
	return s.selection.Contains(id)
}

func (s *Session) SelectedIDs() []RecordID {
	return s.selection.IDs()
}

// SelectedRecords resolves the selection against the catalog, in catalog order.
// Records hidden by the current filter are included; unknown ids are ignored.
func (s *Session) SelectedRecords() []Record {
	out := make([]Record, 0, s.selection.Len())
	for i := range s.catalog.records {
		if s.selection.Contains(s.catalog.records[i].ID) {
			out = append(out, s.catalog.records[i].clone())
		}
	}
	return out
}

func (s *Session) PlotConfig() PlotConfig {
	return s.plot
}

// SetAxes stores the plot axis field names as given.
func (s *Session) SetAxes(x, y string) {
	s.plot.XField = x
	s.plot.YField = y
}

func (s *Session) SetScale(scale Scale) {
	s.plot.Scale = scale
}

func (s *Session) SetZoomMode(mode ZoomMode) {
	s.plot.ZoomMode = mode
}
