package services

import (
	"context"
	"errors"
	"log"
	"time"

	"city-explorer/internal/domain"
	"city-explorer/internal/platform/loop"
	"city-explorer/internal/platform/obs"
	"city-explorer/internal/ports"
)

// Phase of a query cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Outcome describes the most recently settled query cycle.
type Outcome struct {
	Seq   uint64
	Query domain.LocationQuery
	Phase Phase
	Err   error
}

type cycle struct {
	seq    uint64
	reqID  string
	ctx    context.Context
	query  domain.LocationQuery
	filter domain.CategoryFilter
	city   string
	phase  Phase
}

// QueryOrchestratorConfig holds the collaborators of a QueryOrchestrator.
type QueryOrchestratorConfig struct {
	Weather ports.WeatherProvider
	Recs    ports.RecommendationProvider
	View    ports.View
	Map     *MapSync
	Filters *CategoryFilterReader
	Loop    loop.Scheduler
	Timeout time.Duration
	// DiscardStale stops cycles superseded by a newer query from touching
	// render state. When false, the last cycle to resolve wins.
	DiscardStale bool
}

// QueryOrchestrator sequences the weather and recommendation fetches of each
// query and reconciles their results with the view and the map. All methods
// must be called on the event loop.
type QueryOrchestrator struct {
	weather      ports.WeatherProvider
	recs         ports.RecommendationProvider
	view         ports.View
	mapSync      *MapSync
	filters      *CategoryFilterReader
	loop         loop.Scheduler
	timeout      time.Duration
	discardStale bool

	issued   uint64
	inFlight int
	last     Outcome
}

func NewQueryOrchestrator(cfg QueryOrchestratorConfig) (*QueryOrchestrator, error) {
	switch {
	case cfg.Weather == nil:
		return nil, errors.New("new query orchestrator: weather provider is nil")
	case cfg.Recs == nil:
		return nil, errors.New("new query orchestrator: recommendation provider is nil")
	case cfg.View == nil:
		return nil, errors.New("new query orchestrator: view is nil")
	case cfg.Map == nil:
		return nil, errors.New("new query orchestrator: map sync is nil")
	case cfg.Filters == nil:
		return nil, errors.New("new query orchestrator: filter reader is nil")
	case cfg.Loop == nil:
		return nil, errors.New("new query orchestrator: loop is nil")
	}

	return &QueryOrchestrator{
		weather:      cfg.Weather,
		recs:         cfg.Recs,
		view:         cfg.View,
		mapSync:      cfg.Map,
		filters:      cfg.Filters,
		loop:         cfg.Loop,
		timeout:      cfg.Timeout,
		discardStale: cfg.DiscardStale,
	}, nil
}

// Search starts a query cycle for a city name.
func (o *QueryOrchestrator) Search(city string) error {
	return o.Start(domain.CityQuery(city))
}

// SearchAt starts a query cycle for a coordinate pair.
func (o *QueryOrchestrator) SearchAt(c domain.Coordinates) error {
	return o.Start(domain.CoordinateQuery(c))
}

// HandleMapClick marks the clicked point for a few seconds and queries it.
func (o *QueryOrchestrator) HandleMapClick(c domain.Coordinates) error {
	q := domain.CoordinateQuery(c)
	if err := q.Validate(); err != nil {
		o.reject(err)
		return err
	}
	o.mapSync.PlaceTransientMarker(c, clickLabel(c), TransientMarkerTTL)
	return o.Start(q)
}

// HandleResize re-lays out the map after a window resize.
func (o *QueryOrchestrator) HandleResize() {
	o.mapSync.ScheduleRelayout(RelayoutDelay)
}

// Phase reports Loading while any cycle is in flight, else Idle.
func (o *QueryOrchestrator) Phase() Phase {
	if o.inFlight > 0 {
		return PhaseLoading
	}
	return PhaseIdle
}

// InFlight reports how many cycles have not settled yet.
func (o *QueryOrchestrator) InFlight() int { return o.inFlight }

// LastOutcome returns the most recently settled cycle.
func (o *QueryOrchestrator) LastOutcome() Outcome { return o.last }

// Start validates q and the current category filter, then enters Loading.
// Validation failures are shown to the user and returned; no request is made.
func (o *QueryOrchestrator) Start(q domain.LocationQuery) error {
	if err := q.Validate(); err != nil {
		o.reject(err)
		return err
	}

	filter, err := o.filters.Read()
	if err != nil {
		o.reject(err)
		return err
	}

	o.issued++
	ctx, reqID := obs.WithRequestID(context.Background())
	c := &cycle{
		seq:    o.issued,
		reqID:  reqID,
		ctx:    ctx,
		query:  q,
		filter: filter,
		city:   q.City,
		phase:  PhaseLoading,
	}
	o.inFlight++

	log.Printf("req_id=%s seq=%d query=%q categories=%s phase=%s", c.reqID, c.seq, q.String(), filter.Joined(), c.phase)

	o.view.SetLoading(true)
	o.view.ClearCards()

	o.loop.Go(func() func() {
		w, err := o.fetchWeather(c)
		return func() { o.onWeather(c, w, err) }
	})

	return nil
}

func (o *QueryOrchestrator) reject(err error) {
	var ve *domain.ValidationError
	msg := err.Error()
	if errors.As(err, &ve) {
		msg = ve.Message
	}
	log.Printf("query rejected: %v", err)
	o.view.ShowValidation(msg)
}

func (o *QueryOrchestrator) requestContext(c *cycle) (context.Context, context.CancelFunc) {
	if o.timeout > 0 {
		return context.WithTimeout(c.ctx, o.timeout)
	}
	return context.WithCancel(c.ctx)
}

func (o *QueryOrchestrator) fetchWeather(c *cycle) (domain.WeatherRecord, error) {
	ctx, cancel := o.requestContext(c)
	defer cancel()

	if c.query.IsCoordinate() {
		return o.weather.WeatherByCoordinates(ctx, *c.query.Coords)
	}
	return o.weather.WeatherByCity(ctx, c.query.City)
}

func (o *QueryOrchestrator) fetchRecommendations(c *cycle) ([]domain.RecommendationRecord, error) {
	ctx, cancel := o.requestContext(c)
	defer cancel()

	if c.query.IsCoordinate() {
		return o.recs.RecommendationsByCoordinates(ctx, *c.query.Coords, c.filter)
	}
	return o.recs.Recommendations(ctx, c.query.City, c.filter)
}

// superseded reports whether a newer cycle owns render state.
func (o *QueryOrchestrator) superseded(c *cycle) bool {
	return o.discardStale && c.seq < o.issued
}

func (o *QueryOrchestrator) onWeather(c *cycle, w domain.WeatherRecord, err error) {
	if err != nil {
		o.fail(c, err)
		return
	}

	panel := BuildWeatherPanel(c.query, w)
	if c.query.IsCoordinate() {
		c.city = panel.City
	}

	if !o.superseded(c) {
		o.view.RenderWeather(panel)
		if w.Coords != nil {
			o.mapSync.CenterOn(*w.Coords)
		}
	}

	o.loop.Go(func() func() {
		recs, err := o.fetchRecommendations(c)
		return func() { o.onRecommendations(c, recs, err) }
	})
}

func (o *QueryOrchestrator) onRecommendations(c *cycle, recs []domain.RecommendationRecord, err error) {
	if err != nil {
		o.fail(c, err)
		return
	}

	c.phase = PhaseSuccess
	defer o.settle(c, nil)

	if o.superseded(c) {
		log.Printf("req_id=%s seq=%d discarded: superseded by seq=%d", c.reqID, c.seq, o.issued)
		return
	}

	o.view.RenderCards(BuildCards(recs))
	placed := o.mapSync.ReplaceMarkers(recs)
	o.mapSync.CenterOnFirstGeolocated(recs)

	log.Printf("req_id=%s seq=%d city=%q results=%d markers=%d", c.reqID, c.seq, c.city, len(recs), placed)
}

// fail replaces the card list with the failure reason. Markers and the
// weather panel are left as they are.
func (o *QueryOrchestrator) fail(c *cycle, err error) {
	c.phase = PhaseFailed
	defer o.settle(c, err)

	log.Printf("req_id=%s seq=%d query=%q failed: %v", c.reqID, c.seq, c.query.String(), err)

	if o.superseded(c) {
		return
	}
	o.view.RenderCardError("Could not fetch data: " + err.Error())
}

// settle schedules a relayout and releases the loading indicator; it runs
// for every cycle regardless of outcome. A superseded cycle leaves the
// indicator to the newest one unless nothing else is in flight.
func (o *QueryOrchestrator) settle(c *cycle, err error) {
	o.inFlight--
	if !o.superseded(c) || o.inFlight == 0 {
		o.view.SetLoading(false)
	}
	o.mapSync.ScheduleRelayout(RelayoutDelay)

	o.last = Outcome{Seq: c.seq, Query: c.query, Phase: c.phase, Err: err}
	log.Printf("req_id=%s seq=%d phase=%s", c.reqID, c.seq, c.phase)
}
