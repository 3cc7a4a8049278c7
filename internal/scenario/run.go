package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/grindlemire/go-inview"
	"github.com/grindlemire/go-inview/internal/logging"
)

// Transition is one notified change of the in-viewport state.
type Transition struct {
	At         time.Duration
	InViewport bool
}

// Result summarizes a replay.
type Result struct {
	Initial     bool
	Final       bool
	Transitions []Transition
	Signals     int
	Evaluations int
	Elapsed     time.Duration
}

// Options configures Run.
type Options struct {
	// Debounce overrides the scenario's debounce when positive.
	Debounce time.Duration
	// Observer receives the tracker's instrumentation callbacks.
	Observer inview.Observer
	// Logger receives one debug record per step. Defaults to a no-op logger.
	Logger *slog.Logger
}

// countingObserver tallies signals and evaluations, forwarding to next.
type countingObserver struct {
	next        inview.Observer
	signals     int
	evaluations int
}

func (o *countingObserver) SignalReceived() {
	o.signals++
	if o.next != nil {
		o.next.SignalReceived()
	}
}

func (o *countingObserver) DebounceCanceled() {
	if o.next != nil {
		o.next.DebounceCanceled()
	}
}

func (o *countingObserver) Evaluated(inViewport, notified bool) {
	o.evaluations++
	if o.next != nil {
		o.next.Evaluated(inViewport, notified)
	}
}

// Run replays sc on a fake clock. After the last step the clock advances
// by one debounce period so a trailing burst settles. The context is
// checked between steps.
func Run(ctx context.Context, sc *Scenario, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	debounce := sc.DebounceOrDefault()
	if opts.Debounce > 0 {
		debounce = opts.Debounce
	}

	clock := inview.NewFakeClock()
	obs := &countingObserver{next: opts.Observer}
	tr, err := inview.NewTracker(
		inview.WithClock(clock),
		inview.WithDebounce(debounce),
		inview.WithObserver(obs),
		inview.WithNotifyInitial(sc.NotifyInitial),
	)
	if err != nil {
		return nil, fmt.Errorf("create tracker: %w", err)
	}

	res := &Result{}
	tr.OnChange(func(v bool) {
		res.Transitions = append(res.Transitions, Transition{At: clock.Now(), InViewport: v})
		logger.Debug("transition", "at", clock.Now(), "inViewport", v)
	})

	el := inview.NewStaticElement(sc.Element.Rect())
	win := inview.NewSimWindow(sc.Viewport.Metrics())
	tr.Initialize(el, win)
	defer tr.Teardown()

	res.Initial = tr.InViewport()
	logger.Debug("initialized", "metrics", win.Metrics().String(), "inViewport", res.Initial)

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		clock.AdvanceTo(step.At.Std())
		logger.Debug("step", "index", i, "at", step.At.Std(), "action", step.Action())

		switch {
		case step.Scroll != nil:
			win.ScrollTo(step.Scroll.X, step.Scroll.Y)
		case step.Resize != nil:
			win.Resize(step.Resize.Width, step.Resize.Height)
		case step.Move != nil:
			el.SetRect(step.Move.Rect())
			tr.Refresh()
		case step.Teardown:
			tr.Teardown()
		}
	}

	if !tr.TornDown() {
		clock.Advance(debounce)
	}

	res.Final = tr.InViewport()
	res.Signals = obs.signals
	res.Evaluations = obs.evaluations
	res.Elapsed = clock.Now()
	return res, nil
}
