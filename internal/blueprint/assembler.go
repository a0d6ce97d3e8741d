package blueprint

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/soulatlas/blueprint/internal/bodygraph"
	"github.com/soulatlas/blueprint/internal/ephemeris"
	"github.com/soulatlas/blueprint/internal/gatewheel"
	"github.com/soulatlas/blueprint/internal/logging"
	"github.com/soulatlas/blueprint/internal/monitoring"
	"github.com/soulatlas/blueprint/internal/numerology"
	"github.com/soulatlas/blueprint/internal/shared/errs"
	"github.com/soulatlas/blueprint/internal/zodiac"
)

// Assembler orchestrates the full pipeline: ephemeris snapshots per epoch,
// gate resolution per body, center/channel definition, numerology, and
// archetype facets.
type Assembler struct {
	provider ephemeris.Provider
	policy   EpochPolicy
	method   numerology.LifePathMethod
	logger   *logging.Logger
	metrics  *monitoring.Metrics
	now      func() time.Time
	newID    func() string
}

// Option customizes an Assembler.
type Option func(*Assembler)

// WithEpochPolicy overrides the default single-epoch policy.
func WithEpochPolicy(p EpochPolicy) Option {
	return func(a *Assembler) { a.policy = p }
}

// WithLifePathMethod selects the life-path method recorded on blueprints.
func WithLifePathMethod(m numerology.LifePathMethod) Option {
	return func(a *Assembler) { a.method = m }
}

// WithLogger attaches a logger.
func WithLogger(l *logging.Logger) Option {
	return func(a *Assembler) { a.logger = l }
}

// WithMetrics attaches metrics collection.
func WithMetrics(m *monitoring.Metrics) Option {
	return func(a *Assembler) { a.metrics = m }
}

// WithClock fixes the computed-at clock. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// WithIDFunc fixes blueprint id generation. Used in tests.
func WithIDFunc(f func() string) Option {
	return func(a *Assembler) { a.newID = f }
}

// NewAssembler creates an assembler around an ephemeris provider.
func NewAssembler(provider ephemeris.Provider, opts ...Option) *Assembler {
	a := &Assembler{
		provider: provider,
		policy:   SingleEpoch{},
		method:   numerology.MethodComponent,
		logger:   logging.NewNop(),
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble computes one blueprint. Validation failures surface before any
// network call; an upstream failure on any epoch aborts the whole
// computation, so a partially-populated blueprint is never returned.
func (a *Assembler) Assemble(ctx context.Context, input BirthInput) (*Blueprint, error) {
	start := a.now()

	bp, err := a.assemble(ctx, input, start)
	if a.metrics != nil {
		status := "ok"
		if err != nil {
			status = errs.KindOf(err).String()
		}
		a.metrics.ObserveBlueprint(status, time.Since(start))
	}
	return bp, err
}

func (a *Assembler) assemble(ctx context.Context, input BirthInput, computedAt time.Time) (*Blueprint, error) {
	local, utc, err := input.Resolve()
	if err != nil {
		return nil, err
	}

	profile, err := numerology.Compute(local, input.FullName, a.method, computedAt)
	if err != nil {
		return nil, err
	}

	epochs := a.policy.Epochs(utc)
	if len(epochs) == 0 {
		return nil, errs.Invariant("epoch policy %q produced no epochs", a.policy.Name())
	}

	// Epoch snapshots have no ordering dependency; fetch them in parallel.
	snapshots := make([]*ephemeris.Snapshot, len(epochs))
	g, gctx := errgroup.WithContext(ctx)
	for i, epoch := range epochs {
		g.Go(func() error {
			snap, err := a.provider.Positions(gctx, epoch.Instant, input.Location)
			if err != nil {
				return fmt.Errorf("epoch %q: %w", epoch.Tag, err)
			}
			snapshots[i] = snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		activations []GateActivation
		faults      []Fault
		gates       []int
	)
	for i, epoch := range epochs {
		snap := snapshots[i]
		for _, body := range ephemeris.Bodies {
			reading, ok := snap.Reading(body)
			if !ok {
				faults = append(faults, Fault{
					Epoch:  epoch.Tag,
					Body:   body,
					Detail: "body unresolved in provider payload",
				})
				continue
			}

			res, rerr := gatewheel.Resolve(reading.Longitude)
			if rerr != nil {
				// Uniform-formula fallback: usable result, recorded fault.
				faults = append(faults, Fault{
					Epoch:  epoch.Tag,
					Body:   body,
					Detail: rerr.Error(),
				})
				if a.metrics != nil {
					a.metrics.GateFallbacks.Inc()
				}
				a.logger.Error("gate table fallback",
					zap.String("body", string(body)),
					zap.String("epoch", epoch.Tag),
					zap.Float64("longitude", reading.Longitude),
				)
			}
			activations = append(activations, GateActivation{
				Epoch:    epoch.Tag,
				Body:     body,
				Gate:     res.Gate,
				Line:     res.Line,
				GateName: res.GateName,
				Fallback: res.Fallback,
			})
			gates = append(gates, res.Gate)
		}
	}

	definition := bodygraph.Define(gates)
	channels := make([]ChannelState, 0, len(definition.ActiveChannels))
	for _, ch := range definition.ActiveChannels {
		channels = append(channels, ChannelState{Key: ch.Key(), Name: ch.Name})
	}

	bp := &Blueprint{
		Input:       input,
		Snapshots:   snapshots,
		Activations: activations,
		Centers:     definition.Centers,
		Channels:    channels,
		Numerology:  profile,
		Archetype:   a.archetype(snapshots[0], local),
		Metadata: Metadata{
			BlueprintID:     a.newID(),
			EngineVersion:   EngineVersion,
			LifePathMethod:  a.method,
			EpochPolicy:     a.policy.Name(),
			EphemerisSource: snapshots[0].Source,
			ComputedAt:      computedAt.UTC(),
			Faults:          faults,
		},
	}

	a.logger.Info("blueprint assembled",
		zap.String("blueprint_id", bp.Metadata.BlueprintID),
		zap.Int("activations", len(activations)),
		zap.Int("active_channels", len(channels)),
		zap.Int("faults", len(faults)),
	)
	return bp, nil
}

// archetype derives the western placements from the natal snapshot and the
// Chinese facet from the local birth year.
func (a *Assembler) archetype(natal *ephemeris.Snapshot, local time.Time) Archetype {
	arch := Archetype{Chinese: zodiac.ChineseForYear(local.Year())}
	if sun, ok := natal.Reading(ephemeris.BodySun); ok {
		p := zodiac.FromLongitude(sun.Longitude)
		arch.Sun = &p
	}
	if moon, ok := natal.Reading(ephemeris.BodyMoon); ok {
		p := zodiac.FromLongitude(moon.Longitude)
		arch.Moon = &p
	}
	return arch
}
