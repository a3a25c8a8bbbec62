package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/brachistochrone/descent"
	"gopkg.in/yaml.v3"
)

// Defaults of the interactive host.
const (
	DefaultExtent     = 10.0
	DefaultResolution = 50
)

// minSeparation is the smallest horizontal and vertical gap, in metres,
// between start and end that Warnings accepts silently.
const minSeparation = 2.0

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("config: invalid scenario")

// Position is a physical coordinate in metres, y pointing up.
type Position struct {
	X float64 `yaml:"x" validate:"gte=0"`
	Y float64 `yaml:"y" validate:"gte=0"`
}

// Scenario is one solve request in physical units.
type Scenario struct {
	Extent     float64  `yaml:"extent" validate:"finite,gt=0"`
	Resolution int      `yaml:"resolution" validate:"gte=10,lte=1000"`
	Start      Position `yaml:"start"`
	End        Position `yaml:"end"`
	// Horizon overrides the derived stage count when set; at most Resolution.
	Horizon *int    `yaml:"horizon,omitempty" validate:"omitempty,gte=0"`
	Workers int     `yaml:"workers,omitempty" validate:"gte=0"`
	Gravity float64 `yaml:"gravity,omitempty" validate:"finite,gte=0"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	if err := validate.RegisterValidation("finite", validateFinite); err != nil {
		panic(err)
	}
	validate.RegisterStructValidation(scenarioRules, Scenario{})
}

// validateFinite rejects NaN and ±Inf.
func validateFinite(fl validator.FieldLevel) bool {
	v := fl.Field().Float()

	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// scenarioRules checks the cross-field constraints: positions inside the
// square of side Extent and a horizon override no larger than Resolution.
func scenarioRules(sl validator.StructLevel) {
	s := sl.Current().Interface().(Scenario)
	if s.Horizon != nil && *s.Horizon > s.Resolution {
		sl.ReportError(*s.Horizon, "Horizon", "Horizon", "lte_resolution", fmt.Sprint(s.Resolution))
	}
	check := func(v float64, field string) {
		if v > s.Extent {
			sl.ReportError(v, field, field, "within_extent", fmt.Sprint(s.Extent))
		}
	}
	check(s.Start.X, "Start.X")
	check(s.Start.Y, "Start.Y")
	check(s.End.X, "End.X")
	check(s.End.Y, "End.Y")
}

// Default returns the host's initial scenario: a 10 m square at resolution
// 50, from the top-left corner to the bottom-right one.
func Default() Scenario {
	return Scenario{
		Extent:     DefaultExtent,
		Resolution: DefaultResolution,
		Start:      Position{X: 0, Y: DefaultExtent},
		End:        Position{X: DefaultExtent, Y: 0},
	}
}

// Load reads a YAML scenario from path. Missing fields keep their Default
// values. The result is validated.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML scenario over Default and validates it.
func Parse(data []byte) (Scenario, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

// Validate checks field ranges and that both positions lie inside the extent.
func (s Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Scale returns the physical length of one grid unit.
func (s Scenario) Scale() float64 {
	return s.Extent / float64(s.Resolution)
}

// Params converts the scenario to grid units. Positions must land on grid
// nodes; descent.ErrNotGridAligned is returned otherwise.
func (s Scenario) Params() (descent.Params, error) {
	if err := s.Validate(); err != nil {
		return descent.Params{}, err
	}
	scale := s.Scale()
	start, err := descent.ToGridUnits(s.Start.X, s.Start.Y, scale, s.Resolution)
	if err != nil {
		return descent.Params{}, fmt.Errorf("config: start: %w", err)
	}
	end, err := descent.ToGridUnits(s.End.X, s.End.Y, scale, s.Resolution)
	if err != nil {
		return descent.Params{}, fmt.Errorf("config: end: %w", err)
	}

	return descent.Params{N: s.Resolution, Scale: scale, Start: start, End: end}, nil
}

// Options returns the solver options the scenario asks for.
func (s Scenario) Options() []descent.Option {
	var opts []descent.Option
	if s.Horizon != nil {
		opts = append(opts, descent.WithHorizon(*s.Horizon))
	}
	if s.Workers > 0 {
		opts = append(opts, descent.WithWorkers(s.Workers))
	}
	if s.Gravity > 0 {
		opts = append(opts, descent.WithGravity(s.Gravity))
	}

	return opts
}

// Warnings lists layout problems that are legal but unlikely to be wanted:
// the end should lie right of and below the start by at least two metres.
// A start below the end leaves every cell unreachable.
func (s Scenario) Warnings() []string {
	var out []string
	if s.End.X < s.Start.X+minSeparation {
		out = append(out, fmt.Sprintf("end.x=%g is less than %g m right of start.x=%g", s.End.X, minSeparation, s.Start.X))
	}
	if s.Start.Y < s.End.Y+minSeparation {
		out = append(out, fmt.Sprintf("start.y=%g is less than %g m above end.y=%g", s.Start.Y, minSeparation, s.End.Y))
	}
	if s.Start.Y < s.End.Y {
		out = append(out, "start is below end: no path exists")
	}

	return out
}
