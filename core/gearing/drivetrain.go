package gearing

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all drivetrain constructors; validator caches struct metadata.
var validate = validator.New()

// Params holds the user-facing description of a drivetrain. Lengths are in meters.
// Either WheelRadius or BeadSeatDiameter (plus TireWidth) must be set.
type Params struct {
	ID    string
	Label string

	Fronts    []int     `validate:"required,min=1,max=8,dive,gt=0"`
	Rears     []int     `validate:"required,min=1,max=16,dive,gt=0"`
	HubRatios []float64 `validate:"max=18,dive,gt=0"`

	WheelRadius      float64 `validate:"gte=0"`
	BeadSeatDiameter float64 `validate:"required_without=WheelRadius,gte=0"`
	TireWidth        float64 `validate:"gte=0"`
	CrankLength      float64 `validate:"required,gt=0"`
}

// WheelRadiusMeters returns the direct wheel radius, or derives it from bead-seat diameter and tire width.
func (p Params) WheelRadiusMeters() float64 {
	if p.WheelRadius > 0 {
		return p.WheelRadius
	}
	return p.BeadSeatDiameter/2 + p.TireWidth
}

// normalized returns a copy with sorted, deduplicated teeth and hub lists.
func (p Params) normalized() Params {
	p.Fronts = sortedUnique(p.Fronts)
	p.Rears = sortedUnique(p.Rears)
	p.HubRatios = sortedUnique(p.HubRatios)
	return p
}

// sortedUnique returns a sorted copy of values without duplicates.
func sortedUnique[T int | float64](values []T) []T {
	if len(values) == 0 {
		return nil
	}
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

// describeValidation flattens validator errors into a single readable message.
func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s must satisfy %s (got %v)", fe.Field(), rule, fe.Value()))
	}
	return strings.Join(parts, "; ")
}

// isUsableRatio reports whether a derived ratio is finite and positive.
func isUsableRatio(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// BuildGearMatrix computes every gear of the front x hub x rear cross-product.
// The outer index is the ascending chainring position, the middle index the ascending hub ratio
// position, and each inner sequence runs from the largest cog (easiest) to the smallest (hardest).
// Inputs are sorted and deduplicated before use; a nil hubRatios means a single ratio of 1.
func BuildGearMatrix(fronts, rears []int, hubRatios []float64, wheelRadius, crankLength float64) ([][][]Gear, error) {
	fronts = sortedUnique(fronts)
	rears = sortedUnique(rears)
	hubRatios = sortedUnique(hubRatios)
	if len(hubRatios) == 0 {
		hubRatios = []float64{1}
	}

	if err := validate.Var(fronts, "required,dive,gt=0"); err != nil {
		return nil, fmt.Errorf("%w: fronts %s", ErrInvalidDrivetrain, describeValidation(err))
	}
	if err := validate.Var(rears, "required,dive,gt=0"); err != nil {
		return nil, fmt.Errorf("%w: rears %s", ErrInvalidDrivetrain, describeValidation(err))
	}
	if err := validate.Var(hubRatios, "dive,gt=0"); err != nil {
		return nil, fmt.Errorf("%w: hub ratios %s", ErrInvalidDrivetrain, describeValidation(err))
	}
	if !isUsableRatio(wheelRadius) || !isUsableRatio(crankLength) {
		return nil, fmt.Errorf("%w: wheel radius %v and crank length %v must be positive", ErrInvalidDrivetrain, wheelRadius, crankLength)
	}

	matrix := make([][][]Gear, len(fronts))
	for fi, front := range fronts {
		matrix[fi] = make([][]Gear, len(hubRatios))
		for hi, hub := range hubRatios {
			row := make([]Gear, len(rears))
			for ri := range rears {
				g := NewGear(front, rears[len(rears)-1-ri], hub, wheelRadius, crankLength)
				g.FrontPos = fi
				g.HubRatioPos = hi
				g.RearPos = ri
				if !isUsableRatio(g.GainRatio) {
					return nil, fmt.Errorf("%w: %s", ErrNonFiniteRatio, g.Label())
				}
				row[ri] = g
			}
			matrix[fi][hi] = row
		}
	}
	return matrix, nil
}

// Option customizes path selection in NewDrivetrain.
type Option func(*selection)

// selection holds the path selection policy of a drivetrain.
type selection struct {
	objective  Objective
	threshold  float64
	exhaustive bool
	maxPaths   int
}

// WithObjective sets the objective minimized by path selection. Defaults to StepStdDev.
func WithObjective(objective Objective) Option {
	return func(s *selection) {
		if objective != nil {
			s.objective = objective
		}
	}
}

// WithThreshold sets the minimum relative step between consecutive path gears.
func WithThreshold(threshold float64) Option {
	return func(s *selection) {
		s.threshold = normalizeThreshold(threshold)
	}
}

// WithExhaustiveSearch selects FindBestShifts instead of the greedy ComputeBestPath.
func WithExhaustiveSearch(maxPaths int) Option {
	return func(s *selection) {
		s.exhaustive = true
		s.maxPaths = maxPaths
	}
}

// Drivetrain owns the full gear matrix of a bike and its best-path selection.
// It is immutable once built; a change of parameters means a new Drivetrain.
type Drivetrain struct {
	ID    string
	Label string

	Fronts    []int     // Ascending chainring teeth
	Rears     []int     // Ascending cog teeth
	HubRatios []float64 // Ascending hub ratios, [1] without a hub

	WheelRadius float64 // Meters
	CrankLength float64 // Meters

	// ByChainring is indexed [front][hub][rear], rear running easiest to hardest.
	ByChainring [][][]Gear

	bestPath []GearKey
}

// NewDrivetrain validates params, builds the gear matrix and tags the best path.
func NewDrivetrain(params Params, opts ...Option) (*Drivetrain, error) {
	sel := &selection{objective: StepStdDev, threshold: DefaultDistinctThreshold}
	for _, opt := range opts {
		opt(sel)
	}

	p := params.normalized()
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDrivetrain, describeValidation(err))
	}

	matrix, err := BuildGearMatrix(p.Fronts, p.Rears, p.HubRatios, p.WheelRadiusMeters(), p.CrankLength)
	if err != nil {
		return nil, err
	}

	hubs := p.HubRatios
	if len(hubs) == 0 {
		hubs = []float64{1}
	}
	d := &Drivetrain{
		ID:          p.ID,
		Label:       p.Label,
		Fronts:      p.Fronts,
		Rears:       p.Rears,
		HubRatios:   hubs,
		WheelRadius: p.WheelRadiusMeters(),
		CrankLength: p.CrankLength,
		ByChainring: matrix,
	}

	var path []Gear
	if sel.exhaustive {
		path, err = FindBestShifts(d.Groups(), sel.objective, sel.threshold, sel.maxPaths)
		if err != nil {
			return nil, err
		}
	} else {
		path = ComputeBestPath(d.Groups(), sel.objective, sel.threshold)
	}
	d.tagBestPath(path)
	return d, nil
}

// tagBestPath records the selected path and marks its gears in the matrix.
func (d *Drivetrain) tagBestPath(path []Gear) {
	d.bestPath = make([]GearKey, len(path))
	for i, g := range path {
		key := g.Key()
		d.bestPath[i] = key
		d.ByChainring[key.FrontPos][key.HubRatioPos][key.RearPos].InBestPath = true
	}
}

// Size returns the total number of gears in the matrix.
func (d *Drivetrain) Size() int {
	return len(d.Fronts) * len(d.Rears) * len(d.HubRatios)
}

// Title returns the label, falling back to the ID and then to the chainring/cassette summary.
func (d *Drivetrain) Title() string {
	switch {
	case d.Label != "":
		return d.Label
	case d.ID != "":
		return d.ID
	}
	return fmt.Sprintf("%s x %d-%d", joinInts(d.Fronts, "/"), d.Rears[0], d.Rears[len(d.Rears)-1])
}

// joinInts formats ints joined by sep.
func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}

// Gear looks up a gear by its key.
func (d *Drivetrain) Gear(key GearKey) (Gear, bool) {
	if key.FrontPos < 0 || key.FrontPos >= len(d.ByChainring) {
		return Gear{}, false
	}
	hubs := d.ByChainring[key.FrontPos]
	if key.HubRatioPos < 0 || key.HubRatioPos >= len(hubs) {
		return Gear{}, false
	}
	row := hubs[key.HubRatioPos]
	if key.RearPos < 0 || key.RearPos >= len(row) {
		return Gear{}, false
	}
	return row[key.RearPos], true
}

// Groups returns one gear sequence per chainring and hub ratio, in matrix order.
// These are the groups fed to path selection.
func (d *Drivetrain) Groups() [][]Gear {
	groups := make([][]Gear, 0, len(d.Fronts)*len(d.HubRatios))
	for _, hubs := range d.ByChainring {
		for _, row := range hubs {
			groups = append(groups, slices.Clone(row))
		}
	}
	return groups
}

// GearsGroupedByChainring returns every gear flattened in matrix order.
func (d *Drivetrain) GearsGroupedByChainring() []Gear {
	gears := make([]Gear, 0, d.Size())
	for _, group := range d.Groups() {
		gears = append(gears, group...)
	}
	return gears
}

// GearsSortedByGainRatio returns every gear ordered from easiest to hardest.
func (d *Drivetrain) GearsSortedByGainRatio() []Gear {
	gears := d.GearsGroupedByChainring()
	sort.SliceStable(gears, func(i, j int) bool {
		return gears[i].GainRatio < gears[j].GainRatio
	})
	return gears
}

// BestPath returns the selected gears from easiest to hardest.
func (d *Drivetrain) BestPath() []Gear {
	path := make([]Gear, 0, len(d.bestPath))
	for _, key := range d.bestPath {
		if g, ok := d.Gear(key); ok {
			path = append(path, g)
		}
	}
	return path
}

// Gears returns the best path when useBestPath is set, otherwise every gear sorted by gain ratio.
func (d *Drivetrain) Gears(useBestPath bool) []Gear {
	if useBestPath {
		return d.BestPath()
	}
	return d.GearsSortedByGainRatio()
}

// RemainingGears returns the gears left out of the best path, sorted by gain ratio.
func (d *Drivetrain) RemainingGears() []Gear {
	var remaining []Gear
	for _, g := range d.GearsSortedByGainRatio() {
		if !g.InBestPath {
			remaining = append(remaining, g)
		}
	}
	return remaining
}

// Easiest returns the gear with the lowest gain ratio.
func (d *Drivetrain) Easiest() Gear {
	return d.ByChainring[0][0][0]
}

// Hardest returns the gear with the highest gain ratio.
func (d *Drivetrain) Hardest() Gear {
	hubs := d.ByChainring[len(d.ByChainring)-1]
	row := hubs[len(hubs)-1]
	return row[len(row)-1]
}
