// Package materials defines the material record attached to mesh regions
// and edges: a display color plus validated physical properties. Derived
// constants are computed lazily and invalidated explicitly when one of
// their inputs changes.
package materials

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidColor indicates an RGBA component outside [0, 1].
	ErrInvalidColor = errors.New("materials: color components must be in [0, 1]")
	// ErrInvalidProperty indicates a physical property outside its valid range.
	ErrInvalidProperty = errors.New("materials: property out of range")
	// ErrPropertyUnset indicates a derived constant was read before its
	// inputs were assigned.
	ErrPropertyUnset = errors.New("materials: required property not set")
)

// Color is an RGBA display color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Valid reports whether every component is in [0, 1].
func (c Color) Valid() bool {
	for _, v := range [4]float64{c.R, c.G, c.B, c.A} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// Derived constants are cached behind a tri-state so repeated reads are
// cheap but a stale value is never returned after a setter runs.
type propState int

const (
	propUnset propState = iota
	propStale
	propComputed
)

// Material is an opaque tag carried by material regions and mesh edges. It
// never influences tessellation topology; the interface flag only affects
// how constraint edges using it are reported.
type Material struct {
	name  string
	color Color

	hydraulicConductivity float64
	porosity              float64
	specificStorage       float64
	hasConductivity       bool
	hasPorosity           bool
	hasStorage            bool

	isInterface    bool
	interfaceWidth float64

	diffusivity      float64
	diffusivityState propState
}

// Option configures a Material at construction time.
type Option func(*Material) error

// WithColor sets the display color.
func WithColor(c Color) Option {
	return func(m *Material) error { return m.SetColor(c) }
}

// WithHydraulicConductivity sets the saturated hydraulic conductivity,
// which must be positive.
func WithHydraulicConductivity(k float64) Option {
	return func(m *Material) error { return m.SetHydraulicConductivity(k) }
}

// WithPorosity sets the porosity, which must be in [0, 1].
func WithPorosity(n float64) Option {
	return func(m *Material) error { return m.SetPorosity(n) }
}

// WithSpecificStorage sets the specific storage, which must be positive.
func WithSpecificStorage(ss float64) Option {
	return func(m *Material) error { return m.SetSpecificStorage(ss) }
}

// WithInterface marks the material as modeling a thin interface band of the
// given width (zero width is allowed). Interface materials only change how
// constraint edges are reported and rendered, never the mesh topology.
func WithInterface(width float64) Option {
	return func(m *Material) error {
		if width < 0 {
			return errors.Wrapf(ErrInvalidProperty, "interface width %g < 0", width)
		}
		m.isInterface = true
		m.interfaceWidth = width
		return nil
	}
}

// New creates a named material. Without WithColor the material gets a
// random color at 0.3 alpha, matching how unstyled materials have always
// been rendered.
func New(name string, opts ...Option) (*Material, error) {
	m := &Material{
		name: name,
		color: Color{
			R: rand.Float64(),
			G: rand.Float64(),
			B: rand.Float64(),
			A: 0.3,
		},
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// MustNew is New for materials built from literals, e.g. in examples.
func MustNew(name string, opts ...Option) *Material {
	m, err := New(name, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Material) Name() string { return m.name }

func (m *Material) Color() Color { return m.color }

// SetColor replaces the display color.
func (m *Material) SetColor(c Color) error {
	if !c.Valid() {
		return errors.Wrapf(ErrInvalidColor, "%+v", c)
	}
	m.color = c
	return nil
}

// HydraulicConductivity returns the saturated hydraulic conductivity.
func (m *Material) HydraulicConductivity() (float64, error) {
	if !m.hasConductivity {
		return 0, errors.Wrap(ErrPropertyUnset, "hydraulic conductivity")
	}
	return m.hydraulicConductivity, nil
}

func (m *Material) SetHydraulicConductivity(k float64) error {
	if k <= 0 {
		return errors.Wrapf(ErrInvalidProperty, "hydraulic conductivity %g <= 0", k)
	}
	m.hydraulicConductivity = k
	m.hasConductivity = true
	m.invalidateDerived()
	return nil
}

// Porosity returns the porosity.
func (m *Material) Porosity() (float64, error) {
	if !m.hasPorosity {
		return 0, errors.Wrap(ErrPropertyUnset, "porosity")
	}
	return m.porosity, nil
}

func (m *Material) SetPorosity(n float64) error {
	if n < 0 || n > 1 {
		return errors.Wrapf(ErrInvalidProperty, "porosity %g not in [0, 1]", n)
	}
	m.porosity = n
	m.hasPorosity = true
	return nil
}

// SpecificStorage returns the specific storage.
func (m *Material) SpecificStorage() (float64, error) {
	if !m.hasStorage {
		return 0, errors.Wrap(ErrPropertyUnset, "specific storage")
	}
	return m.specificStorage, nil
}

func (m *Material) SetSpecificStorage(ss float64) error {
	if ss <= 0 {
		return errors.Wrapf(ErrInvalidProperty, "specific storage %g <= 0", ss)
	}
	m.specificStorage = ss
	m.hasStorage = true
	m.invalidateDerived()
	return nil
}

// HydraulicDiffusivity returns K/Ss. The value is computed on first read
// and cached until a setter invalidates it.
func (m *Material) HydraulicDiffusivity() (float64, error) {
	if m.diffusivityState == propComputed {
		return m.diffusivity, nil
	}
	if !m.hasConductivity || !m.hasStorage {
		return 0, errors.Wrap(ErrPropertyUnset, "hydraulic diffusivity needs conductivity and specific storage")
	}
	m.diffusivity = m.hydraulicConductivity / m.specificStorage
	m.diffusivityState = propComputed
	return m.diffusivity, nil
}

func (m *Material) invalidateDerived() {
	if m.diffusivityState == propComputed {
		m.diffusivityState = propStale
	}
}

// IsInterface reports whether the material models a thin interface band.
func (m *Material) IsInterface() bool { return m.isInterface }

// InterfaceWidth returns the interface band width; zero for bulk materials.
func (m *Material) InterfaceWidth() float64 { return m.interfaceWidth }

func (m *Material) String() string {
	return fmt.Sprintf("Material(%s)", m.name)
}
