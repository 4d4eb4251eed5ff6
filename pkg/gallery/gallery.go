package gallery

import (
	"fmt"
	"slices"
	"strings"

	"github.com/drawnet/drawnet/pkg/connector"
	"github.com/drawnet/drawnet/pkg/layout"
	"github.com/drawnet/drawnet/pkg/render"
	"github.com/drawnet/drawnet/pkg/shape"
)

// Scene is a named, self-contained diagram.
type Scene struct {
	// Name identifies the scene in CLI arguments and URLs.
	Name string

	// Title is a one-line description for listings.
	Title string

	// Build assembles a fresh diagram and the options it renders best
	// with. Every call returns new shapes, so renders never share
	// latched layout state.
	Build func() (layout.Diagram, render.Options, error)
}

// scenes lists every scene in display order.
var scenes = []*Scene{
	sceneShapes,
	sceneConnectors,
	sceneBlocks,
	sceneConvnet,
	sceneDense,
	sceneImages,
	sceneResnet,
	sceneResiduals,
	sceneGenerator,
}

// All returns the catalog in display order.
func All() []*Scene {
	return slices.Clone(scenes)
}

// Names returns the scene names in display order.
func Names() []string {
	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a scene by name.
func Lookup(name string) (*Scene, error) {
	for _, s := range scenes {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
}

// seqScene threads construction errors through a sequential scene
// assembly so each step reads as one line. The first error wins; later
// steps become no-ops.
type seqScene struct {
	seq *layout.Sequence
	err error
}

func newSeqScene() *seqScene {
	return &seqScene{seq: layout.NewSequence()}
}

func (b *seqScene) shape(s shape.Shape, err error) {
	if b.err == nil {
		b.err = err
	}
	if b.err == nil {
		b.seq.AddShape(s)
	}
}

// conn records a construction error and passes the connector through,
// so multi-connector gaps can be built inline.
func (b *seqScene) conn(c connector.Connector, err error) connector.Connector {
	if b.err == nil {
		b.err = err
	}
	return c
}

func (b *seqScene) gap(cs ...connector.Connector) {
	if b.err == nil {
		b.seq.AddConnectors(cs...)
	}
}

func (b *seqScene) done(opts render.Options) (layout.Diagram, render.Options, error) {
	if b.err != nil {
		return nil, render.Options{}, b.err
	}
	return b.seq, opts, nil
}

// freeScene is the free-form counterpart of seqScene.
type freeScene struct {
	form *layout.Freeform
	err  error
}

func newFreeScene() *freeScene {
	return &freeScene{form: layout.NewFreeform()}
}

// shape records a construction error and passes the shape through, the
// counterpart of seqScene.conn for add calls built inline.
func (b *freeScene) shape(s shape.Shape, err error) shape.Shape {
	if b.err == nil {
		b.err = err
	}
	return s
}

func (b *freeScene) add(id string, s shape.Shape) {
	if b.err == nil {
		b.err = b.form.Add(id, s)
	}
}

func (b *freeScene) conn(c connector.Connector, err error) connector.Connector {
	if b.err == nil {
		b.err = err
	}
	return c
}

func (b *freeScene) link(from, to string, cs ...connector.Connector) {
	if b.err == nil {
		b.form.AddConnectors(from, to, cs...)
	}
}

func (b *freeScene) done(opts render.Options) (layout.Diagram, render.Options, error) {
	if b.err != nil {
		return nil, render.Options{}, b.err
	}
	return b.form, opts, nil
}
