package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/hedgegraph/builder"
	"github.com/katalvlaran/hedgegraph/core"
	"github.com/katalvlaran/hedgegraph/export"
	"github.com/katalvlaran/hedgegraph/meshdsl"
	"github.com/katalvlaran/hedgegraph/verify"
)

// ErrInvariants is returned when the checker finds violations.
var ErrInvariants = errors.New("hedgegraph: graph failed the invariant check")

// invariantError keeps both ErrInvariants and the checker's own error
// reachable through errors.Is.
type invariantError struct{ err error }

func (e invariantError) Error() string   { return ErrInvariants.Error() + ": " + e.err.Error() }
func (e invariantError) Unwrap() []error { return []error{ErrInvariants, e.err} }

func invariantFailure(err error) error { return invariantError{err: err} }

// labelled is what both mesh and solid inputs produce.
type labelled interface {
	export.Source
	VertexData(core.VertexHandle) (string, bool)
	Stats() *core.GraphStats
}

// run executes one load → check → export pass and writes the document to out
// (or to cfg.Output.Path when set).
func run(cfg Config, out io.Writer) (export.Summary, error) {
	if err := cfg.validate(); err != nil {
		return export.Summary{}, err
	}

	g, err := load(cfg)
	if err != nil {
		return export.Summary{}, err
	}
	st := g.Stats()
	klog.Infof("loaded V=%d E=%d F=%d chi=%d", st.VertexCount, st.EdgeCount, st.FaceCount, st.EulerCharacteristic())

	if cfg.Check.Enabled {
		rep := verify.Check(g)
		for _, v := range rep.Violations {
			klog.Errorf("invariant: %s", v)
		}
		if err := rep.Err(); err != nil {
			return export.Summary{}, invariantFailure(err)
		}
		klog.V(1).Infof("invariants hold over %d half-edges", rep.HalfEdges)
	}

	opts := []export.Option{export.WithVertexNames(g)}
	if cfg.Output.Compact {
		opts = append(opts, export.WithCompact())
	}
	doc, err := export.Dump(g, opts...)
	if err != nil {
		return export.Summary{}, errors.Wrap(err, "dump")
	}
	sum, err := export.Summarize(doc)
	if err != nil {
		return export.Summary{}, errors.Wrap(err, "summary")
	}
	if cfg.Output.Format == FormatElements {
		if doc, err = export.Elements(g, opts...); err != nil {
			return export.Summary{}, errors.Wrap(err, "elements")
		}
	}

	if err := write(cfg.Output.Path, out, doc); err != nil {
		return export.Summary{}, err
	}
	klog.Infof("wrote %s: %d vertices, %d half-edges (%d on the boundary), %d faces",
		cfg.Output.Format, sum.Vertices, sum.HalfEdges, sum.Boundary, sum.Faces)

	return sum, nil
}

// load builds the graph named by cfg.Input.
func load(cfg Config) (labelled, error) {
	gopts := cfg.graphOptions()
	if cfg.Input.Solid != "" {
		name, err := builder.ParsePlatonicName(cfg.Input.Solid)
		if err != nil {
			return nil, err
		}
		g, err := builder.BuildGraph(gopts, nil, builder.PlatonicSolid(name))
		if err != nil {
			return nil, errors.Wrapf(err, "building %s", name)
		}
		klog.V(1).Infof("built %s", name)

		return g, nil
	}

	src, err := os.ReadFile(cfg.Input.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading mesh %s", cfg.Input.Path)
	}
	g, m, err := meshdsl.BuildGraph(cfg.Input.Path, src, gopts...)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("parsed %s: %d vertices, %d edge and %d face statements",
		cfg.Input.Path, len(m.VertexNames()), len(m.Edges), len(m.Faces))

	return g, nil
}

func write(path string, out io.Writer, doc []byte) error {
	if path == "" {
		_, err := out.Write(doc)
		return errors.Wrap(err, "writing output")
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	return nil
}
