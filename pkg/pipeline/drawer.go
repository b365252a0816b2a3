package pipeline

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	colors "gopkg.in/go-playground/colors.v1" //nolint

	"github.com/linepipe/linepipe/internal/topology"
)

// roleFill holds the vertex fill color per stage role.
var roleFill = map[stageRole][3]uint8{
	roleSource:    {183, 225, 205},
	roleTransform: {164, 194, 244},
	roleSink:      {244, 199, 195},
}

// drawer records the assembled stage/buffer topology in a directed graph
// and renders it as a DOT file. It observes assembly only; nothing is
// measured at runtime.
type drawer struct {
	graph graph.Graph[string, string]
	store topology.Store[string, string]
}

func newDrawer() *drawer {
	store := topology.NewMemoryStore[string, string]()

	return &drawer{
		graph: graph.NewWithStore(graph.StringHash, store, graph.Directed()),
		store: store,
	}
}

func (d *drawer) addStage(name string, role stageRole) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}

	rgb := roleFill[role]
	fill, err := colors.RGB(rgb[0], rgb[1], rgb[2]) //nolint
	if err != nil {
		return errors.Wrapf(err, "unable to get colour for %s", role)
	}

	d.store.UpdateVertex(name, func(p *graph.VertexProperties) {
		p.Attributes["style"] = "filled"
		p.Attributes["fillcolor"] = fill.ToHEX().String()
		p.Attributes["xlabel"] = role.String()
	})

	return nil
}

func (d *drawer) addLink(parentName, childName string, capacity int) error {
	err := d.graph.AddEdge(parentName, childName,
		graph.EdgeAttribute("label", fmt.Sprintf("buffer cap %d", capacity)))
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

func (d *drawer) render(w io.Writer) error {
	return dot(d.graph, w)
}

// draw writes the pipeline topology to path as a DOT file.
func (p *Pipeline) draw(path string) error {
	drw := newDrawer()

	for _, st := range p.stages {
		if err := drw.addStage(st.name, st.role); err != nil {
			return err
		}
	}
	for i, buf := range p.buffers {
		err := drw.addLink(p.stages[i].name, p.stages[i+1].name, buf.Cap())
		if err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", path)
	}
	defer file.Close()

	return drw.render(file)
}

const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceWeight     int
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeWeight       int
	EdgeAttributes   map[string]string
}

func dot[K comparable, T any](g graph.Graph[K, T], w io.Writer) error {
	desc, err := generateDOT(g)
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(w, desc)
}

func generateDOT[K comparable, T any](g graph.Graph[K, T]) (description, error) {
	desc := description{
		GraphType:    "digraph",
		Attributes:   make(map[string]string),
		EdgeOperator: "->",
		Statements:   make([]statement, 0),
	}

	adjacencyMap, err := g.AdjacencyMap()
	if err != nil {
		return desc, err
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := g.VertexWithProperties(vertex)
		if err != nil {
			return desc, err
		}

		htmlAttributes := make(map[string]string)
		if xlabel, ok := sourceProperties.Attributes["xlabel"]; ok {
			htmlAttributes["label"] = fmt.Sprintf(`<%+v <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, xlabel)
			delete(sourceProperties.Attributes, "xlabel")
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceProperties.Attributes,
			HTMLAttributes:   htmlAttributes,
		})

		for adjacency, edge := range adjacencies {
			desc.Statements = append(desc.Statements, statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	return desc, nil
}

func renderDOT(w io.Writer, d description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	return tpl.Execute(w, d)
}
