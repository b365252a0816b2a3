package topology_test

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linepipe/linepipe/internal/topology"
)

func TestStoreVertices(t *testing.T) {
	t.Parallel()

	store := topology.NewMemoryStore[string, string]()

	err := store.AddVertex("read-input", "read-input", graph.VertexProperties{
		Attributes: map[string]string{},
	})
	require.NoError(t, err)

	err = store.AddVertex("read-input", "read-input", graph.VertexProperties{})
	require.ErrorIs(t, err, graph.ErrVertexAlreadyExists)

	count, err := store.VertexCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, _, err = store.Vertex("missing")
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestStoreUpdateVertex(t *testing.T) {
	t.Parallel()

	store := topology.NewMemoryStore[string, string]()

	err := store.AddVertex("format-output", "format-output", graph.VertexProperties{
		Attributes: map[string]string{},
	})
	require.NoError(t, err)

	store.UpdateVertex("format-output", func(p *graph.VertexProperties) {
		p.Attributes["fillcolor"] = "#f4c7c3"
	})

	_, props, err := store.Vertex("format-output")
	require.NoError(t, err)
	assert.Equal(t, "#f4c7c3", props.Attributes["fillcolor"])

	// Unknown vertices are a no-op, not a panic.
	store.UpdateVertex("missing", func(p *graph.VertexProperties) {
		p.Weight = 1
	})
}

func TestStoreEdges(t *testing.T) {
	t.Parallel()

	store := topology.NewMemoryStore[string, string]()

	for _, name := range []string{"read-input", "strip-line-breaks"} {
		err := store.AddVertex(name, name, graph.VertexProperties{
			Attributes: map[string]string{},
		})
		require.NoError(t, err)
	}

	edge := graph.Edge[string]{Source: "read-input", Target: "strip-line-breaks"}
	require.NoError(t, store.AddEdge("read-input", "strip-line-breaks", edge))

	got, err := store.Edge("read-input", "strip-line-breaks")
	require.NoError(t, err)
	assert.Equal(t, edge, got)

	_, err = store.Edge("strip-line-breaks", "read-input")
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)

	edges, err := store.ListEdges()
	require.NoError(t, err)
	assert.Len(t, edges, 1)

	// A vertex with edges cannot be removed.
	err = store.RemoveVertex("read-input")
	require.ErrorIs(t, err, graph.ErrVertexHasEdges)

	require.NoError(t, store.RemoveEdge("read-input", "strip-line-breaks"))
	require.NoError(t, store.RemoveVertex("read-input"))
}
