package patterns

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/GDVFox/gomatch/lib/go-automata"
	"github.com/GDVFox/gomatch/match_node/api/common"
	"github.com/GDVFox/gomatch/match_node/registry"
	"github.com/GDVFox/gomatch/util/httplib"
)

// GetPatternDiagram отдает SVG диаграмму автомата шаблона.
func GetPatternDiagram(r *http.Request) (*httplib.Response, error) {
	vars := mux.Vars(r)
	patternName := vars["pattern_name"]
	if patternName == "" {
		return httplib.NewBadRequestResponse(httplib.NewErrorBody(common.BadNameErrorCode, "pattern_name must be not empty")), nil
	}

	p, err := registry.Registry.Get(patternName)
	if err != nil {
		if errors.Cause(err) == registry.ErrUnknownPattern {
			return httplib.NewNotFoundResponse(httplib.NewErrorBody(common.NameNotFoundErrorCode, err.Error())), nil
		}
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadPatternErrorCode, err.Error())), nil
	}

	a, err := p.Automaton()
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.BadPatternErrorCode, err.Error())), nil
	}

	diagram, err := renderGraph(a.Graph())
	if err != nil {
		return httplib.NewInternalErrorResponse(httplib.NewErrorBody(common.RenderGraphErrorCode, err.Error())), nil
	}

	return httplib.NewOKResponse(diagram, httplib.ContentTypeSVG), nil
}

func renderGraph(automatonGraph *automata.Graph) ([]byte, error) {
	g := graphviz.New()
	graph, err := g.Graph(graphviz.Directed)
	if err != nil {
		return nil, err
	}
	graph.SetRankDir(cgraph.LRRank)

	accepting := make(map[automata.State]bool, len(automatonGraph.Accepting))
	for _, state := range automatonGraph.Accepting {
		accepting[state] = true
	}

	graphvizNodes := make(map[automata.State]*cgraph.Node, len(automatonGraph.States))
	for _, state := range automatonGraph.States {
		graphvizNode, err := graph.CreateNode(strconv.Itoa(int(state)))
		if err != nil {
			return nil, err
		}

		if accepting[state] {
			graphvizNode.SetShape(cgraph.DoubleCircleShape)
		} else {
			graphvizNode.SetShape(cgraph.CircleShape)
		}
		graphvizNodes[state] = graphvizNode
	}

	// Точка со стрелкой в начальное состояние.
	entry, err := graph.CreateNode("entry")
	if err != nil {
		return nil, err
	}
	entry.SetShape(cgraph.PointShape)
	if _, err := graph.CreateEdge("entry", entry, graphvizNodes[automatonGraph.Start]); err != nil {
		return nil, err
	}

	for _, e := range automatonGraph.Edges {
		from := graphvizNodes[e.From]
		to := graphvizNodes[e.To]
		edgeName := strconv.Itoa(int(e.From)) + "-" + strconv.Itoa(int(e.To)) + "-" + e.Label
		graphvizEdge, err := graph.CreateEdge(edgeName, from, to)
		if err != nil {
			return nil, err
		}

		// graphviz трактует '\' как начало спецпоследовательности,
		// поэтому в подписи '\n' экранируем его.
		graphvizEdge.SetLabel(strings.ReplaceAll(e.Label, `\`, `\\`))
	}

	var buf bytes.Buffer
	if err := g.Render(graph, graphviz.SVG, &buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
