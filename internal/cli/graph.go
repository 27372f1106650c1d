package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/reducto/internal/presentation/graph"
	"github.com/aretw0/reducto/internal/todo"
	"github.com/aretw0/reducto/pkg/domain"
	"github.com/aretw0/reducto/pkg/reducer"
	"github.com/aretw0/reducto/pkg/script"
)

// RunGraph prints the demo reducer tree as a Mermaid flowchart.
// When scriptPath is set, the kinds the script would dispatch are highlighted.
func RunGraph(out io.Writer, scriptPath string) error {
	if out == nil {
		out = os.Stdout
	}

	shape := reducer.ShapeOf[todo.State](todo.NewReducer())

	var overlay *graph.GraphOverlay
	if scriptPath != "" {
		s, err := script.Load(scriptPath)
		if err != nil {
			return err
		}
		acts, err := s.Actions(todo.NewRegistry())
		if err != nil {
			return fmt.Errorf("graph %s: %w", scriptPath, err)
		}
		overlay = &graph.GraphOverlay{}
		for _, a := range acts {
			overlay.DispatchedKinds = append(overlay.DispatchedKinds, domain.KindName(a))
		}
		if len(acts) > 0 {
			overlay.LastKind = domain.KindName(acts[len(acts)-1])
		}
	}

	_, err := fmt.Fprint(out, graph.GenerateMermaid("todo.State", shape, overlay))
	return err
}
