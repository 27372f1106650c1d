package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/reducto/pkg/reducer"
)

// GraphOverlay contains replay data to visualize on the graph.
type GraphOverlay struct {
	DispatchedKinds []string
	LastKind        string
}

// GenerateMermaid produces a Mermaid flowchart of a reducer tree.
// It applies semantic styling:
// - Root: ((Circle))
// - Composite field: [Rectangle]
// - Leaf field: [[Subroutine]]
// - Action kind: [/Parallelogram/], linked to every field it updates
// It also applies overlay styles (Dispatched/Last) if provided.
func GenerateMermaid(root string, shape reducer.Shape, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	rootID := sanitizeMermaidID(root)
	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", rootID, root))
	writeShape(&sb, rootID, shape)

	for _, kind := range shape.AllKinds() {
		sb.WriteString(fmt.Sprintf("    %s[/\"%s\"/]\n", kindID(kind), kind))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef dispatched fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef last fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, kind := range overlay.DispatchedKinds {
			id := kindID(kind)
			if !seen[id] && kind != "" {
				seen[id] = true
				sb.WriteString(fmt.Sprintf("    class %s dispatched;\n", id))
			}
		}

		if overlay.LastKind != "" {
			sb.WriteString(fmt.Sprintf("    class %s last;\n", kindID(overlay.LastKind)))
		}
	}

	return sb.String()
}

func writeShape(sb *strings.Builder, parentID string, shape reducer.Shape) {
	for _, kind := range shape.Kinds {
		sb.WriteString(fmt.Sprintf("    %s -.-> %s\n", kindID(kind), parentID))
	}
	for _, f := range shape.Fields {
		id := parentID + "__" + sanitizeMermaidID(f.Name)
		opener, closer := "[[", "]]"
		if len(f.Shape.Fields) > 0 {
			opener, closer = "[", "]"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, f.Name, closer))
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", parentID, id))
		writeShape(sb, id, f.Shape)
	}
}

func kindID(kind string) string {
	return "kind_" + sanitizeMermaidID(kind)
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, "*", "ptr_")
	s = strings.ReplaceAll(s, "[", "_")
	s = strings.ReplaceAll(s, "]", "_")
	return s
}
