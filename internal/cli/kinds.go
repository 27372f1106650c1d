package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/reducto/internal/todo"
)

// PrintKinds lists the action names a replay script may use.
func PrintKinds(w io.Writer) {
	for _, name := range todo.NewRegistry().Names() {
		fmt.Fprintln(w, name)
	}
}
