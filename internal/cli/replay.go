package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/reducto/internal/logging"
	"github.com/aretw0/reducto/internal/presentation/tui"
	"github.com/aretw0/reducto/internal/todo"
	"github.com/aretw0/reducto/pkg/middleware"
	"github.com/aretw0/reducto/pkg/script"
	"github.com/aretw0/reducto/pkg/store"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by RunReplay.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
	// FormatMarkdown prints a markdown checklist, rendered with glamour when Out is a terminal.
	FormatMarkdown = "markdown"
)

// ReplayOptions configures RunReplay.
type ReplayOptions struct {
	ScriptPath string
	RecordPath string
	Format     string
	Metrics    bool
	Logger     *slog.Logger
	Out        io.Writer
}

// RunReplay loads a script, replays it against the demo todo store and prints the final state.
func RunReplay(opts ReplayOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}

	s, err := script.Load(opts.ScriptPath)
	if err != nil {
		return err
	}

	reg := todo.NewRegistry()
	st := store.New[todo.State](todo.NewReducer(),
		store.WithLogger(opts.Logger),
		store.WithHooks(createDebugHooks(opts.Logger)),
	)

	chain := []store.Middleware[todo.State]{
		middleware.Recoverer[todo.State](opts.Logger),
		middleware.Logger[todo.State](opts.Logger),
	}

	var promReg *prometheus.Registry
	if opts.Metrics {
		promReg = prometheus.NewRegistry()
		m, err := middleware.NewMetrics(promReg, "reducto")
		if err != nil {
			return err
		}
		chain = append(chain, middleware.Instrument[todo.State](m))
	}

	var recorded *script.Script
	if opts.RecordPath != "" {
		recorded = &script.Script{Name: s.Name}
		chain = append(chain, script.Recorder[todo.State](reg, recorded, opts.Logger))
	}

	st.Middleware(chain...)

	n, err := script.Replay(st, reg, s)
	if err != nil {
		return fmt.Errorf("replay %s: %w", opts.ScriptPath, err)
	}
	opts.Logger.Info("replay finished", "script", s.Name, "actions", n)

	if recorded != nil {
		if err := writeScript(opts.RecordPath, recorded); err != nil {
			return err
		}
	}

	if err := printState(opts.Out, opts.Format, st.GetState()); err != nil {
		return err
	}

	if promReg != nil {
		return printMetrics(opts.Out, promReg)
	}
	return nil
}

func writeScript(path string, s *script.Script) error {
	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode recording: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write recording: %w", err)
	}
	return nil
}

func printState(w io.Writer, format string, state todo.State) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	case FormatYAML:
		return yaml.NewEncoder(w).Encode(state)
	case FormatText:
		printTodo(w, state)
		return nil
	case FormatMarkdown:
		return printMarkdown(w, state)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func printTodo(w io.Writer, state todo.State) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w, out.String(state.Title).Bold().Foreground(out.Color("#818cf8")))
	fmt.Fprintf(w, "filter: %s\n", state.Filter)
	for _, item := range state.Visible() {
		mark := "[ ]"
		text := out.String(item.Text)
		if item.Done {
			mark = "[x]"
			text = text.Faint()
		}
		fmt.Fprintf(w, "  %s %s\n", mark, text)
	}
}

func todoMarkdown(state todo.State) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", state.Title)
	fmt.Fprintf(&sb, "_filter: %s_\n\n", state.Filter)
	for _, item := range state.Visible() {
		mark := " "
		if item.Done {
			mark = "x"
		}
		fmt.Fprintf(&sb, "- [%s] %s\n", mark, item.Text)
	}
	return sb.String()
}

func printMarkdown(w io.Writer, state todo.State) error {
	md := todoMarkdown(state)
	if !tui.IsTerminal(w) {
		_, err := io.WriteString(w, md)
		return err
	}

	render, err := tui.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := render(md)
	if err != nil {
		return fmt.Errorf("failed to render state: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	fmt.Fprintln(w)
	for _, mf := range families {
		if mf.GetName() != "reducto_dispatch_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			kind := ""
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "kind" {
					kind = lp.GetValue()
				}
			}
			fmt.Fprintf(w, "%s{kind=%q} %v\n", mf.GetName(), kind, m.GetCounter().GetValue())
		}
	}
	return nil
}
