// Package output renders command results as styled text or JSON,
// keeping terminal detection and color handling out of the command
// implementations.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Renderer writes command output. Results go to out, diagnostics to
// errOut.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	isTTY  bool
	mode   OutputMode
	styles Styles
}

// NewRenderer detects whether out is a terminal and builds a
// renderer for it.
func NewRenderer(out, errOut io.Writer, mode OutputMode) *Renderer {
	isTTY := false
	if f, ok := out.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return NewRendererWithTTY(out, errOut, isTTY, mode)
}

// NewRendererWithTTY builds a renderer with an explicit terminal
// flag. Tests use it to pin rendering regardless of the writer.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode OutputMode) *Renderer {
	colored := isTTY && !termenv.EnvNoColor()
	return &Renderer{
		out:    out,
		errOut: errOut,
		isTTY:  isTTY,
		mode:   mode,
		styles: NewStyles(colored),
	}
}

// DisableColor switches every style off, e.g. for --no-color.
func (r *Renderer) DisableColor() {
	r.styles = NewStyles(false)
}

// EffectiveMode resolves ModeAuto to a concrete mode.
func (r *Renderer) EffectiveMode() OutputMode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// JSONEnabled reports whether results must be emitted as JSON.
func (r *Renderer) JSONEnabled() bool {
	return r.EffectiveMode() == ModeJSON
}

// IsTTY reports whether the output writer is a terminal.
func (r *Renderer) IsTTY() bool { return r.isTTY }

// Writer returns the result writer, e.g. for table rendering.
func (r *Renderer) Writer() io.Writer { return r.out }

// ErrWriter returns the diagnostics writer.
func (r *Renderer) ErrWriter() io.Writer { return r.errOut }

// Styles returns the active style set.
func (r *Renderer) Styles() Styles { return r.styles }

// Println writes a plain result line.
func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// Printf writes formatted result text.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Success writes a check-marked confirmation line.
func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.out, r.styles.Success.Render("✓"), msg)
}

// Warningf writes a styled warning to the diagnostics writer.
func (r *Renderer) Warningf(format string, args ...any) {
	fmt.Fprintln(r.errOut, r.styles.Warning.Render("Warning:"), fmt.Sprintf(format, args...))
}

// Errorf writes a styled error to the diagnostics writer.
func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintln(r.errOut, r.styles.Error.Render("Error:"), fmt.Sprintf(format, args...))
}

// Header writes a section heading. Level 1 is the page title, level
// 2 a subsection.
func (r *Renderer) Header(level int, text string) {
	style := r.styles.Header1
	if level > 1 {
		style = r.styles.Header2
	}
	fmt.Fprintln(r.out, style.Render(text))
}

// StatusLine writes a "name: status (detail)" line.
func (r *Renderer) StatusLine(name, status, detail string) {
	line := fmt.Sprintf("%s %s", r.styles.Bold.Render(name+":"), status)
	if detail != "" {
		line += " " + r.styles.Muted.Render("("+detail+")")
	}
	fmt.Fprintln(r.out, line)
}

// JSON writes v as an indented JSON document to the result writer.
func (r *Renderer) JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.out, string(data))
	return err
}
