package iconc

import (
	"fmt"
	"io"
	"strings"

	"github.com/ideamans/svgicons/pkg/logging"
	"github.com/mattn/go-runewidth"
)

// Reporter prints the human-readable progress of a run:
//
//	Creating Icons
//
//	 bell    >     Bell
//
//	Generated 1 vnode icons
type Reporter struct {
	w       io.Writer
	color   bool
	padding int
}

// NewReporter creates a Reporter writing to w. Colors are used only when
// requested and w is a terminal.
func NewReporter(w io.Writer, color bool) *Reporter {
	return &Reporter{w: w, color: color && logging.IsTerminal(w)}
}

func (r *Reporter) paint(text string, colors ...logging.Color) string {
	return logging.Paint(r.color, text, colors...)
}

// BeginIcons prints the icon section header and sizes the name column
// from the widest source filename.
func (r *Reporter) BeginIcons(filenames []string) {
	r.padding = 0
	for _, name := range filenames {
		if w := runewidth.StringWidth(name); w > r.padding {
			r.padding = w
		}
	}
	fmt.Fprintf(r.w, "%s\n\n", r.paint("Creating Icons", logging.ColorWhite, logging.ColorBold))
}

// Icon prints one "name > Identifier" line
func (r *Reporter) Icon(filename, baseName, identifier string) {
	gap := r.padding - runewidth.StringWidth(filename) + 3
	if gap < 1 {
		gap = 1
	}
	fmt.Fprintf(r.w, " %s%s >     %s\n",
		r.paint(baseName, logging.ColorBrightMagenta),
		strings.Repeat(" ", gap),
		r.paint(identifier, logging.ColorBrightCyan))
}

// IconsDone prints the icon count summary
func (r *Reporter) IconsDone(count int) {
	fmt.Fprintf(r.w, "\n%s%s%s\n",
		r.paint("Generated ", logging.ColorGreen),
		r.paint(fmt.Sprint(count), logging.ColorBrightGreen, logging.ColorBold),
		r.paint(" vnode icons", logging.ColorGreen))
}

// BeginFiles prints the header of the aggregate file section
func (r *Reporter) BeginFiles() {
	fmt.Fprintf(r.w, "\n%s\n\n", r.paint("JavaScript Files", logging.ColorWhite, logging.ColorBold))
}

// File prints one aggregate file name
func (r *Reporter) File(name string) {
	fmt.Fprintf(r.w, " %s\n", r.paint(name, logging.ColorBrightMagenta))
}

// Done prints the total number of generated files
func (r *Reporter) Done(total int) {
	fmt.Fprintf(r.w, "\n%s%s%s\n\n",
		r.paint("Generated ", logging.ColorGreen),
		r.paint(fmt.Sprint(total), logging.ColorBrightGreen, logging.ColorBold),
		r.paint(" files in total", logging.ColorGreen))
}
