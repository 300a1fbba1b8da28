// emit/emitter.go

package emit

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// separator closes every block so records stay visually distinct when many
// workers write close together.
const separator = "---------------------------------"

// Style selects the rendering applied to a record, one per kind of emitter.
type Style int

const (
	StyleMain Style = iota
	StyleMember
	StyleFree
)

// Theme holds the color for each style. Values are anything lipgloss
// accepts: ANSI color numbers or hex strings.
type Theme struct {
	Main   string
	Member string
	Free   string
}

// DefaultTheme matches the original demo: yellow main, blue member-style
// workers, green free-standing workers.
func DefaultTheme() Theme {
	return Theme{Main: "3", Member: "4", Free: "2"}
}

// Emitter renders one complete record per event and writes it to the shared
// sink in a single call. Concurrent callers never interleave output: each
// block is fully assembled in local memory first, and the final write is
// serialized by a mutex in case the sink's own writes are not atomic.
type Emitter struct {
	mu     sync.Mutex
	sink   io.Writer
	seq    *Sequence
	styles map[Style]lipgloss.Style
	logger zerolog.Logger
}

// NewEmitter creates an Emitter writing to sink, numbering records from seq.
// The renderer is bound to the sink, so styling degrades to plain text when
// the sink is not a terminal.
func NewEmitter(sink io.Writer, seq *Sequence, theme Theme, logger zerolog.Logger) *Emitter {
	r := lipgloss.NewRenderer(sink)
	return &Emitter{
		sink: sink,
		seq:  seq,
		styles: map[Style]lipgloss.Style{
			StyleMain:   r.NewStyle().Foreground(lipgloss.Color(theme.Main)),
			StyleMember: r.NewStyle().Foreground(lipgloss.Color(theme.Member)),
			StyleFree:   r.NewStyle().Foreground(lipgloss.Color(theme.Free)),
		},
		logger: logger.With().Str("component", "Emitter").Logger(),
	}
}

// Emit writes one record for the calling worker: timestamp, a sequence
// number unique across all workers, the label, the origin function name, and
// the worker's identifier. The record reaches the sink as one write; sink
// errors are not reported.
func (e *Emitter) Emit(style Style, label, origin, workerID string) {
	seq := e.seq.Next()

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] #%d [%s]\n", Now(), seq, label)
	fmt.Fprintf(&b, "  Function : %s\n", origin)
	fmt.Fprintf(&b, "  Worker ID: %s\n", workerID)
	b.WriteString(separator)

	e.write(e.styles[style].Render(b.String()))
	e.logger.Debug().Int64("seq", seq).Str("label", label).Str("worker_id", workerID).Msg("Record emitted.")
}

// Banner writes a timestamp-prefixed line without a sequence number. The
// orchestrator uses it once at startup to report hardware concurrency.
func (e *Emitter) Banner(style Style, text string) {
	e.write(e.styles[style].Render(fmt.Sprintf("[%s] %s\n%s", Now(), text, separator)))
}

func (e *Emitter) write(block string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, _ = fmt.Fprintln(e.sink, block)
}
