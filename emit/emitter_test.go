package emit_test

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/illmade-knight/go-threadtrace/emit"
)

var headerPattern = regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\.\d{3}\] #(\d+) \[(.+)\]$`)

// MockSink records Write calls so tests can assert each record arrives in a
// single write.
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Write(p []byte) (int, error) {
	args := m.Called(string(p))
	return args.Int(0), args.Error(1)
}

func newTestEmitter(sink *bytes.Buffer) *emit.Emitter {
	return emit.NewEmitter(sink, emit.NewSequence(1), emit.DefaultTheme(), zerolog.Nop())
}

func TestEmitter_Emit(t *testing.T) {
	t.Run("record contains all fields in order", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEmitter(&buf)

		e.Emit(emit.StyleFree, "freeReport #1", "run.freeReport", "free-abc")

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 4)

		header := headerPattern.FindStringSubmatch(lines[0])
		require.NotNil(t, header, "header line %q does not match the record format", lines[0])
		assert.Equal(t, "1", header[1])
		assert.Equal(t, "freeReport #1", header[2])
		assert.Equal(t, "  Function : run.freeReport", lines[1])
		assert.Equal(t, "  Worker ID: free-abc", lines[2])
		assert.Regexp(t, `^-+$`, lines[3])
	})

	t.Run("each record is one write to the sink", func(t *testing.T) {
		sink := new(MockSink)
		sink.On("Write", mock.Anything).Return(0, nil)
		e := emit.NewEmitter(sink, emit.NewSequence(1), emit.DefaultTheme(), zerolog.Nop())

		e.Emit(emit.StyleMain, "main", "cli.runDemo", "main-1")
		e.Emit(emit.StyleFree, "freeReport #1", "run.freeReport", "free-1")

		sink.AssertNumberOfCalls(t, "Write", 2)
		// Every write carries a complete record, separator included.
		for _, call := range sink.Calls {
			payload := call.Arguments.String(0)
			assert.True(t, strings.Contains(payload, "Function :"), "partial record written: %q", payload)
			assert.True(t, strings.Contains(payload, "---"), "record written without separator: %q", payload)
		}
	})

	t.Run("sink errors are swallowed", func(t *testing.T) {
		sink := new(MockSink)
		sink.On("Write", mock.Anything).Return(0, errors.New("sink closed"))
		e := emit.NewEmitter(sink, emit.NewSequence(1), emit.DefaultTheme(), zerolog.Nop())

		assert.NotPanics(t, func() {
			e.Emit(emit.StyleMain, "main", "cli.runDemo", "main-1")
		})
		sink.AssertExpectations(t)
	})

	t.Run("concurrent records never interleave", func(t *testing.T) {
		const workers = 16

		var buf bytes.Buffer
		e := newTestEmitter(&buf)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				e.Emit(emit.StyleFree, fmt.Sprintf("worker #%d", id), "emit_test.worker", fmt.Sprintf("w-%d", id))
			}(i)
		}
		wg.Wait()

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, workers*4, "expected %d intact 4-line records", workers)

		seqs := make(map[int]bool)
		for i := 0; i < workers; i++ {
			record := lines[i*4 : i*4+4]
			header := headerPattern.FindStringSubmatch(record[0])
			require.NotNil(t, header, "record %d has a broken header: %q", i, record[0])
			assert.True(t, strings.HasPrefix(record[1], "  Function : "), "record %d interleaved: %q", i, record[1])
			assert.True(t, strings.HasPrefix(record[2], "  Worker ID: "), "record %d interleaved: %q", i, record[2])
			assert.Regexp(t, `^-+$`, record[3])

			n, err := strconv.Atoi(header[1])
			require.NoError(t, err)
			seqs[n] = true
		}

		// Sequence numbers cover 1..workers exactly once.
		require.Len(t, seqs, workers)
		for v := 1; v <= workers; v++ {
			assert.True(t, seqs[v], "sequence %d missing from output", v)
		}
	})
}

func TestEmitter_Banner(t *testing.T) {
	var buf bytes.Buffer
	e := newTestEmitter(&buf)

	e.Banner(emit.StyleMain, "Hardware concurrency: 8")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}\.\d{3}\] Hardware concurrency: 8$`, lines[0])
	assert.Regexp(t, `^-+$`, lines[1])
}
