package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/dreamware/kvpipe/internal/storage"
)

// errReader fails after yielding its content
type errReader struct {
	content string
	err     error
	done    bool
}

func (r *errReader) Read(p []byte) (int, error) {
	if !r.done {
		r.done = true
		return copy(p, r.content), nil
	}
	return 0, r.err
}

// TestFeed tests line ingestion into the distribution queue
func TestFeed(t *testing.T) {
	t.Run("pushes non-blank lines with source line numbers", func(t *testing.T) {
		pool := New(testConfig(1), storage.NewMemoryStore(), nil)
		pool.Start()

		pushed, err := pool.Feed(strings.NewReader("SET a 1\n\nGET a\n   \nGET a\n"))
		if err != nil {
			t.Fatalf("Feed failed: %v", err)
		}
		if pushed != 3 {
			t.Errorf("Expected 3 lines pushed, got %d", pushed)
		}

		pool.CloseInput()
		summary := pool.Wait()

		if summary.Lines != 3 {
			t.Errorf("Expected 3 lines in summary, got %d", summary.Lines)
		}
	})

	t.Run("propagates reader errors", func(t *testing.T) {
		readErr := errors.New("disk unplugged")
		pool := New(testConfig(1), storage.NewMemoryStore(), nil)
		pool.Start()

		pushed, err := pool.Feed(&errReader{content: "SET a 1\n", err: readErr})
		if !errors.Is(err, readErr) {
			t.Errorf("Expected reader error to propagate, got %v", err)
		}
		if pushed != 1 {
			t.Errorf("Expected 1 line pushed before the error, got %d", pushed)
		}

		// The pipeline still shuts down cleanly with partial input
		pool.CloseInput()
		summary := pool.Wait()
		if summary.Executed != 1 {
			t.Errorf("Expected the fed line to execute, got %d", summary.Executed)
		}
	})
}
