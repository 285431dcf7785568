package install

import (
	"fmt"
	"strings"

	"github.com/code-zen/zen/internal/messages"
)

// SnippetExtractionError reports an unreadable or empty configuration
// snippet. The snippet is essential to registration, so this is fatal.
type SnippetExtractionError struct {
	Source string
	Start  int
	End    int
	Err    error
}

func (e *SnippetExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(messages.SnippetSourceFailedFmt, e.Source, e.Err)
	}
	return fmt.Sprintf(messages.SnippetEmptyFmt, e.Source, e.Start, e.End)
}

func (e *SnippetExtractionError) Unwrap() error {
	return e.Err
}

// ExtractSnippet returns lines [start, end] (1-based, inclusive) of the
// source file, byte for byte apart from line-ending normalization. Blank
// lines inside the range are kept, a blank final line included. The returned
// snippet carries no terminator after its final line; writers append one.
func ExtractSnippet(sys System, path string, start int, end int) (string, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		return "", &SnippetExtractionError{Source: path, Start: start, End: end, Err: err}
	}
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(content, "\n")
	// A trailing terminator splits into one empty element past the last
	// line; it is not a line of the file.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	if start < 1 {
		start = 1
	}
	if end > len(lines) {
		end = len(lines)
	}
	if start > end {
		return "", &SnippetExtractionError{Source: path, Start: start, End: end}
	}
	snippet := strings.Join(lines[start-1:end], "\n")
	if strings.TrimSpace(snippet) == "" {
		return "", &SnippetExtractionError{Source: path, Start: start, End: end}
	}
	return snippet, nil
}
