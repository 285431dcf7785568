package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/code-zen/zen/internal/messages"
)

// askYesNo asks a yes/no question on a shared buffered reader and returns the
// user's choice. The reader must be shared across every prompt in a run: a
// buffered reader drains its source ahead of what it returns, so a fresh one
// per question would swallow input meant for later questions. defaultYes
// controls the empty-response result; EOF with no response is a decline.
func askYesNo(reader *bufio.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	marker := messages.PromptNoDefaultFmt
	if defaultYes {
		marker = messages.PromptYesDefaultFmt
	}
	for {
		if _, err := fmt.Fprintf(out, marker, prompt); err != nil {
			return false, err
		}
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return false, readErr
		}
		switch response := strings.ToLower(strings.TrimSpace(line)); response {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			if readErr == nil {
				return defaultYes, nil
			}
			return false, nil
		default:
			if errors.Is(readErr, io.EOF) {
				return false, fmt.Errorf(messages.PromptInvalidResponse, response)
			}
			if _, err := fmt.Fprintln(out, messages.PromptRetryYesNo); err != nil {
				return false, err
			}
		}
	}
}
