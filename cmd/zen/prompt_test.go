package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAskReader(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "explicit yes", input: "y\n", defaultYes: false, want: true},
		{name: "explicit yes word", input: "yes\n", defaultYes: false, want: true},
		{name: "uppercase yes", input: "Y\n", defaultYes: false, want: true},
		{name: "explicit no", input: "n\n", defaultYes: true, want: false},
		{name: "explicit no word", input: "no\n", defaultYes: true, want: false},
		{name: "empty accepts default yes", input: "\n", defaultYes: true, want: true},
		{name: "empty accepts default no", input: "\n", defaultYes: false, want: false},
		{name: "eof declines", input: "", defaultYes: true, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := askYesNo(newAskReader(tt.input), &out, "Proceed?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAskYesNoRetriesOnInvalidInput(t *testing.T) {
	var out bytes.Buffer

	got, err := askYesNo(newAskReader("maybe\ny\n"), &out, "Proceed?", false)

	require.NoError(t, err)
	assert.True(t, got)
	assert.Contains(t, out.String(), "Please answer y or n.")
}

func TestAskYesNoInvalidAtEOF(t *testing.T) {
	var out bytes.Buffer

	_, err := askYesNo(newAskReader("maybe"), &out, "Proceed?", false)

	assert.Error(t, err)
}

func TestAskYesNoShowsDefaultMarker(t *testing.T) {
	var out bytes.Buffer
	_, err := askYesNo(newAskReader("y\n"), &out, "Proceed?", true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[Y/n]")

	out.Reset()
	_, err = askYesNo(newAskReader("y\n"), &out, "Proceed?", false)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[y/N]")
}

func TestAskYesNoSharedReaderConsumesOneLinePerQuestion(t *testing.T) {
	var out bytes.Buffer
	reader := newAskReader("y\nn\ny\n")

	first, err := askYesNo(reader, &out, "First?", false)
	require.NoError(t, err)
	second, err := askYesNo(reader, &out, "Second?", true)
	require.NoError(t, err)
	third, err := askYesNo(reader, &out, "Third?", false)
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	assert.True(t, third)
}
