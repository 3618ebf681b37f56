package timesurvey

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenWritesRowsAfterClear(t *testing.T) {
	assertT := assert.New(t)

	sink := AssertNoErr(os.Create(filepath.Join(t.TempDir(), "screen.out")))
	defer sink.Close()

	screen, err := NewScreen(sink)
	assertT.NoError(err)
	screen.Clear()
	screen.Printf("%s: %d ms elapsed\n", "Tick Counter", 42)
	screen.Close()

	out := string(AssertNoErr(os.ReadFile(sink.Name())))
	assertT.Contains(out, "\033[2J\033[H")
	assertT.Contains(out, "Tick Counter: 42 ms elapsed\n")
	assertT.True(strings.HasSuffix(out, "\033[?25h"))
}

func TestNewScreenFailsOnUnusableSink(t *testing.T) {
	sink := AssertNoErr(os.Create(filepath.Join(t.TempDir(), "closed.out")))
	sink.Close()

	_, err := NewScreen(sink)
	assert.Error(t, err)
}
