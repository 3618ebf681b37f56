package mocker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceItem(t *testing.T) {
	assertT := assert.New(t)

	val := 13
	restore := ReplaceItem(&val, 42)
	assertT.Equal(42, val)
	restore()
	assertT.Equal(13, val)
}

func TestRestorerRevertsInReverseOrder(t *testing.T) {
	assertT := assert.New(t)

	val := "original"
	var order []string

	var r Restorer
	r.Add(func() { order = append(order, "first"); val = "restored" })
	r.Add(func() { order = append(order, "second") })
	r.Restore()

	assertT.Equal([]string{"second", "first"}, order)
	assertT.Equal("restored", val)
	// Second Restore is a no-op
	r.Restore()
	assertT.Len(order, 2)
}
