package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextStripsMarkup(t *testing.T) {
	assert.Equal(t, "black umbrella", Text("<b>black</b> <script>x()</script>umbrella", 0))
	assert.Equal(t, "a & b", Text("a &amp; b", 0))
}

func TestTextCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "one two three", Text("  one\t two \n three ", 0))
}

func TestTextCapsLength(t *testing.T) {
	long := strings.Repeat("x", 50)
	assert.Len(t, Text(long, 10), 10)
	assert.Equal(t, long, Text(long, 0))
}

func TestLocationCapsPerElement(t *testing.T) {
	long := strings.Repeat("y", MaxLocation+20)
	got := Location("Library," + long)
	parts := strings.Split(got, ",")
	assert.Equal(t, "Library", parts[0])
	assert.Len(t, parts[1], MaxLocation)
}

func TestLocationsDropsEmpty(t *testing.T) {
	got := Locations([]string{"Gym", "  ", "<p></p>", "Union"})
	assert.Equal(t, []string{"Gym", "Union"}, got)
}
