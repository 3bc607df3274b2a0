package meeting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	g := New("https://meet.depresscare.com/")

	link := g.Generate()
	assert.True(t, strings.HasPrefix(link, "https://meet.depresscare.com/"), link)

	token := strings.TrimPrefix(link, "https://meet.depresscare.com/")
	assert.Len(t, token, 32)
	assert.NotContains(t, token, "/")
}

func TestGenerateIsUnique(t *testing.T) {
	g := New("https://meet.depresscare.com")

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		link := g.Generate()
		assert.False(t, seen[link], "duplicate link %s", link)
		seen[link] = true
	}
}
