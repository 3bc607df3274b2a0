package meeting

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// Generator produces opaque meeting links under a fixed base URL.
type Generator struct {
	BaseURL string
}

// New creates a link generator rooted at baseURL.
func New(baseURL string) *Generator {
	return &Generator{BaseURL: strings.TrimRight(baseURL, "/")}
}

// Generate returns a fresh meeting link with a random room token.
func (g *Generator) Generate() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("%s/%s", g.BaseURL, hex.EncodeToString(buf))
}
