package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"José", "jose"},
		{"  MARÍA SOUZA  ", "maria souza"},
		{"ação", "acao"},
		{"plain", "plain"},
		{"   ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalizeQuery(c.in), "entrada: %q", c.in)
	}
}
