package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateID(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"My Project", "morlord-my-project"},
		{"  My   Project  ", "morlord-my-project"},
		{"UPPER", "morlord-upper"},
		{"", "morlord-"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, CreateID(tc.name), "name=%q", tc.name)
	}
}

func TestExtractName(t *testing.T) {
	assert.Equal(t, "my project", ExtractName("morlord-my-project"))
	// ids minted elsewhere still resolve
	assert.Equal(t, "my project", ExtractName("my-project"))
}

func TestRoundTrip(t *testing.T) {
	names := []string{"My Project", "capital  DAO", "one"}
	for _, name := range names {
		extracted := ExtractName(CreateID(name))
		collapsed := strings.ToLower(strings.Join(strings.Fields(name), " "))
		assert.Equal(t, collapsed, extracted, "name=%q", name)
	}
}
