package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesSearch(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		fields []string
		want   bool
	}{
		{"empty term matches", "", []string{"anything"}, true},
		{"empty term matches empty fields", "", nil, true},
		{"case-insensitive hit", "FRONTEND", []string{"Senior Frontend Developer"}, true},
		{"substring hit", "front", []string{"Senior Frontend Developer"}, true},
		{"second field hit", "remote", []string{"Product Manager", "Remote"}, true},
		{"miss", "backend", []string{"Senior Frontend Developer"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesSearch(tt.term, tt.fields...))
		})
	}
}

func TestMatchesEnum(t *testing.T) {
	assert.True(t, MatchesEnum("", "active"))
	assert.True(t, MatchesEnum("all", "active"))
	assert.True(t, MatchesEnum("All", "active"))
	assert.True(t, MatchesEnum("active", "active"))
	assert.True(t, MatchesEnum("Active", "active"))
	assert.False(t, MatchesEnum("draft", "active"))
}

func TestMatchesContains(t *testing.T) {
	assert.True(t, MatchesContains("", "San Francisco, CA"))
	assert.True(t, MatchesContains("all", "Dallas, TX"))
	assert.True(t, MatchesContains("san", "San Francisco, CA"))
	assert.False(t, MatchesContains("austin", "San Francisco, CA"))
}

func TestMatchesAnySearch(t *testing.T) {
	skills := []string{"React", "TypeScript", "Node.js"}
	assert.True(t, MatchesAnySearch("", skills))
	assert.True(t, MatchesAnySearch("typescript", skills))
	assert.True(t, MatchesAnySearch("node", skills))
	assert.False(t, MatchesAnySearch("python", skills))
}
