package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSkill(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"alias js", "JS", "javascript"},
		{"alias ts with padding", "  ts  ", "typescript"},
		{"alias py", "py", "python"},
		{"alias node", "node", "node.js"},
		{"alias react.js", "React.JS", "react"},
		{"alias postgres", "Postgres", "postgresql"},
		{"alias mongo", "mongo", "mongodb"},
		{"plain name lower-cased", "Python", "python"},
		{"symbols preserved", "C++", "c++"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSkill(tt.input))
		})
	}
}

func TestCanonicalSkills_DeduplicatesPreservingOrder(t *testing.T) {
	got := CanonicalSkills([]string{"JS", "javascript", "Python", "js", "  ", "Go"})
	assert.Equal(t, []string{"javascript", "python", "go"}, got)
}

func TestCanonicalSkills_Empty(t *testing.T) {
	assert.Nil(t, CanonicalSkills(nil))
	assert.Nil(t, CanonicalSkills([]string{"", "   "}))
}

func TestScanSkills(t *testing.T) {
	text := "We run Go and Python services on Kubernetes, backed by PostgreSQL."
	got := ScanSkills(text)
	assert.ElementsMatch(t, []string{"go", "python", "kubernetes", "postgresql"}, got)
}

func TestScanSkills_WholeTokenOnly(t *testing.T) {
	assert.NotContains(t, ScanSkills("A good outcome for golang shops."), "go")
	assert.NotContains(t, ScanSkills("JavaScript developers wanted."), "java")
	assert.NotContains(t, ScanSkills("Our PostgreSQL cluster."), "sql")
}

func TestScanSkills_Empty(t *testing.T) {
	assert.Nil(t, ScanSkills(""))
}
