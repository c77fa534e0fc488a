package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KromDaniel/composite/pkg/composite"
)

func TestSessionHandle(t *testing.T) {
	s := &session{}
	var out strings.Builder

	say := func(line string) string {
		t.Helper()
		out.Reset()
		if s.handle(line, &out) {
			t.Fatalf("handle(%q) ended the session", line)
		}
		return out.String()
	}

	assert.Equal(t, "no template, use :t TEMPLATE\n", say("a b"))
	assert.Equal(t, "template: \"{0,-4}|{1:00}\"\n", say(":t {0,-4}|{1:00}"))
	assert.Equal(t, "ab  |07\n", say("ab 7"))
	assert.Contains(t, say("ab"), "error: ")
	assert.Equal(t, "", say("   "))

	assert.Equal(t, "template: \"  {0} \"\n", say(":t   {0} "))
	assert.Equal(t, "  x \n", say("x"))

	assert.Equal(t, "separator: \",\"\n", say(":sep ,"))
	assert.Equal(t, "template: \"{1}/{0}\"\n", say(":t {1}/{0}"))
	assert.Equal(t, "b c/a\n", say("a , b c"))

	shown := say(":show")
	assert.Contains(t, shown, "template: \"{1}/{0}\"")
	assert.Contains(t, shown, "index=1")
	assert.Contains(t, shown, "index=0")

	assert.Contains(t, say(":help"), ":quit")
}

func TestSessionQuit(t *testing.T) {
	for _, cmd := range []string{":q", ":quit", " :exit "} {
		s := &session{tmpl: composite.Compile("{0}")}
		var out strings.Builder
		if !s.handle(cmd, &out) {
			t.Errorf("handle(%q) did not end the session", cmd)
		}
		if out.Len() != 0 {
			t.Errorf("handle(%q) wrote %q", cmd, out.String())
		}
	}
}
