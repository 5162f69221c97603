package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodes(t *testing.T) {
	args := os.Args
	t.Cleanup(func() { os.Args = args })

	os.Args = []string{"zoneprof", "bogus"}
	assert.Equal(t, 1, Main())

	os.Args = []string{"zoneprof", "--version"}
	assert.Equal(t, 0, Main())
}
