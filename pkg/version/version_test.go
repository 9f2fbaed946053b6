package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionString(t *testing.T) {
	s := GetVersionString()
	assert.True(t, strings.Contains(s, GetVersion()))
	assert.True(t, strings.Contains(s, GetBuildCommit()))
	assert.True(t, strings.Contains(s, GetBuildTime()))
}
