package commands

import (
	"bytes"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDirs_JSON(t *testing.T) {
	switch runtime.GOOS {
	case "windows", "linux", "darwin":
	default:
		t.Skipf("unsupported platform %s", runtime.GOOS)
	}

	origJSON := dirsJSON
	defer func() { dirsJSON = origJSON }()
	dirsJSON = true

	var buf bytes.Buffer
	require.NoError(t, runDirsWithWriter(&buf))

	var infos []dirInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &infos))
	require.Len(t, infos, 2)
	assert.Equal(t, "CurrentUser", infos[0].Scope)
	assert.Equal(t, "AllUsers", infos[1].Scope)
}

func TestRunDirs_Tabular(t *testing.T) {
	switch runtime.GOOS {
	case "windows", "linux", "darwin":
	default:
		t.Skipf("unsupported platform %s", runtime.GOOS)
	}

	origJSON := dirsJSON
	defer func() { dirsJSON = origJSON }()
	dirsJSON = false

	var buf bytes.Buffer
	require.NoError(t, runDirsWithWriter(&buf))

	out := buf.String()
	assert.Contains(t, out, "Platform:")
	assert.Contains(t, out, "CurrentUser")
	assert.Contains(t, out, "AllUsers")
}
