package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fontkit/fontls/internal/font"
)

var sampleRecords = []font.Record{
	{Name: "Arial", Path: "/fonts/Arial.ttf", Scope: "CurrentUser"},
	{Name: "Arial-Bold", Path: "/fonts/Arial-Bold.ttf", Scope: "CurrentUser"},
	{Name: "Times", Path: "/usr/share/fonts/Times.ttf", Scope: "AllUsers"},
}

func TestEncodeRecords_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encodeRecords(&buf, "json", sampleRecords))

	var doc struct {
		Fonts []font.Record `json:"fonts"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, sampleRecords, doc.Fonts)
}

func TestEncodeRecords_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encodeRecords(&buf, "json", nil))

	// nil must render as an empty array, not null.
	assert.Contains(t, buf.String(), `"fonts": []`)
}

func TestEncodeRecords_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encodeRecords(&buf, "yaml", sampleRecords))

	var doc struct {
		Fonts []font.Record `yaml:"fonts"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, sampleRecords, doc.Fonts)
}

func TestEncodeRecords_TOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, encodeRecords(&buf, "toml", sampleRecords))

	out := buf.String()
	assert.Contains(t, out, "[[fonts]]")
	assert.Contains(t, out, "name = 'Arial'")
	assert.Contains(t, out, "scope = 'AllUsers'")
}

func TestEncodeRecords_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := encodeRecords(&buf, "xml", sampleRecords)
	require.Error(t, err)
}

func TestOutputListTabular(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, outputListTabular(&buf, sampleRecords))

	out := buf.String()
	assert.Contains(t, out, "Scope: CurrentUser")
	assert.Contains(t, out, "Scope: AllUsers")
	assert.Contains(t, out, "Arial")
	assert.Contains(t, out, "/usr/share/fonts/Times.ttf")

	// CurrentUser group comes before AllUsers, matching record order.
	assert.Less(t,
		strings.Index(out, "Scope: CurrentUser"),
		strings.Index(out, "Scope: AllUsers"))
}

func TestOutputListTabular_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, outputListTabular(&buf, nil))
	assert.Contains(t, buf.String(), "No fonts found")
}
