package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffwilliams/wiredlist"
	"github.com/jeffwilliams/wiredlist/internal/script"
)

const sampleScript = `
[lists]
a = ["a", "b", "c", "d"]
b = ["x", "y", "z"]

[[step]]
op = "exchange"
list = "a"
from = 1
to = 3
other = "b"
other-from = 0
other-to = 2
`

func load(t *testing.T, text string) *script.Script {
	t.Helper()
	s, err := script.Load(strings.NewReader(text))
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	return s
}

func TestRunScriptText(t *testing.T) {
	var out, errOut bytes.Buffer
	err := runScript(&out, &errOut, load(t, sampleScript), defaultSettings())
	require.NoError(t, err)

	expected := `step 0: start
  a: [a b c d]
  b: [x y z]
step 1: exchange
  a: [a x y d]
  b: [b c z]
`
	assert.Equal(t, expected, out.String())
	assert.Empty(t, errOut.String())
}

func TestRunScriptCsv(t *testing.T) {
	var out, errOut bytes.Buffer
	s := defaultSettings()
	s.Output = OutputSettings{Format: "csv", Separator: "|"}

	err := runScript(&out, &errOut, load(t, sampleScript), s)
	require.NoError(t, err)

	expected := `step,op,list,len,values
0,start,a,4,a|b|c|d
0,start,b,3,x|y|z
1,exchange,a,4,a|x|y|d
1,exchange,b,3,b|c|z
`
	assert.Equal(t, expected, out.String())
}

func TestRunScriptFailurePrintsHistory(t *testing.T) {
	text := sampleScript + `
[[step]]
op = "reverse"
list = "b"

[[step]]
op = "move"
list = "a"
from = 0
to = 2
dest = 9
`
	var out, errOut bytes.Buffer
	s := defaultSettings()
	s.History.Size = 2

	err := runScript(&out, &errOut, load(t, text), s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wiredlist.ErrRange))

	e := errOut.String()
	assert.Contains(t, e, "step 3 (move a[0:2] to 9)")
	assert.Contains(t, e, "last 2 states:")
	assert.Contains(t, e, "step 1: exchange\n")
	assert.Contains(t, e, "step 2: reverse\n  a: [a x y d]\n  b: [z c b]\n")
	assert.NotContains(t, e, "step 0: start")
}

func TestRunScriptBadFormat(t *testing.T) {
	s := defaultSettings()
	s.Output.Format = "xml"
	err := runScript(&bytes.Buffer{}, &bytes.Buffer{}, load(t, sampleScript), s)
	assert.Error(t, err)
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[output]
format = "csv"
separator = ","

[debug]
max-entries = 7

[history]
size = 3
`), 0o644))

	s := defaultSettings()
	require.NoError(t, LoadSettingsFromFile(path, &s))
	assert.Equal(t, "csv", s.Output.Format)
	assert.Equal(t, ",", s.Output.Separator)
	assert.Equal(t, 7, s.Debug.MaxEntries)
	assert.Equal(t, 3, s.History.Size)

	err := LoadSettingsFromFile(filepath.Join(t.TempDir(), "none.toml"), &s)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSampleSettingsParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte(GenerateSampleSettings()), 0o644))

	s := defaultSettings()
	require.NoError(t, LoadSettingsFromFile(path, &s))
	assert.Equal(t, defaultSettings(), s)
}

func TestStartProfilingRejectsUnknown(t *testing.T) {
	assert.Error(t, startProfiling("disk"))
	assert.False(t, isProfiling())
}

func TestDumpLog(t *testing.T) {
	log(LogCatgOutput, "hello %s\n", "log")
	var b bytes.Buffer
	dumpLog(&b)
	assert.Contains(t, b.String(), "<Output>")
	assert.Contains(t, b.String(), "hello log")
}
