package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/gridmeta/gridmeta/compat"
	"github.com/gridmeta/gridmeta/version"
)

func TestReportSpan(t *testing.T) {
	s := compat.NewSpan(compat.FeatureWatch, version.New(1, 2, 259))
	r := reportSpan(s)
	assert.Equal(t, "watch", r.Feature)
	assert.Equal(t, "1.2.259", r.Since)
	assert.Empty(t, r.Until)

	r = reportSpan(s.WithUntil(version.New(1, 2, 700)))
	assert.Equal(t, "1.2.700", r.Until)

	r = reportSpan(compat.NewSpan(compat.FeatureKVList, version.Max()))
	assert.Equal(t, "reserved", r.Since)
}

func TestOrDash(t *testing.T) {
	assert.Equal(t, "-", orDash(""))
	assert.Equal(t, "1.2.3", orDash("1.2.3"))
}

func TestVersionCmdJSON(t *testing.T) {
	var buf bytes.Buffer
	VersionCmd.SetOut(&buf)
	VersionCmd.SetArgs([]string{"--json"})
	require.NoError(t, VersionCmd.Execute())

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, version.Release, out["release"])
	assert.NotEmpty(t, out["min_compatible_server"])
	assert.NotEmpty(t, out["min_compatible_client"])
}

func TestFeaturesCmdYAML(t *testing.T) {
	var buf bytes.Buffer
	FeaturesCmd.SetOut(&buf)
	FeaturesCmd.SetArgs([]string{"--format", "yaml", "--role", "client"})
	require.NoError(t, FeaturesCmd.Execute())

	var report featuresReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &report))

	require.Contains(t, report.Roles, "client")
	assert.NotContains(t, report.Roles, "server")
	assert.Len(t, report.Roles["client"], len(compat.All()))
	assert.Equal(t, version.Release, report.Version)
}

func TestFeaturesCmdRejectsBadFlags(t *testing.T) {
	FeaturesCmd.SetOut(&bytes.Buffer{})
	FeaturesCmd.SetErr(&bytes.Buffer{})

	FeaturesCmd.SetArgs([]string{"--format", "xml"})
	assert.Error(t, FeaturesCmd.Execute())

	FeaturesCmd.SetArgs([]string{"--format", "table", "--role", "proxy"})
	assert.Error(t, FeaturesCmd.Execute())
}
