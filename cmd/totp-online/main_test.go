package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matiboux/totp-online/app/locales"
	"github.com/matiboux/totp-online/core/config"
)

func TestRunLocales(t *testing.T) {
	t.Run("text report", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, run([]string{"locales"}, &stdout, &stderr))
		assert.Contains(t, stdout.String(), "base locale: en (29 keys)")
		assert.Contains(t, stdout.String(), "fr")
	})

	t.Run("json report", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, run([]string{"locales", "-json"}, &stdout, &stderr))

		var rep locales.Report
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &rep))
		assert.True(t, rep.Complete())
	})

	t.Run("unknown flag", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		assert.Error(t, run([]string{"locales", "-yaml"}, &stdout, &stderr))
	})
}

func TestRunVersion(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("GITHUB_SHA", "")
	t.Setenv("VERSION_TAG", "v3.1.4")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"version"}, &stdout, &stderr))
	assert.Equal(t, "v3.1.4\n", stdout.String())
}

func TestRunVersionFromBuild(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv("GITHUB_SHA", "")
	t.Setenv("VERSION_TAG", "")

	prev := commitSHA
	commitSHA = "feedbeef42"
	t.Cleanup(func() { commitSHA = prev })

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"version"}, &stdout, &stderr))
	assert.Equal(t, "feedbee\n", stdout.String())
}

func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"frobnicate"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "usage:")

	stdout.Reset()
	require.NoError(t, run([]string{"help"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "usage:")
}
