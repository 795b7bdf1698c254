package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	root.SetArgs(append([]string{"--config", configPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestAskPrintsTranscript(t *testing.T) {
	out, err := execute(t, "ask", "do", "we", "have", "flower", "stock")
	require.NoError(t, err)
	assert.Contains(t, out, "You: do we have flower stock")
	assert.Contains(t, out, "TempleOps: Flower stock:")
	assert.NotContains(t, out, "== Canvas ==")
}

func TestAskFollowUpsMergePlanner(t *testing.T) {
	out, err := execute(t, "ask", "add review budget to plan", "--then", "add notify security to plan")
	require.NoError(t, err)
	assert.Contains(t, out, "== Canvas ==")
	assert.Contains(t, out, "## Your Planner Actions\n[·] Review budget\n[·] Notify security")
	assert.Equal(t, 2, strings.Count(out, "(Planning…)"))
}

func TestAskPacedUsesRunner(t *testing.T) {
	t.Setenv("TEMPLEOPS_THINK_DELAY", "1ms")
	t.Setenv("TEMPLEOPS_SECTION_CHAR_DELAY", "1us")
	t.Setenv("TEMPLEOPS_SECTION_PAUSE", "1us")
	t.Setenv("TEMPLEOPS_CHAT_CHAR_DELAY", "1us")
	out, err := execute(t, "ask", "--paced", "add review budget to plan")
	require.NoError(t, err)
	assert.Contains(t, out, "[·] Review budget")
}

func TestAskRecommendationShowsDisplayText(t *testing.T) {
	out, err := execute(t, "ask", "--rec", "Sharan Navaratri")
	require.NoError(t, err)
	assert.Contains(t, out, "You: Sharan Navaratri\n")
	assert.NotContains(t, out, "[REC]")
	assert.Contains(t, out, "== Canvas ==")
}

func TestParsePrintsJSON(t *testing.T) {
	out, err := execute(t, "parse", "--now", "2024-03-10", "Tomorrow 9 AM, Prime Minister Modi is visiting Sringeri")
	require.NoError(t, err)

	var res struct {
		Intent string `json:"intent"`
		Data   struct {
			Visitor       string `json:"visitor"`
			Time          string `json:"time"`
			Location      string `json:"location"`
			ProtocolLevel string `json:"protocolLevel"`
		} `json:"data"`
		Entities struct {
			Time struct {
				Hour int `json:"hour"`
			} `json:"time"`
			Person struct {
				Name string `json:"name"`
			} `json:"person"`
			Location struct {
				Name string `json:"name"`
			} `json:"location"`
		} `json:"entities"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "vip-visit", res.Intent)
	assert.Equal(t, "09:00", res.Data.Time)
	assert.Equal(t, "Sringeri", res.Data.Location)
	assert.Equal(t, "maximum", res.Data.ProtocolLevel)
	assert.Equal(t, 9, res.Entities.Time.Hour)
	assert.Contains(t, res.Entities.Person.Name, "Modi")
	assert.Equal(t, "Sringeri", res.Entities.Location.Name)
}

func TestParseHelpListsIntents(t *testing.T) {
	out, err := execute(t, "parse", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Intents, highest priority first: vip-visit")
}

func TestParseRejectsBadReference(t *testing.T) {
	_, err := execute(t, "parse", "--now", "next tuesday", "hello")
	assert.ErrorContains(t, err, "invalid --now")
}

func TestSummarizeMissingFile(t *testing.T) {
	_, err := execute(t, "summarize", filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorContains(t, err, "failed to read")
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templeops", "config.yaml")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "config", "init"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "think_delay: 800ms")

	root = newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "config", "init"})
	assert.ErrorContains(t, root.Execute(), "already exists")

	out.Reset()
	root = newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "config", "show"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "alt_screen: true")
}
