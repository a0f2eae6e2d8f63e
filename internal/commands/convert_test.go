package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moasq/menuforge/internal/config"
	"github.com/moasq/menuforge/internal/legacy"
)

const twoMenus = `id: settings
level: config
options:
  fixed_height: 18
title: Configuration
sections:
  - heading: Commands
    items:
      - {label: show, commands: [show]}
---
level: help
title: Help
sections:
  - heading: Navigation
    items:
      - {label: quit, type: action}
`

func TestReadLegacyFromFileAndStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoMenus), 0o644))

	docs, err := readLegacy(nil, path)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, 18, docs[0].Options.FixedHeight)

	docs, err = readLegacy(strings.NewReader(twoMenus), "-")
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	_, err = readLegacy(nil, filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestApplyConvertFlags(t *testing.T) {
	t.Cleanup(func() {
		convertLevel = ""
		convertOpts = legacy.Options{}
	})

	docs, err := readLegacy(strings.NewReader(twoMenus), "-")
	require.NoError(t, err)

	n := applyConvertFlags(docs[0].Named(0))
	assert.Equal(t, legacy.Options{FixedHeight: 18}, n.Options)
	assert.Equal(t, "config", n.Context.Level)

	convertLevel = "templates"
	convertOpts = legacy.Options{MaxSeparatorLength: 70}
	n = applyConvertFlags(docs[0].Named(0))
	assert.Equal(t, legacy.Options{FixedHeight: 18, MaxSeparatorLength: 70}, n.Options)
	assert.Equal(t, "templates", n.Context.Level)
	assert.Equal(t, "settings", n.ID)
}

func TestRenderRequests(t *testing.T) {
	t.Cleanup(func() { renderLevel = "" })
	a := &app{cfg: &config.Config{Skin: "phoenix", Menu: "main"}}

	reqs := renderRequests(a, nil)
	require.Len(t, reqs, 1)
	assert.Equal(t, "phoenix", reqs[0].SkinID)
	assert.Equal(t, "main", reqs[0].MenuID)

	renderLevel = "main"
	reqs = renderRequests(a, []string{"qms", "main", "documents", "audit"})
	require.Len(t, reqs, 3)
	assert.Equal(t, "documents", reqs[1].MenuID)
	assert.Equal(t, "qms", reqs[2].SkinID)
	assert.Equal(t, "main", reqs[2].Context.Level)
}
