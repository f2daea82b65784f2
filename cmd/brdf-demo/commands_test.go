package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brdf-demo/config"
)

func TestWriteAssetTable(t *testing.T) {
	cfg := config.Default()
	cfg.Objects.Ball = config.ObjectConfig{Mesh: config.BuiltinSphere, Scale: 1}
	cfg.Objects.Light = config.ObjectConfig{Mesh: config.BuiltinSphere, Scale: 0.3}

	var buf bytes.Buffer
	require.NoError(t, writeAssetTable(&buf, cfg))

	out := buf.String()
	assert.Contains(t, out, "Object")
	assert.Contains(t, out, "ball")
	assert.Contains(t, out, "light")
	assert.Contains(t, out, "0.30")
	assert.Contains(t, out, "2.00 x 2.00 x 2.00")
	assert.Contains(t, out, "white (1x1)")
	assert.Contains(t, out, "TOTAL")
}

func TestWriteAssetTableMissingMesh(t *testing.T) {
	cfg := config.Default()
	cfg.AssetDir = t.TempDir()

	err := writeAssetTable(&bytes.Buffer{}, cfg)
	assert.ErrorContains(t, err, "ball")
}
