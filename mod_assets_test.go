package bubbles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gekko3d/bubbles/meshrt/rt/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetServer_LoadMeshCachesByPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.txt")
	require.NoError(t, os.WriteFile(path, []byte("0\n"), 0o644))

	server := NewAssetServer()
	id1, err := server.LoadMesh(path, 1)
	require.NoError(t, err)
	id2, err := server.LoadMesh(filepath.Join(dir, ".", "mesh.txt"), 1)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	_, err = uuid.Parse(string(id1))
	assert.NoError(t, err, "asset ids are uuids")
}

func TestAssetServer_AddMesh(t *testing.T) {
	server := NewAssetServer()
	mesh := &core.Mesh{Name: "inline", Data: make([]float32, core.FloatsPerVertex)}

	id := server.AddMesh(mesh)
	got, ok := server.Mesh(id)
	require.True(t, ok)
	assert.Same(t, mesh, got)

	assert.NotEqual(t, id, server.AddMesh(mesh), "every add gets a fresh id")

	_, ok = server.Mesh("unknown")
	assert.False(t, ok)
}

func TestAssetServer_LoadMeshError(t *testing.T) {
	server := NewAssetServer()
	_, err := server.LoadMesh(filepath.Join(t.TempDir(), "none.txt"), 1)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, server.byPath)
}

func TestMeshModule_DefaultScale(t *testing.T) {
	app := NewAppBuilder().UseModule(MeshModule{Path: "x.txt"}).Build()

	scene := mustResource[SceneMesh](t, app)
	assert.Equal(t, core.DefaultMeshScale, scene.Scale)
	mustResource[AssetServer](t, app)
}
