package bubbles

import (
	"fmt"
	"path/filepath"

	"github.com/gekko3d/bubbles/meshrt/rt/core"
	"github.com/google/uuid"
)

type AssetId string

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

// AssetServer keeps loaded meshes by id. Loading the same path twice returns
// the first id.
type AssetServer struct {
	meshes map[AssetId]*core.Mesh
	byPath map[string]AssetId
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		meshes: make(map[AssetId]*core.Mesh),
		byPath: make(map[string]AssetId),
	}
}

func (server *AssetServer) AddMesh(mesh *core.Mesh) AssetId {
	id := makeAssetId()
	server.meshes[id] = mesh
	return id
}

func (server *AssetServer) LoadMesh(path string, scale float32) (AssetId, error) {
	key := filepath.Clean(path)
	if id, ok := server.byPath[key]; ok {
		return id, nil
	}

	mesh, err := core.LoadMesh(path, scale)
	if err != nil {
		return "", err
	}
	id := server.AddMesh(mesh)
	server.byPath[key] = id
	return id, nil
}

func (server *AssetServer) Mesh(id AssetId) (*core.Mesh, bool) {
	mesh, ok := server.meshes[id]
	return mesh, ok
}

type AssetServerModule struct{}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[AssetServer](app); !ok {
		cmd.AddResources(NewAssetServer())
	}
}

// SceneMesh names the mesh every orbit instance draws.
type SceneMesh struct {
	Path  string
	Scale float32
	Id    AssetId
}

// MeshModule loads the scene mesh at startup. A missing or malformed file
// fails OnLoad.
type MeshModule struct {
	Path  string
	Scale float32
}

func (m MeshModule) Install(app *App, cmd *Commands) {
	AssetServerModule{}.Install(app, cmd)

	scale := m.Scale
	if scale == 0 {
		scale = core.DefaultMeshScale
	}
	cmd.AddResources(&SceneMesh{Path: m.Path, Scale: scale})
	app.UseSystem(
		System(loadSceneMeshSystem).
			InStage(Startup),
	)
}

func loadSceneMeshSystem(assets *AssetServer, scene *SceneMesh, log Logger) error {
	id, err := assets.LoadMesh(scene.Path, scene.Scale)
	if err != nil {
		return fmt.Errorf("failed to load scene mesh: %w", err)
	}
	scene.Id = id

	mesh, _ := assets.Mesh(id)
	log.Infof("Loaded mesh %s: %d vertices (asset %s)", mesh.Name, mesh.VertexCount(), id)
	return nil
}
