package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Constructors release partially built passes on failure, so Release must
// cope with any subset of resources being nil.
func TestPasses_ReleasePartial(t *testing.T) {
	assert.NotPanics(t, func() { (&MeshPass{}).Release() })
	assert.NotPanics(t, func() { (&TextPass{}).Release() })
}

func TestMeshPass_DrawWithoutInstancesIsNoop(t *testing.T) {
	p := &MeshPass{VertexCount: 3}
	assert.NotPanics(t, func() { p.Draw(nil) })
}
