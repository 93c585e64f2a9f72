package bubbles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseStage(t *testing.T) {
	app := newApp()
	physics := Stage{Name: "Physics"}
	overlay := Stage{Name: "Overlay"}

	app.UseStage(physics, AfterStage(Update))
	app.UseStage(overlay, BeforeStage(PostRender))

	var order []string
	app.UseSystem(System(func() { order = append(order, "physics") }).InStage(physics))
	app.UseSystem(System(func() { order = append(order, "update") }).InStage(Update))
	app.UseSystem(System(func() { order = append(order, "overlay") }).InStage(overlay))

	app.OnUpdate(0)
	require.Equal(t, []string{"update", "physics"}, order, "inserted stage inherits the update phase")

	app.OnRender()
	assert.Equal(t, []string{"update", "physics", "overlay"}, order)
}

func TestUseStage_Panics(t *testing.T) {
	app := newApp()

	assert.PanicsWithValue(t, "Stage Missing not found", func() {
		app.UseStage(Stage{Name: "New"}, AfterStage(Stage{Name: "Missing"}))
	})
	assert.PanicsWithValue(t, "Stage Update already exists", func() {
		app.UseStage(Update, AfterStage(Render))
	})
}

func TestUseSystem_Panics(t *testing.T) {
	app := newApp()

	assert.PanicsWithValue(t, "Stage Nowhere doesn't exist", func() {
		app.UseSystem(System(func() {}).InStage(Stage{Name: "Nowhere"}))
	})
	assert.Panics(t, func() {
		app.UseSystem(System(42))
	})
}

func TestSystem_DefaultsToUpdate(t *testing.T) {
	assert.Equal(t, Update, System(func() {}).inStage)
}
