package bubbles

import (
	"fmt"
	"reflect"
	"slices"
)

type framePhase int

const (
	startupPhase framePhase = iota
	updatePhase
	renderPhase
	shutdownPhase
)

type Stage struct {
	Name  string
	phase framePhase
}

var (
	// Startup systems run once from OnLoad; returning an error aborts loading.
	Startup = Stage{Name: "Startup", phase: startupPhase}

	Prelude    = Stage{Name: "Prelude", phase: updatePhase}
	PreUpdate  = Stage{Name: "PreUpdate", phase: updatePhase}
	Update     = Stage{Name: "Update", phase: updatePhase}
	PostUpdate = Stage{Name: "PostUpdate", phase: updatePhase}
	PreRender  = Stage{Name: "PreRender", phase: renderPhase}
	Render     = Stage{Name: "Render", phase: renderPhase}
	PostRender = Stage{Name: "PostRender", phase: renderPhase}
	Finale     = Stage{Name: "Finale", phase: renderPhase}

	// Shutdown systems run from Close.
	Shutdown = Stage{Name: "Shutdown", phase: shutdownPhase}
)

var defaultStages = []Stage{Prelude, PreUpdate, Update, PostUpdate, PreRender, Render, PostRender, Finale}

type systemScheduleBuilder struct {
	inStage Stage
	system  systemFn
}

// System schedules fn in the Update stage unless InStage says otherwise.
// Every parameter of fn must be *Commands, Logger or a pointer to a resource;
// fn may return nothing or a single error.
func System(system systemFn) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  system,
		inStage: Update,
	}
}

func (sched systemScheduleBuilder) InStage(s Stage) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  sched.system,
		inStage: s,
	}
}

type stagePosition int

const (
	stageBefore stagePosition = iota
	stageAfter
)

type stagePositionBuilder struct {
	position stagePosition
	target   Stage
}

func BeforeStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageBefore,
		target:   s,
	}
}

func AfterStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageAfter,
		target:   s,
	}
}

// UseStage inserts a frame stage next to an existing one; the new stage runs
// in the same half of the frame (update or render) as its neighbour.
func (app *App) UseStage(stage Stage, where stagePositionBuilder) *App {
	var stageIdx int = -1
	for i, s := range app.stages {
		if s.Name == where.target.Name {
			stageIdx = i
			break
		}
	}
	if -1 == stageIdx {
		panic(fmt.Sprintf("Stage %v not found", where.target.Name))
	}
	if _, ok := app.systems[stage.Name]; ok {
		panic(fmt.Sprintf("Stage %v already exists", stage.Name))
	}

	var insertAt int
	if stageBefore == where.position {
		insertAt = stageIdx
	} else {
		insertAt = stageIdx + 1
	}

	stage.phase = app.stages[stageIdx].phase
	app.stages = slices.Insert(app.stages, insertAt, stage)
	app.systems[stage.Name] = make([]systemFn, 0)

	return app
}

func (app *App) UseSystem(system systemScheduleBuilder) *App {
	if reflect.TypeOf(system.system).Kind() != reflect.Func {
		panic(fmt.Sprintf("System %T is not a function", system.system))
	}
	if _, ok := app.systems[system.inStage.Name]; !ok {
		panic(fmt.Sprintf("Stage %v doesn't exist", system.inStage.Name))
	}
	app.systems[system.inStage.Name] = append(app.systems[system.inStage.Name], system.system)
	return app
}
