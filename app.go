package bubbles

import (
	"fmt"
	"reflect"
	"runtime"
	"time"
)

type systemFn any

type Module interface {
	Install(app *App, cmd *Commands)
}

// App owns the resources and the staged systems of the demo. It implements
// platform.Handler so a window can drive it frame by frame.
type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	loaded    bool
	exit      bool
}

func newApp() *App {
	app := &App{
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = make([]systemFn, 0)
	}
	app.systems[Startup.Name] = make([]systemFn, 0)
	app.systems[Shutdown.Name] = make([]systemFn, 0)
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// Resource returns the resource of type T if one was added.
func Resource[T any](app *App) (*T, bool) {
	r, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	typed, ok := r.(*T)
	return typed, ok
}

func (app *App) OnLoad() error {
	if app.loaded {
		return nil
	}
	for _, system := range app.systems[Startup.Name] {
		if err := app.callSystem(system); err != nil {
			return fmt.Errorf("startup system %s: %w", systemName(system), err)
		}
	}
	app.loaded = true
	app.Logger().Debugf("startup complete, %d resources", len(app.resources))
	return nil
}

func (app *App) OnUpdate(dt time.Duration) {
	if t, ok := Resource[Time](app); ok {
		t.next = dt
	}
	prof, _ := Resource[Profiler](app)
	if prof != nil {
		prof.BeginScope("Update")
	}
	app.callStages(updatePhase)
	if prof != nil {
		prof.EndScope("Update")
	}
}

func (app *App) OnRender() {
	prof, _ := Resource[Profiler](app)
	if prof != nil {
		prof.BeginScope("Render")
	}
	app.callStages(renderPhase)
	if prof != nil {
		prof.EndScope("Render")
	}
}

func (app *App) OnResize(width, height int) {
	if vp, ok := Resource[Viewport](app); ok {
		vp.resize(width, height)
	}
}

func (app *App) OnScroll(dy float64) {
	if in, ok := Resource[Input](app); ok {
		in.pendingScroll += dy
	}
}

func (app *App) ShouldExit() bool {
	return app.exit
}

// Close runs the shutdown systems. Their errors are logged, not returned.
func (app *App) Close() {
	for _, system := range app.systems[Shutdown.Name] {
		if err := app.callSystem(system); err != nil {
			app.Logger().Errorf("shutdown system %s: %v", systemName(system), err)
		}
	}
}

func (app *App) callStages(phase framePhase) {
	for _, stage := range app.stages {
		if stage.phase != phase {
			continue
		}
		for _, system := range app.systems[stage.Name] {
			if err := app.callSystem(system); err != nil {
				msg := fmt.Sprintf("system %s failed in stage %s: %v", systemName(system), stage.Name, err)
				app.Logger().Errorf("%s", msg)
				panic(msg)
			}
		}
	}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

func (app *App) callSystem(system systemFn) error {
	out := app.callSystemInternal(system)
	if len(out) == 1 && out[0].Type() == typeOfError && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}

var (
	typeOfCommands = reflect.TypeOf(Commands{})
	typeOfLogger   = reflect.TypeOf((*Logger)(nil)).Elem()
	typeOfError    = reflect.TypeOf((*error)(nil)).Elem()
)

func systemName(system systemFn) string {
	return runtime.FuncForPC(reflect.ValueOf(system).Pointer()).Name()
}

func (app *App) callSystemInternal(system systemFn) []reflect.Value {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)

		if argType == typeOfLogger {
			args[i] = reflect.ValueOf(app.Logger())
			continue
		}

		if argType.Kind() == reflect.Pointer {
			underlyingType := argType.Elem()
			if underlyingType == typeOfCommands {
				args[i] = reflect.ValueOf(&Commands{app: app})
				continue
			}
			if resource, argIsResource := app.resources[underlyingType]; argIsResource {
				args[i] = reflect.ValueOf(resource)
				continue
			}
		}

		msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
			systemName(system),
			fmt.Sprint(systemType),
			fmt.Sprint(argType),
		)
		app.Logger().Errorf("%s", msg)
		panic(msg)
	}
	return systemValue.Call(args)
}
