package bubbles

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"
)

// Profiler keeps the last duration of named scopes plus counters and FPS.
type Profiler struct {
	Scopes     map[string]time.Duration
	StartTimes map[string]time.Time
	Counts     map[string]int
	Order      []string

	FPS        float64
	frames     int
	frameTime  time.Duration
	ReportRate time.Duration
}

func NewProfiler() *Profiler {
	return &Profiler{
		Scopes:     make(map[string]time.Duration),
		StartTimes: make(map[string]time.Time),
		Counts:     make(map[string]int),
		ReportRate: time.Second,
	}
}

func (p *Profiler) BeginScope(name string) {
	p.StartTimes[name] = time.Now()
	if !slices.Contains(p.Order, name) {
		p.Order = append(p.Order, name)
	}
}

func (p *Profiler) EndScope(name string) {
	if start, ok := p.StartTimes[name]; ok {
		p.Scopes[name] = time.Since(start)
	}
}

func (p *Profiler) SetCount(name string, count int) {
	p.Counts[name] = count
}

// Tick accumulates one frame and reports true once per ReportRate, when FPS
// has just been recomputed.
func (p *Profiler) Tick(dt time.Duration) bool {
	p.frames++
	p.frameTime += dt
	if p.frameTime < p.ReportRate || p.frameTime <= 0 {
		return false
	}
	p.FPS = float64(p.frames) / p.frameTime.Seconds()
	p.frames = 0
	p.frameTime = 0
	return true
}

func (p *Profiler) GetStatsString() string {
	var sb strings.Builder

	sb.WriteString("Timings (CPU):\n")
	for _, name := range p.Order {
		ms := float64(p.Scopes[name].Microseconds()) / 1000.0
		sb.WriteString(fmt.Sprintf("  %-10s: %.2f ms\n", name, ms))
	}

	sb.WriteString("Stats:\n")
	keys := make([]string, 0, len(p.Counts))
	for k := range p.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %-10s: %d\n", k, p.Counts[k]))
	}

	return sb.String()
}

type ProfilerModule struct{}

func (ProfilerModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewProfiler())
	app.UseSystem(
		System(profilerReportSystem).
			InStage(Finale),
	)
}

func profilerReportSystem(p *Profiler, t *Time, log Logger) {
	if !p.Tick(t.Dt) {
		return
	}
	if log.DebugEnabled() {
		log.Debugf("FPS %.1f\n%s", p.FPS, p.GetStatsString())
	}
}
