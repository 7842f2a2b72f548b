// Package animation executes indicator plans frame by frame.
package animation

import (
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/atomicstack/edgemenu/internal/indicator"
)

const (
	DefaultFPS = 60

	bounceDamping = 0.6
	settleDamping = 1.0
	// angular frequency per second of step duration; high enough that the
	// spring is visually settled before the step deadline snaps it.
	frequencyScale = 7.0
)

// Player springs a value through the steps of one plan at a time.
type Player struct {
	fps      int
	plan     indicator.Plan
	step     int
	elapsed  time.Duration
	value    float64
	velocity float64
	spring   harmonica.Spring
	active   bool
}

// NewPlayer returns an idle player ticking at fps frames per second.
func NewPlayer(fps int) *Player {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Player{fps: fps}
}

// FrameInterval is the wall-clock time represented by one Advance call.
func (p *Player) FrameInterval() time.Duration {
	return time.Second / time.Duration(p.fps)
}

// Start begins plan from the given value, replacing any running plan.
func (p *Player) Start(plan indicator.Plan, from float64) {
	p.plan = plan
	p.step = 0
	p.elapsed = 0
	p.value = from
	p.velocity = 0
	p.active = len(plan.Steps) > 0
	if p.active {
		p.prepareStep()
	}
}

// Stop abandons the running plan, leaving the value where it is.
func (p *Player) Stop() {
	p.active = false
}

// Active reports whether a plan is running.
func (p *Player) Active() bool {
	return p.active
}

// Plan returns the most recently started plan.
func (p *Player) Plan() indicator.Plan {
	return p.plan
}

// Value returns the current interpolated value.
func (p *Player) Value() float64 {
	return p.value
}

// Advance moves the animation forward by one frame and reports whether the
// plan has finished. Each step lands exactly on its target at its deadline.
func (p *Player) Advance() (float64, bool) {
	if !p.active {
		return p.value, true
	}
	frame := p.FrameInterval()
	for p.active {
		step := p.plan.Steps[p.step]
		if p.elapsed+frame < step.Duration {
			p.elapsed += frame
			p.value, p.velocity = p.spring.Update(p.value, p.velocity, step.Target)
			return p.value, false
		}
		frame -= step.Duration - p.elapsed
		p.value = step.Target
		p.velocity = 0
		p.step++
		p.elapsed = 0
		if p.step >= len(p.plan.Steps) {
			p.active = false
			break
		}
		p.prepareStep()
		if frame <= 0 {
			return p.value, false
		}
	}
	return p.value, true
}

func (p *Player) prepareStep() {
	step := p.plan.Steps[p.step]
	damping := settleDamping
	if p.step < len(p.plan.Steps)-1 {
		damping = bounceDamping
	}
	seconds := step.Duration.Seconds()
	if seconds <= 0 {
		seconds = 1 / float64(p.fps)
	}
	p.spring = harmonica.NewSpring(harmonica.FPS(p.fps), frequencyScale/seconds, damping)
}
