package animations

// LoopMode controls what happens when a clip reaches its last frame.
type LoopMode int

const (
	// Loop wraps back to the first frame.
	Loop LoopMode = iota
	// Once plays through, then rests on the first frame and reports completion.
	Once
	// ClampForever plays through and holds the last frame.
	ClampForever
)

func (m LoopMode) String() string {
	switch m {
	case Loop:
		return "loop"
	case Once:
		return "once"
	case ClampForever:
		return "clamp_forever"
	}
	return "unknown"
}

// State is the playback state of the current clip.
type State int

const (
	Stopped State = iota
	Running
	Completed
)

// Clip is the metadata of a named animation.
type Clip struct {
	Frames int
	FPS    float64
}

// Animator plays named clips on the simulation clock.
type Animator struct {
	clips      map[string]Clip
	defaultFPS float64

	name    string
	clip    Clip
	loop    LoopMode
	frame   int
	elapsed float64
	state   State
}

// NewAnimator builds an animator over a clip table. Clips with no rate play at
// defaultFPS; unknown clips play as a single frame.
func NewAnimator(clips map[string]Clip, defaultFPS float64) *Animator {
	if defaultFPS <= 0 {
		defaultFPS = 10
	}
	return &Animator{
		clips:      clips,
		defaultFPS: defaultFPS,
	}
}

func (a *Animator) lookup(name string) Clip {
	c, ok := a.clips[name]
	if !ok || c.Frames <= 0 {
		c.Frames = 1
	}
	if c.FPS <= 0 {
		c.FPS = a.defaultFPS
	}
	return c
}

// Play starts a clip from its first frame.
func (a *Animator) Play(name string, loop LoopMode) {
	a.PlayAtFrame(name, 0, loop)
}

// PlayAtFrame starts a clip from the given frame, clamped to the clip length.
func (a *Animator) PlayAtFrame(name string, frame int, loop LoopMode) {
	a.name = name
	a.clip = a.lookup(name)
	a.loop = loop
	a.elapsed = 0
	a.state = Running
	if frame < 0 {
		frame = 0
	}
	if frame >= a.clip.Frames {
		frame = a.clip.Frames - 1
	}
	a.frame = frame
}

// Update advances playback by dt seconds.
func (a *Animator) Update(dt float64) {
	if a.state != Running {
		return
	}

	a.elapsed += dt
	step := 1 / a.clip.FPS
	for a.elapsed >= step && a.state == Running {
		a.elapsed -= step
		a.frame++
		if a.frame < a.clip.Frames {
			continue
		}
		switch a.loop {
		case Loop:
			a.frame = 0
		case Once:
			a.frame = 0
			a.state = Completed
		case ClampForever:
			a.frame = a.clip.Frames - 1
			a.state = Completed
		}
	}
}

// Name returns the current clip name.
func (a *Animator) Name() string {
	return a.name
}

// LoopMode returns the loop mode the current clip was started with.
func (a *Animator) LoopMode() LoopMode {
	return a.loop
}

// IsActive reports whether name is the current clip, finished or not.
func (a *Animator) IsActive(name string) bool {
	return a.state != Stopped && a.name == name
}

// Frame returns the current frame index.
func (a *Animator) Frame() int {
	return a.frame
}

// State returns the playback state.
func (a *Animator) State() State {
	return a.state
}

// Completed reports whether a Once or ClampForever clip has finished.
func (a *Animator) Completed() bool {
	return a.state == Completed
}

// Stop halts playback.
func (a *Animator) Stop() {
	a.state = Stopped
}
