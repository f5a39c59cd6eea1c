package game

import "github.com/pthm-cable/invaders/platform"

// Autopilot is a scripted InputSource for headless runs. It holds fire
// and sweeps the ship right then left, sweepTicks frames each way.
type Autopilot struct {
	sweepTicks int
	polls      int
	quit       bool
}

// NewAutopilot creates an autopilot that changes direction every sweepTicks frames.
func NewAutopilot(sweepTicks int) *Autopilot {
	if sweepTicks < 1 {
		sweepTicks = 1
	}
	return &Autopilot{sweepTicks: sweepTicks}
}

// IsKeyDown implements platform.InputSource.
func (a *Autopilot) IsKeyDown(k platform.Key) bool {
	// polls counts the current frame; the first frame is 1.
	movingRight := ((a.polls-1)/a.sweepTicks)%2 == 0
	switch k {
	case platform.KeySpace:
		return true
	case platform.KeyRight:
		return movingRight
	case platform.KeyLeft:
		return !movingRight
	}
	return false
}

// PollQuit implements platform.InputSource. Each call marks a new frame.
func (a *Autopilot) PollQuit() bool {
	a.polls++
	return a.quit
}

// Stop makes the next PollQuit report quit.
func (a *Autopilot) Stop() {
	a.quit = true
}
