// Package components implements the behaviors that can be attached to an
// entity: rendering, animation, movement, shooting and damage.
package components

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/pthm-cable/invaders/entity"
	"github.com/pthm-cable/invaders/platform"
)

var (
	// ErrUnknownSequence is returned when an animator has no sequence by the requested name.
	ErrUnknownSequence = errors.New("unknown animation sequence")

	// ErrEmptySequence is returned when a sequence directory holds no frames.
	ErrEmptySequence = errors.New("empty animation sequence")
)

// Sequence is an ordered list of animation frames.
type Sequence struct {
	textures   []platform.TextureID
	sampleRate int // frames per second
	loop       bool
	current    int
}

// NewSequence builds a sequence from already loaded textures.
func NewSequence(textures []platform.TextureID, sampleRate int, loop bool) (*Sequence, error) {
	if len(textures) == 0 {
		return nil, ErrEmptySequence
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	return &Sequence{textures: textures, sampleRate: sampleRate, loop: loop}, nil
}

// LoadSequence loads every file in dir, in lexicographic order, as consecutive frames.
func LoadSequence(assets platform.Assets, dir string, sampleRate int, loop bool) (*Sequence, error) {
	// fs.ReadDir returns entries sorted by filename.
	entries, err := fs.ReadDir(assets.FS(), dir)
	if err != nil {
		return nil, fmt.Errorf("listing sequence %s: %w", dir, err)
	}

	var textures []platform.TextureID
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		tex, err := assets.LoadTexture(path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading sequence %s: %w", dir, err)
		}
		textures = append(textures, tex)
	}

	seq, err := NewSequence(textures, sampleRate, loop)
	if err != nil {
		return nil, fmt.Errorf("sequence %s: %w", dir, err)
	}
	return seq, nil
}

// Clone returns a copy rewound to the first frame that shares the textures.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{textures: s.textures, sampleRate: s.sampleRate, loop: s.loop}
}

// CurrentTexture returns the frame being shown.
func (s *Sequence) CurrentTexture() platform.TextureID {
	return s.textures[s.current]
}

// Frame returns the index of the frame being shown.
func (s *Sequence) Frame() int {
	return s.current
}

// Len returns the number of frames.
func (s *Sequence) Len() int {
	return len(s.textures)
}

// FrameInterval returns the milliseconds each frame stays on screen.
func (s *Sequence) FrameInterval() float64 {
	return 1000.0 / float64(s.sampleRate)
}

// Advance moves to the next frame. It returns true when the sequence is on
// its last frame and does not loop; the frame then stays on the last one.
func (s *Sequence) Advance() bool {
	if s.current == len(s.textures)-1 {
		if !s.loop {
			return true
		}
		s.current = 0
		return false
	}
	s.current++
	return false
}

// Animator plays one of several named sequences.
type Animator struct {
	container  entity.Entity
	sequences  map[string]*Sequence
	current    string
	lastChange uint64 // ms
	finished   bool
}

// NewAnimator creates an animator playing defaultSequence, starting at now.
func NewAnimator(container entity.Entity, sequences map[string]*Sequence, defaultSequence string, now uint64) (*Animator, error) {
	if _, ok := sequences[defaultSequence]; !ok {
		return nil, fmt.Errorf("animator default %q: %w", defaultSequence, ErrUnknownSequence)
	}
	return &Animator{
		container:  container,
		sequences:  sequences,
		current:    defaultSequence,
		lastChange: now,
	}, nil
}

// Current returns the name of the playing sequence.
func (a *Animator) Current() string {
	return a.current
}

// Finished reports whether the playing sequence ran to its end without looping.
func (a *Animator) Finished() bool {
	return a.finished
}

// Has reports whether the animator knows a sequence called name.
func (a *Animator) Has(name string) bool {
	_, ok := a.sequences[name]
	return ok
}

// Sequence returns the named sequence, or nil.
func (a *Animator) Sequence(name string) *Sequence {
	return a.sequences[name]
}

// SetSequence switches to the named sequence. Switching to the sequence
// already playing does nothing.
func (a *Animator) SetSequence(name string, now uint64) error {
	if _, ok := a.sequences[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSequence, name)
	}
	if name == a.current {
		return nil
	}
	a.current = name
	a.lastChange = now
	return nil
}

func (a *Animator) Update(ctx *entity.Context) {
	seq := a.sequences[a.current]
	now := ctx.Now()
	if float64(now-a.lastChange) >= seq.FrameInterval() {
		a.finished = seq.Advance()
		a.lastChange = now
	}
}

func (a *Animator) Draw(r platform.Renderer) {
	tex := a.sequences[a.current].CurrentTexture()
	r.DrawTexture(tex, a.container.Position(), a.container.Rotation())
}

func (a *Animator) OnCollision(ctx *entity.Context, other entity.Entity) {}
