package game

import "github.com/ajai-sharma-backup/2048/internal/board"

// Animation durations in ticks (at 60fps).
const (
	slideAnimationDuration = 8 // ~133ms
	popAnimationDuration   = 6 // ~100ms
)

// AnimationPhase represents the current phase of animation.
type AnimationPhase int

const (
	PhaseNone AnimationPhase = iota
	PhaseSlide
	PhasePop
)

// TileAnimation is one tile in flight, built from an engine move or merge
// event. Coordinates are grid cells; the renderer interpolates between
// them.
type TileAnimation struct {
	Value    int // value shown while moving (pre-merge value for merges)
	FromRow  int
	FromCol  int
	ToRow    int
	ToCol    int
	Progress float64 // 0.0 → 1.0
	Merged   bool    // result of a merge (for visual emphasis)
	IsNew    bool    // freshly spawned tile (pop effect)
}

// PendingTile is a spawned tile waiting for its pop animation.
type PendingTile struct {
	Row, Col int
	Value    int
}

// startSlideAnimation builds tile animations from the engine's event
// sequence. Cells that are event destinations are suppressed from static
// rendering until the slide lands.
func (s *Session) startSlideAnimation(events []board.Event) {
	s.animations = nil
	s.suppressed = make(map[[2]int]bool)
	for _, e := range events {
		s.animations = append(s.animations, TileAnimation{
			Value:   e.Value,
			FromRow: e.SrcRow,
			FromCol: e.SrcCol,
			ToRow:   e.DstRow,
			ToCol:   e.DstCol,
			Merged:  e.Kind == board.EventMerge,
		})
		s.suppressed[[2]int{e.DstRow, e.DstCol}] = true
	}
	if s.pendingNewTile != nil {
		s.suppressed[[2]int{s.pendingNewTile.Row, s.pendingNewTile.Col}] = true
	}
	if len(s.animations) == 0 {
		s.finishAnimation()
		return
	}
	s.animating = true
	s.animationPhase = PhaseSlide
	s.animationTicks = 0
}

// startPopAnimation pops the freshly spawned tile into view.
func (s *Session) startPopAnimation(p PendingTile) {
	s.animations = []TileAnimation{
		{
			Value:   p.Value,
			FromRow: p.Row,
			FromCol: p.Col,
			ToRow:   p.Row,
			ToCol:   p.Col,
			IsNew:   true,
		},
	}
	s.suppressed = map[[2]int]bool{{p.Row, p.Col}: true}
	s.animating = true
	s.animationPhase = PhasePop
	s.animationTicks = 0
}

// updateAnimation advances the animation by one tick.
func (s *Session) updateAnimation() {
	if !s.animating {
		return
	}

	s.animationTicks++

	var duration int
	switch s.animationPhase {
	case PhaseSlide:
		duration = slideAnimationDuration
	case PhasePop:
		duration = popAnimationDuration
	default:
		s.clearAnimation()
		return
	}

	progress := float64(s.animationTicks) / float64(duration)
	if progress > 1.0 {
		progress = 1.0
	}
	for i := range s.animations {
		s.animations[i].Progress = progress
	}

	if s.animationTicks >= duration {
		s.finishAnimation()
	}
}

// finishAnimation completes the current phase, chaining the pop for a
// pending spawned tile after the slide lands.
func (s *Session) finishAnimation() {
	if s.animationPhase == PhaseSlide && s.pendingNewTile != nil {
		p := *s.pendingNewTile
		s.pendingNewTile = nil
		s.startPopAnimation(p)
		return
	}
	s.clearAnimation()
}

// clearAnimation drops all animation state.
func (s *Session) clearAnimation() {
	s.animating = false
	s.animationPhase = PhaseNone
	s.animationTicks = 0
	s.animations = nil
	s.suppressed = nil
	s.pendingNewTile = nil
}

// easeOutQuad provides smooth deceleration for slides.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}

// interpolate returns the tile's current grid position during animation.
func (a *TileAnimation) interpolate() (row, col float64) {
	t := easeOutQuad(a.Progress)
	row = float64(a.FromRow) + (float64(a.ToRow)-float64(a.FromRow))*t
	col = float64(a.FromCol) + (float64(a.ToCol)-float64(a.FromCol))*t
	return row, col
}
