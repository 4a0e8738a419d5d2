package ticker

// Direction packs the two independent scrolling choices into one value:
// the horizontal edge a wide item starts from, and the vertical direction
// used when switching to the next item. Combine one of each with bitwise
// or, e.g. ScrollLeft | SwitchUp.
type Direction uint8

const (
	// ScrollRight starts items aligned to the left edge and slides them
	// leftwards, revealing their right portion.
	ScrollRight Direction = 0

	// ScrollLeft starts items aligned to the right edge and slides them
	// rightwards, revealing their left portion.
	ScrollLeft Direction = 1

	// SwitchDown switches items by scrolling the stack downwards.
	SwitchDown Direction = 0

	// SwitchUp switches items by scrolling the stack upwards.
	SwitchUp Direction = 2
)

// DefaultDirection scrolls right and switches down.
const DefaultDirection = ScrollRight | SwitchDown

// ScrollsLeft reports whether items start at the right edge.
func (d Direction) ScrollsLeft() bool { return d&ScrollLeft != 0 }

// SwitchesUp reports whether the next item slides in from below.
func (d Direction) SwitchesUp() bool { return d&SwitchUp != 0 }

// FlipHorizontal toggles the horizontal scroll direction.
func (d Direction) FlipHorizontal() Direction { return d ^ ScrollLeft }

// FlipVertical toggles the vertical switch direction.
func (d Direction) FlipVertical() Direction { return d ^ SwitchUp }

// String returns a compact "horizontal/vertical" description.
func (d Direction) String() string {
	h := "right"
	if d.ScrollsLeft() {
		h = "left"
	}
	v := "down"
	if d.SwitchesUp() {
		v = "up"
	}
	return h + "/" + v
}
