package ticker

import "math"

// rect is the placement of a visible item inside the content box. x may be
// negative while a wide item scrolls past the left edge, and y may be
// negative while the stack slides during a switch.
type rect struct {
	x, y int
}

// layout is the placement pass. It clamps both offsets against their
// ceilings, writes the corrected offsets and finished flags back into the
// driver, and computes a rectangle for every visible item: the front item
// shifted by the tick offset along the scroll axis, items stacked at
// multiples of the content height along the switch axis, the whole stack
// shifted by the switch offset, and each item centered in its own slot.
func (m *Model) layout() {
	d := m.drv
	if d == nil {
		return
	}
	w, h := m.contentSize()

	d.switchCeiling = float64(h)
	if d.switchOffset >= d.switchCeiling {
		d.switchOffset = d.switchCeiling
		d.switchDone = true
	}
	shift := int(math.Round(d.switchOffset))

	top := 0
	if m.direction.SwitchesUp() {
		top += shift
	} else {
		top -= shift
	}

	m.rects = m.rects[:0]
	for i := range m.visible {
		it := &m.visible[i]

		// Only the front item ticks; a later item rests at its edge.
		tick := 0
		if i == 0 {
			d.tickCeiling = math.Max(0, float64(it.width-w))
			if d.tickCeiling <= d.tickOffset {
				d.tickOffset = d.tickCeiling
				d.tickDone = true
			}
			tick = int(math.Round(d.tickOffset))
		}

		var x int
		if m.direction.ScrollsLeft() {
			x = w - it.width + tick
		} else {
			x = -tick
		}

		y := top + (h-len(it.lines))/2
		m.rects = append(m.rects, rect{x: x, y: y})

		if m.direction.SwitchesUp() {
			top -= h
		} else {
			top += h
		}
	}
}
