//go:build !tinygo

package hal

// Default host framebuffer size.
const (
	DefaultWidth  = 320
	DefaultHeight = 320
)

type hostHAL struct {
	fb  *hostFramebuffer
	kbd *hostKeyboard
	t   *hostTime
}

// New returns a host HAL implementation with a width x height framebuffer.
// Non-positive sizes fall back to the defaults.
func New(width, height int) HAL {
	return newHost(width, height)
}

func newHost(width, height int) *hostHAL {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &hostHAL{
		fb:  newHostFramebuffer(width, height),
		kbd: newHostKeyboard(),
		t:   newHostTime(),
	}
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
