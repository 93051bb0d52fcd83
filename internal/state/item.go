package state

import "fmt"

// Item is the interaction state of a single rendered row.
type Item struct {
	Expanded     bool
	CurrentImage int
}

// Toggle flips the expansion flag. The image index is kept so that a row
// re-opens on the image it was closed on.
func Toggle(s Item) Item {
	s.Expanded = !s.Expanded
	return s
}

// Command names accepted by Controller.Apply.
const (
	CmdToggle = "toggle"
	CmdPrev   = "prev"
	CmdNext   = "next"
)

// Controller owns the state of one row over a fixed number of images.
type Controller struct {
	state  Item
	images int
}

// NewController returns a collapsed controller positioned on the first image.
// It panics when images < 1; catalogs are validated before rows are built.
func NewController(images int) *Controller {
	if images < 1 {
		panic(fmt.Sprintf("state: controller needs at least one image, got %d", images))
	}
	return &Controller{images: images}
}

func (c *Controller) Toggle() { c.state = Toggle(c.state) }

func (c *Controller) Previous() { c.state.CurrentImage = Previous(c.state.CurrentImage, c.images) }

func (c *Controller) Next() { c.state.CurrentImage = Next(c.state.CurrentImage, c.images) }

// Apply routes a named command and reports whether it was recognised.
func (c *Controller) Apply(cmd string) bool {
	switch cmd {
	case CmdToggle:
		c.Toggle()
	case CmdPrev:
		c.Previous()
	case CmdNext:
		c.Next()
	default:
		return false
	}
	return true
}

// State returns a copy of the current (expanded, image index) pair.
func (c *Controller) State() Item { return c.state }

// Images is the size of the carousel.
func (c *Controller) Images() int { return c.images }
