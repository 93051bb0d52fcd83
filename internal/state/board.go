package state

import (
	"fmt"

	"github.com/Makepad-fr/showroom/internal/model"
)

// Board holds one Controller per catalog row. Controllers are created the
// first time a row is touched and are never shared between rows.
type Board struct {
	cars  []model.Car
	items map[int]*Controller
}

// NewBoard builds a board over an already validated catalog.
func NewBoard(cars []model.Car) *Board {
	return &Board{cars: cars, items: make(map[int]*Controller, len(cars))}
}

// Len is the number of rows.
func (b *Board) Len() int { return len(b.cars) }

// Car returns the record shown in row i.
func (b *Board) Car(i int) (model.Car, error) {
	if i < 0 || i >= len(b.cars) {
		return model.Car{}, fmt.Errorf("row out of range: have %d, got %d", len(b.cars), i)
	}
	return b.cars[i], nil
}

// Row returns the controller for row i, creating it on first use.
func (b *Board) Row(i int) (*Controller, error) {
	car, err := b.Car(i)
	if err != nil {
		return nil, err
	}
	c, ok := b.items[i]
	if !ok {
		c = NewController(len(car.DetailImages))
		b.items[i] = c
	}
	return c, nil
}

// Apply routes cmd to row i only.
func (b *Board) Apply(i int, cmd string) error {
	c, err := b.Row(i)
	if err != nil {
		return err
	}
	if !c.Apply(cmd) {
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// Render builds the render request for row i.
func (b *Board) Render(i int) (model.RenderRequest, error) {
	c, err := b.Row(i)
	if err != nil {
		return model.RenderRequest{}, err
	}
	return Render(b.cars[i], c.State()), nil
}

// Render pairs a car with its interaction state. The current image is only
// filled in while the row is expanded.
func Render(car model.Car, s Item) model.RenderRequest {
	r := model.RenderRequest{
		Name:       car.Name,
		Price:      car.Price,
		Features:   car.Features,
		Icon:       car.Icon,
		Expanded:   s.Expanded,
		ImageIndex: s.CurrentImage,
		ImageCount: len(car.DetailImages),
	}
	if s.Expanded {
		r.Image = car.DetailImages[s.CurrentImage]
	}
	return r
}
