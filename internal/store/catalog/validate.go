package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Makepad-fr/showroom/internal/model"
)

var (
	ErrEmptyCatalog   = errors.New("catalog has no cars")
	ErrMissingName    = errors.New("car has no name")
	ErrNoDetailImages = errors.New("car has no detail images")
	ErrBlankImage     = errors.New("detail image handle is blank")
)

// ValidationError ties a rule violation to the catalog row it was found in.
type ValidationError struct {
	Row  int // 1-based
	Name string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d (%s): %v", e.Row, e.Name, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks every record and reports all problems at once.
func Validate(cars []model.Car) error {
	if len(cars) == 0 {
		return ErrEmptyCatalog
	}
	var errs []error
	for i, c := range cars {
		name := strings.TrimSpace(c.Name)
		add := func(err error) {
			errs = append(errs, &ValidationError{Row: i + 1, Name: name, Err: err})
		}
		if name == "" {
			add(ErrMissingName)
		}
		if len(c.DetailImages) == 0 {
			add(ErrNoDetailImages)
		}
		for _, img := range c.DetailImages {
			if strings.TrimSpace(img) == "" {
				add(ErrBlankImage)
				break
			}
		}
	}
	return errors.Join(errs...)
}
