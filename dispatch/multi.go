package dispatch

import (
	"errors"

	"github.com/jonntd/anima/camera"
)

// Multi fans an executed command out to several dispatchers. Every
// dispatcher is tried even when an earlier one fails; the failures come
// back joined.
type Multi []camera.Dispatcher

// NewMulti combines dispatchers into one.
func NewMulti(dispatchers ...camera.Dispatcher) Multi {
	return Multi(dispatchers)
}

// Execute hands the command to every dispatcher in order.
func (m Multi) Execute(cmd camera.Command) error {
	var errs []error
	for _, d := range m {
		if err := d.Execute(cmd); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
