package flatbush

import (
	"errors"
	"fmt"
)

const packageName = "flatbush: "

var (
	// ErrNotFinished is returned by strict accessors when Finish has not been called.
	// Search does not return it; it returns no results instead.
	ErrNotFinished = textErr("index not finished")

	// ErrEmptyIndex is returned by strict accessors when Finish was called with no items.
	ErrEmptyIndex = textErr("index is empty")

	// ErrFinished is returned when adding to an index after Finish.
	ErrFinished = textErr("index already finished")

	// ErrInvalidRectangle is returned by AddBox for a box with min > max or a NaN coordinate.
	ErrInvalidRectangle = textErr("invalid rectangle")
)

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
