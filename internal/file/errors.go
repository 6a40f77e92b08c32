package file

import (
	"fmt"

	"github.com/damacus/iron-kit/internal/errs"
)

// Sentinel errors for package file.
var (
	// ErrUnknownUnit is returned by ParseSizeUnit for an unrecognised unit name.
	ErrUnknownUnit = fmt.Errorf("%w: unknown size unit", errs.ErrInvalidArgument)

	// ErrExpectedFile is returned when a size is requested for a directory.
	ErrExpectedFile = fmt.Errorf("%w: expected file, got directory", errs.ErrInvalidArgument)
)
