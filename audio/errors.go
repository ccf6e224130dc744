// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the base error for missing or out-of-range
	// caller input. Match with errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidFormat is the base error for a format descriptor that
	// yields an unusable frame size. Match with errors.Is.
	ErrInvalidFormat = errors.New("invalid format")

	ErrNilData      = fmt.Errorf("%w: data must not be nil", ErrInvalidArgument)
	ErrNilFormat    = fmt.Errorf("%w: format must not be nil", ErrInvalidArgument)
	ErrBufferSize   = fmt.Errorf("%w: buffer size must be greater than zero", ErrInvalidArgument)
	ErrBadFrameSize = fmt.Errorf("%w: frame size must be greater than zero", ErrInvalidFormat)
)
