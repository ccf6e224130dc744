// SPDX-License-Identifier: EPL-2.0

package samples

import "errors"

var (
	ErrChunkSize      = errors.New("chunk size must be greater than zero")
	ErrRaggedChannels = errors.New("all channels must have the same length")
)
