// Copyright 2026 Grid ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/grid-ml/grid/internal/parallel"
)

// ParallelConfig controls the worker pool used by Array.ParMapInplace.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns sensible defaults based on CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}
