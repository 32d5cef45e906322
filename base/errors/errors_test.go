// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := fmt.Errorf("boom")
	assert.Equal(t, err, Log(err))
}

func TestIsJoin(t *testing.T) {
	base := fmt.Errorf("base")
	wrapped := fmt.Errorf("outer: %w", base)
	assert.True(t, Is(wrapped, base))
	joined := Join(base, fmt.Errorf("other"))
	assert.True(t, Is(joined, base))
	assert.NoError(t, Join())
}
