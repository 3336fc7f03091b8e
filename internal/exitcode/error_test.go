// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/budde25/os/internal/exitcode"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	err := exitcode.Error(exitcode.DebugExitFailure)

	assert.EqualError(t, err, "guest exit code 0x11")
	assert.ErrorIs(t, err, exitcode.Error(0x42), "any code should match")
	assert.NotErrorIs(t, err, assert.AnError)
}

func TestFrom(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		assertFound  assert.BoolAssertionFunc
	}{
		{
			name:        "no error",
			assertFound: assert.False,
		},
		{
			name:        "other error",
			err:         assert.AnError,
			assertFound: assert.False,
		},
		{
			name:         "guest code",
			err:          exitcode.Error(exitcode.DebugExitFailure),
			expectedCode: exitcode.DebugExitFailure,
			assertFound:  assert.True,
		},
		{
			name:         "wrapped guest code",
			err:          fmt.Errorf("qemu guest: %w", exitcode.Error(0x2a)),
			expectedCode: 0x2a,
			assertFound:  assert.True,
		},
		{
			name:         "joined guest code",
			err:          errors.Join(assert.AnError, exitcode.Error(0x12)),
			expectedCode: 0x12,
			assertFound:  assert.True,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, found := exitcode.From(tt.err)

			assert.Equal(t, tt.expectedCode, code)
			tt.assertFound(t, found)
		})
	}
}
