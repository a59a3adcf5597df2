package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentPeriodKey(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"mid year", time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC), "2026-W10"},
		{"single digit week padded", time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC), "2026-W02"},
		{"early january belongs to previous iso year", time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "2026-W53"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrentPeriodKey(tt.date))
		})
	}
}

func TestLogStateIsTerminal(t *testing.T) {
	assert.False(t, LogStatePending.IsTerminal())
	assert.True(t, LogStateApproved.IsTerminal())
	assert.True(t, LogStateRejected.IsTerminal())
}

func TestVerificationActionTargetState(t *testing.T) {
	assert.Equal(t, LogStateApproved, ActionApprove.TargetState())
	assert.Equal(t, LogStateRejected, ActionReject.TargetState())
}
