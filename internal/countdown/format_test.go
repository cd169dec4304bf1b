package countdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00:00"},
		{5, "00:00:05"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3599, "00:59:59"},
		{3600, "01:00:00"},
		{86399, "23:59:59"},
		{86400, "1 day(s) 00:00:00"},
		{90000, "1 day(s) 01:00:00"},
		{2*86400 + 3*3600 + 4*60 + 5, "2 day(s) 03:04:05"},
		{-3, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRemaining(tt.seconds))
		})
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input     string
		expected  Action
		expectErr bool
	}{
		{"poweroff", ActionPowerOff, false},
		{"Power-Off", ActionPowerOff, false},
		{"shutdown", ActionPowerOff, false},
		{"hibernate", ActionHibernate, false},
		{" HIBERNATE ", ActionHibernate, false},
		{"restart", ActionRestart, false},
		{"reboot", ActionRestart, false},
		{"sleep", DefaultAction, true},
		{"", DefaultAction, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAction(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestActionString(t *testing.T) {
	for _, a := range []Action{ActionPowerOff, ActionHibernate, ActionRestart} {
		parsed, err := ParseAction(a.String())
		assert.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	assert.Equal(t, "unknown", Action(7).String())
	assert.Equal(t, "running", StatusRunning.String())
}
