package model

import "testing"

func TestLoadState_IsSettled(t *testing.T) {
	tests := []struct {
		state    LoadState
		expected bool
	}{
		{LoadStatePending, false},
		{LoadStateLoaded, true},
		{LoadStateFailed, true},
	}

	for _, test := range tests {
		result := test.state.IsSettled()
		if result != test.expected {
			t.Errorf("LoadState(%s).IsSettled() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestLoadState_IsUsable(t *testing.T) {
	tests := []struct {
		state    LoadState
		expected bool
	}{
		{LoadStatePending, false},
		{LoadStateLoaded, true},
		{LoadStateFailed, false},
	}

	for _, test := range tests {
		result := test.state.IsUsable()
		if result != test.expected {
			t.Errorf("LoadState(%s).IsUsable() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestLoadState_String(t *testing.T) {
	if got := LoadStateFailed.String(); got != "failed" {
		t.Errorf("LoadState.String() = %s, expected failed", got)
	}
}
