package task

import "testing"

func TestStatus_IsValid(t *testing.T) {
	for _, status := range ValidStatuses() {
		if !status.IsValid() {
			t.Errorf("expected %q to be valid", status)
		}
	}

	for _, status := range []Status{"", "open", "TODO", "in_progress"} {
		if status.IsValid() {
			t.Errorf("expected %q to be invalid", status)
		}
	}
}
