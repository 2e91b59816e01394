package utils

import (
	"strings"
	"testing"
)

func TestEnumValidator(t *testing.T) {
	validate := EnumValidator("QUEUED", "PROCESSING", "COMPLETED", "FAILED")

	for _, v := range []string{"QUEUED", "FAILED"} {
		if err := validate(v); err != nil {
			t.Errorf("validate(%q) = %v, want nil", v, err)
		}
	}

	err := validate("queued")
	if err == nil {
		t.Fatal("lowercase value accepted")
	}
	if !strings.Contains(err.Error(), `"queued"`) {
		t.Errorf("error %q does not name the rejected value", err)
	}
}
