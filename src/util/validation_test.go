package util

import "testing"

func TestParseBoolParam(t *testing.T) {
	if v := ParseBoolParam("true"); v == nil || !*v {
		t.Error(`"true" should parse to true`)
	}
	if v := ParseBoolParam("false"); v == nil || *v {
		t.Error(`"false" should parse to false`)
	}
	if ParseBoolParam("") != nil || ParseBoolParam("yes") != nil {
		t.Error("anything else should be nil")
	}
}
