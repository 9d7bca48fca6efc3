package core

import (
	"encoding/json"
	"testing"
)

func TestBoundMin(t *testing.T) {
	tests := []struct {
		name     string
		bound    Bound
		n        uint64
		expected Bound
	}{
		{"unbounded narrows to n", Unbounded(), 42, Limit(42)},
		{"unbounded narrows to zero", Unbounded(), 0, Limit(0)},
		{"smaller wins", Limit(10), 3, Limit(3)},
		{"larger has no effect", Limit(3), 7, Limit(3)},
		{"equal keeps bound", Limit(42), 42, Limit(42)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := test.bound.Min(test.n)
			if actual != test.expected {
				t.Errorf("expected %v, got %v", test.expected, actual)
			}
		})
	}
}

func TestBoundString(t *testing.T) {
	if s := Unbounded().String(); s != "unbounded" {
		t.Errorf("expected unbounded, got %s", s)
	}
	if s := Limit(7).String(); s != "7" {
		t.Errorf("expected 7, got %s", s)
	}
}

func TestBoundJSON(t *testing.T) {
	tests := []struct {
		bound    Bound
		expected string
	}{
		{Unbounded(), "null"},
		{Limit(0), "0"},
		{Limit(42), "42"},
		{Limit(18446744073709551615), "18446744073709551615"},
	}

	for _, test := range tests {
		data, err := json.Marshal(test.bound)
		if err != nil {
			t.Fatalf("marshal %v: %v", test.bound, err)
		}
		if string(data) != test.expected {
			t.Errorf("expected %s, got %s", test.expected, data)
		}

		var decoded Bound
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if decoded != test.bound {
			t.Errorf("expected %v after decoding %s, got %v", test.bound, data, decoded)
		}
	}
}

func TestBoundJSONRejectsNegative(t *testing.T) {
	var b Bound
	if err := json.Unmarshal([]byte("-1"), &b); err == nil {
		t.Errorf("expected error, got %v", b)
	}
}
