package codegen

import "testing"

func TestTemplateConstName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Greeting", "GreetingTemplate"},
		{"invoice", "invoiceTemplate"},
	}

	for _, tt := range tests {
		got := TemplateConstName(tt.name)
		if got != tt.want {
			t.Errorf("TemplateConstName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTestFuncName(t *testing.T) {
	if got := TestFuncName("Test", "row"); got != "TestRow" {
		t.Errorf("TestFuncName() = %q", got)
	}
	if got := TestFuncName("Benchmark", "Row"); got != "BenchmarkRow" {
		t.Errorf("TestFuncName() = %q", got)
	}
	if got := TestFuncName("Test", "_row"); got != "Test_row" {
		t.Errorf("TestFuncName() = %q", got)
	}
	if got := TestFuncName("Test", "ärger"); got != "TestÄrger" {
		t.Errorf("TestFuncName() = %q", got)
	}
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"A", "a"},
		{"ABC", "aBC"},
		{"Hello", "hello"},
		{"hello", "hello"},
		{"X", "x"},
		{"_Row", "_Row"},
		{"Ärger", "ärger"},
		{"Ωmega", "ωmega"},
	}

	for _, tt := range tests {
		got := LowerFirst(tt.input)
		if got != tt.want {
			t.Errorf("LowerFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a", "A"},
		{"abc", "Abc"},
		{"Hello", "Hello"},
		{"_row", "_row"},
		{"ärger", "Ärger"},
		{"1x", "1x"},
	}

	for _, tt := range tests {
		got := UpperFirst(tt.input)
		if got != tt.want {
			t.Errorf("UpperFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIdentifiers(t *testing.T) {
	valid := []string{"Greeting", "row_fmt", "X1"}
	for _, s := range valid {
		if !IsIdentifier(s) {
			t.Errorf("IsIdentifier(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "1abc", "func", "has space", "a-b"}
	for _, s := range invalid {
		if IsIdentifier(s) {
			t.Errorf("IsIdentifier(%q) = true, want false", s)
		}
	}

	if !IsExported("Row") || !IsExported("Ärger") || IsExported("row") || IsExported("_Row") || IsExported("") {
		t.Error("IsExported mismatch")
	}
}

func TestTestFileName(t *testing.T) {
	if got := TestFileName("out/greet.go"); got != "out/greet_test.go" {
		t.Errorf("TestFileName() = %q", got)
	}
	if got := TestFileName("greet"); got != "greet_test.go" {
		t.Errorf("TestFileName() = %q", got)
	}
}

func TestIsReserved(t *testing.T) {
	for _, s := range []string{"args", "b", "s", "t", "cases", "strings", "composite"} {
		if !IsReserved(s) {
			t.Errorf("IsReserved(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"Row", "_row", "B", "argsRow"} {
		if IsReserved(s) {
			t.Errorf("IsReserved(%q) = true, want false", s)
		}
	}
}
