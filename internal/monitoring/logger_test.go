package monitoring

import "testing"

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	var got string
	SetLogger(func(format string, v ...interface{}) { got = format })
	Logf("turn reached %.0f deg")
	if got != "turn reached %.0f deg" {
		t.Errorf("custom logger not invoked, got %q", got)
	}

	// nil installs a no-op without panicking
	SetLogger(nil)
	Logf("dropped")

	called := false
	SetLogger(func(string, ...interface{}) { called = true })
	Logf("x")
	if !called {
		t.Error("replacement after nil was not invoked")
	}
}

func TestMute(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	called := false
	SetLogger(func(string, ...interface{}) { called = true })
	Mute()
	Logf("silenced")
	if called {
		t.Error("muted logger still invoked")
	}
}

func TestLogfDefaultNotNil(t *testing.T) {
	if Logf == nil {
		t.Fatal("Logf must have a usable default")
	}
}
