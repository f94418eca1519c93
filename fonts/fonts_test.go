package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontWithSize(t *testing.T) {
	if err := LoadFontWithSize(HUDSmall, goregular.TTF, 8); err != nil {
		t.Fatalf("LoadFontWithSize() error = %v", err)
	}
	if !Loaded(HUDSmall) {
		t.Fatal("font not registered after load")
	}
	if HUDSmall.Get() == nil {
		t.Fatal("Get() returned nil face")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Fatal("expected an error for invalid font data")
	}
	if Loaded("broken") {
		t.Fatal("invalid font should not be registered")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for a font that was never loaded")
		}
	}()
	FontName("missing").Get()
}
