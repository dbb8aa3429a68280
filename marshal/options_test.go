package marshal

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.tagName != "x12" {
		t.Errorf("tagName = %q, want %q", cfg.tagName, "x12")
	}
	if cfg.omitEmpty != false {
		t.Errorf("omitEmpty = %v, want false", cfg.omitEmpty)
	}
	if cfg.timeFormat != "20060102" {
		t.Errorf("timeFormat = %q, want %q", cfg.timeFormat, "20060102")
	}
	if cfg.timeLocation != time.UTC {
		t.Errorf("timeLocation = %v, want UTC", cfg.timeLocation)
	}
}

func TestWithTagName(t *testing.T) {
	cfg := defaultConfig()
	cfg.applyOptions(WithTagName("custom"))
	if cfg.tagName != "custom" {
		t.Errorf("tagName = %q, want %q", cfg.tagName, "custom")
	}
}

func TestWithTagNameIgnoresEmpty(t *testing.T) {
	cfg := defaultConfig()
	cfg.applyOptions(WithTagName(""))
	if cfg.tagName != "x12" {
		t.Errorf("tagName = %q, want default %q preserved", cfg.tagName, "x12")
	}
}

func TestWithOmitEmpty(t *testing.T) {
	cfg := defaultConfig()
	cfg.applyOptions(WithOmitEmpty(true))
	if !cfg.omitEmpty {
		t.Error("omitEmpty = false, want true")
	}
}

func TestWithTimeFormat(t *testing.T) {
	cfg := defaultConfig()
	cfg.applyOptions(WithTimeFormat("060102"))
	if cfg.timeFormat != "060102" {
		t.Errorf("timeFormat = %q, want %q", cfg.timeFormat, "060102")
	}
}

func TestWithTimeLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation() error = %v", err)
	}
	cfg := defaultConfig()
	cfg.applyOptions(WithTimeLocation(loc))
	if cfg.timeLocation != loc {
		t.Errorf("timeLocation = %v, want %v", cfg.timeLocation, loc)
	}
}

func TestWithTimeLocationIgnoresNil(t *testing.T) {
	cfg := defaultConfig()
	cfg.applyOptions(WithTimeLocation(nil))
	if cfg.timeLocation != time.UTC {
		t.Errorf("timeLocation = %v, want default UTC preserved", cfg.timeLocation)
	}
}
