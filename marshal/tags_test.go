package marshal

import "testing"

func TestParseTagSimple(t *testing.T) {
	info, err := parseTag("3")
	if err != nil {
		t.Fatalf("parseTag() error = %v", err)
	}
	if info.position != 3 || info.component != 0 {
		t.Errorf("got position=%d component=%d, want position=3 component=0", info.position, info.component)
	}
}

func TestParseTagWithComponent(t *testing.T) {
	info, err := parseTag("5.2")
	if err != nil {
		t.Fatalf("parseTag() error = %v", err)
	}
	if info.position != 5 || info.component != 2 {
		t.Errorf("got position=%d component=%d, want position=5 component=2", info.position, info.component)
	}
}

func TestParseTagOmitEmpty(t *testing.T) {
	info, err := parseTag("3,omitempty")
	if err != nil {
		t.Fatalf("parseTag() error = %v", err)
	}
	if !info.omitEmpty {
		t.Error("omitEmpty = false, want true")
	}
}

func TestParseTagFormat(t *testing.T) {
	info, err := parseTag("9,format=060102")
	if err != nil {
		t.Fatalf("parseTag() error = %v", err)
	}
	if info.timeFormat != "060102" {
		t.Errorf("timeFormat = %q, want %q", info.timeFormat, "060102")
	}
}

func TestParseTagMultipleOptions(t *testing.T) {
	info, err := parseTag("5.2,omitempty,format=20060102")
	if err != nil {
		t.Fatalf("parseTag() error = %v", err)
	}
	if info.position != 5 || info.component != 2 || !info.omitEmpty || info.timeFormat != "20060102" {
		t.Errorf("got %+v, want position=5 component=2 omitempty=true format=20060102", info)
	}
}

func TestParseTagIgnore(t *testing.T) {
	info, err := parseTag("-")
	if err != nil {
		t.Fatalf("parseTag() error = %v", err)
	}
	if !info.ignore {
		t.Error("ignore = false, want true")
	}
	if info.hasLocation() {
		t.Error("hasLocation() = true for an ignored field, want false")
	}
}

func TestParseTagEmpty(t *testing.T) {
	if _, err := parseTag(""); err != ErrEmptyTag {
		t.Errorf("parseTag(\"\") error = %v, want ErrEmptyTag", err)
	}
}

func TestParseTagInvalidPosition(t *testing.T) {
	cases := []string{"abc", "0", "-1", "2.abc", "2.0"}
	for _, tag := range cases {
		if _, err := parseTag(tag); err != ErrInvalidTagFormat {
			t.Errorf("parseTag(%q) error = %v, want ErrInvalidTagFormat", tag, err)
		}
	}
}

func TestTagInfoHasLocation(t *testing.T) {
	info := &tagInfo{position: 1}
	if !info.hasLocation() {
		t.Error("hasLocation() = false, want true")
	}
	var nilInfo *tagInfo
	if nilInfo.hasLocation() {
		t.Error("hasLocation() on nil *tagInfo = true, want false")
	}
}

func TestTagInfoShouldOmit(t *testing.T) {
	info := &tagInfo{omitEmpty: true}
	if !info.shouldOmit(false) {
		t.Error("shouldOmit(false) = false, want true (tag sets omitempty)")
	}
	if !info.shouldOmit(true) {
		t.Error("shouldOmit(true) = false, want true (global sets omitempty)")
	}

	plain := &tagInfo{}
	if plain.shouldOmit(false) {
		t.Error("shouldOmit(false) = true, want false")
	}
}

func TestTagInfoGetTimeFormat(t *testing.T) {
	info := &tagInfo{timeFormat: "060102"}
	if got := info.getTimeFormat("20060102"); got != "060102" {
		t.Errorf("getTimeFormat() = %q, want %q", got, "060102")
	}
	plain := &tagInfo{}
	if got := plain.getTimeFormat("20060102"); got != "20060102" {
		t.Errorf("getTimeFormat() = %q, want default %q", got, "20060102")
	}
}
