package codeset

import "testing"

func TestParseDate(t *testing.T) {
	if !ValidDate("20210131") {
		t.Error("expected valid CCYYMMDD date")
	}
	if ValidDate("210131") {
		t.Error("expected legacy YYMMDD date to be rejected")
	}
	if ValidDate("20210231") {
		t.Error("expected Feb 31 to be rejected")
	}
}

func TestParseTime(t *testing.T) {
	if !ValidTime("1230") {
		t.Error("expected valid HHMM time")
	}
	if !ValidTime("123045") {
		t.Error("expected valid HHMMSS time")
	}
	if ValidTime("9999") {
		t.Error("expected out of range time to be rejected")
	}
}
