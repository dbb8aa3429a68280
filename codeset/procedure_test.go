package codeset

import "testing"

func TestValidCPT(t *testing.T) {
	if !ValidCPT("99213") {
		t.Error("expected 99213 to be valid CPT")
	}
	if !ValidCPT("99213-25") {
		t.Error("expected modifier form to be valid CPT")
	}
	if ValidCPT("9921") {
		t.Error("expected short code to be invalid CPT")
	}
}

func TestValidHCPCS(t *testing.T) {
	if !ValidHCPCS("J1100") {
		t.Error("expected J1100 to be valid HCPCS")
	}
	if ValidHCPCS("99213") {
		t.Error("expected all-digit code to be invalid HCPCS")
	}
}

func TestValidProcedureCode(t *testing.T) {
	if !ValidProcedureCode("99213") || !ValidProcedureCode("J1100") {
		t.Error("expected both CPT and HCPCS forms to validate")
	}
	if ValidProcedureCode("bogus") {
		t.Error("expected bogus code to be invalid")
	}
}
