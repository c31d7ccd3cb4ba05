package config

import "testing"

func TestDefaults(t *testing.T) {
	c := Defaults()
	if err := c.Validate(); err != nil {
		t.Fatalf("Defaults() should validate: %v", err)
	}
	if c.Format != FormatCNF {
		t.Fatalf("Format = %v, want %v", c.Format, FormatCNF)
	}
}

func TestValidateRejectsOutOfRangeKnobs(t *testing.T) {
	c := Defaults()
	c.AddMaxArgs = 1
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for add_max_args below minimum")
	}

	c = Defaults()
	c.XorMaxArgs = 11
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for xor_max_args above maximum")
	}

	c = Defaults()
	c.Format = "bogus"
	if err := c.Validate(); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if c != Defaults() {
		t.Fatalf("Load(\"\") = %+v, want Defaults()", c)
	}
}
