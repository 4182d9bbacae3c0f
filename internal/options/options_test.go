package options

import "testing"

func Test_DefaultValues_CoversCatalog(t *testing.T) {
	values := DefaultValues()

	wantLen := 2*len(NumericOptions) + len(BooleanOptions)
	if len(values) != wantLen {
		t.Errorf("DefaultValues() has %d entries, want %d", len(values), wantLen)
	}

	for _, spec := range NumericOptions {
		v, ok := values[spec.Key]
		if !ok {
			t.Errorf("missing value entry for %q", spec.Key)
			continue
		}
		if v != spec.Default {
			t.Errorf("%s = %v, want default %d", spec.Key, v, spec.Default)
		}
		enabled, ok := values[spec.EnabledKey()]
		if !ok {
			t.Errorf("missing enabled entry for %q", spec.Key)
			continue
		}
		if enabled != false {
			t.Errorf("%s = %v, want false", spec.EnabledKey(), enabled)
		}
	}

	for _, opt := range BooleanOptions {
		v, ok := values[opt.Key]
		if !ok {
			t.Errorf("missing entry for boolean %q", opt.Key)
			continue
		}
		if v != false {
			t.Errorf("%s = %v, want false", opt.Key, v)
		}
	}
}

func Test_DefaultValues_ReturnsDistinctMaps(t *testing.T) {
	a := DefaultValues()
	b := DefaultValues()
	a["stapm_limit"] = 1
	if b["stapm_limit"] == 1 {
		t.Error("DefaultValues() returned a shared map")
	}
}

func Test_ByCategory_Cases(t *testing.T) {
	categories := ByCategory()

	total := 0
	for name, specs := range categories {
		total += len(specs)
		for _, spec := range specs {
			if spec.Category != name {
				t.Errorf("spec %q grouped under %q but has category %q", spec.Key, name, spec.Category)
			}
		}
	}
	if total != len(NumericOptions) {
		t.Errorf("grouped %d specs, want %d", total, len(NumericOptions))
	}

	// Known groupings and within-group catalog order.
	power := categories[CategoryPower]
	if len(power) == 0 || power[0].Key != "stapm_limit" {
		t.Errorf("Power category should start with stapm_limit, got %+v", power)
	}
	if len(categories[CategoryAdvanced]) != 1 {
		t.Errorf("Advanced category has %d specs, want 1", len(categories[CategoryAdvanced]))
	}
}

func Test_Catalog_KeysAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, spec := range NumericOptions {
		if seen[spec.Key] {
			t.Errorf("duplicate key %q", spec.Key)
		}
		seen[spec.Key] = true
		if spec.UIScale < 1 {
			t.Errorf("%s: UIScale = %d, want >= 1", spec.Key, spec.UIScale)
		}
		if spec.Maximum < spec.Default || spec.Default < spec.Minimum {
			t.Errorf("%s: default %d outside [%d, %d]", spec.Key, spec.Default, spec.Minimum, spec.Maximum)
		}
	}
	for _, opt := range BooleanOptions {
		if seen[opt.Key] {
			t.Errorf("duplicate key %q", opt.Key)
		}
		seen[opt.Key] = true
	}
}
