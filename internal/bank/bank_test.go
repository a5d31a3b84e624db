package bank

import "testing"

func TestSeedIsValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed bank invalid: %v", err)
	}
}

func TestModuleOrder(t *testing.T) {
	order := ModuleOrder()
	want := []ModuleID{ModuleA, ModuleB, ModuleC, ModuleD}
	if len(order) != len(want) {
		t.Fatalf("order length = %d, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestNextModule(t *testing.T) {
	tests := []struct {
		id     ModuleID
		want   ModuleID
		wantOK bool
	}{
		{ModuleA, ModuleB, true},
		{ModuleB, ModuleC, true},
		{ModuleC, ModuleD, true},
		{ModuleD, "", false},
		{"Z", "", false},
	}
	for _, tt := range tests {
		got, ok := NextModule(tt.id)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NextModule(%q) = (%q, %v), want (%q, %v)", tt.id, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestGetModule(t *testing.T) {
	m, err := GetModule(ModuleB)
	if err != nil {
		t.Fatalf("GetModule(B): %v", err)
	}
	if m.Kind != KindTimedChoice {
		t.Errorf("module B kind = %q, want %q", m.Kind, KindTimedChoice)
	}

	if _, err := GetModule("X"); err == nil {
		t.Error("expected error for unknown module ID")
	}
}

func TestAllDomainsOrder(t *testing.T) {
	// Tie-breaking and burnout emission depend on this exact order.
	got := AllDomains()
	want := []Domain{DomainAnalytical, DomainCreative, DomainSocial, DomainPhysical}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AllDomains()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClustersHavePrimaryDomain(t *testing.T) {
	for _, c := range AllClusters() {
		if len(c.Domains) == 0 {
			t.Errorf("cluster %q has no domains", c.ID)
			continue
		}
		if c.PrimaryDomain() != c.Domains[0] {
			t.Errorf("cluster %q primary = %q, want %q", c.ID, c.PrimaryDomain(), c.Domains[0])
		}
	}
}
