package capability

import "testing"

func TestKind_RiskClass(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindLogger, ClassRead},
		{KindSystemInfo, ClassRead},
		{KindStorage, ClassWrite},
		{KindFileSystem, ClassWrite},
		{KindDatabase, ClassWrite},
		{KindUI, ClassWrite},
		{KindNetwork, ClassCritical},
		{KindCrypto, ClassCritical},
	}
	for _, tt := range tests {
		if got := tt.kind.RiskClass(); got != tt.want {
			t.Fatalf("%s: expected class %s, got %s", tt.kind, tt.want, got)
		}
	}
}

func TestParseKind_RoundTrip(t *testing.T) {
	kinds := []Kind{
		KindStorage, KindNetwork, KindLogger, KindSystemInfo,
		KindFileSystem, KindDatabase, KindCrypto, KindUI,
	}
	for _, k := range kinds {
		parsed, ok := ParseKind(k.String())
		if !ok || parsed != k {
			t.Fatalf("round trip failed for %s", k)
		}
	}

	if _, ok := ParseKind("bluetooth"); ok {
		t.Fatal("unknown capability name should not parse")
	}
}

func TestGrants_Defaults(t *testing.T) {
	g := NewGrants()

	if !g.Allowed("plug-a", KindStorage) || !g.Allowed("plug-a", KindLogger) || !g.Allowed("plug-a", KindSystemInfo) {
		t.Fatal("default grants should cover storage, logger and system_info")
	}
	if g.Allowed("plug-a", KindNetwork) || g.Allowed("plug-a", KindCrypto) {
		t.Fatal("network and crypto must never be granted by default")
	}
}

func TestGrants_ExplicitSetReplacesDefaults(t *testing.T) {
	g := NewGrants()
	g.Set("plug-a", []Kind{KindNetwork})

	if !g.Allowed("plug-a", KindNetwork) {
		t.Fatal("explicit grant should allow network")
	}
	// An explicit set replaces the defaults entirely.
	if g.Allowed("plug-a", KindStorage) {
		t.Fatal("explicit grant set should not inherit defaults")
	}
	// Other plugins keep the defaults.
	if !g.Allowed("plug-b", KindStorage) {
		t.Fatal("other plugins should keep the defaults")
	}
}

func TestGrants_EvictRestoresDefaults(t *testing.T) {
	g := NewGrants()
	g.Set("plug-a", []Kind{KindNetwork})
	g.Evict("plug-a")

	if g.Allowed("plug-a", KindNetwork) {
		t.Fatal("evicted plugin should lose its explicit grants")
	}
	if !g.Allowed("plug-a", KindStorage) {
		t.Fatal("evicted plugin falls back to defaults")
	}
}
