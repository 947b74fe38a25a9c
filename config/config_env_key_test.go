package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"reconciler": map[string]any{
			"cycleTimeout": "30s",
			"runOnStart":   false,
		},
		"catalogCache": map[string]any{
			"keyPrefix": "catalog:",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "RECONCILER_CYCLETIMEOUT", want: "reconciler.cycleTimeout"},
		{envKey: "RECONCILER_RUNONSTART", want: "reconciler.runOnStart"},
		{envKey: "CATALOGCACHE_KEYPREFIX", want: "catalogCache.keyPrefix"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsReconcilerAndAuth(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Reconciler == nil || !cfg.Reconciler.Enabled {
		t.Fatal("reconciler should default to enabled")
	}
	if cfg.Reconciler.Interval != time.Minute {
		t.Fatalf("Interval = %v, want 1m", cfg.Reconciler.Interval)
	}
	if cfg.Reconciler.CycleTimeout != defaultReconcileCycleTimeout {
		t.Fatalf("CycleTimeout = %v, want %v", cfg.Reconciler.CycleTimeout, defaultReconcileCycleTimeout)
	}
	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("AccessTokenTTL = %v, want %v", cfg.Auth.AccessTokenTTL, defaultAccessTokenTTL)
	}
	if cfg.CatalogCache != nil {
		t.Fatal("catalog cache must stay disabled unless configured")
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Reconciler:   &ReconcilerConfig{Enabled: false, Interval: 5 * time.Second, CycleTimeout: time.Second},
		CatalogCache: &CatalogCacheConfig{Enabled: true},
	}

	applyDefaults(cfg)

	if cfg.Reconciler.Enabled {
		t.Fatal("explicitly disabled reconciler must stay disabled")
	}
	if cfg.Reconciler.Interval != 5*time.Second {
		t.Fatalf("Interval = %v, want 5s", cfg.Reconciler.Interval)
	}
	if cfg.CatalogCache.TTL != defaultCatalogCacheTTL {
		t.Fatalf("TTL = %v, want %v", cfg.CatalogCache.TTL, defaultCatalogCacheTTL)
	}
}
