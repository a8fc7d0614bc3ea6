package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"env": map[string]any{
			"serviceName": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
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

func TestValidateSecrets(t *testing.T) {
	cfg := &Config{}
	if err := cfg.validateSecrets(); err == nil {
		t.Fatal("expected error when AT_SECRET is missing")
	}

	cfg.SecretKey.Access = "access-secret"
	if err := cfg.validateSecrets(); err == nil {
		t.Fatal("expected error when RT_SECRET is missing")
	}

	cfg.SecretKey.Refresh = "refresh-secret"
	if err := cfg.validateSecrets(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
