package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"database": map[string]any{
			"maxOpenConns": 3,
		},
		"http": map[string]any{
			"listenIp": "127.0.0.1",
		},
		"authy": map[string]any{
			"apiKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DATABASE_MAXOPENCONNS", want: "database.maxOpenConns"},
		{envKey: "HTTP_LISTENIP", want: "http.listenIp"},
		{envKey: "AUTHY_APIKEY", want: "authy.apiKey"},
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

func TestEnvAliases_CoverDeploymentVariables(t *testing.T) {
	for _, name := range []string{"PORT", "LISTEN_IP", "DATABASE_URL", "AUTHY_API_KEY"} {
		if _, ok := envAliases[name]; !ok {
			t.Fatalf("missing env alias for %s", name)
		}
	}
}
