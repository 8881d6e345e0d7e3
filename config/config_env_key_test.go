package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri":      "",
			"database": "",
		},
		"metaGraph": map[string]any{
			"appId":           "",
			"redirectUri":     "",
			"defaultImageUrl": "",
		},
		"gemini": map[string]any{
			"apiKey": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "METAGRAPH_APPID", want: "metaGraph.appId"},
		{envKey: "METAGRAPH_REDIRECTURI", want: "metaGraph.redirectUri"},
		{envKey: "METAGRAPH_DEFAULTIMAGEURL", want: "metaGraph.defaultImageUrl"},
		{envKey: "GEMINI_APIKEY", want: "gemini.apiKey"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
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
