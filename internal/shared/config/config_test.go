package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.MaxPerEmail != 20 {
		t.Errorf("MaxPerEmail = %d, want 20", cfg.MaxPerEmail)
	}
	if cfg.EnvTagKey != "Environment" {
		t.Errorf("EnvTagKey = %q", cfg.EnvTagKey)
	}
	if !reflect.DeepEqual(cfg.EnvTagValues, []string{"Production"}) {
		t.Errorf("EnvTagValues = %v", cfg.EnvTagValues)
	}
	if !reflect.DeepEqual(cfg.Categories, []string{"performance efficiency", "cost optimization"}) {
		t.Errorf("Categories = %v", cfg.Categories)
	}
	if cfg.Env != "dev" {
		t.Errorf("Env = %q", cfg.Env)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SENDER_EMAIL", "reports@example.com")
	t.Setenv("RECIPIENT_EMAILS", " ops@example.com , dba@example.com ,")
	t.Setenv("MAX_RECOMMENDATIONS_PER_EMAIL", "5")
	t.Setenv("ENVIRONMENT_TAG_VALUES", "Production,Prod")
	t.Setenv("ENV", "prod")

	cfg := Load()

	if cfg.SenderAddress != "reports@example.com" {
		t.Errorf("SenderAddress = %q", cfg.SenderAddress)
	}
	if !reflect.DeepEqual(cfg.Recipients, []string{"ops@example.com", "dba@example.com"}) {
		t.Errorf("Recipients = %v", cfg.Recipients)
	}
	if cfg.MaxPerEmail != 5 {
		t.Errorf("MaxPerEmail = %d", cfg.MaxPerEmail)
	}
	if !reflect.DeepEqual(cfg.EnvTagValues, []string{"Production", "Prod"}) {
		t.Errorf("EnvTagValues = %v", cfg.EnvTagValues)
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q, want production", cfg.Env)
	}
}

func TestLoadRejectsInvalidBatchSize(t *testing.T) {
	for _, raw := range []string{"0", "-3", "abc"} {
		t.Setenv("MAX_RECOMMENDATIONS_PER_EMAIL", raw)
		if got := Load().MaxPerEmail; got != 20 {
			t.Errorf("MaxPerEmail for %q = %d, want default 20", raw, got)
		}
	}
}
