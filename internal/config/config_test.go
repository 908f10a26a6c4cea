package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "UPLOAD_DIR", "MAX_UPLOAD_SIZE", "CORS_ORIGIN", "GELF_ADDR"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.HTTPAddr != ":5000" {
		t.Fatalf("addr = %q", cfg.HTTPAddr)
	}
	if cfg.UploadDir != "temp_uploads" {
		t.Fatalf("upload dir = %q", cfg.UploadDir)
	}
	if cfg.MaxUpload != 200<<20 {
		t.Fatalf("max upload = %d", cfg.MaxUpload)
	}
	if cfg.CORSOrigin != "*" {
		t.Fatalf("cors origin = %q", cfg.CORSOrigin)
	}
	if cfg.GelfAddr != "" {
		t.Fatalf("gelf addr = %q", cfg.GelfAddr)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_UPLOAD_SIZE", "1048576")
	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("addr = %q", cfg.HTTPAddr)
	}
	if cfg.MaxUpload != 1<<20 {
		t.Fatalf("max upload = %d", cfg.MaxUpload)
	}
}

func TestLoadRejectsBadInt(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE", "lots")
	if cfg := Load(); cfg.MaxUpload != 200<<20 {
		t.Fatalf("max upload = %d, want default", cfg.MaxUpload)
	}
}
