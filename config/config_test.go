package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

var keys = []string{"SERVER_PORT", "RATE_LIMIT_PER_MINUTE", "REQUEST_TIMEOUT", "HOLIDAYS_TIMEZONE", "RANGE_PARALLELISM"}

// TestLoadConfig_Defaults verifies that defaults are loaded.
func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
	if _, err := time.LoadLocation("Europe/Paris"); err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Server.RateLimitPerMinute != 60 || AppConfig.Server.RequestTimeout != 10*time.Second {
		t.Fatalf("unexpected server defaults: %+v", AppConfig.Server)
	}
	if AppConfig.Holidays.Timezone != "Europe/Paris" || AppConfig.Holidays.RangeParallelism != 4 {
		t.Fatalf("unexpected holiday defaults: %+v", AppConfig.Holidays)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("HOLIDAYS_TIMEZONE", "UTC")
	t.Setenv("REQUEST_TIMEOUT", "3s")

	LoadConfig()

	if AppConfig.Server.Port != "9090" || AppConfig.Holidays.Timezone != "UTC" || AppConfig.Server.RequestTimeout != 3*time.Second {
		t.Fatalf("env overrides not applied: %+v", AppConfig)
	}
}

func TestProblemsOf(t *testing.T) {
	good := Config{
		Server:   ServerConfig{Port: "8080", RateLimitPerMinute: 60, RequestTimeout: time.Second},
		Holidays: HolidaysConfig{Timezone: "UTC", RangeParallelism: 2},
	}
	if p := problemsOf(good); len(p) != 0 {
		t.Fatalf("unexpected problems: %v", p)
	}

	bad := good
	bad.Holidays.Timezone = "Nowhere/Atlantis"
	if p := problemsOf(bad); len(p) != 1 {
		t.Fatalf("want 1 problem got %v", p)
	}

	if p := problemsOf(Config{}); len(p) != 5 {
		t.Fatalf("want 5 problems for empty config, got %v", p)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
