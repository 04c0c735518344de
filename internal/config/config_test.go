package config

import (
    "os"
    "testing"
)

func TestLoadDefaults(t *testing.T) {
    // Clear relevant envs
    os.Unsetenv("PORT")
    os.Unsetenv("LOG_LEVEL")
    os.Unsetenv("ROOM_DEFAULT_TITLE")
    os.Unsetenv("ROOM_DEFAULT_SUBJECT")
    os.Unsetenv("WS_WRITE_TIMEOUT_SECS")
    os.Unsetenv("WS_ORIGIN_PATTERNS")

    c := Load()

    if c.Server.Port != "8080" {
        t.Fatalf("expected default port 8080, got %q", c.Server.Port)
    }
    if c.Server.LogLevel != "info" {
        t.Fatalf("expected default log level info, got %q", c.Server.LogLevel)
    }
    if c.Room.DefaultTitle != "Live Class" {
        t.Fatalf("expected default room title, got %q", c.Room.DefaultTitle)
    }
    if c.WS.WriteTimeoutSecs != 5 {
        t.Fatalf("expected default write timeout 5s, got %d", c.WS.WriteTimeoutSecs)
    }
}

func TestLoadEnvOverride(t *testing.T) {
    os.Setenv("ROOM_DEFAULT_SUBJECT", "Mathematics")
    defer os.Unsetenv("ROOM_DEFAULT_SUBJECT")

    c := Load()

    if c.Room.DefaultSubject != "Mathematics" {
        t.Fatalf("expected subject from env, got %q", c.Room.DefaultSubject)
    }
}
