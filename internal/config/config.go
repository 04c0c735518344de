package config

import (
    "fmt"
    "log"
    "strings"

    "github.com/spf13/viper"
)

type Config struct {
    Server struct {
        Port     string
        LogLevel string
    }
    Room struct {
        DefaultTitle   string
        DefaultSubject string
    }
    WS struct {
        WriteTimeoutSecs int
        OriginPatterns   []string
    }
}

func Load() Config {
    v := viper.New()
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
    v.AutomaticEnv()

    // Defaults
    v.SetDefault("server.port", 8080)
    v.SetDefault("server.log_level", "info")

    v.SetDefault("room.default_title", "Live Class")
    v.SetDefault("room.default_subject", "General")

    v.SetDefault("ws.write_timeout_secs", 5)
    v.SetDefault("ws.origin_patterns", "")

    // Map envs
    v.BindEnv("server.port", "PORT")
    v.BindEnv("server.log_level", "LOG_LEVEL")

    v.BindEnv("room.default_title", "ROOM_DEFAULT_TITLE")
    v.BindEnv("room.default_subject", "ROOM_DEFAULT_SUBJECT")

    v.BindEnv("ws.write_timeout_secs", "WS_WRITE_TIMEOUT_SECS")
    v.BindEnv("ws.origin_patterns", "WS_ORIGIN_PATTERNS")

    var c Config
    c.Server.Port = toString(v.Get("server.port"))
    c.Server.LogLevel = v.GetString("server.log_level")

    c.Room.DefaultTitle = v.GetString("room.default_title")
    c.Room.DefaultSubject = v.GetString("room.default_subject")

    c.WS.WriteTimeoutSecs = v.GetInt("ws.write_timeout_secs")
    if raw := v.GetString("ws.origin_patterns"); raw != "" {
        for _, p := range strings.Split(raw, ",") {
            if p = strings.TrimSpace(p); p != "" {
                c.WS.OriginPatterns = append(c.WS.OriginPatterns, p)
            }
        }
    }

    log.Printf("config loaded: port=%s log_level=%s", c.Server.Port, c.Server.LogLevel)
    return c
}

func toString(v any) string { return fmt.Sprint(v) }
