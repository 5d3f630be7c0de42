package config

import (
	"testing"
	"time"

	"github.com/AndrewSs45/Projecto-Algebra/internal/testutil"
)

func TestDefaultIsValid(t *testing.T) {
	testutil.AssertNoError(t, Default().Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse("server", []string{
		"-addr", ":8080",
		"-origins", "http://a.test, http://b.test,",
		"-width", "10",
		"-height", "10",
		"-request-log=false",
		"-session-ttl", "30m",
	})
	testutil.AssertNoError(t, err)

	want := Default()
	want.Addr = ":8080"
	want.AllowOrigins = []string{"http://a.test", "http://b.test"}
	want.BoardWidth = 10
	want.BoardHeight = 10
	want.RequestLog = false
	want.SessionTTL = 30 * time.Minute
	testutil.AssertEqual(t, cfg, want)
	testutil.AssertEqual(t, cfg.OriginList(), "http://a.test, http://b.test")
}

func TestParseNoArgs(t *testing.T) {
	cfg, err := Parse("server", nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg, Default())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Addr = "" }},
		{"zero width", func(c *Config) { c.BoardWidth = 0 }},
		{"wide", func(c *Config) { c.BoardWidth = 27 }},
		{"short", func(c *Config) { c.BoardHeight = 3 }},
		{"tall", func(c *Config) { c.BoardHeight = 100 }},
		{"read buffer", func(c *Config) { c.ReadBufferSize = 0 }},
		{"write buffer", func(c *Config) { c.WriteBufferSize = -1 }},
		{"negative ttl", func(c *Config) { c.SessionTTL = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			testutil.AssertErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParseRejectsBadFlag(t *testing.T) {
	_, err := Parse("server", []string{"-width", "many"})
	testutil.AssertTrue(t, err != nil)

	_, err = Parse("server", []string{"-height", "2"})
	testutil.AssertErrorIs(t, err, ErrInvalidConfig)
}
