// Package config holds the server settings and their command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Addr         string
	AllowOrigins []string
	BoardWidth   int
	BoardHeight  int
	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	ReadBufferSize  int
	WriteBufferSize int
	// RequestLog enables the per-request access log.
	RequestLog bool
	// SessionTTL is how long an untouched session survives. Zero keeps
	// sessions forever.
	SessionTTL time.Duration
}

func Default() Config {
	return Config{
		Addr:            ":3000",
		AllowOrigins:    []string{"http://localhost:5173"},
		BoardWidth:      8,
		BoardHeight:     8,
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		RequestLog:      true,
		SessionTTL:      2 * time.Hour,
	}
}

// Parse builds a Config from command-line arguments, starting from Default.
func Parse(name string, args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	origins := strings.Join(cfg.AllowOrigins, ",")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	fs.StringVar(&origins, "origins", origins, "Comma separated CORS and WebSocket origins")
	fs.IntVar(&cfg.BoardWidth, "width", cfg.BoardWidth, "Board width in files")
	fs.IntVar(&cfg.BoardHeight, "height", cfg.BoardHeight, "Board height in ranks")
	fs.IntVar(&cfg.ReadBufferSize, "ws-read-buffer", cfg.ReadBufferSize, "WebSocket read buffer size")
	fs.IntVar(&cfg.WriteBufferSize, "ws-write-buffer", cfg.WriteBufferSize, "WebSocket write buffer size")
	fs.BoolVar(&cfg.RequestLog, "request-log", cfg.RequestLog, "Log every HTTP request")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Idle time before a session is dropped (0 = never)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.AllowOrigins = splitOrigins(origins)
	return cfg, cfg.Validate()
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	case c.BoardWidth < 1 || c.BoardWidth > 26:
		return fmt.Errorf("%w: board width %d not in [1, 26]", ErrInvalidConfig, c.BoardWidth)
	case c.BoardHeight < 4 || c.BoardHeight > 99:
		return fmt.Errorf("%w: board height %d not in [4, 99]", ErrInvalidConfig, c.BoardHeight)
	case c.ReadBufferSize <= 0 || c.WriteBufferSize <= 0:
		return fmt.Errorf("%w: websocket buffers must be positive", ErrInvalidConfig)
	case c.SessionTTL < 0:
		return fmt.Errorf("%w: negative session ttl", ErrInvalidConfig)
	}
	return nil
}

// OriginList is the comma separated form fiber's CORS middleware expects.
func (c Config) OriginList() string {
	return strings.Join(c.AllowOrigins, ", ")
}
