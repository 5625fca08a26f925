package durstr

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

func TestDurationUnmarshalText(t *testing.T) {
	var cfg struct {
		Timeout  Duration `toml:"timeout"`
		Interval Duration `toml:"interval"`
	}
	data := "timeout = \"1 hr 30 min\"\ninterval = \"250ms\"\n"
	if _, err := toml.Decode(data, &cfg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Timeout.Std() != 90*time.Minute {
		t.Fatalf("expected 1h30m0s, got %v", cfg.Timeout)
	}
	if cfg.Interval.Std() != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", cfg.Interval)
	}

	if _, err := toml.Decode(`timeout = "soon"`, &cfg); err == nil {
		t.Fatalf("expected parse error to surface")
	}
}

func TestDurationUnmarshalJSON(t *testing.T) {
	var v struct {
		Wait Duration `json:"wait"`
	}
	if err := json.Unmarshal([]byte(`{"wait": "12 minutes, 21 seconds"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.Wait.Std() != 741*time.Second {
		t.Fatalf("expected 741s, got %v", v.Wait)
	}
	if err := json.Unmarshal([]byte(`{"wait": null}`), &v); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if v.Wait.Std() != 741*time.Second {
		t.Fatalf("expected null to keep the value, got %v", v.Wait)
	}
	if err := json.Unmarshal([]byte(`{"wait": 5}`), &v); err == nil {
		t.Fatalf("expected bare number to be rejected")
	}
}

func TestFlag(t *testing.T) {
	units := DefaultUnits()
	_ = units.AddUnit(24*time.Hour, "d", "days")
	p := New(Options{IgnoreCase: true, Units: units})

	var timeout, retry time.Duration
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	DurationVarP(fs, p, &timeout, "timeout", "t", 30*time.Second, "timeout")
	DurationVarP(fs, nil, &retry, "retry", "", time.Second, "retry delay")

	if timeout != 30*time.Second || retry != time.Second {
		t.Fatalf("expected defaults to be applied, got %v %v", timeout, retry)
	}
	if err := fs.Parse([]string{"--timeout", "2 Days 1h", "--retry=1min 5s"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if timeout != 49*time.Hour {
		t.Fatalf("expected 49h, got %v", timeout)
	}
	if retry != 65*time.Second {
		t.Fatalf("expected 65s, got %v", retry)
	}

	f := fs.Lookup("timeout")
	if f.Value.Type() != "duration" || f.Value.String() != "49h0m0s" || f.DefValue != "30s" {
		t.Fatalf("unexpected flag metadata: %s %s %s", f.Value.Type(), f.Value.String(), f.DefValue)
	}

	if err := fs.Parse([]string{"--retry", "1 day"}); err == nil {
		t.Fatalf("expected default parser to reject days")
	}
}
