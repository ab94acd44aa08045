package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Addr string `env:"CMD_TEST_ADDR" envDefault:"127.0.0.1:9810"`
	Path string `env:"CMD_TEST_PATH" envDefault:"worldgen.db"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_ADDR", "env:9000")
	t.Setenv("CMD_TEST_PATH", "env.db")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "addr")
	fs.StringVar(&cfg.Path, "db", cfg.Path, "db path")

	if err := ParseArgs(fs, []string{"-addr", "flag:9001"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Addr != "flag:9001" {
		t.Fatalf("expected flag value for addr, got %q", cfg.Addr)
	}
	if cfg.Path != "env.db" {
		t.Fatalf("expected env default path, got %q", cfg.Path)
	}
}

func TestParseConfigFromArgsReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_ADDR", "configarg:9000")

	cfg := testConfig{}
	fs := flag.NewFlagSet("configargs", flag.ContinueOnError)
	bind := func(cfg *testConfig, fs *flag.FlagSet) {
		fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "addr")
		fs.StringVar(&cfg.Path, "db", cfg.Path, "db path")
	}
	if err := ParseConfigFromArgs(&cfg, fs, []string{"-addr", "flag:9002"}, bind); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfg.Addr != "flag:9002" {
		t.Fatalf("expected parsed flag addr, got %q", cfg.Addr)
	}
	if cfg.Path != "worldgen.db" {
		t.Fatalf("expected env default path, got %q", cfg.Path)
	}
}

func TestParseConfigFromArgsNilBind(t *testing.T) {
	cfg := testConfig{}
	fs := flag.NewFlagSet("nobind", flag.ContinueOnError)
	if err := ParseConfigFromArgs(&cfg, fs, nil, nil); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9810" {
		t.Fatalf("expected env default addr, got %q", cfg.Addr)
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRequiresService(t *testing.T) {
	err := RunWithTelemetry(context.Background(), "  ", func(context.Context) error { return nil })
	if err == nil {
		t.Fatal("expected error for blank service name")
	}
}

func TestRunWithTelemetryPropagatesRunError(t *testing.T) {
	t.Setenv("WORLDGEN_OTEL_ENDPOINT", "")

	want := errors.New("run failed")
	err := RunWithTelemetry(context.Background(), ServiceServer, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("expected run error, got %v", err)
	}
}
