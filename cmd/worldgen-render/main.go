// Command worldgen-render prints an ASCII world to stdout: two perlin
// noise maps combined into terrain and classified into water, grass,
// hills, and mountains.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"

	platformcmd "github.com/louisbranch/worldgen/internal/platform/cmd"
	"github.com/louisbranch/worldgen/internal/platform/config"
	"github.com/louisbranch/worldgen/noise"
	"github.com/louisbranch/worldgen/noisemap"
	"github.com/louisbranch/worldgen/world"
)

type renderConfig struct {
	Seed   string `env:"WORLDGEN_RENDER_SEED" envDefault:"Hello?"`
	Detail string `env:"WORLDGEN_RENDER_DETAIL_SEED" envDefault:"Hello!"`
	Width  int64  `env:"WORLDGEN_RENDER_WIDTH" envDefault:"80"`
	Height int64  `env:"WORLDGEN_RENDER_HEIGHT" envDefault:"50"`
	ChunkX int64  `env:"WORLDGEN_RENDER_CHUNK_X" envDefault:"0"`
	ChunkY int64  `env:"WORLDGEN_RENDER_CHUNK_Y" envDefault:"0"`
}

func main() {
	var cfg renderConfig
	fs := flag.NewFlagSet(platformcmd.ServiceRender, flag.ExitOnError)
	err := platformcmd.ParseConfigFromArgs(&cfg, fs, os.Args[1:], func(cfg *renderConfig, fs *flag.FlagSet) {
		fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "base terrain seed string")
		fs.StringVar(&cfg.Detail, "detail-seed", cfg.Detail, "detail layer seed string")
		fs.Int64Var(&cfg.Width, "width", cfg.Width, "chunk width in tiles")
		fs.Int64Var(&cfg.Height, "height", cfg.Height, "chunk height in tiles")
		fs.Int64Var(&cfg.ChunkX, "chunk-x", cfg.ChunkX, "chunk x coordinate")
		fs.Int64Var(&cfg.ChunkY, "chunk-y", cfg.ChunkY, "chunk y coordinate")
	})
	if err != nil {
		config.Exitf("parse config: %v", err)
	}

	err = platformcmd.RunWithTelemetry(context.Background(), platformcmd.ServiceRender, func(ctx context.Context) error {
		return render(cfg)
	})
	if err != nil {
		config.Exitf("render: %v", err)
	}
}

func render(cfg renderConfig) error {
	perlin := noise.NewPerlin()

	base := noisemap.New(perlin,
		noisemap.WithSeedString(cfg.Seed),
		noisemap.WithStep(0.005, 0.005),
		noisemap.WithSize(cfg.Width, cfg.Height))
	detail := noisemap.New(perlin,
		noisemap.WithSeedString(cfg.Detail),
		noisemap.WithStep(0.05, 0.05),
		noisemap.WithSize(cfg.Width, cfg.Height))
	terrain := noisemap.Combine(base, noisemap.Scale(detail, 3))

	w := world.New[rune](cfg.Width, cfg.Height).
		Add(world.NewTile('~').When(world.LT(terrain, -0.1))). // water
		Add(world.NewTile(',').When(world.LT(terrain, 0.45))). // grass
		Add(world.NewTile('^').When(world.GT(terrain, 0.8))).  // mountains
		Add(world.NewTile('n'))                                // hills

	rows, err := w.Generate(cfg.ChunkX, cfg.ChunkY)
	if err != nil {
		return fmt.Errorf("generate world chunk: %w", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, row := range rows {
		for _, tile := range row {
			fmt.Fprintf(out, "%c", tile)
		}
		fmt.Fprintln(out)
	}
	return nil
}
