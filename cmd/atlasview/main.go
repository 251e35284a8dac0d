//go:build sdl2
// +build sdl2

// Command atlasview is the debug viewer (component C11): it decodes a
// generated PNG atlas and displays it in an SDL2 window so a developer
// can eyeball rectangle packing and glyph placement. It never calls
// into the generation pipeline itself — only image/png and SDL2.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"log"
	"os"

	"github.com/veandco/go-sdl2/sdl"
)

func main() {
	path := flag.String("atlas", "", "path to a generated atlas PNG")
	flag.Parse()
	if *path == "" {
		log.Fatal("atlasview: -atlas is required")
	}

	img, err := loadRGBA(*path)
	if err != nil {
		log.Fatalf("atlasview: %v", err)
	}

	if err := run(img); err != nil {
		log.Fatalf("atlasview: %v", err)
	}
}

func loadRGBA(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, rgba.Bounds(), src, src.Bounds().Min, draw.Src)
	return rgba, nil
}

func run(img *image.RGBA) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	w, h := int32(img.Bounds().Dx()), int32(img.Bounds().Dy())

	window, err := sdl.CreateWindow("atlasview", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC, w, h)
	if err != nil {
		return fmt.Errorf("create texture: %w", err)
	}
	defer texture.Destroy()

	if err := texture.Update(nil, img.Pix, img.Stride); err != nil {
		return fmt.Errorf("upload atlas: %w", err)
	}

	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				ke := event.(*sdl.KeyboardEvent)
				if ke.Keysym.Sym == sdl.K_ESCAPE || ke.Keysym.Sym == sdl.K_q {
					running = false
				}
			}
		}

		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()
		sdl.Delay(16)
	}

	return nil
}
