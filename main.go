package main

import (
	"fmt"
	"log"

	"go_jaso/config"
	"go_jaso/screen"
	"go_jaso/screen/ebitenwin"
	"go_jaso/viewer"
)

func main() {
	if err := run(config.Load()); err != nil {
		log.Fatal(err)
	}
}

// run: 창을 닫고 나서야 반환한다. defer 정리는 여기서 끝난다.
func run(cfg config.Config) error {
	v, err := viewer.Load(cfg)
	if err != nil {
		return err
	}
	log.Printf("✅ %s 백엔드로 시작합니다 (%dx%d, %d fps)", cfg.Backend, cfg.Width, cfg.Height, cfg.FPS)

	switch cfg.Backend {
	case config.BackendEbiten:
		game := ebitenwin.NewGame(cfg.Width, cfg.Height,
			func(c ebitenwin.Controls) error {
				if c.DX != 0 || c.DY != 0 {
					v.Move(c.DX, c.DY)
				}
				return nil
			},
			v.Frame,
		)
		err = ebitenwin.Run(cfg.Title, cfg.FPS, game)

	default:
		win, werr := screen.NewWindow(cfg.Title, cfg.Width, cfg.Height)
		if werr != nil {
			return fmt.Errorf("창 생성 실패: %w", werr)
		}
		defer win.Close()
		err = v.RunX11(win, cfg.FPS)
	}
	if err != nil {
		return fmt.Errorf("렌더링 중단: %w", err)
	}
	return nil
}
