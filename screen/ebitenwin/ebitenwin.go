// Package ebitenwin: ebiten 창에 screen.Memory를 띄우는 백엔드
package ebitenwin

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go_jaso/screen"
)

// Controls: 이번 틱에 눌린 키
type Controls struct {
	DX, DY int
	Quit   bool
}

// pollControls: 방향키와 ESC만 본다
func pollControls() Controls {
	var c Controls
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		c.DY = -1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		c.DY = 1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		c.DX = -1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		c.DX = 1
	}
	c.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return c
}

// Game: Memory 화면을 ebiten 창에 띄우는 어댑터.
// update는 틱마다, frame은 그리기마다 한 번 호출된다.
type Game struct {
	mem    *screen.Memory
	fbImg  *ebiten.Image
	update func(Controls) error
	frame  func(screen.Surface) error
	err    error
}

// NewGame: w*h 메모리 화면을 가진 Game
func NewGame(width, height int, update func(Controls) error, frame func(screen.Surface) error) *Game {
	return &Game{
		mem:    screen.NewMemory(width, height),
		update: update,
		frame:  frame,
	}
}

// Run: 창을 열고 닫힐 때까지 블록
func Run(title string, fps int, g *Game) error {
	b := g.mem.Bounds()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetTPS(fps)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	// Draw에서 난 에러는 다음 틱에 돌려준다
	if g.err != nil {
		return g.err
	}
	c := pollControls()
	if c.Quit {
		return ebiten.Termination
	}
	if g.update != nil {
		return g.update(c)
	}
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	if g.frame != nil {
		if err := g.frame(g.mem); err != nil {
			g.err = err
			return
		}
	}
	b := g.mem.Bounds()
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.fbImg.WritePixels(g.mem.Image().Pix)
	dst.DrawImage(g.fbImg, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.mem.Bounds()
	return b.Dx(), b.Dy()
}
