package viewer

import (
	"log"
	"time"

	"go_jaso/field"
	"go_jaso/render"
	"go_jaso/screen"
	"go_jaso/viewer/commander"
)

// 화면 배치
const (
	BannerX = 100
	BannerY = 100
	FieldX  = 100
	FieldY  = BannerY + 2*render.LineHeight
	// 시야 반지름
	SightRadius = 4
	// 아스키 아트는 지도 오른쪽, 지도 윗줄에 맞춘다
	ArtGap = 2
)

var (
	ClearColor  = screen.RGBA(0, 0, 0, 0)
	LatinColor  = screen.RGBA(255, 150, 150, 255)
	HangulColor = screen.RGBA(0, 255, 0, 255)
	PlayerColor = screen.RGBA(255, 255, 255, 255)
	ArtColor    = screen.RGBA(255, 255, 255, 255)
)

// Viewer: 배너 문자열과 지도를 매 프레임 그린다.
type Viewer struct {
	renderer *render.Renderer
	field    *field.Map
	banner   string
	art      []string

	posX, posY int
	running    bool
}

// New: (0, 0)에서 시작, 시야 계산까지 마친 Viewer
func New(r *render.Renderer, m *field.Map, banner string) *Viewer {
	v := &Viewer{
		renderer: r,
		field:    m,
		banner:   banner,
		running:  true,
	}
	m.FOV(v.posX, v.posY, SightRadius)
	return v
}

// SetArt: 매 프레임 그릴 아스키 아트 (render.ArtLines 결과)
func (v *Viewer) SetArt(lines []string) {
	v.art = lines
}

// ArtOrigin: 아스키 아트 첫 줄의 시작 좌표
func (v *Viewer) ArtOrigin() (int, int) {
	return FieldX + (v.field.Width+ArtGap)*render.LatinAdvance, FieldY
}

// Position: 현재 플레이어 위치
func (v *Viewer) Position() (int, int) {
	return v.posX, v.posY
}

// Running: Stop 전까지 true
func (v *Viewer) Running() bool {
	return v.running
}

// Stop: 루프 종료 요청
func (v *Viewer) Stop() {
	v.running = false
}

// Move: 지도 안에서만 움직이고 시야를 다시 계산한다.
func (v *Viewer) Move(dx, dy int) {
	nx, ny := v.posX+dx, v.posY+dy
	if !v.field.In(nx, ny) {
		return
	}
	v.posX, v.posY = nx, ny
	v.field.FOV(nx, ny, SightRadius)
}

// Apply: commander 명령 처리
func (v *Viewer) Apply(cmd commander.Command) {
	switch cmd.Code {
	case commander.CmdExit:
		v.Stop()
	case commander.CmdMove:
		v.Move(cmd.DX, cmd.DY)
	}
}

// Frame: 한 프레임 그리기. 화면 전송(Present)은 호출자 몫.
func (v *Viewer) Frame(s screen.Surface) error {
	s.Clear(ClearColor)
	sink := render.NewRasterSink(s)

	_, err := v.renderer.DrawStyled(sink, v.banner, BannerX, BannerY, render.Style{
		Latin:      LatinColor,
		Hangul:     HangulColor,
		Background: render.Transparent,
	})
	if err != nil {
		return err
	}

	if err := v.renderer.DrawField(sink, v.field, FieldX, FieldY); err != nil {
		return err
	}

	if len(v.art) > 0 {
		ax, ay := v.ArtOrigin()
		if err := v.renderer.DrawLines(sink, v.art, ax, ay, ArtColor, render.Transparent); err != nil {
			return err
		}
	}

	_, err = v.renderer.DrawText(sink, "@",
		FieldX+v.posX*render.LatinAdvance, FieldY+v.posY*render.LineHeight,
		PlayerColor, render.Transparent)
	return err
}

// RunX11: FPS 기반 화면 업데이트 & 이벤트 루프.
// ESC나 창 닫기, 렌더 오류가 날 때까지 블록한다.
func (v *Viewer) RunX11(win *screen.Window, fps int) error {
	cmdr := commander.NewCommander(win.XU())
	cmdr.StartListening()
	defer cmdr.Stop()
	cmds := cmdr.GetCommandChan()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for v.running {
		select {
		case cmd, ok := <-cmds:
			if !ok {
				log.Println("⚠️ X 연결이 닫혔습니다.")
				v.Stop()
				continue
			}
			v.Apply(cmd)

		case <-ticker.C:
			// FPS마다 그리고 Flush
			if err := v.Frame(win); err != nil {
				return err
			}
			if err := win.Present(); err != nil {
				return err
			}
		}
	}
	return nil
}
