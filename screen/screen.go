package screen

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

// Window: X 서버 창 + 화면 버퍼.
// 버퍼에 그린 뒤 Present로 한 번에 전송한다.
type Window struct {
	width        int
	height       int
	screenBuffer []uint32

	xu     *xgbutil.XUtil
	window xproto.Window
	gc     xproto.Gcontext
	depth  byte
}

// NewWindow: X 연결 + 창/GC 생성
func NewWindow(title string, width, height int) (*Window, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("screen: X 연결 실패: %w", err)
	}

	setup := xproto.Setup(xu.Conn())
	defaultScreen := setup.DefaultScreen(xu.Conn())

	windowId, err := xproto.NewWindowId(xu.Conn())
	if err != nil {
		return nil, err
	}
	xproto.CreateWindow(
		xu.Conn(),
		xproto.WindowClassCopyFromParent,
		windowId,
		defaultScreen.Root,
		0, 0, // x, y 위치
		uint16(width),  // 폭
		uint16(height), // 높이
		0,              // border width
		xproto.WindowClassInputOutput,
		defaultScreen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			defaultScreen.BlackPixel,
			xproto.EventMaskExposure | xproto.EventMaskKeyPress,
		},
	)

	gcId, err := xproto.NewGcontextId(xu.Conn())
	if err != nil {
		return nil, err
	}
	xproto.CreateGC(
		xu.Conn(),
		gcId,
		xproto.Drawable(windowId),
		xproto.GcForeground|xproto.GcBackground,
		[]uint32{
			defaultScreen.WhitePixel,
			defaultScreen.BlackPixel,
		},
	)

	// 창 제목, 닫기 버튼 처리
	if err := ewmh.WmNameSet(xu, windowId, title); err != nil {
		return nil, fmt.Errorf("screen: 창 제목 설정 실패: %w", err)
	}
	if err := icccm.WmProtocolsSet(xu, windowId, []string{"WM_DELETE_WINDOW"}); err != nil {
		return nil, fmt.Errorf("screen: WM_PROTOCOLS 설정 실패: %w", err)
	}

	xproto.MapWindow(xu.Conn(), windowId)

	return &Window{
		width:        width,
		height:       height,
		screenBuffer: make([]uint32, width*height),
		xu:           xu,
		window:       windowId,
		gc:           gcId,
		depth:        defaultScreen.RootDepth,
	}, nil
}

// XU: 이벤트 처리(commander)용 연결
func (w *Window) XU() *xgbutil.XUtil {
	return w.xu
}

// ID: X 창 id
func (w *Window) ID() xproto.Window {
	return w.window
}

func (w *Window) Bounds() image.Rectangle {
	return image.Rect(0, 0, w.width, w.height)
}

// Clear: 전체 화면을 특정 색으로 채우기
func (w *Window) Clear(c Color) {
	for i := range w.screenBuffer {
		w.screenBuffer[i] = uint32(c)
	}
}

// SetPixel: 범위 밖은 무시
func (w *Window) SetPixel(x, y int, c Color) {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return
	}
	w.screenBuffer[y*w.width+x] = uint32(c)
}

// Blit: 스크래치를 버퍼에 합성
func (w *Window) Blit(s *Scratch, x, y int) {
	for row := 0; row < s.height; row++ {
		py := y + row
		if py < 0 || py >= w.height {
			continue
		}
		for col := 0; col < s.width; col++ {
			px := x + col
			if px < 0 || px >= w.width {
				continue
			}
			idx := py*w.width + px
			w.screenBuffer[idx] = uint32(over(Color(w.screenBuffer[idx]), s.Pixel(col, row)))
		}
	}
}

// Present: 스크린 버퍼 → X 서버로 전송 (64줄씩 끊어서)
func (w *Window) Present() error {
	chunkHeight := 64

	for yStart := 0; yStart < w.height; yStart += chunkHeight {
		h := chunkHeight
		if yStart+h > w.height {
			h = w.height - yStart
		}

		data := make([]byte, w.width*h*4)
		idx := 0
		for row := yStart; row < yStart+h; row++ {
			for col := 0; col < w.width; col++ {
				r, g, b, _ := Color(w.screenBuffer[row*w.width+col]).Channels()
				// ARGB → B, G, R, X
				data[idx+0] = b
				data[idx+1] = g
				data[idx+2] = r
				data[idx+3] = 0
				idx += 4
			}
		}

		err := xproto.PutImageChecked(
			w.xu.Conn(),
			xproto.ImageFormatZPixmap,
			xproto.Drawable(w.window),
			w.gc,
			uint16(w.width),
			uint16(h),
			0, int16(yStart),
			0,
			w.depth,
			data,
		).Check()
		if err != nil {
			return fmt.Errorf("screen: PutImage: %w", err)
		}
	}
	return nil
}

// Close: X 연결 종료
func (w *Window) Close() {
	xproto.DestroyWindow(w.xu.Conn(), w.window)
	w.xu.Conn().Close()
}
