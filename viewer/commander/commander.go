package commander

import (
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xprop"
)

// CommandCode: 명령 코드
type CommandCode uint8

const (
	CmdMove CommandCode = iota
	CmdExit
)

// X11 KeySym 상수 정의 (X11/keysymdef.h 참고)
const (
	XK_ESC   = 0xFF1B
	XK_Left  = 0xFF51
	XK_Up    = 0xFF52
	XK_Right = 0xFF53
	XK_Down  = 0xFF54
)

const (
	KeyESC   rune = 0xFF1B
	KeyLeft  rune = 0xFF51
	KeyUp    rune = 0xFF52
	KeyRight rune = 0xFF53
	KeyDown  rune = 0xFF54
)

// Command: 실행할 명령. CmdMove일 때만 DX, DY 사용
type Command struct {
	Code   CommandCode
	DX, DY int
}

// Commander: X 이벤트 수집 및 명령 변환 담당
type Commander struct {
	xu         *xgbutil.XUtil
	deleteAtom xproto.Atom
	eventChan  chan Command

	// done: Stop 이후 닫힌다. 받는 쪽이 없으면 보내지 않는다.
	done     chan struct{}
	stopOnce sync.Once
}

// NewCommander: keybind 초기화 후 생성
func NewCommander(xu *xgbutil.XUtil) *Commander {
	keybind.Initialize(xu)
	atom, _ := xprop.Atm(xu, "WM_DELETE_WINDOW")
	return &Commander{
		xu:         xu,
		deleteAtom: atom,
		eventChan:  make(chan Command, 20),
		done:       make(chan struct{}),
	}
}

// Stop: 수신 중단. 여러 번 불러도 된다.
func (c *Commander) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

// deliver: Stop 이후에는 false. 버퍼가 차 있어도 막히지 않는다.
func (c *Commander) deliver(cmd Command) bool {
	select {
	case c.eventChan <- cmd:
		return true
	case <-c.done:
		return false
	}
}

// CommandForKey: 키 → 명령. 모르는 키면 false
func CommandForKey(key rune) (Command, bool) {
	switch key {
	case KeyESC:
		return Command{Code: CmdExit}, true
	case KeyLeft:
		return Command{Code: CmdMove, DX: -1}, true
	case KeyRight:
		return Command{Code: CmdMove, DX: 1}, true
	case KeyUp:
		return Command{Code: CmdMove, DY: -1}, true
	case KeyDown:
		return Command{Code: CmdMove, DY: 1}, true
	}
	return Command{}, false
}

// TranslateXEventToCommand: X 이벤트 -> Command 변환
func (c *Commander) TranslateXEventToCommand(ev xgb.Event) (Command, bool) {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		keyRune, err := TranslateKeyCode(c.xu, e.Detail)
		if err != nil {
			return Command{}, false
		}
		return CommandForKey(keyRune)
	case xproto.ClientMessageEvent:
		// 창 닫기 버튼
		if c.deleteAtom != 0 && e.Format == 32 && xproto.Atom(e.Data.Data32[0]) == c.deleteAtom {
			return Command{Code: CmdExit}, true
		}
	}
	return Command{}, false
}

// collectCommands: X 이벤트를 수신하고 Command로 변환
func (c *Commander) collectCommands() {
	for {
		ev, err := c.xu.Conn().WaitForEvent()
		if ev == nil && err == nil {
			// 연결이 닫힘
			close(c.eventChan)
			return
		}
		if ev != nil {
			cmd, ok := c.TranslateXEventToCommand(ev)
			if ok && !c.deliver(cmd) {
				return
			}
		}
	}
}

// StartListening: 이벤트 루프 실행 (별도 고루틴)
func (c *Commander) StartListening() {
	go c.collectCommands()
}

// GetCommandChan: Command 채널 반환
func (c *Commander) GetCommandChan() <-chan Command {
	return c.eventChan
}

// TranslateKeyCode: KeyCode를 KeySym으로 변환 후 rune으로 변환
func TranslateKeyCode(xu *xgbutil.XUtil, keycode xproto.Keycode) (rune, error) {
	keysym := keybind.KeysymGet(xu, keycode, 0)
	if keysym == 0 {
		return 0, fmt.Errorf("no keysym found for keycode %d", keycode)
	}

	switch keysym {
	case XK_ESC:
		return KeyESC, nil
	case XK_Left:
		return KeyLeft, nil
	case XK_Right:
		return KeyRight, nil
	case XK_Up:
		return KeyUp, nil
	case XK_Down:
		return KeyDown, nil
	}
	return rune(keysym), nil
}
