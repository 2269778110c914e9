package field

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Load: 텍스트 파일에서 지도를 읽는다.
// 파일이 없으면 빈 지도로 시작한다.
func Load(path string, width, height int) (*Map, error) {
	var lines []string
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		for _, line := range strings.Split(string(data), "\n") {
			// Windows 파일에서 \r\n 처리를 위해 \r 제거
			lines = append(lines, strings.TrimRight(line, "\r"))
		}
		log.Printf("✅ %d 줄 지도를 로드했습니다. 파일: %s", len(lines), path)
	case os.IsNotExist(err):
		log.Printf("⚠️ 지도 파일이 존재하지 않습니다. 빈 지도로 시작합니다: %s", path)
	default:
		return nil, fmt.Errorf("field: load %s: %w", path, err)
	}
	return Parse(width, height, lines)
}
