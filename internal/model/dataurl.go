package model

import "regexp"

// dataURLPattern base64 data URL 格式
// 形如 data:image/png;base64,iVBORw0...
var dataURLPattern = regexp.MustCompile(`^data:([-.\w+/]+);base64,([A-Za-z0-9+/=]+)$`)

// ParseDataURL 解析 base64 data URL，返回其中的 MIME 类型与 base64 载荷
func ParseDataURL(dataURL string) (mimeType, payload string, err error) {
	m := dataURLPattern.FindStringSubmatch(dataURL)
	if m == nil {
		return "", "", NewBadRequest("dataUrl must be a base64 data URL")
	}
	return m[1], m[2], nil
}
