package utils

import "strings"

// StorageObject gdata 中保存截图的对象名
const StorageObject = "screenshots"

// cleanCmdline 去掉 /proc/self/cmdline 中的 NUL 和换行，得到包名
func cleanCmdline(data []byte) string {
	return strings.Map(func(r rune) rune {
		if r == 0 || r == '\n' {
			return -1
		}
		return r
	}, string(data))
}
