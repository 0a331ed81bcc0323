package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var filenameStripRegex = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename 生成可安全落盘的文件名: 去掉路径与非 ASCII 字符, 空白折叠为下划线.
// 结果可能为空串, 由调用方处理
func SecureFilename(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if ascii, _, err := transform.String(t, name); err == nil {
		name = ascii
	}

	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = filenameStripRegex.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}
