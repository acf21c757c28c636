package summarizer

import "regexp"

// verseNumberRe 行首经文编号：如 "1 "、"3:16 "、"1. "，编号后必须跟空白
var verseNumberRe = regexp.MustCompile(`^\s*\d+(?::\d+)?\.?\s+`)

// referenceRe 经文出处引用：书卷缩写（可带 1-5 卷号前缀）加章节编号，
// 如 "Józs 1,8"、"3Móz 25,37"、"Zsolt 101"
var referenceRe = regexp.MustCompile(`[1-5]?\p{Lu}\p{L}*\.?\s+\d+(?:\s*,\s*\d+)?\s*`)

// stripVerseNumber 去除行首的经文编号（含其后的分隔空白）。
// 仅匹配行首，行中出现的编号不受影响；不匹配则原样返回。
func stripVerseNumber(line string) string {
	loc := verseNumberRe.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[loc[1]:]
}

// stripReferences 去除行内所有经文出处引用，并清理行尾残留空白
func stripReferences(line string) string {
	line = referenceRe.ReplaceAllString(line, "")
	return trimTrailingSpace(line)
}

func trimTrailingSpace(line string) string {
	end := len(line)
	for end > 0 && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	return line[:end]
}
