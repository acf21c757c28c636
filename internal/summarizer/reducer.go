package summarizer

import (
	"strings"
	"unicode"
)

// reduceLine 对单行执行逐词缩减：每个字母连续段缩减为首字母（或二合字母），
// 其余字符（空白、标点、数字）原样按位保留。
//
// 词内标点（前一个字符是字母的非字母字符，如缩写中的撇号）终止当前正写词，
// 该词后续的字母段全部丢弃，直到遇到空白；连接两个字母段的连字符视为
// 复合词分隔，两侧独立缩减并保留连字符。
func reduceLine(line string, digraphs DigraphSet) string {
	runes := []rune(line)
	n := len(runes)

	var b strings.Builder
	b.Grow(len(line))

	discard := false
	i := 0
	for i < n {
		r := runes[i]

		if unicode.IsSpace(r) {
			b.WriteRune(r)
			discard = false
			i++
			continue
		}

		if !unicode.IsLetter(r) {
			// 词内标点：其后同一正写词中的字母段视为尾部，予以丢弃
			if i > 0 && unicode.IsLetter(runes[i-1]) {
				discard = true
			}
			b.WriteRune(r)
			i++
			continue
		}

		// 字母连续段
		j := i
		for j < n && unicode.IsLetter(runes[j]) {
			j++
		}

		if !discard {
			b.WriteString(reduceWord(runes[i:j], digraphs))

			// 连字符直接连接两个字母段时为复合词，各段独立缩减
			for j < n && runes[j] == '-' && j+1 < n && unicode.IsLetter(runes[j+1]) {
				b.WriteRune('-')
				k := j + 1
				for k < n && unicode.IsLetter(runes[k]) {
					k++
				}
				b.WriteString(reduceWord(runes[j+1:k], digraphs))
				j = k
			}
		}

		i = j
	}

	return b.String()
}

// reduceWord 返回词的首字母，若前两个字母构成二合字母则返回前两个，保留原大小写
func reduceWord(word []rune, digraphs DigraphSet) string {
	if len(word) == 0 {
		return ""
	}
	if len(word) >= 2 && digraphs.Contains(word[0], word[1]) {
		return string(word[:2])
	}
	return string(word[:1])
}
