package summarizer

import (
	"strings"
	"unicode"
)

// HungarianDigraphs 匈牙利语二合字母：两个字符算作一个字母
var HungarianDigraphs = []string{"cs", "gy", "ly", "ny", "sz", "ty", "zs"}

// DigraphSet 二合字母集合，匹配不区分大小写
type DigraphSet map[string]struct{}

// NewDigraphSet 由字符串列表构造二合字母集合，空列表表示纯首字母模式
func NewDigraphSet(digraphs []string) DigraphSet {
	set := make(DigraphSet, len(digraphs))
	for _, d := range digraphs {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		set[d] = struct{}{}
	}
	return set
}

// Contains 判断两个字符是否构成集合中的二合字母
func (set DigraphSet) Contains(first, second rune) bool {
	if len(set) == 0 {
		return false
	}
	key := string([]rune{unicode.ToLower(first), unicode.ToLower(second)})
	_, ok := set[key]
	return ok
}

// Options 摘要选项
type Options struct {
	PreserveStructure bool       // 保留原始换行结构；false 表示整段压平为一行
	KeepVerseNumbers  bool       // 保留行首经文编号（默认去除）
	RemoveReferences  bool       // 去除经文出处引用，如 "Józs 1,8"
	Digraphs          DigraphSet // 生效的二合字母集合
}

// DefaultOptions 默认选项：保留结构、去除行首编号、匈牙利语二合字母
func DefaultOptions() Options {
	return Options{
		PreserveStructure: true,
		Digraphs:          NewDigraphSet(HungarianDigraphs),
	}
}
