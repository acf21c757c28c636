package summarizer

import "strings"

// Summarize 生成背诵摘要：每个词缩减为首字母（或二合字母），标点、连字符
// 与换行结构原样保留，行首经文编号默认去除。
//
// 对任意输入都是纯函数，无错误情形：空输入返回空字符串。多个调用方可
// 并发调用，彼此不共享状态。
func Summarize(text string, opts Options) string {
	var lines []string
	if opts.PreserveStructure {
		// 按换行拆分，空行原样保留，维持原有的纵向间距
		lines = strings.Split(text, "\n")
	} else {
		// 整段视为一行；换行替换为空格，避免行尾与行首的词粘连
		lines = []string{strings.ReplaceAll(text, "\n", " ")}
	}

	result := make([]string, len(lines))
	for i, line := range lines {
		if !opts.KeepVerseNumbers {
			line = stripVerseNumber(line)
		}
		if opts.RemoveReferences {
			line = stripReferences(line)
		}
		result[i] = reduceLine(line, opts.Digraphs)
	}

	return strings.Join(result, "\n")
}
