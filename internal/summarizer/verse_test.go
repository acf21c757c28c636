package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripVerseNumber(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "单个编号",
			line: "1 In the beginning",
			want: "In the beginning",
		},
		{
			name: "章节编号",
			line: "3:16 For God so loved",
			want: "For God so loved",
		},
		{
			name: "带点编号",
			line: "1. In the beginning",
			want: "In the beginning",
		},
		{
			name: "行首空白加编号",
			line: "  12 szöveg",
			want: "szöveg",
		},
		{
			name: "无编号原样返回",
			line: "In the beginning God created",
			want: "In the beginning God created",
		},
		{
			name: "行中编号不去除",
			line: "igazat szól; 3 nyelvével nem",
			want: "igazat szól; 3 nyelvével nem",
		},
		{
			name: "编号后无空白不去除",
			line: "1In the beginning",
			want: "1In the beginning",
		},
		{
			name: "仅编号无分隔符不去除",
			line: "42",
			want: "42",
		},
		{
			name: "空行",
			line: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripVerseNumber(tt.line))
		})
	}
}

func TestStripReferences(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "行尾出处",
			line: "éjjel-nappal. Józs 1,8",
			want: "éjjel-nappal.",
		},
		{
			name: "逗号后带空格的出处",
			line: "word. J 1, 8",
			want: "word.",
		},
		{
			name: "完整句子加出处",
			line: "Minden sikerül. Jer 17,8",
			want: "Minden sikerül.",
		},
		{
			name: "带卷号前缀的出处",
			line: "Aki ezeket teszi. 3Móz 25,37; 5Móz 16,19",
			want: "Aki ezeket teszi. ;",
		},
		{
			name: "行中出处",
			line: "text 1Móz 1,1 end",
			want: "text end",
		},
		{
			name: "书卷加单个编号",
			line: "ha kárt vall is. Zsolt 101",
			want: "ha kárt vall is.",
		},
		{
			name: "无出处原样返回",
			line: "semmi hivatkozás itt",
			want: "semmi hivatkozás itt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripReferences(tt.line))
		})
	}
}
