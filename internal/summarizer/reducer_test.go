package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduceWord(t *testing.T) {
	hu := NewDigraphSet(HungarianDigraphs)

	tests := []struct {
		word string
		want string
	}{
		{"apa", "a"},
		{"word", "w"},
		{"In", "I"},
		{"csend", "cs"},
		{"gyerek", "gy"},
		{"lyuk", "ly"},
		{"nyár", "ny"},
		{"szép", "sz"},
		{"tyúk", "ty"},
		{"zsiráf", "zs"},
		{"CSEND", "CS"},
		{"Szép", "Sz"},
		{"a", "a"},
	}

	for _, tt := range tests {
		got := reduceWord([]rune(tt.word), hu)
		assert.Equal(t, tt.want, got, "词: %q", tt.word)
	}

	assert.Equal(t, "", reduceWord(nil, hu))
	assert.Equal(t, "c", reduceWord([]rune("csend"), nil))
}

func TestDigraphSet_Contains(t *testing.T) {
	set := NewDigraphSet([]string{"cs", "SZ", " gy ", ""})

	assert.True(t, set.Contains('c', 's'))
	assert.True(t, set.Contains('C', 'S'))
	assert.True(t, set.Contains('s', 'z'))
	assert.True(t, set.Contains('g', 'y'))
	assert.False(t, set.Contains('l', 'y'))

	var empty DigraphSet
	assert.False(t, empty.Contains('c', 's'))
}

func TestReduceLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "空行",
			line: "",
			want: "",
		},
		{
			name: "单词",
			line: "word",
			want: "w",
		},
		{
			name: "空白原样保留",
			line: "  two   words  ",
			want: "  t   w  ",
		},
		{
			name: "行中数字原样保留",
			line: "Genesis 3:16 test",
			want: "G 3:16 t",
		},
		{
			name: "撇号后的尾部丢弃",
			line: "don't stop",
			want: "d' s",
		},
		{
			name: "句点后紧跟的尾部丢弃",
			line: "end.Next word",
			want: "e. w",
		},
		{
			name: "括号不算词内标点",
			line: "(hello)",
			want: "(h)",
		},
		{
			name: "复合词逐段缩减",
			line: "word-one-two",
			want: "w-o-t",
		},
		{
			name: "空格旁的连字符按标点处理",
			line: "word- one",
			want: "w- o",
		},
		{
			name: "行首连字符按标点处理",
			line: "-word",
			want: "-w",
		},
		{
			name: "词内标点后的连字符不再连接",
			line: "don't-stop",
			want: "d'-",
		},
	}

	hu := NewDigraphSet(HungarianDigraphs)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reduceLine(tt.line, hu)
			assert.Equal(t, tt.want, got)
		})
	}
}
