package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer 把摘要原样写入输出目录下的文件
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = "output"
	}
	return &Writer{dir: dir}
}

// Save 保存摘要内容到 name 对应的文件，name 无扩展名时补 .txt，返回完整路径
func (w *Writer) Save(name, summary string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("输出文件名不能为空")
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}

	if filepath.Ext(name) == "" {
		name += ".txt"
	}

	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(summary), 0644); err != nil {
		return "", fmt.Errorf("写入摘要文件失败: %w", err)
	}

	return path, nil
}
