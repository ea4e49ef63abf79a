package main

import (
	"path/filepath"

	"fluo/internal/project"
)

// manifestAllowsKeywordNames ищет fluo.toml вверх от файла и читает
// [syntax].allow_keyword_names. Отсутствие манифеста — не ошибка:
// одиночные файлы компилируются с настройками по умолчанию.
func manifestAllowsKeywordNames(filePath string) bool {
	cfg, _, err := project.Load(filepath.Dir(filePath))
	if err != nil {
		return false
	}
	return cfg.Syntax.AllowKeywordNames
}
