package catalog

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет не найден в справочнике
	ErrPackageNotFound = errors.New("catalog: package not found")

	// ErrLoadSeed возвращается при ошибке загрузки seed-файла справочника
	ErrLoadSeed = errors.New("catalog: failed to load seed file")
)
