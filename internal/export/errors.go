package export

import "errors"

var (
	// ErrRender возвращается при ошибке формирования файла
	ErrRender = errors.New("export: render failed")
)
