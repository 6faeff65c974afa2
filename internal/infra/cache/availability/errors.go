package availability

import "errors"

var (
	// ErrCacheUnavailable возвращается, когда Redis не отвечает
	ErrCacheUnavailable = errors.New("availability.cache: redis unavailable")

	// ErrCorruptedEntry возвращается, когда запись в кэше не удалось разобрать
	ErrCorruptedEntry = errors.New("availability.cache: corrupted entry")
)
