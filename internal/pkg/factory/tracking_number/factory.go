package tracking_number

import (
	"math/rand/v2"
	"strconv"

	"logistics/internal/entities"
)

// числовая часть всегда из 12 цифр
const (
	suffixMin   int64 = 100_000_000_000
	suffixRange int64 = 900_000_000_000
)

type Factory struct {
	prefix string
}

func New() *Factory {
	return &Factory{prefix: entities.TrackingNumberPrefix}
}

// Next генерирует кандидата. Уникальность не гарантируется,
// ее подтверждает хранилище.
func (f *Factory) Next() string {
	return f.prefix + strconv.FormatInt(suffixMin+rand.Int64N(suffixRange), 10)
}
