package availability

import "errors"

var (
	// ErrInvalidSearch возвращается при некорректных параметрах поиска
	ErrInvalidSearch = errors.New("availability: invalid search parameters")

	// ErrSequencePartition возвращается, когда шаги последовательности не покрывают окно услуг без зазоров.
	// Наружу из Search не выходит: кандидат пропускается.
	ErrSequencePartition = errors.New("availability: sequence does not partition service window")
)
