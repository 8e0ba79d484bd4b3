package domain

// Location географическая точка
type Location struct {
	Latitude  float64
	Longitude float64
}

// IsZero возвращает true, если координаты не заданы
func (l Location) IsZero() bool {
	return l.Latitude == 0 && l.Longitude == 0
}

// IsValid проверяет диапазоны широты и долготы
func (l Location) IsValid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// Vendor салон (поставщик услуг), владеющий пулом специалистов, услуг и записей
type Vendor struct {
	ID       string
	Name     string
	Location Location
	Timezone string // IANA, например "Europe/Moscow"; пусто = таймзона по умолчанию
}
