package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Значения по умолчанию
const (
	// DefaultWeekdayOpensAt в будние дни салон принимает только после обеда
	DefaultWeekdayOpensAt = "14:00"

	// DefaultBlockDateReason причина блокировки целого дня, если администратор её не указал
	DefaultBlockDateReason = "Data bloqueada"
)

// Ограничения на входные данные
const (
	MaxClientNameLength = 120
	MaxNotesLength      = 500
	MaxReasonLength     = 255
)
