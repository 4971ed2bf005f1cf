package domain

// Service услуга салона. Хранится как строковый код.
type Service string

const (
	ServiceManicure      Service = "manicure"
	ServicePedicure      Service = "pedicure"
	ServiceLashes        Service = "cilios"
	ServiceComboManiPedi Service = "combo_mani_pedi"
	ServiceComboComplete Service = "combo_completo"
)

var serviceNames = map[Service]string{
	ServiceManicure:      "Manicure",
	ServicePedicure:      "Pedicure",
	ServiceLashes:        "Cílios",
	ServiceComboManiPedi: "Manicure + Pedicure",
	ServiceComboComplete: "Manicure + Pedicure + Cílios",
}

// Services возвращает каталог услуг в порядке отображения
func Services() []Service {
	return []Service{
		ServiceManicure,
		ServicePedicure,
		ServiceLashes,
		ServiceComboManiPedi,
		ServiceComboComplete,
	}
}

// IsKnown проверяет, что услуга есть в каталоге
func (s Service) IsKnown() bool {
	_, ok := serviceNames[s]
	return ok
}

// DisplayName человекочитаемое название; для неизвестных услуг - сам код
func (s Service) DisplayName() string {
	if name, ok := serviceNames[s]; ok {
		return name
	}
	return string(s)
}
