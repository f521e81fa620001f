package tables

import "github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"

// FrequencyOption describes one frequency level within a time reference
type FrequencyOption struct {
	Level       entities.FrequencyLevel `json:"level"`
	Label       string                  `json:"label"`
	Description string                  `json:"description"`
}

var frequencyDescriptions = map[entities.TimeReference][4]string{
	entities.TimeReferenceDay:   {"≤ 30 min/día", "30-120 min/día", "2-6 h/día", "> 6 h/día"},
	entities.TimeReferenceWeek:  {"≤ 2 h/semana", "2-8 h/semana", "1-3 días/semana", "> 3 días/semana"},
	entities.TimeReferenceMonth: {"1 día/mes", "2-6 días/mes", "7-15 días/mes", "> 15 días/mes"},
	entities.TimeReferenceYear:  {"≤ 15 días/año", "15 días - 2 meses/año", "2-5 meses/año", "> 5 meses/año"},
}

var frequencyLabels = [4]string{"Ocasional", "Intermitente", "Frecuente", "Permanente"}

// TimeReferences lists the supported time references in display order
func TimeReferences() []entities.TimeReference {
	return []entities.TimeReference{
		entities.TimeReferenceDay,
		entities.TimeReferenceWeek,
		entities.TimeReferenceMonth,
		entities.TimeReferenceYear,
	}
}

// FrequencyOptions returns the five levels (0-4) of a time reference.
// ok is false for an unknown reference.
func FrequencyOptions(ref entities.TimeReference) ([]FrequencyOption, bool) {
	descriptions, ok := frequencyDescriptions[ref]
	if !ok {
		return nil, false
	}

	notUsed := "No usado"
	if ref == entities.TimeReferenceYear {
		notUsed = "No usado en el último año (Clase 0)"
	}

	options := make([]FrequencyOption, 0, 5)
	options = append(options, FrequencyOption{Level: entities.FrequencyNotUsed, Label: notUsed})
	for i, desc := range descriptions {
		options = append(options, FrequencyOption{
			Level:       entities.FrequencyLevel(i + 1),
			Label:       frequencyLabels[i],
			Description: desc,
		})
	}
	return options, true
}
