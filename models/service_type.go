package models

// ServiceType describes one entry of the clinic's service catalogue.
// DurationMinutes of 0 means the service is not directly schedulable
// and always goes through manual follow-up.
type ServiceType struct {
	ID              string `json:"id"`
	DisplayName     string `json:"displayName"`
	DurationMinutes int    `json:"durationMinutes"`
	AutoBookable    bool   `json:"autoBookable"`
}

// ServiceCatalogue is the clinic's fixed service list. The wire format
// carries display names, so lookups are by name.
type ServiceCatalogue []ServiceType

// ByDisplayName returns the catalogue entry for the given display name.
func (c ServiceCatalogue) ByDisplayName(name string) (ServiceType, bool) {
	for _, s := range c {
		if s.DisplayName == name {
			return s, true
		}
	}
	return ServiceType{}, false
}

// DefaultServiceCatalogue mirrors the services offered on the clinic site.
func DefaultServiceCatalogue() ServiceCatalogue {
	return ServiceCatalogue{
		{ID: "limpieza", DisplayName: "Limpieza Dental", DurationMinutes: 60, AutoBookable: true},
		{ID: "evaluacion", DisplayName: "Evaluación Dental / Diagnóstico", DurationMinutes: 60, AutoBookable: true},
		{ID: "restauracion", DisplayName: "Restauraciones Simples / Rellenos", DurationMinutes: 60, AutoBookable: true},
		{ID: "ortodoncia", DisplayName: "Ortodoncia", DurationMinutes: 0, AutoBookable: false},
		{ID: "estetica", DisplayName: "Estética Dental", DurationMinutes: 0, AutoBookable: false},
		{ID: "blanqueamiento", DisplayName: "Blanqueamiento", DurationMinutes: 0, AutoBookable: false},
	}
}
