package profile

import "time"

// Profile es el perfil del bebé. Hay uno solo por instalación.
type Profile struct {
	Name     string
	LastName string

	DateOfBirth time.Time // medianoche UTC
	BirthWeight float64   // kg
	BirthHeight float64   // cm

	Avatar string // URL opcional

	UpdatedAt time.Time
}

// FullName junta nombre y apellido para mostrar.
func (p Profile) FullName() string {
	if p.LastName == "" {
		return p.Name
	}
	return p.Name + " " + p.LastName
}
