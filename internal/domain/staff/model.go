package staff

// Member representa a un integrante del equipo de la clínica
// (doctores, técnicos, recepción).
type Member struct {
	ID int64

	Name      string
	Role      string
	Specialty string
	ImageURL  string
	IsActive  bool
}
