package patients

// Patient representa una mascota registrada en la clínica.
// El ID lo asigna el store (contador secuencial por tipo de entidad).
type Patient struct {
	ID int64

	Name    string
	Species string
	Breed   string
	Age     int
	Gender  string

	OwnerName  string
	OwnerPhone string

	ImageURL string
	Notes    string
}
