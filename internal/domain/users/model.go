package users

// User es la cuenta de acceso de un staff. PasswordHash guarda bcrypt,
// nunca el password en claro, y nunca se serializa hacia el cliente.
type User struct {
	ID int64

	Username     string
	PasswordHash string

	// Opcional: vincula la cuenta con un registro de staff.
	StaffID *int64
}
