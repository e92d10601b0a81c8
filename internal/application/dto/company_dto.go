package dto

// CompanyResponse empresa para listados ("nombre (ubicación)").
type CompanyResponse struct {
	Name  string
	Label string
}

// CompanyEmployees empleados activos de una empresa.
type CompanyEmployees struct {
	CompanyName string
	Usernames   []string
}
