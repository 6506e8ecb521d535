package users

// Seed returns the fixture accounts a new workspace starts with.
func Seed() []User {
	return []User{
		{ID: 1, Name: "Ahmed Ali", Email: "ahmed.ali@example.com", Role: RoleAdmin, Status: StatusActive, CreatedAt: "2024-01-12"},
		{ID: 2, Name: "Sara Mohamed", Email: "sara.mohamed@example.com", Role: RoleManager, Status: StatusActive, CreatedAt: "2024-02-03"},
		{ID: 3, Name: "Omar Hassan", Email: "omar.hassan@example.com", Role: RoleUser, Status: StatusSuspended, CreatedAt: "2024-02-19"},
		{ID: 4, Name: "Laila Youssef", Email: "laila.youssef@example.com", Role: RoleUser, Status: StatusActive, CreatedAt: "2024-03-07"},
		{ID: 5, Name: "Khaled Ibrahim", Email: "khaled.ibrahim@example.com", Role: RoleManager, Status: StatusActive, CreatedAt: "2024-03-28"},
		{ID: 6, Name: "Mona Adel", Email: "mona.adel@example.com", Role: RoleUser, Status: StatusActive, CreatedAt: "2024-04-15"},
		{ID: 7, Name: "Youssef Samir", Email: "youssef.samir@example.com", Role: RoleUser, Status: StatusSuspended, CreatedAt: "2024-05-02"},
		{ID: 8, Name: "Nour Khalil", Email: "nour.khalil@example.com", Role: RoleAdmin, Status: StatusActive, CreatedAt: "2024-06-21"},
		{ID: 9, Name: "Hana Mostafa", Email: "hana.mostafa@example.com", Role: RoleUser, Status: StatusActive, CreatedAt: "2024-07-09"},
		{ID: 10, Name: "Tarek Fawzy", Email: "tarek.fawzy@example.com", Role: RoleUser, Status: StatusActive, CreatedAt: "2024-08-30"},
		{ID: 11, Name: "Dina Farouk", Email: "dina.farouk@example.com", Role: RoleManager, Status: StatusSuspended, CreatedAt: "2024-09-14"},
		{ID: 12, Name: "Karim Nabil", Email: "karim.nabil@example.com", Role: RoleUser, Status: StatusActive, CreatedAt: "2024-10-05"},
	}
}
