package user

// Repository provides access to the usuarios table.
type Repository interface {
	List() ([]User, error)
	GetByID(id int) (User, error)
	Create(n NewUser) (User, error)
	Update(id int, u UserUpdate) (User, error)
	Delete(id int) error
}
