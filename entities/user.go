package entities

type User struct {
	ID       int     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Username string  `gorm:"column:username;not null" json:"username"`
	Email    *string `gorm:"column:email" json:"email,omitempty"`
	Password *string `gorm:"column:password" json:"password,omitempty"`

	Recipes       []Recipe       `gorm:"foreignKey:IDUser;constraint:OnDelete:CASCADE" json:"-"`
	ShoppingLists []ShoppingList `gorm:"foreignKey:IDUser;constraint:OnDelete:CASCADE" json:"-"`
	Ratings       []Rating       `gorm:"foreignKey:IDUser;constraint:OnDelete:CASCADE" json:"-"`
	Comments      []Comment      `gorm:"foreignKey:IDUser;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string { return TableUsers }

func (u User) PrimaryKey() int { return u.ID }

func (u User) Values() map[string]any {
	return map[string]any{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"password": u.Password,
	}
}
