package entities

type Rating struct {
	ID       int   `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Score    int   `gorm:"column:score;not null" json:"score"`
	Date     *Date `gorm:"column:date" json:"date"`
	IDUser   int   `gorm:"column:id_user;not null;index" json:"id_user"`
	IDRecipe int   `gorm:"column:id_recipe;not null;index" json:"id_recipe"`

	User   *User   `gorm:"foreignKey:IDUser" json:"User,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:IDRecipe" json:"Recipe,omitempty"`
}

func (Rating) TableName() string { return TableRatings }

func (r Rating) PrimaryKey() int { return r.ID }

func (r Rating) Values() map[string]any {
	return map[string]any{
		"id":        r.ID,
		"score":     r.Score,
		"date":      r.Date,
		"id_user":   r.IDUser,
		"id_recipe": r.IDRecipe,
	}
}

type Comment struct {
	ID       int    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Text     string `gorm:"column:text;not null" json:"text"`
	Date     *Date  `gorm:"column:date" json:"date"`
	IDUser   int    `gorm:"column:id_user;not null;index" json:"id_user"`
	IDRecipe int    `gorm:"column:id_recipe;not null;index" json:"id_recipe"`

	User   *User   `gorm:"foreignKey:IDUser" json:"User,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:IDRecipe" json:"Recipe,omitempty"`
}

func (Comment) TableName() string { return TableComments }

func (c Comment) PrimaryKey() int { return c.ID }

func (c Comment) Values() map[string]any {
	return map[string]any{
		"id":        c.ID,
		"text":      c.Text,
		"date":      c.Date,
		"id_user":   c.IDUser,
		"id_recipe": c.IDRecipe,
	}
}
