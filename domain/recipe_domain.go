package domain

import "Recetas-Backend/entities"

var (
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"
)

type (
	// RecipeStepInput is one nested step of a composite recipe write.
	RecipeStepInput struct {
		ID          *int    `json:"id" validate:"omitempty,gt=0,int32"`
		OrderNo     *int    `json:"order_no" validate:"required,int32"`
		Instruction *string `json:"instruction"`
	}

	// RecipeIngredientInput is one nested ingredient line of a composite
	// recipe write.
	RecipeIngredientInput struct {
		ID           *int    `json:"id" validate:"omitempty,gt=0,int32"`
		Quantity     *int    `json:"quantity" validate:"required,int32"`
		Unit         *string `json:"unit"`
		IDIngredient *int    `json:"id_ingredient" validate:"required,int32"`
	}

	AssociationRef struct {
		ID int `json:"id" validate:"required,int32"`
	}

	CreateRecipeRequest struct {
		ID           *int                    `json:"id" validate:"omitempty,gt=0,int32"`
		Title        string                  `json:"title" validate:"required"`
		Description  *string                 `json:"description"`
		PrepTime     *int                    `json:"prep_time" validate:"omitempty,int32"`
		CookTime     *int                    `json:"cook_time" validate:"omitempty,int32"`
		Difficulty   *string                 `json:"difficulty"`
		IDUser       *int                    `json:"id_user" validate:"required,int32"`
		Steps        []RecipeStepInput       `json:"steps" validate:"omitempty,dive"`
		Ingredients  []RecipeIngredientInput `json:"ingredients" validate:"omitempty,dive"`
		Categories   []AssociationRef        `json:"categories" validate:"omitempty,dive"`
		CuisineTypes []AssociationRef        `json:"cuisine_types" validate:"omitempty,dive"`
	}

	// UpdateRecipeRequest replaces steps and ingredients wholesale when they
	// are present, and sets categories and cuisine types to exactly the
	// listed ids. A nil slice means the field was absent.
	UpdateRecipeRequest struct {
		Title        *string                 `json:"title" validate:"omitempty,min=1"`
		Description  *string                 `json:"description"`
		PrepTime     *int                    `json:"prep_time" validate:"omitempty,int32"`
		CookTime     *int                    `json:"cook_time" validate:"omitempty,int32"`
		Difficulty   *string                 `json:"difficulty"`
		IDUser       *int                    `json:"id_user" validate:"omitempty,int32"`
		Steps        []RecipeStepInput       `json:"steps" validate:"omitempty,dive"`
		Ingredients  []RecipeIngredientInput `json:"ingredients" validate:"omitempty,dive"`
		Categories   []AssociationRef        `json:"categories" validate:"omitempty,dive"`
		CuisineTypes []AssociationRef        `json:"cuisine_types" validate:"omitempty,dive"`
	}

	CreatePreparationStepRequest struct {
		ID          *int    `json:"id" validate:"omitempty,gt=0,int32"`
		OrderNo     *int    `json:"order_no" validate:"required,int32"`
		Instruction *string `json:"instruction"`
		IDRecipe    *int    `json:"id_recipe" validate:"required,int32"`
	}

	UpdatePreparationStepRequest struct {
		OrderNo     *int    `json:"order_no" validate:"omitempty,int32"`
		Instruction *string `json:"instruction"`
		IDRecipe    *int    `json:"id_recipe" validate:"omitempty,int32"`
	}

	CreateRecipeIngredientRequest struct {
		ID           *int    `json:"id" validate:"omitempty,gt=0,int32"`
		Quantity     *int    `json:"quantity" validate:"required,int32"`
		Unit         *string `json:"unit"`
		IDIngredient *int    `json:"id_ingredient" validate:"required,int32"`
		IDRecipe     *int    `json:"id_recipe" validate:"required,int32"`
	}

	UpdateRecipeIngredientRequest struct {
		Quantity     *int    `json:"quantity" validate:"omitempty,int32"`
		Unit         *string `json:"unit"`
		IDIngredient *int    `json:"id_ingredient" validate:"omitempty,int32"`
		IDRecipe     *int    `json:"id_recipe" validate:"omitempty,int32"`
	}

	CreateRecipeCategoryRequest struct {
		ID         *int `json:"id" validate:"omitempty,gt=0,int32"`
		IDCategory *int `json:"id_category" validate:"required,int32"`
		IDRecipe   *int `json:"id_recipe" validate:"required,int32"`
	}

	UpdateRecipeCategoryRequest struct {
		IDCategory *int `json:"id_category" validate:"omitempty,int32"`
		IDRecipe   *int `json:"id_recipe" validate:"omitempty,int32"`
	}

	CreateRecipeCuisineTypeRequest struct {
		ID            *int `json:"id" validate:"omitempty,gt=0,int32"`
		IDCuisineType *int `json:"id_cuisine_type" validate:"required,int32"`
		IDRecipe      *int `json:"id_recipe" validate:"required,int32"`
	}

	UpdateRecipeCuisineTypeRequest struct {
		IDCuisineType *int `json:"id_cuisine_type" validate:"omitempty,int32"`
		IDRecipe      *int `json:"id_recipe" validate:"omitempty,int32"`
	}
)

type (
	RecipeAuthor struct {
		Username string  `json:"username"`
		Email    *string `json:"email"`
	}

	RecipeStep struct {
		ID          int     `json:"id"`
		OrderNo     int     `json:"order_no"`
		Instruction *string `json:"instruction"`
	}

	IngredientName struct {
		Name string `json:"name"`
	}

	RecipeIngredientLine struct {
		ID           int             `json:"id"`
		Quantity     int             `json:"quantity"`
		Unit         *string         `json:"unit"`
		IDIngredient int             `json:"id_ingredient"`
		Ingredient   *IngredientName `json:"Ingredient"`
	}

	NamedRef struct {
		ID   int     `json:"id"`
		Name *string `json:"name"`
	}

	FeedbackAuthor struct {
		Username string `json:"username"`
	}

	RecipeRating struct {
		ID    int             `json:"id"`
		Score int             `json:"score"`
		Date  *entities.Date  `json:"date"`
		User  *FeedbackAuthor `json:"User"`
	}

	RecipeComment struct {
		ID   int             `json:"id"`
		Text string          `json:"text"`
		Date *entities.Date  `json:"date"`
		User *FeedbackAuthor `json:"User"`
	}

	// RecipeDetail is the composed read of a recipe. Collections are never
	// null.
	RecipeDetail struct {
		ID                int                    `json:"id"`
		Title             string                 `json:"title"`
		Description       *string                `json:"description"`
		PrepTime          *int                   `json:"prep_time"`
		CookTime          *int                   `json:"cook_time"`
		Difficulty        *string                `json:"difficulty"`
		IDUser            int                    `json:"id_user"`
		User              *RecipeAuthor          `json:"User"`
		PreparationSteps  []RecipeStep           `json:"PreparationSteps"`
		RecipeIngredients []RecipeIngredientLine `json:"RecipeIngredients"`
		Categories        []NamedRef             `json:"Categories"`
		CuisineTypes      []NamedRef             `json:"CuisineTypes"`
		Ratings           []RecipeRating         `json:"Ratings"`
		Comments          []RecipeComment        `json:"Comments"`
	}
)

func (r CreateRecipeRequest) RequestedID() int { return value(r.ID) }

func (r CreateRecipeRequest) Entity(id int) entities.Recipe {
	return entities.Recipe{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		PrepTime:    r.PrepTime,
		CookTime:    r.CookTime,
		Difficulty:  r.Difficulty,
		IDUser:      value(r.IDUser),
	}
}

func (r UpdateRecipeRequest) Patch() map[string]any {
	p := patch{}
	setIf(p, "title", r.Title)
	setIf(p, "description", r.Description)
	setIf(p, "prep_time", r.PrepTime)
	setIf(p, "cook_time", r.CookTime)
	setIf(p, "difficulty", r.Difficulty)
	setIf(p, "id_user", r.IDUser)
	return p
}

// StepEntities tags every nested step with recipeID. Missing ids stay zero.
func StepEntities(recipeID int, in []RecipeStepInput) []entities.PreparationStep {
	out := make([]entities.PreparationStep, 0, len(in))
	for _, s := range in {
		out = append(out, entities.PreparationStep{
			ID:          value(s.ID),
			OrderNo:     value(s.OrderNo),
			Instruction: s.Instruction,
			IDRecipe:    recipeID,
		})
	}
	return out
}

func IngredientEntities(recipeID int, in []RecipeIngredientInput) []entities.RecipeIngredient {
	out := make([]entities.RecipeIngredient, 0, len(in))
	for _, i := range in {
		out = append(out, entities.RecipeIngredient{
			ID:           value(i.ID),
			Quantity:     value(i.Quantity),
			Unit:         i.Unit,
			IDIngredient: value(i.IDIngredient),
			IDRecipe:     recipeID,
		})
	}
	return out
}

// RefIDs flattens association refs, keeping nil for an absent list.
func RefIDs(refs []AssociationRef) []int {
	if refs == nil {
		return nil
	}
	ids := make([]int, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ID)
	}
	return ids
}

func (r CreatePreparationStepRequest) RequestedID() int { return value(r.ID) }

func (r CreatePreparationStepRequest) Entity(id int) entities.PreparationStep {
	return entities.PreparationStep{
		ID:          id,
		OrderNo:     value(r.OrderNo),
		Instruction: r.Instruction,
		IDRecipe:    value(r.IDRecipe),
	}
}

func (r UpdatePreparationStepRequest) Patch() map[string]any {
	p := patch{}
	setIf(p, "order_no", r.OrderNo)
	setIf(p, "instruction", r.Instruction)
	setIf(p, "id_recipe", r.IDRecipe)
	return p
}

func (r CreateRecipeIngredientRequest) RequestedID() int { return value(r.ID) }

func (r CreateRecipeIngredientRequest) Entity(id int) entities.RecipeIngredient {
	return entities.RecipeIngredient{
		ID:           id,
		Quantity:     value(r.Quantity),
		Unit:         r.Unit,
		IDIngredient: value(r.IDIngredient),
		IDRecipe:     value(r.IDRecipe),
	}
}

func (r UpdateRecipeIngredientRequest) Patch() map[string]any {
	p := patch{}
	setIf(p, "quantity", r.Quantity)
	setIf(p, "unit", r.Unit)
	setIf(p, "id_ingredient", r.IDIngredient)
	setIf(p, "id_recipe", r.IDRecipe)
	return p
}

func (r CreateRecipeCategoryRequest) RequestedID() int { return value(r.ID) }

func (r CreateRecipeCategoryRequest) Entity(id int) entities.RecipeCategory {
	return entities.RecipeCategory{ID: id, IDCategory: value(r.IDCategory), IDRecipe: value(r.IDRecipe)}
}

func (r UpdateRecipeCategoryRequest) Patch() map[string]any {
	p := patch{}
	setIf(p, "id_category", r.IDCategory)
	setIf(p, "id_recipe", r.IDRecipe)
	return p
}

func (r CreateRecipeCuisineTypeRequest) RequestedID() int { return value(r.ID) }

func (r CreateRecipeCuisineTypeRequest) Entity(id int) entities.RecipeCuisineType {
	return entities.RecipeCuisineType{ID: id, IDCuisineType: value(r.IDCuisineType), IDRecipe: value(r.IDRecipe)}
}

func (r UpdateRecipeCuisineTypeRequest) Patch() map[string]any {
	p := patch{}
	setIf(p, "id_cuisine_type", r.IDCuisineType)
	setIf(p, "id_recipe", r.IDRecipe)
	return p
}

// NewRecipeDetail flattens a recipe loaded with its associations.
func NewRecipeDetail(r entities.Recipe) RecipeDetail {
	d := RecipeDetail{
		ID:                r.ID,
		Title:             r.Title,
		Description:       r.Description,
		PrepTime:          r.PrepTime,
		CookTime:          r.CookTime,
		Difficulty:        r.Difficulty,
		IDUser:            r.IDUser,
		PreparationSteps:  make([]RecipeStep, 0, len(r.Steps)),
		RecipeIngredients: make([]RecipeIngredientLine, 0, len(r.Ingredients)),
		Categories:        make([]NamedRef, 0, len(r.RecipeCategories)),
		CuisineTypes:      make([]NamedRef, 0, len(r.RecipeCuisineTypes)),
		Ratings:           make([]RecipeRating, 0, len(r.Ratings)),
		Comments:          make([]RecipeComment, 0, len(r.Comments)),
	}
	if r.User != nil {
		d.User = &RecipeAuthor{Username: r.User.Username, Email: r.User.Email}
	}
	for _, s := range r.Steps {
		d.PreparationSteps = append(d.PreparationSteps, RecipeStep{ID: s.ID, OrderNo: s.OrderNo, Instruction: s.Instruction})
	}
	for _, i := range r.Ingredients {
		line := RecipeIngredientLine{ID: i.ID, Quantity: i.Quantity, Unit: i.Unit, IDIngredient: i.IDIngredient}
		if i.Ingredient != nil {
			line.Ingredient = &IngredientName{Name: i.Ingredient.Name}
		}
		d.RecipeIngredients = append(d.RecipeIngredients, line)
	}
	for _, rc := range r.RecipeCategories {
		if rc.Category != nil {
			d.Categories = append(d.Categories, NamedRef{ID: rc.Category.ID, Name: rc.Category.Name})
		}
	}
	for _, rc := range r.RecipeCuisineTypes {
		if rc.CuisineType != nil {
			d.CuisineTypes = append(d.CuisineTypes, NamedRef{ID: rc.CuisineType.ID, Name: rc.CuisineType.Name})
		}
	}
	for _, rt := range r.Ratings {
		d.Ratings = append(d.Ratings, RecipeRating{ID: rt.ID, Score: rt.Score, Date: rt.Date, User: feedbackAuthor(rt.User)})
	}
	for _, c := range r.Comments {
		d.Comments = append(d.Comments, RecipeComment{ID: c.ID, Text: c.Text, Date: c.Date, User: feedbackAuthor(c.User)})
	}
	return d
}

func feedbackAuthor(u *entities.User) *FeedbackAuthor {
	if u == nil {
		return nil
	}
	return &FeedbackAuthor{Username: u.Username}
}
