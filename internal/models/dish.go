package models

// Dish is a single catalog entry. The enabled flag is runtime state: filters
// disable a dish and the leftover matcher may enable it again.
type Dish struct {
	name        string
	special     bool
	veggie      bool
	disabled    bool
	ingredients []string
}

// NewDish creates an enabled dish. Callers normalize the name.
func NewDish(name string) *Dish {
	return &Dish{name: name}
}

func (d *Dish) Name() string {
	return d.name
}

func (d *Dish) IsSpecial() bool {
	return d.special
}

func (d *Dish) IsVeggie() bool {
	return d.veggie
}

func (d *Dish) IsEnabled() bool {
	return !d.disabled
}

// IsVeggieClassified reports whether the dish counts toward the veggie quota.
// Special dishes never do, even when they are veggie compatible.
func (d *Dish) IsVeggieClassified() bool {
	return d.veggie && !d.special
}

func (d *Dish) SetSpecial(special bool) {
	d.special = special
}

func (d *Dish) SetVeggie(veggie bool) {
	d.veggie = veggie
}

func (d *Dish) Enable() {
	d.disabled = false
}

func (d *Dish) Disable() {
	d.disabled = true
}

func (d *Dish) AddIngredient(name string) {
	d.ingredients = append(d.ingredients, name)
}

// Ingredients returns the mandatory ingredients in insertion order.
func (d *Dish) Ingredients() []string {
	return d.ingredients
}

// Requires reports whether ingredient is one of the mandatory ingredients.
func (d *Dish) Requires(ingredient string) bool {
	for _, i := range d.ingredients {
		if i == ingredient {
			return true
		}
	}
	return false
}

// Entry returns the display/persistence tuple for the dish.
func (d *Dish) Entry() PlanEntry {
	return PlanEntry{
		Name:    d.name,
		Veggie:  d.veggie,
		Special: d.special,
	}
}
