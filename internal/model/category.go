package model

// CategoryAll is the filter sentinel meaning "no category filter".
// It is never stored on an item.
const CategoryAll = 0

// Categories is the immutable reference table of donation categories.
var Categories = map[int]string{
	1:  "Food",
	2:  "Clothes",
	3:  "Books",
	4:  "Furniture",
	5:  "Household Items",
	6:  "Electronics",
	7:  "Toys",
	8:  "Medical Supplies",
	9:  "Pet Supplies",
	10: "Others",
}

// CategoryName returns the display name for a category id.
func CategoryName(id int) string {
	return Categories[id]
}

// ValidCategory reports whether id names a storable category.
func ValidCategory(id int) bool {
	_, ok := Categories[id]
	return ok
}
