package content

import "strings"

// Category groups works whose tags contain any of its keywords.
type Category struct {
	ID       string
	Label    string
	Keywords []string
}

// AllCategory matches every work.
const AllCategory = "all"

// Categories are the gallery filters, in display order.
var Categories = []Category{
	{ID: AllCategory, Label: "All"},
	{ID: "production", Label: "Production", Keywords: []string{"production", "composition", "sound design"}},
	{ID: "mixing", Label: "Mixing", Keywords: []string{"mixing"}},
	{ID: "mastering", Label: "Mastering", Keywords: []string{"mastering"}},
	{ID: "engineering", Label: "Engineering", Keywords: []string{"recording", "engineering", "tracking"}},
	{ID: "immersive", Label: "Immersive", Keywords: []string{"immersive", "dolby", "spatial"}},
	{ID: "scoring", Label: "Scoring", Keywords: []string{"scoring", "film", "picture"}},
}

// CategoryByID looks up a category.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Filter returns the works in category id. "all" and unknown ids return
// works unchanged; works without tags never match a real category.
func Filter(works []Work, id string) []Work {
	category, ok := CategoryByID(id)
	if !ok || id == AllCategory {
		return works
	}
	var out []Work
	for _, w := range works {
		if category.Matches(w) {
			out = append(out, w)
		}
	}
	return out
}

// Matches reports whether any tag of w contains any keyword.
func (c Category) Matches(w Work) bool {
	for _, tag := range w.Tags {
		tag = strings.ToLower(tag)
		for _, keyword := range c.Keywords {
			if strings.Contains(tag, keyword) {
				return true
			}
		}
	}
	return false
}
