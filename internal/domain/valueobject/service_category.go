package valueobject

type ServiceCategory string

var ServiceCategories = []ServiceCategory{
	"Web Development",
	"Mobile App Development",
	"UI/UX Design",
	"Graphic Design",
	"Photography",
	"Videography",
	"Content Writing",
	"Marketing",
	"Illustration",
	"3D Modeling",
	"Animation",
	"Music Production",
	"Other",
}

func (c ServiceCategory) IsValid() bool {
	for _, known := range ServiceCategories {
		if c == known {
			return true
		}
	}
	return false
}
