package models

// Taxonomy is the fixed mapping from a degree to its permitted
// specialisations. Labels are carried verbatim from the published catalog and
// must match the stored records character for character.
var Taxonomy = map[string][]string{
	"Computer Science": {
		"Core",
		"Data Science",
		"Information Technology",
		"Artificial Intelligence",
		"Cloud Computing",
		"Cyber Security",
		"Computer Networking",
		"Gaming Technology",
		"Artificial Intelligence and Machine Learning",
		"Business Systems",
		"Big Data Analytics",
		"Block Chain Technology",
		"Software Engineering",
		"Internet of Things",
	},
	"Biotechnology": {
		"Biotechnology Core",
		"Biotechnology (Computational Biology)",
		"Biotechnology W/S in Food Technology",
		"Biotechnology W/S in Genetic Engineering",
		"Biotechnology W/S in Regenerative Medicine",
	},
	"Electrical": {
		"Electrical & Electronics Engineering",
		"Electric Vehicle Technology",
	},
	"Civil": {
		"Civil Engineering Core",
		"Civil Engineering with Computer Applications",
	},
	"ECE": {
		"ECE (Electronics and Communication Engineering)",
		"Electronics & Communication Engineering",
		"Cyber Physical Systems",
		"Data Sciences",
		"Electronics and Computer Engineering",
		"VLSI Design and Technology",
	},
	"Automobile": {
		"Core",
		"Automotive Electronics",
		"Vehicle Testing",
	},
	"Mechanical": {
		"Core",
		"Automation and Robotics",
		"AIML (Artificial Intelligence and Machine Learning)",
		"Mechatronics Engineering Core",
		"Autonomous Driving Technology",
		"Immersive Technologies",
		"Industrial IoT",
		"Robotics",
	},
}

// Degrees is the degree selection order presented by the console.
var Degrees = []string{
	"Computer Science",
	"Biotechnology",
	"Electrical",
	"Civil",
	"ECE",
	"Automobile",
	"Mechanical",
}

// SpecialisationsFor returns the allowed specialisations for a degree.
// Unknown degrees yield an empty set.
func SpecialisationsFor(degree string) []string {
	return Taxonomy[degree]
}

// IsAllowedSpecialisation reports whether the specialisation belongs to the
// degree's taxonomy entry.
func IsAllowedSpecialisation(degree, specialisation string) bool {
	for _, s := range Taxonomy[degree] {
		if s == specialisation {
			return true
		}
	}
	return false
}
