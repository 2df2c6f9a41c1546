package entity

// Genre classifies a book into one of the fixed store shelves.
type Genre string

const (
	GenreDrama               Genre = "DRAMA"
	GenreFiction             Genre = "FICTION"
	GenreAction              Genre = "ACTION"
	GenreRomance             Genre = "ROMANCE"
	GenreSciFi               Genre = "SCI_FI"
	GenreWestern             Genre = "WESTERN"
	GenreHistory             Genre = "HISTORY"
	GenreCivilEngineering    Genre = "CIVIL_ENGINEERING"
	GenreJava                Genre = "JAVA"
	GenrePython              Genre = "PYTHON"
	GenreSoftwareProgramming Genre = "SOFTWARE_PROGRAMMING"
	GenreReligion            Genre = "RELIGION"
)

// String returns the string representation of the Genre.
func (g Genre) String() string {
	return string(g)
}

// IsValid checks if the Genre is a known shelf.
func (g Genre) IsValid() bool {
	switch g {
	case GenreDrama, GenreFiction, GenreAction, GenreRomance, GenreSciFi,
		GenreWestern, GenreHistory, GenreCivilEngineering, GenreJava,
		GenrePython, GenreSoftwareProgramming, GenreReligion:
		return true
	default:
		return false
	}
}
