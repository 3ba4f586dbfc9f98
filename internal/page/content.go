package page

import "image"

// ProgramItem is one entry in the recital program. Only Composer is
// mandatory; every other field is omitted from the rendered listing when
// empty.
type ProgramItem struct {
	Composer string
	Title    string
	Details  []string
	Pieces   []string
}

// CastMember is one entry in the cast listing.
type CastMember struct {
	Name string
	Role string
}

// Site carries everything the page renders: textual content plus the two
// optional images loaded by the host. Nil images are simply omitted.
type Site struct {
	Name        string
	Description string
	Contact     string

	Tagline      string
	Biography    []string
	Program      []ProgramItem
	Cast         []CastMember
	Coproduction []string
	FooterNote   string

	Logo     image.Image
	Portrait image.Image
}

// DefaultSite returns the fixed page content. The caller may override the
// metadata fields from configuration before rendering.
func DefaultSite() Site {
	return Site{
		Name:        "Mayrav Stern",
		Description: "A recital proposal for presenters and concert series",
		Contact:     "booking@mayravstern.com",
		Tagline:     "Violin Recital — Songs Without Borders",
		Biography: []string{
			"Mayrav Stern has appeared as soloist and chamber musician across " +
				"Europe and South America, with recent engagements at the Sala " +
				"Verdi in Milan, the Teatro Colón chamber series, and the " +
				"Heidelberger Frühling festival.",
			"Her programmes pair canonical sonatas with music written in exile " +
				"and migration, tracing how melodies travel when their composers " +
				"could not. Critics have called her playing \"quietly ferocious\" " +
				"and \"a lesson in patience rewarded\".",
		},
		Program: []ProgramItem{
			{
				Composer: "Clara Schumann",
				Title:    "Drei Romanzen, Op. 22",
				Details:  []string{"for violin and piano", "1853"},
				Pieces: []string{
					"Andante molto",
					"Allegretto",
					"Leidenschaftlich schnell",
				},
			},
			{
				Composer: "Johann Sebastian Bach",
				Title:    "Partita No. 2 in D minor, BWV 1004",
				Details:  []string{"for solo violin"},
				Pieces: []string{
					"Allemanda",
					"Corrente",
					"Sarabanda",
					"Giga",
					"Ciaccona",
				},
			},
			{
				Composer: "Interval",
			},
			{
				Composer: "César Franck",
				Title:    "Sonata in A major, FWV 8",
				Details:  []string{"for violin and piano", "1886"},
				Pieces: []string{
					"Allegretto ben moderato",
					"Allegro",
					"Recitativo-Fantasia",
					"Allegretto poco mosso",
				},
			},
		},
		Cast: []CastMember{
			{Name: "Mayrav Stern", Role: "violin"},
			{Name: "Tomás Aguirre", Role: "piano"},
		},
		Coproduction: []string{
			"The recital is available as a coproduction for the 2027/28 season.",
			"The presenter provides the hall, tuned concert grand, and local " +
				"promotion; the artists cover travel and programme materials.",
			"A pre-concert talk on the programme's exile repertoire can be " +
				"offered at no additional fee.",
		},
		FooterNote: "Full press kit, recordings, and technical rider on request.",
	}
}
