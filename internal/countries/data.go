package countries

const (
	CapitalFallback    = "Capital not found"
	LanguageFallback   = "Language not found"
	PopulationFallback = "Population data not available"
)

var (
	Capitals = NewTable("capital", CapitalFallback, map[string]string{
		"france":         "Paris",
		"germany":        "Berlin",
		"japan":          "Tokyo",
		"brazil":         "Brasília",
		"egypt":          "Cairo",
		"pakistan":       "Islamabad",
		"india":          "New Delhi",
		"united states":  "Washington, D.C.",
		"canada":         "Ottawa",
		"australia":      "Canberra",
		"united kingdom": "London",
		"china":          "Beijing",
		"russia":         "Moscow",
		"south africa":   "Pretoria",
		"mexico":         "Mexico City",
		"italy":          "Rome",
		"spain":          "Madrid",
		"south korea":    "Seoul",
		"turkey":         "Ankara",
		"argentina":      "Buenos Aires",
		"indonesia":      "Jakarta",
		"nigeria":        "Abuja",
		"philippines":    "Manila",
		"vietnam":        "Hanoi",
		"thailand":       "Bangkok",
		"saudi arabia":   "Riyadh",
		"netherlands":    "Amsterdam",
		"sweden":         "Stockholm",
		"norway":         "Oslo",
		"finland":        "Helsinki",
		"poland":         "Warsaw",
		"ukraine":        "Kyiv",
		"belgium":        "Brussels",
		"switzerland":    "Bern",
		"austria":        "Vienna",
		"denmark":        "Copenhagen",
		"portugal":       "Lisbon",
		"greece":         "Athens",
		"czech republic": "Prague",
		"hungary":        "Budapest",
		"ireland":        "Dublin",
	})

	// South Africa has no language entry.
	Languages = NewTable("language", LanguageFallback, map[string]string{
		"france":         "French",
		"germany":        "German",
		"japan":          "Japanese",
		"brazil":         "Portuguese",
		"egypt":          "Arabic",
		"pakistan":       "Urdu",
		"india":          "Hindi, English",
		"united states":  "English",
		"canada":         "English, French",
		"australia":      "English",
		"united kingdom": "English",
		"china":          "Mandarin",
		"russia":         "Russian",
		"mexico":         "Spanish",
		"italy":          "Italian",
		"spain":          "Spanish",
		"south korea":    "Korean",
		"turkey":         "Turkish",
		"argentina":      "Spanish",
		"indonesia":      "Indonesian",
		"nigeria":        "English",
		"philippines":    "Filipino, English",
		"vietnam":        "Vietnamese",
		"thailand":       "Thai",
		"saudi arabia":   "Arabic",
		"netherlands":    "Dutch",
		"sweden":         "Swedish",
		"norway":         "Norwegian",
		"finland":        "Finnish, Swedish",
		"poland":         "Polish",
		"ukraine":        "Ukrainian",
		"belgium":        "Dutch, French, German",
		"switzerland":    "German, French, Italian, Romansh",
		"austria":        "German",
		"denmark":        "Danish",
		"portugal":       "Portuguese",
		"greece":         "Greek",
		"czech republic": "Czech",
		"hungary":        "Hungarian",
		"ireland":        "Irish, English",
	})

	Populations = NewTable("population", PopulationFallback, map[string]string{
		"france":         "68 million",
		"germany":        "83 million",
		"japan":          "125 million",
		"brazil":         "213 million",
		"egypt":          "109 million",
		"pakistan":       "240 million",
		"india":          "1.4 billion",
		"united states":  "331 million",
		"canada":         "38 million",
		"australia":      "26 million",
		"united kingdom": "67 million",
		"china":          "1.4 billion",
		"russia":         "146 million",
		"south africa":   "60 million",
		"mexico":         "126 million",
		"italy":          "60 million",
		"spain":          "47 million",
		"south korea":    "52 million",
		"turkey":         "85 million",
		"argentina":      "45 million",
		"indonesia":      "276 million",
		"nigeria":        "223 million",
		"philippines":    "113 million",
		"vietnam":        "98 million",
		"thailand":       "70 million",
		"saudi arabia":   "35 million",
		"netherlands":    "17 million",
		"sweden":         "10 million",
		"norway":         "5 million",
		"finland":        "5.5 million",
		"poland":         "38 million",
		"ukraine":        "41 million",
		"belgium":        "11 million",
		"switzerland":    "8.5 million",
		"austria":        "9 million",
		"denmark":        "5.8 million",
		"portugal":       "10 million",
		"greece":         "10 million",
		"czech republic": "10.5 million",
		"hungary":        "9.6 million",
		"ireland":        "5 million",
	})
)
