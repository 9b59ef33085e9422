package config

// Built-in parser tables. These mirror the office's current roster and the
// malformed-name variants the biometric scanner is known to emit. Deployments
// override or extend them through config.yaml (parser.* keys); the defaults
// keep a fresh install usable against real dumps.

// defaultNameDictionary is the vocabulary of known first/last name tokens.
// Segmentation tries these longest-first, so order here does not matter.
var defaultNameDictionary = []string{
	"EMMANUEL", "MACALINAO",
	"ARBIE", "TALUCOD", "ESTRELLA",
	"JOMAR", "PIMENTEL",
	"KRIZ-TATUM OLAES LAPPAY", // kept as a single token, never segmented
	"KATRINE", "NAVAJA",
	"MARIA", "KATRINA", "MALLILLIN",
	"MARICRIS", "PEREZ",
	"MARINEL", "MACARANAS",
	"MARY", "JANE", "TENORIO",
	"JOY", "MENGULLO",
	"MARK", "JEFFERSON", "CALUAG",
	"ROHN", "JERICHO", "DAYAP",
	"ROLANDO", "RIVERA",
	"RONA", "MAY", "MARIN",
	"STEPHANIE", "MAE", "VALIENTE",
	"SHARA", "BERMUDEZ",
	"RAMONA", "ALLAUIGAN", "DIANCIN",
	"ERA", "BABBLE", "CASTRO",
	"OFELIA", "SARDENIA", "CONAG",
	"REIZLE", "GACUSAN",
	"RENZ",

	"VIVIANNE", "VISPERAS", "CUNAN",
	"CYNTHIA", "MANANGU", "SAGUM",
	"KENNETH", "RODRIGUEZ", "ROL",
	"ARMANDO", "GUIAO", "SAWIT",
	"BHEBLIA", "PASAGDAN",
	"JETHRO", "TORRES", "CERVANTES",
	"AURORA", "CRISTOBAL", "AQUINO",
	"JOSE", "WILFREDO", "LUCAS",
	"DANIEL", "RABARA", "DOMINGO",
	"DAN", "SAYTONO",
	"JESSICA", "GARCIA",
	"WINLOVE", "BERNALES",
	"DENNIS", "HERNANDEZ", "LOPEZ",
	"CHRISTIAN", "O.", "SANTOS",
	"EDMAR", "A.", "GALLARDO",
	"MICHAEL", "ESPOIR", "JOVEN",
	"DONNA", "BRIONES",
	"PERLITA", "CAPARAS",
	"EDUARDO", "MANLUNAS",
	"ALEXANDRE", "JUSTIN", "REPIA",
	"JAN", "CAMPUED",
}

// defaultNameExceptions maps scanner output that segmentation cannot fix
// (truncated surnames, glued middle names) to the canonical spelling. Keys
// are compared case- and space-insensitively.
var defaultNameExceptions = map[string]string{
	"KRIZ-TATUM OLAES LAPPAY": "KRIZ-TATUM OLAES LAPPAY",
	"APRIL LYNN ESPAYOS NAVA": "APRIL LYNN ESPAYOS NAVA",
	"JOANAH MARIE PESCADOR O": "JOANAH MARIE PESCADOR O",
	"LIBRADO F GELLEZ JR":     "LIBRADO F GELLEZ JR",
	"MELVIN ARIMAGAO MASIN":   "MELVIN ARIMAGAO MASIN",
	"MARIANNE PASCUAL GONZAL": "MARIANNE PASCUAL GONZALES",
	"MARICRIS ACOSTA GONZALE": "MARICRIS ACOSTA GONZALES",
	"TERESA DELA CRUZ PARAIS": "TERESA DELA CRUZ PARAISO",
	"THELMA BATARA CASTRICIO": "THELMA BATARA CASTRICIONES",
	"MA LEONORAJIMENEZ VALIE": "MA LEONORA JIMENEZ VALIENTE",
	"ARGENTINA SEBASTIAN ABE": "ARGENTINA SEBASTIAN ABERIN",
}

// defaultPermanentEmployees lists plantilla personnel by canonical name.
// Everyone not listed is recorded as job-order at first insert.
var defaultPermanentEmployees = []string{
	"AURORA CRISTOBAL AQUINO",
	"JOSE WILFREDO LUCAS",
	"DANIEL RABARA DOMINGO",
	"PERLITA CAPARAS",
	"EDUARDO MANLUNAS",
}
