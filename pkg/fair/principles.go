// Package fair holds the static FAIR principle and FIP question tables and
// organizes declarations into per-principle resource buckets.
package fair

// PrincipleOrder lists the 15 FAIR sub-principles in report order.
var PrincipleOrder = []string{
	"F1", "F2", "F3", "F4",
	"A1", "A1.1", "A1.2", "A2",
	"I1", "I2", "I3",
	"R1", "R1.1", "R1.2", "R1.3",
}

// PrincipleDescriptions maps each principle key to its human-readable
// description. Loaded once, never mutated.
var PrincipleDescriptions = map[string]string{
	"F1":   "F1 - Globally unique and persistent identifiers",
	"F2":   "F2 - Data described with rich metadata",
	"F3":   "F3 - Metadata include identifier of data",
	"F4":   "F4 - Metadata registered in searchable resource",
	"A1":   "A1 - Retrievable by identifier using standard protocol",
	"A1.1": "A1.1 - Protocol is open, free, universally implementable",
	"A1.2": "A1.2 - Protocol allows authentication/authorization",
	"A2":   "A2 - Metadata accessible even when data unavailable",
	"I1":   "I1 - Knowledge representation language used",
	"I2":   "I2 - FAIR vocabularies used",
	"I3":   "I3 - Qualified references to other data",
	"R1":   "R1 - Richly described with accurate attributes",
	"R1.1": "R1.1 - Clear and accessible data usage license",
	"R1.2": "R1.2 - Detailed provenance",
	"R1.3": "R1.3 - Meet domain-relevant community standards",
}

// Question describes one FIP Wizard question.
type Question struct {
	Principle string // one of PrincipleOrder
	Side      string // "Data" or "Metadata"
	Text      string
}

// Questions maps FIP question identifiers to their principle, whether they
// concern data or metadata records, and the question text.
var Questions = map[string]Question{
	"FIP-Question-F1-D":    {"F1", "Data", "What globally unique, persistent, resolvable identifiers do you use for datasets?"},
	"FIP-Question-F1-MD":   {"F1", "Metadata", "What globally unique, persistent, resolvable identifiers do you use for metadata records?"},
	"FIP-Question-F2-D":    {"F2", "Data", "Which metadata schemas do you use for findability?"},
	"FIP-Question-F2-MD":   {"F2", "Metadata", "Which metadata schemas do you use for describing metadata?"},
	"FIP-Question-F3-D":    {"F3", "Data", "What is the technology that links the persistent identifiers of your data to the metadata description?"},
	"FIP-Question-F3-MD":   {"F3", "Metadata", "What is the technology linking metadata identifiers?"},
	"FIP-Question-F4-D":    {"F4", "Data", "In which search engines are your datasets indexed?"},
	"FIP-Question-F4-MD":   {"F4", "Metadata", "In which search engines are your metadata records indexed?"},
	"FIP-Question-A1-D":    {"A1", "Data", "Which standardized communication protocols do you use for datasets?"},
	"FIP-Question-A1-MD":   {"A1", "Metadata", "Which standardized communication protocols do you use for metadata?"},
	"FIP-Question-A1.1-D":  {"A1.1", "Data", "Which authentication & authorization technique do you use for datasets?"},
	"FIP-Question-A1.1-MD": {"A1.1", "Metadata", "Which authentication & authorization technique do you use for metadata?"},
	"FIP-Question-A1.2-D":  {"A1.2", "Data", "Which authentication & authorization technique do you use for datasets?"},
	"FIP-Question-A1.2-MD": {"A1.2", "Metadata", "Which authentication & authorization technique do you use for metadata?"},
	"FIP-Question-A2":      {"A2", "Metadata", "Which metadata longevity plan do you use?"},
	"FIP-Question-I1-D":    {"I1", "Data", "Which knowledge representation languages do you use for datasets?"},
	"FIP-Question-I1-MD":   {"I1", "Metadata", "Which knowledge representation languages do you use for metadata?"},
	"FIP-Question-I2-D":    {"I2", "Data", "Which structured vocabularies do you use for datasets?"},
	"FIP-Question-I2-MD":   {"I2", "Metadata", "Which structured vocabularies do you use for metadata?"},
	"FIP-Question-I3-D":    {"I3", "Data", "Which models/formats do you use for qualified references between datasets?"},
	"FIP-Question-I3-MD":   {"I3", "Metadata", "Which models/formats do you use for qualified references in metadata?"},
	"FIP-Question-R1-D":    {"R1", "Data", "Which metadata schemas do you use for rich description?"},
	"FIP-Question-R1-MD":   {"R1", "Metadata", "Which metadata schemas do you use for rich metadata description?"},
	"FIP-Question-R1.1-D":  {"R1.1", "Data", "Which license do you use for datasets?"},
	"FIP-Question-R1.1-MD": {"R1.1", "Metadata", "Which license do you use for metadata?"},
	"FIP-Question-R1.2-D":  {"R1.2", "Data", "Which metadata schemas do you use for provenance?"},
	"FIP-Question-R1.2-MD": {"R1.2", "Metadata", "Which metadata schemas do you use for metadata provenance?"},
	"FIP-Question-R1.3-D":  {"R1.3", "Data", "Which community-endorsed standards do you follow for data?"},
	"FIP-Question-R1.3-MD": {"R1.3", "Metadata", "Which community-endorsed standards do you follow for metadata?"},
}

// IsPrinciple reports whether key is one of the 15 known principles.
func IsPrinciple(key string) bool {
	_, ok := PrincipleDescriptions[key]
	return ok
}
