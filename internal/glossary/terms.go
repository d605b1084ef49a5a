package glossary

// Built-in English -> Hindi vocabulary for MasterG science and math
// content. Sources are stored lowercase; lookups fold case before matching.
var builtinEntries = []Entry{
	// Biology
	{Source: "photosynthesis", Target: "प्रकाश संश्लेषण"},
	{Source: "chlorophyll", Target: "क्लोरोफिल"},
	{Source: "carbon dioxide", Target: "कार्बन डाइऑक्साइड"},
	{Source: "oxygen", Target: "ऑक्सीजन"},
	{Source: "glucose", Target: "ग्लूकोज"},
	{Source: "atp", Target: "एटीपी"},
	{Source: "dna", Target: "डीएनए"},
	{Source: "rna", Target: "आरएनए"},
	{Source: "cell", Target: "कोशिका"},
	{Source: "mitochondria", Target: "माइटोकॉन्ड्रिया"},
	{Source: "nucleus", Target: "केंद्रक"},
	{Source: "chromosome", Target: "गुणसूत्र"},
	{Source: "gene", Target: "जीन"},
	{Source: "protein", Target: "प्रोटीन"},
	{Source: "enzyme", Target: "एंजाइम"},
	{Source: "respiration", Target: "श्वसन"},
	{Source: "digestion", Target: "पाचन"},
	{Source: "metabolism", Target: "चयापचय"},

	// Chemistry
	{Source: "molecule", Target: "अणु"},
	{Source: "atom", Target: "परमाणु"},
	{Source: "element", Target: "तत्व"},
	{Source: "compound", Target: "यौगिक"},
	{Source: "reaction", Target: "अभिक्रिया"},
	{Source: "catalyst", Target: "उत्प्रेरक"},
	{Source: "acid", Target: "अम्ल"},
	{Source: "base", Target: "क्षार"},
	{Source: "salt", Target: "लवण"},
	{Source: "solution", Target: "विलयन"},
	{Source: "mixture", Target: "मिश्रण"},
	{Source: "hydrogen", Target: "हाइड्रोजन"},
	{Source: "nitrogen", Target: "नाइट्रोजन"},
	{Source: "sodium", Target: "सोडियम"},
	{Source: "calcium", Target: "कैल्शियम"},

	// Physics
	{Source: "force", Target: "बल"},
	{Source: "energy", Target: "ऊर्जा"},
	{Source: "velocity", Target: "वेग"},
	{Source: "acceleration", Target: "त्वरण"},
	{Source: "momentum", Target: "संवेग"},
	{Source: "gravity", Target: "गुरुत्वाकर्षण"},
	{Source: "friction", Target: "घर्षण"},
	{Source: "pressure", Target: "दबाव"},
	{Source: "temperature", Target: "तापमान"},
	{Source: "heat", Target: "ऊष्मा"},
	{Source: "light", Target: "प्रकाश"},
	{Source: "sound", Target: "ध्वनि"},
	{Source: "wave", Target: "तरंग"},
	{Source: "electricity", Target: "विद्युत"},
	{Source: "magnetism", Target: "चुंबकत्व"},

	// Mathematics
	{Source: "equation", Target: "समीकरण"},
	{Source: "formula", Target: "सूत्र"},
	{Source: "variable", Target: "चर"},
	{Source: "constant", Target: "अचर"},
	{Source: "derivative", Target: "अवकलज"},
	{Source: "integral", Target: "समाकलन"},
	{Source: "angle", Target: "कोण"},
	{Source: "triangle", Target: "त्रिभुज"},
	{Source: "circle", Target: "वृत्त"},
	{Source: "square", Target: "वर्ग"},
	{Source: "rectangle", Target: "आयत"},
	{Source: "area", Target: "क्षेत्रफल"},
	{Source: "perimeter", Target: "परिमाप"},
	{Source: "volume", Target: "आयतन"},

	// Common educational terms
	{Source: "definition", Target: "परिभाषा"},
	{Source: "example", Target: "उदाहरण"},
	{Source: "concept", Target: "अवधारणा"},
	{Source: "principle", Target: "सिद्धांत"},
	{Source: "theory", Target: "सिद्धांत"},
	{Source: "law", Target: "नियम"},
	{Source: "process", Target: "प्रक्रिया"},
	{Source: "system", Target: "तंत्र"},
	{Source: "structure", Target: "संरचना"},
	{Source: "function", Target: "कार्य"},
}

// BuiltinEntries returns a copy of the built-in vocabulary, in declaration
// order. Callers may append overlay entries before building a Table.
func BuiltinEntries() []Entry {
	entries := make([]Entry, len(builtinEntries))
	copy(entries, builtinEntries)
	return entries
}
