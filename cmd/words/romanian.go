package words

var romanianVocabulary = Vocabulary{
	Zero: "fix",
	Ones: [10]string{"", "unu", "două", "trei", "patru", "cinci", "șase", "șapte", "opt", "nouă"},
	Teens: [10]string{"", "unsprezece", "doisprezece", "treisprezece", "patrusprezece",
		"cincisprezece", "șaisprezece", "șaptesprezece", "optsprezece", "nouăsprezece"},
	Tens: [10]string{"", "zece", "douăzeci", "treizeci", "patruzeci",
		"cincizeci", "șaizeci", "șaptezeci", "optzeci", "nouăzeci"},
}

type romanian struct{}

func (romanian) Vocabulary() *Vocabulary { return &romanianVocabulary }

func (romanian) SpecialHourWord(hour int) (string, bool) {
	if hour == 0 || hour == 12 {
		return "doisprezece", true
	}
	return "", false
}

func (romanian) SplitOverflow(word string) (string, string, bool) {
	return splitSuffix(word, "sprezece", 7)
}

// Minutes take the masculine numeral: "douăzeci și doi".
func (romanian) GenderAdjust(word string) string {
	if word == "două" {
		return "doi"
	}
	return word
}

func (romanian) Connective() (string, bool) { return "și", true }
