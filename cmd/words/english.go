package words

var englishVocabulary = Vocabulary{
	Zero:  "o'clock",
	Ones:  [10]string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"},
	Teens: [10]string{"", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"},
	Tens:  [10]string{"", "ten", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"},
}

type english struct{}

func (english) Vocabulary() *Vocabulary { return &englishVocabulary }

func (english) SpecialHourWord(hour int) (string, bool) {
	if hour == 0 || hour == 12 {
		return "twelve", true
	}
	return "", false
}

// "seventeen" doesn't fit the light font, "fifteen" does.
func (english) SplitOverflow(word string) (string, string, bool) {
	return splitSuffix(word, "teen", 7)
}

func (english) GenderAdjust(word string) string { return word }

func (english) Connective() (string, bool) { return "", false }
