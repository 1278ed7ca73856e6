package words

import "fmt"

// Vocabulary is the word table of one locale. Index 0 of Ones, Teens and
// Tens is unused; Zero is returned for the number 0.
type Vocabulary struct {
	Zero  string
	Ones  [10]string
	Teens [10]string
	Tens  [10]string
}

// Name returns the word tokens for n, which must be in 0..59.
//
// 11..19 are irregular and come back as a single teen token. Other values
// are the tens token followed by the ones token when the ones digit is not 0.
func (v *Vocabulary) Name(n int) []string {
	if n < 0 || n > 59 {
		panic(fmt.Sprintf("words: number %d out of range 0..59", n))
	}
	tens := n / 10 % 10
	ones := n % 10

	if tens == 1 && n != 10 {
		return []string{v.Teens[ones]}
	}
	if tens > 0 {
		if ones > 0 {
			return []string{v.Tens[tens], v.Ones[ones]}
		}
		return []string{v.Tens[tens]}
	}
	if n == 0 {
		return []string{v.Zero}
	}
	return []string{v.Ones[ones]}
}
