package namedb

import "strings"

// surnameStrokes maps common Korean surnames (hangul) to the canonical
// stroke count of their representative hanja.
var surnameStrokes = map[string]int{
	"김":  8,
	"이":  7,
	"박":  6,
	"최":  12,
	"정":  11,
	"강":  11,
	"조":  10,
	"윤":  12,
	"장":  11,
	"임":  6,
	"한":  17,
	"오":  8,
	"서":  10,
	"신":  9,
	"권":  22,
	"황":  12,
	"안":  6,
	"송":  10,
	"전":  13,
	"홍":  10,
	"유":  9,
	"고":  10,
	"문":  4,
	"양":  12,
	"손":  10,
	"배":  11,
	"백":  5,
	"허":  11,
	"남":  9,
	"심":  12,
	"노":  16,
	"하":  9,
	"곽":  15,
	"성":  7,
	"차":  7,
	"주":  6,
	"우":  7,
	"구":  11,
	"민":  8,
	"나":  10,
	"진":  10,
	"지":  6,
	"채":  11,
	"원":  10,
	"천":  4,
	"방":  7,
	"공":  4,
	"현":  20,
	"함":  8,
	"변":  23,
	"염":  19,
	"석":  14,
	"선":  12,
	"설":  11,
	"마":  10,
	"길":  6,
	"연":  11,
	"위":  9,
	"표":  8,
	"명":  8,
	"기":  12,
	"반":  10,
	"라":  10,
	"왕":  4,
	"금":  8,
	"옥":  5,
	"육":  8,
	"인":  6,
	"맹":  8,
	"제":  14,
	"모":  4,
	"탁":  8,
	"국":  11,
	"어":  11,
	"은":  10,
	"편":  9,
	"용":  10,
	"예":  13,
	"봉":  11,
	"황보": 21,
	"남궁": 19,
	"제갈": 29,
	"선우": 21,
	"서문": 14,
	"독고": 27,
}

// LookupSurnameStrokes returns the canonical stroke count for a surname.
// Unknown surnames report false; callers degrade to "analysis withheld"
// rather than computing grades from a zero.
func LookupSurnameStrokes(surname string) (int, bool) {
	strokes, ok := surnameStrokes[strings.TrimSpace(surname)]
	return strokes, ok
}
