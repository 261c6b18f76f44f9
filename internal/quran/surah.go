// Package quran provides the mushaf page reader: static surah/juz tables for
// the 604-page Medina mushaf plus a client for the quran.com verse API.
package quran

import "strings"

// TotalPages is the page count of the Medina mushaf.
const TotalPages = 604

// Surah is one chapter, with its starting page in the Medina mushaf.
type Surah struct {
	Number    int
	Name      string // Arabic name
	StartPage int
}

// Surahs lists all 114 chapters in order.
var Surahs = []Surah{
	{1, "الفَاتِحَة", 1}, {2, "البَقَرَة", 2}, {3, "آل عِمرَان", 50}, {4, "النِّسَاء", 77},
	{5, "المَائِدَة", 106}, {6, "الأَنعَام", 128}, {7, "الأَعرَاف", 151}, {8, "الأَنفَال", 177},
	{9, "التَّوبَة", 187}, {10, "يُونُس", 208}, {11, "هُود", 221}, {12, "يُوسُف", 235},
	{13, "الرَّعد", 249}, {14, "إبراهِيم", 255}, {15, "الحِجر", 262}, {16, "النَّحل", 267},
	{17, "الإسرَاء", 282}, {18, "الكَهف", 293}, {19, "مَريَم", 305}, {20, "طه", 312},
	{21, "الأَنبيَاء", 322}, {22, "الحَج", 332}, {23, "المُؤمِنُون", 342}, {24, "النُّور", 350},
	{25, "الفُرقَان", 359}, {26, "الشُّعَرَاء", 367}, {27, "النَّمل", 377}, {28, "القَصَص", 385},
	{29, "العَنكَبُوت", 396}, {30, "الرُّوم", 404}, {31, "لُقمَان", 411}, {32, "السَّجدَة", 415},
	{33, "الأَحزَاب", 418}, {34, "سَبَأ", 428}, {35, "فَاطِر", 434}, {36, "يس", 440},
	{37, "الصَّافَّات", 446}, {38, "ص", 453}, {39, "الزُّمَر", 458}, {40, "غَافِر", 467},
	{41, "فُصِّلَت", 477}, {42, "الشُّورَى", 483}, {43, "الزُّخرُف", 489}, {44, "الدُّخَان", 496},
	{45, "الجَاثِيَة", 499}, {46, "الأَحقَاف", 502}, {47, "مُحَمَّد", 507}, {48, "الفَتح", 511},
	{49, "الحُجُرَات", 515}, {50, "ق", 518}, {51, "الذَّارِيَات", 520}, {52, "الطُّور", 523},
	{53, "النَّجم", 526}, {54, "القَمَر", 528}, {55, "الرَّحمَن", 531}, {56, "الوَاقِعَة", 534},
	{57, "الحَدِيد", 537}, {58, "المُجَادَلَة", 542}, {59, "الحَشر", 545}, {60, "المُمتَحنَة", 549},
	{61, "الصَّف", 551}, {62, "الجُمُعَة", 553}, {63, "المُنَافِقُون", 554}, {64, "التَّغَابُن", 556},
	{65, "الطَّلَاق", 558}, {66, "التَّحرِيم", 560}, {67, "المُلك", 562}, {68, "القَلَم", 564},
	{69, "الحَاقَّة", 566}, {70, "المَعَارِج", 568}, {71, "نُوح", 570}, {72, "الجِن", 572},
	{73, "المُزَّمِّل", 574}, {74, "المُدَّثِّر", 575}, {75, "القِيَامَة", 577}, {76, "الإِنسَان", 578},
	{77, "المُرسَلَات", 580}, {78, "النَّبَأ", 582}, {79, "النَّازِعَات", 583}, {80, "عَبَس", 585},
	{81, "التَّكوِير", 586}, {82, "الانفِطَار", 587}, {83, "المُطَفِّفِين", 587}, {84, "الانشِقَاق", 589},
	{85, "البُرُوج", 590}, {86, "الطَّارِق", 591}, {87, "الأَعلَى", 591}, {88, "الغَاشِيَة", 592},
	{89, "الفَجر", 593}, {90, "البَلَد", 594}, {91, "الشَّمس", 595}, {92, "اللَّيل", 595},
	{93, "الضُّحَى", 596}, {94, "الشَّرح", 596}, {95, "التِّين", 597}, {96, "العَلَق", 597},
	{97, "القَدر", 598}, {98, "البَيِّنَة", 598}, {99, "الزَّلزَلَة", 599}, {100, "العَادِيَات", 599},
	{101, "القَارِعَة", 600}, {102, "التَّكَاثُر", 600}, {103, "العَصر", 601}, {104, "الهُمَزَة", 601},
	{105, "الفِيل", 601}, {106, "قُرَيش", 602}, {107, "المَاعُون", 602}, {108, "الكَوثَر", 602},
	{109, "الكَافِرُون", 603}, {110, "النَّصر", 603}, {111, "المَسَد", 603}, {112, "الإِخلَاص", 604},
	{113, "الفَلَق", 604}, {114, "النَّاس", 604},
}

// juzStartPages maps juz number (1-30) to its starting page.
var juzStartPages = [31]int{
	0, 1, 22, 42, 62, 82, 102, 121, 142, 162, 182,
	201, 222, 242, 262, 282, 302, 322, 342, 362, 382,
	402, 422, 442, 462, 482, 502, 522, 542, 562, 582,
}

// SurahByNumber returns the surah with the given number (1-114).
func SurahByNumber(n int) (Surah, bool) {
	if n < 1 || n > len(Surahs) {
		return Surah{}, false
	}
	return Surahs[n-1], true
}

// SurahForPage returns the surah a page falls in: the last surah whose
// start page is at or before it.
func SurahForPage(page int) (Surah, bool) {
	if page < 1 || page > TotalPages {
		return Surah{}, false
	}
	current := Surahs[0]
	for _, s := range Surahs[1:] {
		if s.StartPage > page {
			break
		}
		current = s
	}
	return current, true
}

// JuzStartPage returns the first page of a juz (1-30).
func JuzStartPage(juz int) int {
	if juz < 1 {
		return 1
	}
	if juz > 30 {
		juz = 30
	}
	return juzStartPages[juz]
}

// JuzForPage returns the juz number (1-30) a page falls in.
func JuzForPage(page int) int {
	if page < 1 {
		return 1
	}
	for j := 30; j >= 1; j-- {
		if page >= juzStartPages[j] {
			return j
		}
	}
	return 1
}

var arabicDigits = []rune("٠١٢٣٤٥٦٧٨٩")

// toArabicNumerals renders n in Eastern Arabic digits.
func toArabicNumerals(n int) string {
	if n == 0 {
		return string(arabicDigits[0])
	}
	var b []rune
	for n > 0 {
		b = append([]rune{arabicDigits[n%10]}, b...)
		n /= 10
	}
	return string(b)
}

// VerseMark renders the ornamental end-of-verse mark for a "surah:ayah"
// verse key, e.g. "2:255" -> "﴿٢٥٥﴾".
func VerseMark(verseKey string) string {
	_, ayah, ok := strings.Cut(verseKey, ":")
	if !ok {
		return ""
	}
	n := 0
	for _, r := range ayah {
		if r < '0' || r > '9' {
			return ""
		}
		n = n*10 + int(r-'0')
	}
	return "﴿" + toArabicNumerals(n) + "﴾"
}
