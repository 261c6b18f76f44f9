// Package adhkar carries the static devotional content: the dhikr options
// offered by the tasbih counter and the four adhkar collections.
package adhkar

// Dhikr is one selectable remembrance for the tasbih counter.
type Dhikr struct {
	ID     string
	Text   string // Arabic text
	Label  string
	Target int // default repetition target
}

// Options are the dhikr choices for the counter, in display order.
var Options = []Dhikr{
	{ID: "subhanallah", Text: "سُبْحَانَ اللَّهِ", Label: "تسبيحة", Target: 33},
	{ID: "alhamdulillah", Text: "الْحَمْدُ لِلَّهِ", Label: "تحميدة", Target: 33},
	{ID: "allahuakbar", Text: "اللَّهُ أَكْبَرُ", Label: "تكبيرة", Target: 33},
	{ID: "tahlil", Text: "لَا إِلَهَ إِلَّا اللَّهُ", Label: "تهليلة", Target: 100},
	{ID: "salat", Text: "اللَّهُمَّ صَلِّ عَلَى مُحَمَّدٍ وَعَلَى آلِ مُحَمَّدٍ", Label: "صلاة على النبي ﷺ", Target: 10},
	{ID: "subhan_bihamdih", Text: "سُبْحَانَ اللَّهِ وَبِحَمْدِهِ، سُبْحَانَ اللَّهِ الْعَظِيمِ", Label: "سبحان الله وبحمده", Target: 100},
	{ID: "la_ilah_wahdah", Text: "لَا إِلَهَ إِلَّا اللَّهُ وَحْدَهُ لَا شَرِيكَ لَهُ، لَهُ الْمُلْكُ وَلَهُ الْحَمْدُ وَهُوَ عَلَى كُلِّ شَيْءٍ قَدِيرٌ", Label: "دعاء", Target: 10},
	{ID: "shahada", Text: "أَشْهَدُ أَنْ لَا إِلَهَ إِلَّا اللَّهُ وَأَشْهَدُ أَنَّ مُحَمَّدًا رَسُولُ اللَّهِ", Label: "شهادة", Target: 5},
	{ID: "astaghfirullah", Text: "أَسْتَغْفِرُ اللَّهَ", Label: "استغفار", Target: 100},
	{ID: "la_hawla", Text: "لَا حَوْلَ وَلَا قُوَّةَ إِلَّا بِاللَّهِ", Label: "دعاء", Target: 100},
	{ID: "dhun_nun", Text: "لَا إِلَهَ إِلَّا أَنْتَ سُبْحَانَكَ إِنِّي كُنْتُ مِنَ الظَّالِمِينَ", Label: "دعاء", Target: 100},
}

// OptionByID returns the dhikr with the given id, or false if unknown.
func OptionByID(id string) (Dhikr, bool) {
	for _, d := range Options {
		if d.ID == id {
			return d, true
		}
	}
	return Dhikr{}, false
}

// Item is one entry of an adhkar collection: a text to be repeated a fixed
// number of times.
type Item struct {
	Text    string
	Note    string // source or merit, may be empty
	Repeats int
}

// Collection is a themed set of adhkar read in order.
type Collection struct {
	ID    string
	Title string
	Items []Item
}

// Collections holds the four adhkar sets, in display order.
var Collections = []Collection{
	{
		ID:    "morning",
		Title: "أذكار الصباح",
		Items: []Item{
			{Text: "أَصْبَحْنَا وَأَصْبَحَ الْمُلْكُ لِلَّهِ، وَالْحَمْدُ لِلَّهِ، لَا إِلَهَ إِلَّا اللَّهُ وَحْدَهُ لَا شَرِيكَ لَهُ", Repeats: 1},
			{Text: "اللَّهُمَّ بِكَ أَصْبَحْنَا وَبِكَ أَمْسَيْنَا، وَبِكَ نَحْيَا وَبِكَ نَمُوتُ وَإِلَيْكَ النُّشُورُ", Repeats: 1},
			{Text: "سُبْحَانَ اللَّهِ وَبِحَمْدِهِ", Note: "مئة مرة", Repeats: 100},
			{Text: "لَا إِلَهَ إِلَّا اللَّهُ وَحْدَهُ لَا شَرِيكَ لَهُ، لَهُ الْمُلْكُ وَلَهُ الْحَمْدُ وَهُوَ عَلَى كُلِّ شَيْءٍ قَدِيرٌ", Note: "عشر مرات", Repeats: 10},
			{Text: "آية الكرسي", Note: "مرة واحدة", Repeats: 1},
			{Text: "سورة الإخلاص والمعوذتان", Note: "ثلاث مرات", Repeats: 3},
			{Text: "أَعُوذُ بِكَلِمَاتِ اللَّهِ التَّامَّاتِ مِنْ شَرِّ مَا خَلَقَ", Repeats: 3},
			{Text: "اللَّهُمَّ إِنِّي أَسْأَلُكَ الْعَافِيَةَ فِي الدُّنْيَا وَالْآخِرَةِ", Repeats: 1},
		},
	},
	{
		ID:    "evening",
		Title: "أذكار المساء",
		Items: []Item{
			{Text: "أَمْسَيْنَا وَأَمْسَى الْمُلْكُ لِلَّهِ، وَالْحَمْدُ لِلَّهِ، لَا إِلَهَ إِلَّا اللَّهُ وَحْدَهُ لَا شَرِيكَ لَهُ", Repeats: 1},
			{Text: "اللَّهُمَّ بِكَ أَمْسَيْنَا وَبِكَ أَصْبَحْنَا، وَبِكَ نَحْيَا وَبِكَ نَمُوتُ وَإِلَيْكَ الْمَصِيرُ", Repeats: 1},
			{Text: "سُبْحَانَ اللَّهِ وَبِحَمْدِهِ", Note: "مئة مرة", Repeats: 100},
			{Text: "آية الكرسي", Note: "مرة واحدة", Repeats: 1},
			{Text: "سورة الإخلاص والمعوذتان", Note: "ثلاث مرات", Repeats: 3},
			{Text: "أَعُوذُ بِكَلِمَاتِ اللَّهِ التَّامَّاتِ مِنْ شَرِّ مَا خَلَقَ", Repeats: 3},
			{Text: "بِسْمِ اللَّهِ الَّذِي لَا يَضُرُّ مَعَ اسْمِهِ شَيْءٌ فِي الْأَرْضِ وَلَا فِي السَّمَاءِ وَهُوَ السَّمِيعُ الْعَلِيمُ", Repeats: 3},
		},
	},
	{
		ID:    "prayer",
		Title: "أذكار بعد الصلاة",
		Items: []Item{
			{Text: "أَسْتَغْفِرُ اللَّهَ", Repeats: 3},
			{Text: "اللَّهُمَّ أَنْتَ السَّلَامُ وَمِنْكَ السَّلَامُ، تَبَارَكْتَ يَا ذَا الْجَلَالِ وَالْإِكْرَامِ", Repeats: 1},
			{Text: "سُبْحَانَ اللَّهِ", Repeats: 33},
			{Text: "الْحَمْدُ لِلَّهِ", Repeats: 33},
			{Text: "اللَّهُ أَكْبَرُ", Repeats: 33},
			{Text: "لَا إِلَهَ إِلَّا اللَّهُ وَحْدَهُ لَا شَرِيكَ لَهُ، لَهُ الْمُلْكُ وَلَهُ الْحَمْدُ وَهُوَ عَلَى كُلِّ شَيْءٍ قَدِيرٌ", Note: "تمام المئة", Repeats: 1},
			{Text: "آية الكرسي", Repeats: 1},
		},
	},
	{
		ID:    "sleep",
		Title: "أذكار النوم",
		Items: []Item{
			{Text: "بِاسْمِكَ اللَّهُمَّ أَمُوتُ وَأَحْيَا", Repeats: 1},
			{Text: "سُبْحَانَ اللَّهِ", Repeats: 33},
			{Text: "الْحَمْدُ لِلَّهِ", Repeats: 33},
			{Text: "اللَّهُ أَكْبَرُ", Repeats: 34},
			{Text: "آية الكرسي", Repeats: 1},
			{Text: "سورة الإخلاص والمعوذتان", Note: "ينفث بهما في كفيه", Repeats: 3},
			{Text: "اللَّهُمَّ قِنِي عَذَابَكَ يَوْمَ تَبْعَثُ عِبَادَكَ", Repeats: 3},
		},
	},
}

// CollectionByID returns the collection with the given id, or false.
func CollectionByID(id string) (Collection, bool) {
	for _, c := range Collections {
		if c.ID == id {
			return c, true
		}
	}
	return Collection{}, false
}

// TotalRepeats returns the number of individual recitations in c, which is
// what completing the whole collection contributes to the progress log.
func (c Collection) TotalRepeats() int {
	total := 0
	for _, item := range c.Items {
		total += item.Repeats
	}
	return total
}
