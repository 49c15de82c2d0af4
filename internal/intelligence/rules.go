package intelligence

import "regexp"

// getDefaultGrammarRules returns the ordered punctuation, grammar and style rules
func getDefaultGrammarRules() []GrammarRule {
	return []GrammarRule{
		// Punctuation
		{
			Name:       "space_before_comma",
			Pattern:    regexp.MustCompile(`\s+,`),
			Message:    "Verguldan oldin bo'sh joy",
			Suggestion: "Verguldan oldin bo'sh joy bo'lmasligi kerak",
			Type:       FindingGrammar,
		},
		{
			Name:       "no_space_after_comma",
			Pattern:    regexp.MustCompile(`,\S`),
			Message:    "Verguldan keyin bo'sh joy yo'q",
			Suggestion: "Verguldan keyin bo'sh joy qo'ying",
			Type:       FindingGrammar,
		},
		{
			Name:       "space_before_period",
			Pattern:    regexp.MustCompile(`\s+\.`),
			Message:    "Nuqtadan oldin bo'sh joy",
			Suggestion: "Nuqtadan oldin bo'sh joy bo'lmasligi kerak",
			Type:       FindingGrammar,
		},
		{
			Name:       "no_space_after_period",
			Pattern:    regexp.MustCompile(`\.\S`),
			Message:    "Nuqtadan keyin bo'sh joy yo'q",
			Suggestion: "Nuqtadan keyin bo'sh joy qo'ying",
			Type:       FindingGrammar,
		},
		{
			Name:       "repeated_whitespace",
			Pattern:    regexp.MustCompile(`\s{2,}`),
			Message:    "Ortiqcha bo'sh joylar",
			Suggestion: "Faqat bitta bo'sh joy ishlatilishi kerak",
			Type:       FindingGrammar,
		},

		// Capitalization
		{
			Name:       "lowercase_line_start",
			Pattern:    regexp.MustCompile(`(?m)^[a-z]`),
			Message:    "Gap kichik harf bilan boshlangan",
			Suggestion: "Gap bosh harf bilan boshlanishi kerak",
			Type:       FindingGrammar,
		},
		{
			Name:       "lowercase_after_period",
			Pattern:    regexp.MustCompile(`\. [a-z]`),
			Message:    "Nuqtadan keyin kichik harf",
			Suggestion: "Yangi gap bosh harf bilan boshlanishi kerak",
			Type:       FindingGrammar,
		},

		// Disfluent Uzbek phrases
		{
			Name:       "shunday_qi",
			Pattern:    regexp.MustCompile(`(?i)\bshunday qi\b`),
			Message:    "'shunday qi' - noto'g'ri",
			Suggestion: "'shunday qilib' yoki 'shuning uchun'",
			Type:       FindingGrammar,
		},
		{
			Name:       "bilan_birga",
			Pattern:    regexp.MustCompile(`(?i)\bbilan birga\b`),
			Message:    "'bilan birga' - ortiqcha",
			Suggestion: "Faqat 'bilan' yetarli",
			Type:       FindingGrammar,
		},
		{
			Name:       "va_ham",
			Pattern:    regexp.MustCompile(`(?i)\bva ham\b`),
			Message:    "'va ham' - ortiqcha",
			Suggestion: "'va' yoki 'ham' dan birini tanlang",
			Type:       FindingGrammar,
		},
		{
			Name:       "lekin_ammo",
			Pattern:    regexp.MustCompile(`(?i)\blekin ammo\b`),
			Message:    "'lekin ammo' - takrorlanish",
			Suggestion: "'lekin' yoki 'ammo' dan birini tanlang",
			Type:       FindingGrammar,
		},
		{
			Name:       "agar_agar",
			Pattern:    regexp.MustCompile(`(?i)\bagar agar\b`),
			Message:    "'agar' takrorlangan",
			Suggestion: "Faqat bitta 'agar' ishlatilishi kerak",
			Type:       FindingGrammar,
		},

		// Formal register
		{
			Name:       "informal_men",
			Pattern:    regexp.MustCompile(`(?i)\bmen\b`),
			Message:    "Rasmiy hujjatda 'men' ishlatilgan",
			Suggestion: "Rasmiy uslubda 'biz' yoki passiv shakl ishlatiladi",
			Type:       FindingStyle,
		},
		{
			Name:       "informal_siz",
			Pattern:    regexp.MustCompile(`(?i)\bsiz\b`),
			Message:    "'siz' ishlatilgan",
			Suggestion: "Rasmiy hujjatda to'liq lavozim nomi ishlatiladi",
			Type:       FindingStyle,
		},
		{
			Name:       "trailing_exclamation",
			Pattern:    regexp.MustCompile(`(?m)!\s*$`),
			Message:    "Undov belgisi ishlatilgan",
			Suggestion: "Rasmiy hujjatlarda undov belgisi kam ishlatiladi",
			Type:       FindingStyle,
		},

		// Word order
		{
			Name:       "kerak_emas",
			Pattern:    regexp.MustCompile(`(?i)\bkerak emas\b`),
			Message:    "'kerak emas' - noto'g'ri tartib",
			Suggestion: "'shart emas' yoki 'lozim emas'",
			Type:       FindingGrammar,
		},
		{
			Name:       "boladi_edi",
			Pattern:    regexp.MustCompile(`(?i)\bbo'ladi edi\b`),
			Message:    "'bo'ladi edi' - noto'g'ri",
			Suggestion: "'bo'lar edi'",
			Type:       FindingGrammar,
		},

		// Repetition
		{
			Name:       "repeated_word",
			Matcher:    findRepeatedWords,
			Message:    "So'z takrorlangan",
			Suggestion: "Takroriy so'zni olib tashlang",
			Type:       FindingGrammar,
		},
	}
}

// getDefaultSpellingCorrections returns the misspelling dictionary in application order
func getDefaultSpellingCorrections() []SpellingCorrection {
	return []SpellingCorrection{
		{Wrong: "malumot", Right: "ma'lumot"},
		{Wrong: "masala", Right: "mas'ala"},
		{Wrong: "mutaxasis", Right: "mutaxassis"},
		{Wrong: "mutahasis", Right: "mutaxassis"},
		{Wrong: "mutahassis", Right: "mutaxassis"},
		{Wrong: "oquv", Right: "o'quv"},
		{Wrong: "oqituvchi", Right: "o'qituvchi"},
		{Wrong: "oqituvchilar", Right: "o'qituvchilar"},
		{Wrong: "rej\u0430", Right: "reja"}, // Cyrillic а typed in Latin text
		{Wrong: "xujjat", Right: "hujjat"},
		{Wrong: "xujjatlar", Right: "hujjatlar"},
		{Wrong: "xisob", Right: "hisob"},
		{Wrong: "xisobot", Right: "hisobot"},
		{Wrong: "budget", Right: "byudjet"},
		{Wrong: "budjet", Right: "byudjet"},
		{Wrong: "stependiya", Right: "stipendiya"},
		{Wrong: "imtixon", Right: "imtihon"},
		{Wrong: "imtixonlar", Right: "imtihonlar"},
		{Wrong: "sertefikat", Right: "sertifikat"},
		{Wrong: "bakalavryat", Right: "bakalavriat"},
		{Wrong: "aspirantra", Right: "aspirantura"},
		{Wrong: "doktarantura", Right: "doktorantura"},
		{Wrong: "tadqiqod", Right: "tadqiqot"},
		{Wrong: "labaratoriya", Right: "laboratoriya"},
		{Wrong: "amaliyod", Right: "amaliyot"},
		{Wrong: "mashgulot", Right: "mashg'ulot"},
		{Wrong: "mashgulotlar", Right: "mashg'ulotlar"},
		{Wrong: "konferensya", Right: "konferensiya"},
		{Wrong: "konferentsiya", Right: "konferensiya"},
		{Wrong: "simpozyum", Right: "simpozium"},
		{Wrong: "respublka", Right: "respublika"},
		{Wrong: "vazirlk", Right: "vazirlik"},
		{Wrong: "departamet", Right: "departament"},
		{Wrong: "muasasa", Right: "muassasa"},
		{Wrong: "muasasalar", Right: "muassasalar"},
		{Wrong: "tashkilod", Right: "tashkilot"},
		{Wrong: "bolishi", Right: "bo'lishi"},
		{Wrong: "boladi", Right: "bo'ladi"},
		{Wrong: "bolgan", Right: "bo'lgan"},
		{Wrong: "bolib", Right: "bo'lib"},
		{Wrong: "buyicha", Right: "bo'yicha"},
		{Wrong: "boyicha", Right: "bo'yicha"},
		{Wrong: "orinbosari", Right: "o'rinbosari"},
		{Wrong: "ozgarish", Right: "o'zgarish"},
		{Wrong: "ozgartirish", Right: "o'zgartirish"},
		{Wrong: "korsatma", Right: "ko'rsatma"},
		{Wrong: "korsatkich", Right: "ko'rsatkich"},
		{Wrong: "yigilish", Right: "yig'ilish"},
		{Wrong: "tolov", Right: "to'lov"},
		{Wrong: "qollab-quvvatlash", Right: "qo'llab-quvvatlash"},
		{Wrong: "talim", Right: "ta'lim"},
	}
}

// getDefaultDocumentTypes returns the document-type keyword sets in tie-break order
func getDefaultDocumentTypes() []KeywordBucket {
	return []KeywordBucket{
		{Name: DocTypeOrder, Keywords: []string{"buyruq", "buyuraman", "bajarilsin", "nazorat", "mas'ul", "muddat"}},
		{Name: DocTypeDecision, Keywords: []string{"qaror", "qaror qilindi", "kelishildi", "tasdiqlandi", "roziman", "qo'llab-quvvatlayman"}},
		{Name: DocTypePetition, Keywords: []string{"ariza", "iltimos", "so'rayman", "ruxsat", "ijozat", "o'tinch"}},
		{Name: DocTypeLetter, Keywords: []string{"xat", "hurmatli", "murojaat", "javob", "xabar", "ma'lum qilamiz", "bildiramiz"}},
		{Name: DocTypeReport, Keywords: []string{"hisobot", "natija", "ko'rsatkich", "statistika", "tahlil", "bajarildi", "amalga oshirildi"}},
		{Name: DocTypeContract, Keywords: []string{"shartnoma", "tomonlar", "majburiyat", "to'lov", "muddat", "shartlar", "imzoladilar"}},
		{Name: DocTypeMinutes, Keywords: []string{"bayonnoma", "yig'ilish", "majlis", "qatnashdi", "kun tartibi", "qaror qilindi"}},
		{Name: DocTypeInstruction, Keywords: []string{"ko'rsatma", "yo'riqnoma", "tartib", "qoida", "bajarilishi shart"}},
		{Name: DocTypePresentation, Keywords: []string{"taqdimnoma", "taqdim etiladi", "ko'rib chiqish", "taklif"}},
		{Name: DocTypeRecommendation, Keywords: []string{"tavsiyanoma", "tavsiya", "ijobiy", "munosib", "loyiq"}},
	}
}

// getDefaultDepartments returns the department keyword sets in tie-break order
func getDefaultDepartments() []KeywordBucket {
	return []KeywordBucket{
		{Name: "Ta'lim sifati", Keywords: []string{"sifat", "monitoring", "nazorat", "baholash", "reyting", "akkreditatsiya"}},
		{Name: "O'quv-uslubiy", Keywords: []string{"o'quv reja", "dastur", "fanlar", "kredit", "modul", "sillabus"}},
		{Name: "Ilmiy", Keywords: []string{"ilmiy", "tadqiqot", "maqola", "dissertatsiya", "grant", "innovatsiya"}},
		{Name: "Moliya", Keywords: []string{"moliya", "byudjet", "to'lov", "stipendiya", "maosh", "xarajat"}},
		{Name: "Kadrlar", Keywords: []string{"kadr", "ishga qabul", "attestatsiya", "malaka oshirish", "lavozim"}},
		{Name: "Talabalar", Keywords: []string{"talaba", "o'quvchi", "stipendiya", "turar joy", "yotoqxona"}},
		{Name: "Xalqaro", Keywords: []string{"xalqaro", "chet el", "hamkorlik", "grant", "dastur", "almashinuv"}},
	}
}

// getDefaultTopics returns the topic buckets reported alongside the analysis
func getDefaultTopics() []KeywordBucket {
	return []KeywordBucket{
		{Name: "Ta'lim jarayoni", Keywords: []string{"ta'lim", "o'qitish", "dars"}},
		{Name: "Moliyaviy masalalar", Keywords: []string{"moliya", "byudjet", "mablag'"}},
		{Name: "Kadrlar masalasi", Keywords: []string{"kadr", "xodim", "ishchi"}},
		{Name: "Talabalar bilan ishlash", Keywords: []string{"talaba", "o'quvchi"}},
		{Name: "Ilmiy faoliyat", Keywords: []string{"ilmiy", "tadqiqot"}},
		{Name: "Xalqaro hamkorlik", Keywords: []string{"xalqaro", "chet el"}},
		{Name: "Nazorat va monitoring", Keywords: []string{"nazorat", "tekshirish"}},
		{Name: "Rejalashtirish", Keywords: []string{"reja", "dastur"}},
	}
}

func getDefaultHighUrgencyKeywords() []string {
	return []string{"shoshilinch", "zudlik bilan", "darhol", "bugun", "kechiktirmasdan", "favqulodda", "muhim", "zarur"}
}

func getDefaultMediumUrgencyKeywords() []string {
	return []string{"yaqin kunlarda", "tez orada", "imkon qadar", "bir hafta ichida", "belgilangan muddatda"}
}

func getDefaultPositiveWords() []string {
	return []string{"muvaffaqiyat", "ijobiy", "yaxshi", "ajoyib", "rivojlanish", "yutuq", "tabriklash", "rahmat", "minnatdor"}
}

func getDefaultNegativeWords() []string {
	return []string{"muammo", "kamchilik", "xato", "buzilish", "shikoyat", "norozilik", "jarima", "jazo", "ogohlantirish"}
}

func getDefaultSensitiveKeywords() []string {
	return []string{
		"maxfiy", "sir", "shaxsiy", "parol", "kalit", "raqam",
		"pasport", "telefon", "manzil", "bank", "hisob raqami",
		"ish haqi", "maosh", "soliq", "jarima", "sud", "jinoyat",
		"tergov", "tekshiruv", "nazorat", "buzilish", "qoidabuzarlik",
	}
}

func getDefaultStopWords() []string {
	return []string{"bilan", "uchun", "kerak", "bo'lgan", "qilib", "asosida", "bo'yicha", "hamda", "shuningdek"}
}
