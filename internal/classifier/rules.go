package classifier

import (
	"regexp"

	"spendlens/internal/models"
)

// KeywordTable maps each category to its keyword phrases. Tables are built
// once at classifier construction and never mutated afterwards.
type KeywordTable map[models.Category][]string

// DefaultKeywords returns a fresh copy of the built-in keyword table.
func DefaultKeywords() KeywordTable {
	table := make(KeywordTable, len(defaultKeywords))
	for category, keywords := range defaultKeywords {
		table[category] = append([]string(nil), keywords...)
	}
	return table
}

var defaultKeywords = KeywordTable{
	models.CategoryFood: {
		"restaurant", "food", "dinner", "lunch", "breakfast", "cafe", "coffee",
		"pizza", "burger", "sandwich", "meal", "eat", "dining", "kitchen",
		"grocery", "supermarket", "vegetables", "fruits", "snacks", "drink",
		"bar", "pub", "takeaway", "delivery", "swiggy", "zomato", "dominos",
		"mcdonalds", "kfc", "subway", "starbucks", "chai", "tea", "juice",
		"bakery", "ice cream", "sweet", "milk", "bread", "rice", "dal",
		"chicken", "mutton", "fish", "biryani", "dosa", "idli", "vada",
		"groceries", "market", "cooking", "spices",
	},
	models.CategoryTransportation: {
		"uber", "ola", "taxi", "auto", "rickshaw", "cab", "ride",
		"bus", "metro", "train", "flight", "airplane", "railway",
		"fuel", "petrol", "diesel", "gas", "parking", "toll", "challan",
		"ticket", "travel", "transport", "bike", "car", "vehicle",
		"booking", "irctc", "goibibo", "makemytrip",
	},
	models.CategoryShopping: {
		"amazon", "flipkart", "myntra", "ajio", "nykaa", "shop", "shopping",
		"store", "mall", "market", "buy", "purchase", "sale",
		"clothes", "shoes", "dress", "shirt", "pants", "bag", "watch",
		"electronics", "mobile", "phone", "laptop", "gadget", "appliance",
		"furniture", "home", "decoration", "gift",
	},
	models.CategoryEntertainment: {
		"netflix", "amazon prime", "hotstar", "spotify", "youtube", "music",
		"subscription", "app", "game", "gaming",
		"movie", "cinema", "theatre", "concert", "show", "party", "club",
		"fun", "entertainment", "festival", "event", "ticket", "bookmyshow",
	},
	models.CategoryHealthcare: {
		"doctor", "hospital", "clinic", "medical", "health", "dental", "dentist",
		"checkup", "treatment", "surgery", "consultation", "appointment",
		"medicine", "pharmacy", "drug", "tablet", "prescription", "vitamin",
		"supplement", "lab", "test", "xray", "scan", "insurance",
	},
	models.CategoryBills: {
		"electricity", "water", "gas", "utility", "bill", "payment",
		"internet", "wifi", "broadband", "phone", "mobile", "recharge",
		"airtel", "jio", "vodafone", "bsnl",
		"rent", "maintenance", "society", "apartment", "house",
		"cable", "tv", "insurance", "loan", "emi", "bank", "credit card",
	},
	models.CategoryEducation: {
		"school", "college", "university", "course", "book", "study",
		"education", "tuition", "fee", "exam", "certification", "training",
		"workshop", "seminar", "library", "stationery", "notebook",
		"online course", "udemy", "coursera", "skill",
	},
	models.CategoryOther: {
		"miscellaneous", "other", "unknown", "cash", "atm", "withdrawal",
		"transfer", "salary", "income", "refund", "return",
	},
}

type categoryPatterns struct {
	category models.Category
	patterns []*regexp.Regexp
}

// Phrase patterns per category. Order matters only for deterministic
// iteration; the winner is the highest-confidence match.
var defaultPatterns = []categoryPatterns{
	{models.CategoryFood, compileAll(
		`\b(bought|ordered|ate|had)\s+(food|dinner|lunch|breakfast)`,
		`\b(restaurant|cafe|hotel|dhaba)\b`,
		`\b(zomato|swiggy|dominos|pizza|burger)\b`,
		`\b(grocery|vegetables|fruits|milk|bread)\b`,
	)},
	{models.CategoryTransportation, compileAll(
		`\b(uber|ola|taxi|auto|cab)\s+(ride|trip|booking)`,
		`\b(bus|train|metro|flight)\s+(ticket|fare)`,
		`\b(fuel|petrol|diesel)\s+(filled|tank)`,
		`\b(parking|toll|challan)\b`,
	)},
	{models.CategoryShopping, compileAll(
		`\b(amazon|flipkart|myntra)\b`,
		`\b(bought|purchased|ordered)\s+(clothes|shoes|mobile|laptop)`,
		`\b(shopping|mall|store)\b`,
	)},
	{models.CategoryEntertainment, compileAll(
		`\b(movie|cinema|show|concert)\s+(ticket|booking)`,
		`\b(netflix|spotify|prime)\s+(subscription|payment)`,
		`\b(game|gaming|entertainment)\b`,
	)},
	{models.CategoryHealthcare, compileAll(
		`\b(doctor|hospital|clinic)\s+(visit|consultation|checkup)`,
		`\b(medicine|pharmacy|drug|tablet)\b`,
		`\b(medical|health|dental)\s+(bill|payment|insurance)`,
	)},
	{models.CategoryBills, compileAll(
		`\b(electricity|water|gas|internet|wifi)\s+(bill|payment)`,
		`\b(mobile|phone)\s+(recharge|bill)`,
		`\b(rent|maintenance|emi)\s+(payment|paid)`,
	)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

type amountHint struct {
	words    []string
	category models.Category
}

type amountBucket struct {
	min float64
	max float64 // exclusive; <= 0 means unbounded
	// hints are checked in order; fallback applies when no hint matches and
	// may be empty, in which case the bucket produces no candidate.
	hints    []amountHint
	fallback models.Category
}

var amountBuckets = []amountBucket{
	{
		min: 0, max: 100,
		hints: []amountHint{
			{[]string{"coffee", "tea", "snack", "chai", "juice", "water"}, models.CategoryFood},
			{[]string{"auto", "bus", "metro", "parking", "toll"}, models.CategoryTransportation},
		},
		fallback: models.CategoryFood,
	},
	{
		min: 100, max: 500,
		hints: []amountHint{
			{[]string{"movie", "game", "ticket", "entertainment"}, models.CategoryEntertainment},
			{[]string{"uber", "ola", "taxi", "fuel", "petrol"}, models.CategoryTransportation},
			{[]string{"medicine", "pharmacy", "doctor"}, models.CategoryHealthcare},
		},
	},
	{
		min: 500, max: 2000,
		hints: []amountHint{
			{[]string{"restaurant", "hotel", "dining", "dinner"}, models.CategoryFood},
			{[]string{"clothes", "shoes", "shopping", "mall"}, models.CategoryShopping},
			{[]string{"bill", "recharge", "internet", "mobile"}, models.CategoryBills},
		},
	},
	{
		min: 2000, max: 10000,
		hints: []amountHint{
			{[]string{"rent", "maintenance", "electricity", "insurance"}, models.CategoryBills},
			{[]string{"laptop", "phone", "tv", "electronics", "appliance"}, models.CategoryShopping},
			{[]string{"hospital", "surgery", "treatment", "medical"}, models.CategoryHealthcare},
		},
		fallback: models.CategoryShopping,
	},
	{
		min: 10000, max: 0,
		hints: []amountHint{
			{[]string{"rent", "emi", "loan", "insurance"}, models.CategoryBills},
			{[]string{"laptop", "mobile", "car", "bike", "gold", "investment"}, models.CategoryShopping},
		},
		fallback: models.CategoryBills,
	},
}
