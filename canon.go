package lectio

// BookCount is the number of books in the canon used by import sources.
const BookCount = 66

// canonBooks maps book ordinals (1-based) to canonical English book names.
// Source documents identify books by ordinal only; every stored record and
// every key uses the canonical name.
var canonBooks = [BookCount]string{
	"Genesis", "Exodus", "Leviticus", "Numbers", "Deuteronomy",
	"Joshua", "Judges", "Ruth", "1 Samuel", "2 Samuel",
	"1 Kings", "2 Kings", "1 Chronicles", "2 Chronicles", "Ezra",
	"Nehemiah", "Esther", "Job", "Psalms", "Proverbs",
	"Ecclesiastes", "Song of Solomon", "Isaiah", "Jeremiah", "Lamentations",
	"Ezekiel", "Daniel", "Hosea", "Joel", "Amos",
	"Obadiah", "Jonah", "Micah", "Nahum", "Habakkuk",
	"Zephaniah", "Haggai", "Zechariah", "Malachi", "Matthew",
	"Mark", "Luke", "John", "Acts", "Romans",
	"1 Corinthians", "2 Corinthians", "Galatians", "Ephesians", "Philippians",
	"Colossians", "1 Thessalonians", "2 Thessalonians", "1 Timothy", "2 Timothy",
	"Titus", "Philemon", "Hebrews", "James", "1 Peter",
	"2 Peter", "1 John", "2 John", "3 John", "Jude",
	"Revelation",
}

var bookOrdinals = func() map[string]int {
	m := make(map[string]int, BookCount)
	for i, name := range canonBooks {
		m[name] = i + 1
	}
	return m
}()

// BookName returns the canonical name for a 1-based book ordinal. The
// second return value reports whether the ordinal is within the canon.
func BookName(ordinal int) (string, bool) {
	if ordinal < 1 || ordinal > BookCount {
		return "", false
	}
	return canonBooks[ordinal-1], true
}

// BookOrdinal returns the 1-based ordinal of a canonical book name. The
// second return value reports whether the name is part of the canon.
func BookOrdinal(name string) (int, bool) {
	n, ok := bookOrdinals[name]
	return n, ok
}

// Books returns the canonical book names in canon order.
func Books() []string {
	names := make([]string, BookCount)
	copy(names, canonBooks[:])
	return names
}
