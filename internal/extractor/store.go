package extractor

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"
	"unicode/utf16"

	"github.com/magiconair/properties"
)

// DefaultHeader is the comment written at the top of the properties file
const DefaultHeader = "Springfox javadoc properties"

// headerDateLayout renders the timestamp comment like java.util.Date#toString
const headerDateLayout = "Mon Jan 02 15:04:05 MST 2006"

var newlineStripper = strings.NewReplacer("\n", "", "\r", "")

// Sanitize removes every line break from text
func Sanitize(text string) string {
	return newlineStripper.Replace(text)
}

// Store accumulates output keys in insertion order. Saving an existing key
// replaces its value but keeps its position.
type Store struct {
	props *properties.Properties
}

// NewStore creates an empty store
func NewStore() *Store {
	props := properties.NewProperties()
	// values are documentation text, ${...} must stay literal
	props.DisableExpansion = true
	return &Store{props: props}
}

// Save sanitizes value and stores it under key. Values that are empty
// after sanitizing are dropped; Save reports whether the key was written.
func (s *Store) Save(key, value string) bool {
	value = Sanitize(value)
	if value == "" {
		return false
	}
	// with expansion disabled Set cannot fail
	_, _, _ = s.props.Set(key, value)
	return true
}

// Get returns the value stored under key
func (s *Store) Get(key string) (string, bool) {
	return s.props.Get(key)
}

// Keys returns all keys in insertion order
func (s *Store) Keys() []string {
	return s.props.Keys()
}

// Len returns the number of stored keys
func (s *Store) Len() int {
	return s.props.Len()
}

// Map returns a copy of the stored pairs
func (s *Store) Map() map[string]string {
	return s.props.Map()
}

// Write serializes the store as an ISO-8859-1 properties file preceded by
// the header and timestamp comments. Lines are escaped the way
// java.util.Properties#store escapes them, so every character survives a
// Latin-1 reader.
func (s *Store) Write(w io.Writer, header string, now time.Time) error {
	bw := bufio.NewWriter(w)
	if header != "" {
		fmt.Fprintf(bw, "#%s\n", escapeComment(Sanitize(header)))
	}
	fmt.Fprintf(bw, "#%s\n", now.Format(headerDateLayout))
	for _, key := range s.props.Keys() {
		value, _ := s.props.Get(key)
		fmt.Fprintf(bw, "%s=%s\n", escapeKey(key), escapeValue(value))
	}
	// bufio keeps the first write error and reports it here
	return bw.Flush()
}

func escapeKey(key string) string {
	return escape(key, true)
}

func escapeValue(value string) string {
	return escape(value, false)
}

// escape writes s in properties syntax. Spaces are escaped everywhere in
// keys but only in leading position in values.
func escape(s string, isKey bool) string {
	var b strings.Builder
	for i, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case ' ':
			if isKey || i == 0 {
				b.WriteString(`\ `)
			} else {
				b.WriteByte(' ')
			}
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\f':
			b.WriteString(`\f`)
		case '=', ':', '#', '!':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			if r < 0x20 || r > 0x7e {
				writeUnicodeEscape(&b, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// escapeComment keeps a comment line printable ASCII
func escapeComment(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x20 || r > 0x7e {
			writeUnicodeEscape(&b, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// writeUnicodeEscape writes r as \uXXXX, or as a surrogate pair above the BMP
func writeUnicodeEscape(b *strings.Builder, r rune) {
	if hi, lo := utf16.EncodeRune(r); hi != unicode.ReplacementChar {
		fmt.Fprintf(b, `\u%04X\u%04X`, hi, lo)
		return
	}
	fmt.Fprintf(b, `\u%04X`, r)
}
