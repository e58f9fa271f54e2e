package mail

import (
	"strings"
	"unicode"
)

// ForbiddenCharacters lists the punctuation that may not appear in a user
// part, a domain part or a display name. Whitespace, as classified by
// unicode.IsSpace, is forbidden as well.
const ForbiddenCharacters = "@<>()"

func isForbidden(r rune) bool {
	return strings.ContainsRune(ForbiddenCharacters, r) || unicode.IsSpace(r)
}

func checkPart(part string) InvalidPartError {
	if len(part) == 0 {
		return ErrEmpty
	}
	if strings.IndexFunc(part, isForbidden) >= 0 {
		return ErrForbiddenCharacter
	}
	return 0
}

// ValidatePart reports whether part is acceptable as the content of a user
// part, a domain part or a display name. A non-nil result is always an
// InvalidPartError.
func ValidatePart(part string) error {
	if e := checkPart(part); e != 0 {
		return e
	}
	return nil
}
