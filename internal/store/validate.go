package store

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/savebank/internal/common"
)

const forbiddenPathChars = ".$#[]"

// ValidatePath checks that path is a non-empty sequence of slash-separated
// segments, none of them empty or containing . $ # [ ].
func ValidatePath(path string) error {
	p := strings.Trim(path, "/")
	if p == "" {
		return fmt.Errorf("%w: empty", common.ErrInvalidPath)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "" {
			return fmt.Errorf("%w: empty segment in %q", common.ErrInvalidPath, path)
		}
		if strings.ContainsAny(seg, forbiddenPathChars) {
			return fmt.Errorf("%w: %q contains one of %q", common.ErrInvalidPath, seg, forbiddenPathChars)
		}
	}
	return nil
}

// ValidateFields rejects an empty field map and field names that could not
// be used as a path segment.
func ValidateFields(fields Fields) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields", common.ErrInvalidValue)
	}
	for name := range fields {
		if name == "" || strings.ContainsAny(name, forbiddenPathChars+"/") {
			return fmt.Errorf("%w: bad field name %q", common.ErrInvalidValue, name)
		}
	}
	return nil
}
