package records

import (
	"recordkeeper/pkg/bounded"
	dErrors "recordkeeper/pkg/domain-errors"
	"recordkeeper/pkg/validation"
)

// EncodeText encodes one record field. Overflow becomes a CodeFieldTooLong
// error whose message names the field; errors.Is(err, bounded.ErrOverflow)
// still matches.
func EncodeText[C bounded.Capacity](field, text string) (bounded.Text[C], error) {
	t, err := bounded.New[C](text)
	if err != nil {
		return bounded.Text[C]{}, dErrors.Wrap(err, dErrors.CodeFieldTooLong, field+" too long")
	}
	return t, nil
}

// EncodeDate checks YYYY-MM-DD syntax before encoding. A malformed date is a
// CodeInvalidDateFormat error wrapping validation.ErrInvalidDate.
func EncodeDate(field, text string) (bounded.Str64, error) {
	if !validation.IsValidDateSyntax(text) {
		return bounded.Str64{}, dErrors.Wrap(validation.ErrInvalidDate, dErrors.CodeInvalidDateFormat,
			field+" must be formatted YYYY-MM-DD")
	}
	return EncodeText[bounded.Cap64](field, text)
}
