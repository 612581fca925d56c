package constvars

const (
	// RegexTaxID matches the national tax ID: 3+3+3 digits and a 2-digit
	// suffix, with the conventional dot and dash separators optional.
	RegexTaxID = `^[0-9]{3}\.?[0-9]{3}\.?[0-9]{3}-?[0-9]{2}$`

	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
)
